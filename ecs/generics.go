package ecs

import "github.com/milk9111/clockchase/ecs/component"

func storeFor[T any](w *World, handle component.ComponentHandle[T], create bool) *SparseSet[T] {
	kind := handle.Kind()
	if w == nil || !kind.Valid() {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]store)
	}
	s, ok := w.stores[kind.ID()]
	if !ok {
		if !create {
			return nil
		}
		set := &SparseSet[T]{}
		w.stores[kind.ID()] = set
		return set
	}
	set, _ := s.(*SparseSet[T])
	return set
}

// Add attaches value to e, replacing any existing component of that kind.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	if !handle.Kind().Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	storeFor(w, handle, true).Set(e.ID, value)
	return nil
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	s := storeFor(w, handle, false)
	if !s.Has(e.ID) {
		return false
	}
	s.Remove(e.ID)
	return true
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return storeFor(w, handle, false).Has(e.ID)
}

// Get returns a pointer to the stored component; mutations are visible to
// every later reader.
func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	v := storeFor(w, handle, false).Get(e.ID)
	return v, v != nil
}
