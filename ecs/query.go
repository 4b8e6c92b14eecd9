package ecs

import "github.com/milk9111/clockchase/ecs/component"

// ForEach calls fn for every live entity holding the component.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	s := storeFor(w, handle, false)
	for _, id := range s.Entities() {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		v := s.Get(id)
		if v == nil {
			continue
		}
		fn(e, v)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentHandle[A], kb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	if sa == nil || sb == nil {
		return
	}
	for _, id := range sa.Entities() {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		a, b := sa.Get(id), sb.Get(id)
		if a == nil || b == nil {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentHandle[A], kb component.ComponentHandle[B], kc component.ComponentHandle[C], fn func(Entity, *A, *B, *C)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	sc := storeFor(w, kc, false)
	if sa == nil || sb == nil || sc == nil {
		return
	}
	for _, id := range sa.Entities() {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		a, b, c := sa.Get(id), sb.Get(id), sc.Get(id)
		if a == nil || b == nil || c == nil {
			continue
		}
		fn(e, a, b, c)
	}
}

// First returns the live entity with the lowest id holding the component.
func First[T any](w *World, handle component.ComponentHandle[T]) (Entity, bool) {
	s := storeFor(w, handle, false)
	best := Entity{}
	for _, id := range s.Entities() {
		e, ok := w.entities.handle(id)
		if !ok {
			continue
		}
		if !best.Valid() || e.ID < best.ID {
			best = e
		}
	}
	return best, best.Valid()
}

// Count returns how many live entities hold kind.
func Count[T any](w *World, handle component.ComponentHandle[T]) int {
	n := 0
	ForEach(w, handle, func(Entity, *T) { n++ })
	return n
}
