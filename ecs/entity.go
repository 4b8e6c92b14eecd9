package ecs

import "strconv"

// Entity is a generational handle. IDs start at 1; the zero value is never
// alive.
type Entity struct {
	ID  int
	Gen int
}

func (e Entity) String() string {
	return strconv.Itoa(e.ID) + "v" + strconv.Itoa(e.Gen)
}

func (e Entity) Valid() bool {
	return e.ID > 0
}

// Ref packs the handle into the uint64 form components store, since the
// component package cannot import ecs.
func (e Entity) Ref() uint64 {
	return uint64(uint32(e.Gen))<<32 | uint64(uint32(e.ID))
}

// FromRef unpacks a handle produced by Ref.
func FromRef(ref uint64) Entity {
	return Entity{ID: int(uint32(ref)), Gen: int(uint32(ref >> 32))}
}

// Resolve returns the live entity behind ref.
func Resolve(w *World, ref uint64) (Entity, bool) {
	e := FromRef(ref)
	return e, IsAlive(w, e)
}
