package component

// Contacts is written by the physics system after every step. Entries are
// packed entity refs (see ecs.Entity.Ref).
type Contacts struct {
	// Colliding holds every entity whose collider touches this one.
	Colliding []uint64
	// RayHits holds the entities hit by the short downward ground probe,
	// nearest first.
	RayHits []uint64
}

// IsColliding reports whether ref is in the colliding set.
func (c *Contacts) IsColliding(ref uint64) bool {
	if c == nil {
		return false
	}
	for _, r := range c.Colliding {
		if r == ref {
			return true
		}
	}
	return false
}

// RayHit reports whether ref was hit by the ground probe.
func (c *Contacts) RayHit(ref uint64) bool {
	if c == nil {
		return false
	}
	for _, r := range c.RayHits {
		if r == ref {
			return true
		}
	}
	return false
}

var ContactsComponent = NewComponent[Contacts]()
