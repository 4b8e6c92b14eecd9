package component

// Clock is a projectile spewed by an enemy. Lifetime counts down in seconds
// and the clock is despawned once it reaches zero.
type Clock struct {
	Lifetime float64
	Parent   uint64
}

var ClockComponent = NewComponent[Clock]()
