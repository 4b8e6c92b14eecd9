package component

// Collision categories. Each collider belongs to exactly one.
const (
	CategoryGround uint = 1 << iota
	CategoryWall
	CategoryPlayer
	CategoryEnemy
	CategoryClock

	CategoryAll = CategoryGround | CategoryWall | CategoryPlayer | CategoryEnemy | CategoryClock
)

// CollisionLayer declares a collision category and the mask of categories it
// collides with. Two colliders touch only when each one's mask contains the
// other's category.
type CollisionLayer struct {
	Category uint `yaml:"category"`
	Mask     uint `yaml:"mask"`
}

var (
	LayerGround = CollisionLayer{Category: CategoryGround, Mask: CategoryAll}
	LayerWall   = CollisionLayer{Category: CategoryWall, Mask: CategoryAll}
	LayerPlayer = CollisionLayer{Category: CategoryPlayer, Mask: CategoryAll}
	// Enemies ignore each other and their own clocks.
	LayerEnemy = CollisionLayer{Category: CategoryEnemy, Mask: CategoryGround | CategoryWall | CategoryPlayer}
	LayerClock = CollisionLayer{Category: CategoryClock, Mask: CategoryGround | CategoryWall | CategoryPlayer}
)

// Collides reports whether l and other generate contacts.
func (l CollisionLayer) Collides(other CollisionLayer) bool {
	return l.Mask&other.Category != 0 && other.Mask&l.Category != 0
}
