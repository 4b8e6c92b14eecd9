package system

import (
	"github.com/milk9111/clockchase/ecs"
	"github.com/milk9111/clockchase/ecs/component"
)

// IsGrounded reports whether e touches a ground entity that its downward
// probe also hits. Touching a wall or the side of a platform is not enough.
func IsGrounded(w *ecs.World, e ecs.Entity) bool {
	contacts, ok := ecs.Get(w, e, component.ContactsComponent)
	if !ok {
		return false
	}
	for _, ref := range contacts.Colliding {
		other, alive := ecs.Resolve(w, ref)
		if !alive || !ecs.Has(w, other, component.GroundTagComponent) {
			continue
		}
		if contacts.RayHit(ref) {
			return true
		}
	}
	return false
}

// GroundingSystem caches IsGrounded on enemies and the player once per tick.
type GroundingSystem struct{}

func NewGroundingSystem() *GroundingSystem {
	return &GroundingSystem{}
}

func (s *GroundingSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach(w, component.EnemyComponent, func(e ecs.Entity, enemy *component.Enemy) {
		enemy.IsGrounded = IsGrounded(w, e)
	})
	ecs.ForEach(w, component.PlayerComponent, func(e ecs.Entity, player *component.Player) {
		player.IsGrounded = IsGrounded(w, e)
	})
}
