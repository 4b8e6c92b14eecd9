package entity

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/clockchase/ecs"
	"github.com/milk9111/clockchase/ecs/component"
	"github.com/milk9111/clockchase/prefabs"
)

// NewClock spawns a clock projectile. The body is created detached with its
// launch velocity; the physics system adds it to the space on the next
// sync and keeps the velocity.
func NewClock(w *ecs.World, spec prefabs.ClockSpec, pos, vel cp.Vector, frame int, parent ecs.Entity) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.ClockComponent, &component.Clock{
		Lifetime: spec.Lifetime,
		Parent:   parent.Ref(),
	}); err != nil {
		return ecs.Entity{}, fmt.Errorf("clock: add clock: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent, &component.Transform{X: pos.X, Y: pos.Y}); err != nil {
		return ecs.Entity{}, fmt.Errorf("clock: add transform: %w", err)
	}

	sprite := spriteFromSpec(spec.Sprite)
	sprite.Index = frame
	if err := ecs.Add(w, entity, component.SpriteComponent, sprite); err != nil {
		return ecs.Entity{}, fmt.Errorf("clock: add sprite: %w", err)
	}

	mass := spec.Collider.Mass
	if mass <= 0 {
		mass = 1
	}
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(pos)
	body.SetVelocityVector(vel)

	if err := ecs.Add(w, entity, component.PhysicsBodyComponent, &component.PhysicsBody{
		Body:   body,
		Width:  spec.Collider.Width,
		Height: spec.Collider.Height,
		Mass:   mass,
		Kind:   component.BodyDynamic,
		Layer:  component.LayerClock,
	}); err != nil {
		return ecs.Entity{}, fmt.Errorf("clock: add physics body: %w", err)
	}

	if err := ecs.Add(w, entity, component.ContactsComponent, &component.Contacts{}); err != nil {
		return ecs.Entity{}, fmt.Errorf("clock: add contacts: %w", err)
	}

	if err := ecs.Add(w, entity, component.LevelTagComponent, &component.LevelTag{}); err != nil {
		return ecs.Entity{}, fmt.Errorf("clock: add level tag: %w", err)
	}

	return entity, nil
}
