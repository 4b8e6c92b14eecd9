package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/clockchase/ecs"
	"github.com/milk9111/clockchase/ecs/component"
	"github.com/milk9111/clockchase/prefabs"
)

func NewPlayerAt(w *ecs.World, spec prefabs.PlayerSpec, x, y float64) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.PlayerComponent, &component.Player{
		WalkSpeed: spec.Physics.WalkSpeed,
		JumpSpeed: spec.Physics.JumpSpeed,
		IsAlive:   true,
		Bounds:    cp.Vector{X: spec.Bounds.X, Y: spec.Bounds.Y},
	}); err != nil {
		return ecs.Entity{}, fmt.Errorf("player: add player: %w", err)
	}

	if err := ecs.Add(w, entity, component.InputComponent, &component.Intent{}); err != nil {
		return ecs.Entity{}, fmt.Errorf("player: add input: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent, &component.Transform{X: x, Y: y}); err != nil {
		return ecs.Entity{}, fmt.Errorf("player: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.SpriteComponent, spriteFromSpec(spec.Sprite)); err != nil {
		return ecs.Entity{}, fmt.Errorf("player: add sprite: %w", err)
	}

	if err := ecs.Add(w, entity, component.AnimationComponent, animationFromSpec(spec.Animation)); err != nil {
		return ecs.Entity{}, fmt.Errorf("player: add animation: %w", err)
	}

	if err := ecs.Add(w, entity, component.PhysicsBodyComponent, &component.PhysicsBody{
		Width:  spec.Collider.Width,
		Height: spec.Collider.Height,
		Mass:   spec.Collider.Mass,
		Kind:   component.BodyDynamic,
		Layer:  component.LayerPlayer,
	}); err != nil {
		return ecs.Entity{}, fmt.Errorf("player: add physics body: %w", err)
	}

	if err := ecs.Add(w, entity, component.ContactsComponent, &component.Contacts{}); err != nil {
		return ecs.Entity{}, fmt.Errorf("player: add contacts: %w", err)
	}

	if err := ecs.Add(w, entity, component.LevelTagComponent, &component.LevelTag{}); err != nil {
		return ecs.Entity{}, fmt.Errorf("player: add level tag: %w", err)
	}

	return entity, nil
}
