package entity

import (
	"fmt"

	"github.com/milk9111/clockchase/ecs"
	"github.com/milk9111/clockchase/ecs/component"
	"github.com/milk9111/clockchase/prefabs"
)

func NewEnemyAt(w *ecs.World, spec prefabs.EnemySpec, x, y float64, facingLeft bool) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.EnemyComponent, &component.Enemy{
		FacingLeft:    facingLeft,
		PatrolRange:   spec.PatrolRange,
		AttackRange:   spec.AttackRange,
		CurrentAction: NewEnemyAction(component.StatePatrol, spec),
	}); err != nil {
		return ecs.Entity{}, fmt.Errorf("enemy: add enemy: %w", err)
	}

	if err := ecs.Add(w, entity, component.AIStateComponent, &component.AIState{
		Current: component.StatePatrol,
		Seen:    component.StatePatrol,
	}); err != nil {
		return ecs.Entity{}, fmt.Errorf("enemy: add ai state: %w", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent, &component.Transform{X: x, Y: y}); err != nil {
		return ecs.Entity{}, fmt.Errorf("enemy: add transform: %w", err)
	}

	if err := ecs.Add(w, entity, component.SpriteComponent, spriteFromSpec(spec.Sprite)); err != nil {
		return ecs.Entity{}, fmt.Errorf("enemy: add sprite: %w", err)
	}

	if err := ecs.Add(w, entity, component.AnimationComponent, animationFromSpec(spec.Animation)); err != nil {
		return ecs.Entity{}, fmt.Errorf("enemy: add animation: %w", err)
	}

	if err := ecs.Add(w, entity, component.PhysicsBodyComponent, &component.PhysicsBody{
		Width:  spec.Collider.Width,
		Height: spec.Collider.Height,
		Mass:   spec.Collider.Mass,
		Kind:   component.BodyDynamic,
		Layer:  component.LayerEnemy,
	}); err != nil {
		return ecs.Entity{}, fmt.Errorf("enemy: add physics body: %w", err)
	}

	if err := ecs.Add(w, entity, component.ContactsComponent, &component.Contacts{}); err != nil {
		return ecs.Entity{}, fmt.Errorf("enemy: add contacts: %w", err)
	}

	if err := ecs.Add(w, entity, component.LevelTagComponent, &component.LevelTag{}); err != nil {
		return ecs.Entity{}, fmt.Errorf("enemy: add level tag: %w", err)
	}

	return entity, nil
}

// NewEnemyAction builds a fresh action payload for state from the enemy
// spec. Timers always start from zero.
func NewEnemyAction(state component.EnemyState, spec prefabs.EnemySpec) component.EnemyAction {
	switch state {
	case component.StatePatrol:
		return &component.PatrolAction{
			DirectionTimer: component.NewTimer(spec.Patrol.DirectionSeconds, component.TimerRepeating),
			Speed:          spec.Patrol.Speed,
		}
	case component.StatePursue:
		return &component.PursueAction{Speed: spec.Pursue.Speed}
	case component.StateLungeAttack:
		return &component.LungeAttackAction{
			BeforeLunge: component.NewTimer(spec.Lunge.BeforeSeconds, component.TimerOnce),
			AfterLunge:  component.NewTimer(spec.Lunge.AfterSeconds, component.TimerOnce),
			Speed:       spec.Lunge.Speed,
		}
	case component.StateSpewAttack:
		return &component.SpewAttackAction{
			Duration:    component.NewTimer(spec.Spew.DurationSeconds, component.TimerOnce),
			Interval:    component.NewTimer(spec.Spew.IntervalSeconds, component.TimerRepeating),
			MinVelocity: spec.Spew.MinVelocity,
			MaxVelocity: spec.Spew.MaxVelocity,
			MinAngle:    spec.Spew.MinAngle,
			MaxAngle:    spec.Spew.MaxAngle,
			SourceX:     spec.Spew.SourceX,
			SourceY:     spec.Spew.SourceY,
		}
	default:
		return &component.PatrolAction{
			DirectionTimer: component.NewTimer(spec.Patrol.DirectionSeconds, component.TimerRepeating),
			Speed:          spec.Patrol.Speed,
		}
	}
}
