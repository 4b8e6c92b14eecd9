package system

import (
	"log"

	"github.com/milk9111/clockchase/common"
	"github.com/milk9111/clockchase/ecs"
	"github.com/milk9111/clockchase/ecs/component"
	"github.com/milk9111/clockchase/ecs/entity"
	"github.com/milk9111/clockchase/prefabs"
)

// StateChangeSystem stages a fresh action whenever an enemy's state differs
// from the last state it reacted to.
type StateChangeSystem struct {
	Catalog *prefabs.Catalog
}

func NewStateChangeSystem(cat *prefabs.Catalog) *StateChangeSystem {
	return &StateChangeSystem{Catalog: cat}
}

func (s *StateChangeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	spec := prefabs.DefaultEnemySpec()
	if s != nil && s.Catalog != nil {
		spec = s.Catalog.Enemy
	}

	ecs.ForEach2(w, component.EnemyComponent, component.AIStateComponent, func(e ecs.Entity, enemy *component.Enemy, state *component.AIState) {
		if state.Current == state.Seen && (enemy.CurrentAction != nil || enemy.NextAction != nil) {
			return
		}
		enemy.NextAction = entity.NewEnemyAction(state.Current, spec)
		state.Seen = state.Current
	})
}

// EnemyActionSystem runs the current action of every enemy and resolves its
// facing. A staged action is swapped in before anything else.
type EnemyActionSystem struct{}

func NewEnemyActionSystem() *EnemyActionSystem {
	return &EnemyActionSystem{}
}

func (s *EnemyActionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Time().Delta

	ecs.ForEach3(w, component.EnemyComponent, component.AIStateComponent, component.PhysicsBodyComponent, func(e ecs.Entity, enemy *component.Enemy, state *component.AIState, body *component.PhysicsBody) {
		if enemy.NextAction != nil {
			enemy.CurrentAction = enemy.NextAction
			enemy.NextAction = nil
		}
		if enemy.CurrentAction == nil || body.Body == nil {
			return
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			return
		}

		targetDX := 0.0
		if enemy.HasTarget {
			targetDX = enemy.Target.X - transform.X
		}

		vel := body.Body.Velocity()
		switch action := enemy.CurrentAction.(type) {
		case *component.PatrolAction:
			action.DirectionTimer.Tick(dt)
			if action.DirectionTimer.TimesFinished()%2 == 1 {
				enemy.FacingLeft = !enemy.FacingLeft
			}
			vel.X = facingSign(enemy.FacingLeft) * action.Speed
		case *component.PursueAction:
			if targetDX > 0 {
				vel.X = action.Speed
			} else {
				vel.X = -action.Speed
			}
		case *component.LungeAttackAction:
			action.BeforeLunge.Tick(dt)
			if action.BeforeLunge.JustFinished() {
				vel.X = facingSign(enemy.FacingLeft) * action.Speed
				vel.Y = action.Speed
			} else if !action.BeforeLunge.Finished() {
				// Wind up in place.
				vel.X = 0
			} else if enemy.IsGrounded {
				vel.X = 0
				action.AfterLunge.Tick(dt)
				if action.AfterLunge.Finished() {
					state.Current = component.StatePatrol
				}
			}
		case *component.SpewAttackAction:
			vel.X = 0
			action.Duration.Tick(dt)
			if action.Duration.Finished() {
				state.Current = component.StatePatrol
			}
		default:
			log.Printf("ai: entity=%s unknown action %T, patrolling", e, action)
			state.Current = component.StatePatrol
		}

		// Movement decides facing; a stationary attacker faces its target.
		dir := common.Sign(vel.X)
		if dir == 0 && state.Current.IsAttack() {
			dir = common.Sign(targetDX)
		}
		if dir != 0 {
			enemy.FacingLeft = dir < 0
		}

		body.Body.SetVelocityVector(vel)
	})
}

func facingSign(facingLeft bool) float64 {
	if facingLeft {
		return -1
	}
	return 1
}
