package system

import (
	"log"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/clockchase/common"
	"github.com/milk9111/clockchase/ecs"
	"github.com/milk9111/clockchase/ecs/component"
)

// Roller is the random source shared by the enemy systems.
type Roller interface {
	IntN(n int) int
	Float64() float64
}

// NewRoller returns a seeded PCG generator.
func NewRoller(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// AttackPolicy maps a uniform roll in [0,100) to the attack to start.
type AttackPolicy interface {
	Choose(roll int) component.EnemyState
}

// WeightedAttackPolicy lunges when roll < LungeWeight and spews otherwise.
// Rolls outside [0,100) fall back to patrol.
type WeightedAttackPolicy struct {
	LungeWeight int
}

func (p WeightedAttackPolicy) Choose(roll int) component.EnemyState {
	switch {
	case roll < 0 || roll >= 100:
		return component.StatePatrol
	case roll < p.LungeWeight:
		return component.StateLungeAttack
	default:
		return component.StateSpewAttack
	}
}

func playerPosition(w *ecs.World) (cp.Vector, bool) {
	ent, ok := ecs.First(w, component.PlayerComponent)
	if !ok {
		return cp.Vector{}, false
	}
	transform, ok := ecs.Get(w, ent, component.TransformComponent)
	if !ok {
		return cp.Vector{}, false
	}
	return cp.Vector{X: transform.X, Y: transform.Y}, true
}

// PatrolPursueStateSystem switches enemies between patrolling and pursuing
// based on their distance to the player.
type PatrolPursueStateSystem struct{}

func NewPatrolPursueStateSystem() *PatrolPursueStateSystem {
	return &PatrolPursueStateSystem{}
}

func (s *PatrolPursueStateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	target, ok := playerPosition(w)
	if !ok {
		return
	}

	ecs.ForEach3(w, component.EnemyComponent, component.AIStateComponent, component.TransformComponent, func(e ecs.Entity, enemy *component.Enemy, state *component.AIState, transform *component.Transform) {
		distance := common.Distance(transform.X, transform.Y, target.X, target.Y)
		switch state.Current {
		case component.StatePatrol:
			if distance <= enemy.PatrolRange {
				state.Current = component.StatePursue
				enemy.Target = target
				enemy.HasTarget = true
			}
		case component.StatePursue:
			if distance > enemy.PatrolRange {
				state.Current = component.StatePatrol
				enemy.HasTarget = false
			} else {
				enemy.Target = target
			}
		}
	})
}

// AttackStateSystem starts an attack once a patrolling or pursuing enemy is
// within attack range. It runs after PatrolPursueStateSystem.
type AttackStateSystem struct {
	Policy AttackPolicy
	Roller Roller
}

func NewAttackStateSystem(policy AttackPolicy, roller Roller) *AttackStateSystem {
	if policy == nil {
		policy = WeightedAttackPolicy{LungeWeight: 60}
	}
	if roller == nil {
		roller = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &AttackStateSystem{Policy: policy, Roller: roller}
}

func (s *AttackStateSystem) Update(w *ecs.World) {
	if s == nil || s.Policy == nil || s.Roller == nil || w == nil {
		return
	}
	target, ok := playerPosition(w)
	if !ok {
		return
	}

	ecs.ForEach3(w, component.EnemyComponent, component.AIStateComponent, component.TransformComponent, func(e ecs.Entity, enemy *component.Enemy, state *component.AIState, transform *component.Transform) {
		if state.Current != component.StatePatrol && state.Current != component.StatePursue {
			return
		}
		distance := common.Distance(transform.X, transform.Y, target.X, target.Y)
		if distance >= enemy.AttackRange {
			return
		}
		roll := s.Roller.IntN(100)
		next := s.Policy.Choose(roll)
		if next == state.Current {
			return
		}
		log.Printf("ai: entity=%s roll=%d %s -> %s", e, roll, state.Current, next)
		state.Current = next
		enemy.Target = target
		enemy.HasTarget = true
	})
}
