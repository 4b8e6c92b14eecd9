package component

import "strings"

// EnemyState is the active branch of an enemy's state machine.
type EnemyState int

const (
	// StatePatrol walks back and forth looking for the player.
	StatePatrol EnemyState = iota
	// StatePursue moves toward the player until in attack range.
	StatePursue
	// StateLungeAttack jumps at the player.
	StateLungeAttack
	// StateSpewAttack spews clocks at the player.
	StateSpewAttack
)

func (s EnemyState) String() string {
	switch s {
	case StatePatrol:
		return "patrol"
	case StatePursue:
		return "pursue"
	case StateLungeAttack:
		return "lunge_attack"
	case StateSpewAttack:
		return "spew_attack"
	default:
		return "unknown"
	}
}

// ParseEnemyState accepts the String form plus the short attack names used by
// scripts ("lunge", "spew").
func ParseEnemyState(name string) (EnemyState, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "patrol":
		return StatePatrol, true
	case "pursue":
		return StatePursue, true
	case "lunge", "lunge_attack":
		return StateLungeAttack, true
	case "spew", "spew_attack":
		return StateSpewAttack, true
	default:
		return StatePatrol, false
	}
}

// IsAttack reports whether s is one of the attack states.
func (s EnemyState) IsAttack() bool {
	return s == StateLungeAttack || s == StateSpewAttack
}

// AIState stores the current state and the last state the state-change
// system reacted to. Current != Seen means a change is pending.
type AIState struct {
	Current EnemyState
	Seen    EnemyState
}

var AIStateComponent = NewComponent[AIState]()
