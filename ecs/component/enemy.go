package component

import "github.com/jakecoffman/cp"

type Enemy struct {
	FacingLeft  bool
	PatrolRange float64
	AttackRange float64
	IsGrounded  bool
	Target      cp.Vector
	HasTarget   bool
	// CurrentAction is what the action processor runs this tick.
	CurrentAction EnemyAction
	// NextAction is staged on a state change and swapped in at the start
	// of the next action-processing pass.
	NextAction EnemyAction
}

var EnemyComponent = NewComponent[Enemy]()
