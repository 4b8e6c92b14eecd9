package component

import "github.com/jakecoffman/cp"

type Player struct {
	WalkSpeed  float64
	JumpSpeed  float64
	IsJumping  bool
	IsAlive    bool
	IsGrounded bool
	FacingLeft bool
	// Bounds is the half extent of the playable area around the origin.
	// A zero axis disables boundary death on that axis.
	Bounds cp.Vector
}

var PlayerComponent = NewComponent[Player]()
