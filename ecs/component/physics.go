package component

import "github.com/jakecoffman/cp"

type BodyKind int

const (
	BodyDynamic BodyKind = iota
	BodyKinematic
	BodyStatic
)

func (k BodyKind) String() string {
	switch k {
	case BodyDynamic:
		return "dynamic"
	case BodyKinematic:
		return "kinematic"
	case BodyStatic:
		return "static"
	default:
		return "unknown"
	}
}

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Body and Shape stay nil until the physics system builds them; a zero
// Width/Height falls back to the Sprite bounds.
type PhysicsBody struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Width  float64
	Height float64
	Mass   float64
	Kind   BodyKind
	Layer  CollisionLayer
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// PhysicsConstants are the global movement tunables, read-only during play.
type PhysicsConstants struct {
	Gravity   float64
	WalkSpeed float64
	JumpSpeed float64
}
