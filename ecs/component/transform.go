package component

// Transform is the centre of an entity in world units (y-up). For entities
// with a physics body it mirrors the body after every step.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
