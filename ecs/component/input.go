package component

// Intent is the frame-sampled input snapshot. Systems treat it as read-only.
type Intent struct {
	MoveX float64
	MoveY float64
	// HasMove is false when the source produced no movement vector at all.
	HasMove bool
	Jump    bool
	Start   bool
}

var InputComponent = NewComponent[Intent]()
