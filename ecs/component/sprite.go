package component

// Sprite is the logical view of a texture-atlas sprite: which frame is shown
// and whether it is mirrored. Width and Height are the frame bounds and double
// as the default collider size.
type Sprite struct {
	Index  int
	FlipX  bool
	Width  float64
	Height float64
	// ArtFacesLeft is true when the unflipped frames face left.
	ArtFacesLeft bool
}

var SpriteComponent = NewComponent[Sprite]()
