package component

type GroundTag struct{}

var GroundTagComponent = NewComponent[GroundTag]()

type WallTag struct{}

var WallTagComponent = NewComponent[WallTag]()

// LevelTag marks everything whose lifetime is bound to the loaded level.
type LevelTag struct{}

var LevelTagComponent = NewComponent[LevelTag]()
