package component

// SpawnKind names what a level spawn marker turns into.
type SpawnKind string

const (
	SpawnPlayer SpawnKind = "player"
	SpawnEnemy  SpawnKind = "enemy"
)

// SpawnMarker is left on an entity by the level loader; the spawning phase
// attaches the full prefab and removes it.
type SpawnMarker struct {
	Kind  SpawnKind
	Props map[string]any
}

var SpawnMarkerComponent = NewComponent[SpawnMarker]()
