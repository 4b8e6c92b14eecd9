package levels

// Rect is an axis-aligned box in world units, X/Y at its centre (y-up).
type Rect struct {
	X, Y float64
	W, H float64
}

// Collider is a solid box built from a horizontal run of tiles.
type Collider struct {
	Kind LayerKind
	Rect
}

// Spawn is an entity marker converted to world coordinates.
type Spawn struct {
	Type  string
	X, Y  float64
	Props map[string]interface{}
}

// WorldSize is the map extent in world units.
func (l *Level) WorldSize() (float64, float64) {
	return float64(l.Width) * l.TileSize, float64(l.Height) * l.TileSize
}

// TileCenter converts a top-down tile coordinate to the world position of the
// tile's centre, with the map centred on the origin.
func (l *Level) TileCenter(col, row int) (float64, float64) {
	w, h := l.WorldSize()
	x := (float64(col)+0.5)*l.TileSize - w/2
	y := h/2 - (float64(row)+0.5)*l.TileSize
	return x, y
}

// Colliders returns one collider per horizontal run of solid tiles in every
// ground and wall layer. Decor layers produce nothing.
func (l *Level) Colliders() []Collider {
	var out []Collider
	for _, layer := range l.Layers {
		if layer.Kind != LayerGround && layer.Kind != LayerWall {
			continue
		}
		for row, tiles := range layer.Tiles {
			start := -1
			for col := 0; col <= len(tiles); col++ {
				solid := col < len(tiles) && tiles[col] != 0
				if solid && start < 0 {
					start = col
					continue
				}
				if solid || start < 0 {
					continue
				}
				out = append(out, l.run(layer.Kind, row, start, col-1))
				start = -1
			}
		}
	}
	return out
}

func (l *Level) run(kind LayerKind, row, first, last int) Collider {
	x0, y := l.TileCenter(first, row)
	x1, _ := l.TileCenter(last, row)
	return Collider{
		Kind: kind,
		Rect: Rect{
			X: (x0 + x1) / 2,
			Y: y,
			W: float64(last-first+1) * l.TileSize,
			H: l.TileSize,
		},
	}
}

// Spawns returns the entity markers in world coordinates.
func (l *Level) Spawns() []Spawn {
	out := make([]Spawn, 0, len(l.Entities))
	for _, ent := range l.Entities {
		x, y := l.TileCenter(ent.X, ent.Y)
		out = append(out, Spawn{Type: ent.Type, X: x, Y: y, Props: ent.Props})
	}
	return out
}
