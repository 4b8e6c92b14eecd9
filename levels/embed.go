package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
)

//go:embed *.json
var LevelsFS embed.FS

var ErrInvalidLevel = errors.New("levels: invalid level")

type LayerKind string

const (
	LayerGround LayerKind = "ground"
	LayerWall   LayerKind = "wall"
	LayerDecor  LayerKind = "decor"
)

// Level is a tile map. Tiles rows are listed top-down; any non-zero tile in
// a ground or wall layer is solid.
type Level struct {
	Name     string   `json:"name"`
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	TileSize float64  `json:"tile_size"`
	Layers   []Layer  `json:"layers"`
	Entities []Entity `json:"entities,omitempty"`
}

type Layer struct {
	Name  string    `json:"name"`
	Kind  LayerKind `json:"kind"`
	Tiles [][]int   `json:"tiles"`
}

// Entity is a spawn marker in tile coordinates.
type Entity struct {
	Type  string                 `json:"type"`
	X     int                    `json:"x"`
	Y     int                    `json:"y"`
	Props map[string]interface{} `json:"props,omitempty"`
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = name
	}
	return lvl, nil
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidLevel, l.Width, l.Height)
	}
	if l.TileSize <= 0 {
		return fmt.Errorf("%w: tile_size %.1f", ErrInvalidLevel, l.TileSize)
	}
	for i, layer := range l.Layers {
		switch layer.Kind {
		case LayerGround, LayerWall, LayerDecor:
		default:
			return fmt.Errorf("%w: layer %d: unknown kind %q", ErrInvalidLevel, i, layer.Kind)
		}
		if len(layer.Tiles) != l.Height {
			return fmt.Errorf("%w: layer %d: %d rows, want %d", ErrInvalidLevel, i, len(layer.Tiles), l.Height)
		}
		for row, tiles := range layer.Tiles {
			if len(tiles) != l.Width {
				return fmt.Errorf("%w: layer %d row %d: %d tiles, want %d", ErrInvalidLevel, i, row, len(tiles), l.Width)
			}
		}
	}
	for i, ent := range l.Entities {
		if ent.Type == "" {
			return fmt.Errorf("%w: entity %d: missing type", ErrInvalidLevel, i)
		}
		if ent.X < 0 || ent.X >= l.Width || ent.Y < 0 || ent.Y >= l.Height {
			return fmt.Errorf("%w: entity %d (%s) at %d,%d is outside the map", ErrInvalidLevel, i, ent.Type, ent.X, ent.Y)
		}
	}
	return nil
}
