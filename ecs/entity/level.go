package entity

import (
	"fmt"
	"log"
	"strings"

	"github.com/milk9111/clockchase/ecs"
	"github.com/milk9111/clockchase/ecs/component"
	"github.com/milk9111/clockchase/levels"
	"github.com/milk9111/clockchase/prefabs"
)

// LoadLevelToWorld creates the static geometry of lvl and one spawn marker
// per level entity. Markers are turned into actors by SpawnFromMarkers.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level) error {
	if w == nil || lvl == nil {
		return fmt.Errorf("level: nil world or level")
	}

	for _, collider := range lvl.Colliders() {
		if _, err := newGeometry(w, collider); err != nil {
			return err
		}
	}

	for _, spawn := range lvl.Spawns() {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.SpawnMarkerComponent, &component.SpawnMarker{
			Kind:  component.SpawnKind(strings.ToLower(spawn.Type)),
			Props: spawn.Props,
		}); err != nil {
			return fmt.Errorf("level: add spawn marker: %w", err)
		}
		if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: spawn.X, Y: spawn.Y}); err != nil {
			return fmt.Errorf("level: add spawn transform: %w", err)
		}
		if err := ecs.Add(w, e, component.LevelTagComponent, &component.LevelTag{}); err != nil {
			return fmt.Errorf("level: add level tag: %w", err)
		}
	}

	return nil
}

func newGeometry(w *ecs.World, collider levels.Collider) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	layer := component.LayerGround
	if collider.Kind == levels.LayerWall {
		layer = component.LayerWall
		if err := ecs.Add(w, e, component.WallTagComponent, &component.WallTag{}); err != nil {
			return ecs.Entity{}, fmt.Errorf("level: add wall tag: %w", err)
		}
	} else if err := ecs.Add(w, e, component.GroundTagComponent, &component.GroundTag{}); err != nil {
		return ecs.Entity{}, fmt.Errorf("level: add ground tag: %w", err)
	}

	if err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: collider.X, Y: collider.Y}); err != nil {
		return ecs.Entity{}, fmt.Errorf("level: add transform: %w", err)
	}

	if err := ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{
		Width:  collider.W,
		Height: collider.H,
		Kind:   component.BodyStatic,
		Layer:  layer,
	}); err != nil {
		return ecs.Entity{}, fmt.Errorf("level: add physics body: %w", err)
	}

	if err := ecs.Add(w, e, component.LevelTagComponent, &component.LevelTag{}); err != nil {
		return ecs.Entity{}, fmt.Errorf("level: add level tag: %w", err)
	}

	return e, nil
}

// SpawnFromMarkers replaces every spawn marker with its prefab and returns
// the player, if the level had one.
func SpawnFromMarkers(w *ecs.World, cat *prefabs.Catalog) (ecs.Entity, error) {
	if cat == nil {
		cat = prefabs.DefaultCatalog()
	}

	var player ecs.Entity
	var firstErr error
	ecs.ForEach2(w, component.SpawnMarkerComponent, component.TransformComponent, func(e ecs.Entity, marker *component.SpawnMarker, transform *component.Transform) {
		x, y := transform.X, transform.Y
		kind, props := marker.Kind, marker.Props
		ecs.DestroyEntity(w, e)

		var err error
		switch kind {
		case component.SpawnPlayer:
			if player.Valid() {
				log.Printf("level: ignoring extra player spawn at %.0f,%.0f", x, y)
				return
			}
			player, err = NewPlayerAt(w, cat.Player, x, y)
		case component.SpawnEnemy:
			_, err = NewEnemyAt(w, cat.Enemy, x, y, spawnFacingLeft(props))
		default:
			log.Printf("level: unknown spawn type %q", kind)
		}
		if err != nil && firstErr == nil {
			firstErr = err
		}
	})

	return player, firstErr
}

// Enemy art faces left, so spawns face left unless the level says otherwise.
func spawnFacingLeft(props map[string]any) bool {
	facing, ok := props["facing"].(string)
	if !ok {
		return true
	}
	return !strings.EqualFold(facing, "right")
}
