package prefabs

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Catalog holds the active prefab specs. It is owned by the main loop; the
// watcher only reports file names and Reload is applied between ticks.
type Catalog struct {
	Player PlayerSpec
	Enemy  EnemySpec
	Clock  ClockSpec
}

// DefaultCatalog returns the built-in specs without touching any file.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Player: DefaultPlayerSpec(),
		Enemy:  DefaultEnemySpec(),
		Clock:  DefaultClockSpec(),
	}
}

// LoadCatalog loads every spec from disk or the embedded copies.
func LoadCatalog() (*Catalog, error) {
	player, err := LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	enemy, err := LoadEnemySpec()
	if err != nil {
		return nil, err
	}
	clock, err := LoadClockSpec()
	if err != nil {
		return nil, err
	}
	return &Catalog{Player: player, Enemy: enemy, Clock: clock}, nil
}

// Reload re-reads the spec named by path. It reports whether the catalog
// changed; on error the previous spec stays active.
func (c *Catalog) Reload(path string) (bool, error) {
	if c == nil {
		return false, nil
	}
	switch strings.ToLower(filepath.Base(path)) {
	case "player.yaml", "player.yml":
		spec, err := LoadPlayerSpec()
		if err != nil {
			return false, fmt.Errorf("prefabs: reload %s: %w", path, err)
		}
		c.Player = spec
	case "enemy.yaml", "enemy.yml":
		spec, err := LoadEnemySpec()
		if err != nil {
			return false, fmt.Errorf("prefabs: reload %s: %w", path, err)
		}
		c.Enemy = spec
	case "clock.yaml", "clock.yml":
		spec, err := LoadClockSpec()
		if err != nil {
			return false, fmt.Errorf("prefabs: reload %s: %w", path, err)
		}
		c.Clock = spec
	default:
		if isScriptFile(path) {
			// Scripts are compiled lazily by their users; report the
			// change so cached programs are dropped.
			return true, nil
		}
		return false, nil
	}
	return true, nil
}
