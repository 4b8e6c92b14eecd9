// Package stats keeps run statistics across sessions.
package stats

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	statsObject   = "stats"
	statsProperty = "runs.yaml"
)

// Run totals. Deaths are keyed by kill cause ("enemy", "clock", "boundary").
type Stats struct {
	RunsStarted int            `yaml:"runs_started"`
	Deaths      map[string]int `yaml:"deaths"`
	LongestRun  float64        `yaml:"longest_run"`
}

// Recorder accumulates stats in memory and persists them with gdata. A nil
// manager keeps everything in memory.
type Recorder struct {
	manager *gdata.Manager
	stats   Stats
	current float64
}

// Open opens the gdata store for appName and loads existing stats. A store
// that cannot be opened is not fatal: the recorder runs in memory.
func Open(appName string) (*Recorder, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("stats: open store %q: %v (stats will not be saved)", appName, err)
		manager = nil
	}
	return NewRecorder(manager)
}

func NewRecorder(manager *gdata.Manager) (*Recorder, error) {
	r := &Recorder{manager: manager, stats: Stats{Deaths: map[string]int{}}}
	if err := r.Load(); err != nil {
		return r, err
	}
	return r, nil
}

func (r *Recorder) Load() error {
	r.stats = Stats{Deaths: map[string]int{}}
	if r.manager == nil || !r.manager.ObjectPropExists(statsObject, statsProperty) {
		return nil
	}

	data, err := r.manager.LoadObjectProp(statsObject, statsProperty)
	if err != nil {
		return fmt.Errorf("stats: load: %w", err)
	}

	var loaded Stats
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("stats: unmarshal: %w", err)
	}
	if loaded.Deaths == nil {
		loaded.Deaths = map[string]int{}
	}
	r.stats = loaded
	return nil
}

func (r *Recorder) Save() error {
	if r == nil || r.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(r.stats)
	if err != nil {
		return fmt.Errorf("stats: marshal: %w", err)
	}
	if err := r.manager.SaveObjectProp(statsObject, statsProperty, data); err != nil {
		return fmt.Errorf("stats: save: %w", err)
	}
	return nil
}

func (r *Recorder) RunStarted() {
	if r == nil {
		return
	}
	r.stats.RunsStarted++
	r.current = 0
}

// Tick adds dt seconds to the current run.
func (r *Recorder) Tick(dt float64) {
	if r == nil {
		return
	}
	r.current += dt
}

// PlayerKilled records a death and saves.
func (r *Recorder) PlayerKilled(cause string) {
	if r == nil {
		return
	}
	r.stats.Deaths[cause]++
	if r.current > r.stats.LongestRun {
		r.stats.LongestRun = r.current
	}
	if err := r.Save(); err != nil {
		log.Printf("stats: %v", err)
	}
}

// Snapshot returns a copy of the totals.
func (r *Recorder) Snapshot() Stats {
	if r == nil {
		return Stats{}
	}
	out := r.stats
	out.Deaths = make(map[string]int, len(r.stats.Deaths))
	for k, v := range r.stats.Deaths {
		out.Deaths[k] = v
	}
	return out
}
