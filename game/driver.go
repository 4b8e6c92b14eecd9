// Package game owns the top-level phase machine: it loads a level, spawns
// its actors, starts physics and runs the per-tick system pipeline while
// playing.
package game

import (
	"fmt"
	"log"

	"github.com/milk9111/clockchase/ecs"
	"github.com/milk9111/clockchase/ecs/component"
	"github.com/milk9111/clockchase/ecs/entity"
	"github.com/milk9111/clockchase/ecs/system"
	"github.com/milk9111/clockchase/levels"
	"github.com/milk9111/clockchase/prefabs"
)

const (
	DefaultLevel           = "level1.json"
	DefaultCutSceneSeconds = 3.0
)

// StatsRecorder receives run events. stats.Recorder implements it.
type StatsRecorder interface {
	RunStarted()
	PlayerKilled(cause string)
}

// runTicker is implemented by recorders that track run length.
type runTicker interface {
	Tick(dt float64)
}

type Config struct {
	// Level is the embedded level file to load. Defaults to DefaultLevel.
	Level string
	// LoadLevel overrides how Level is resolved.
	LoadLevel func(name string) (*levels.Level, error)
	// Seed feeds the attack roll and the spew randomness.
	Seed            uint64
	CutSceneSeconds float64
	Input           system.IntentSource
	Catalog         *prefabs.Catalog
	Stats           StatsRecorder
	// AutoStart leaves the menu without waiting for the start input.
	AutoStart bool
}

type Driver struct {
	cfg       Config
	phase     Phase
	world     *ecs.World
	physics   *system.PhysicsSystem
	catalog   *prefabs.Catalog
	scheduler *ecs.Scheduler
	attack    *system.AttackStateSystem
	input     system.IntentSource
	level     *levels.Level
	player    ecs.Entity
	cutScene  float64
	autoStart bool
}

// NewDriver builds the world and the system pipeline. The driver starts in
// PhaseLoading; the first Tick moves it to the menu.
func NewDriver(cfg Config) (*Driver, error) {
	if cfg.Level == "" {
		cfg.Level = DefaultLevel
	}
	if cfg.LoadLevel == nil {
		cfg.LoadLevel = levels.LoadLevelFromFS
	}
	if cfg.CutSceneSeconds <= 0 {
		cfg.CutSceneSeconds = DefaultCutSceneSeconds
	}

	cat := cfg.Catalog
	if cat == nil {
		loaded, err := prefabs.LoadCatalog()
		if err != nil {
			return nil, fmt.Errorf("game: load catalog: %w", err)
		}
		cat = loaded
	}

	input := cfg.Input
	if input == nil {
		input = system.IntentFunc(func() component.Intent { return component.Intent{} })
	}

	d := &Driver{
		cfg:       cfg,
		phase:     PhaseLoading,
		world:     ecs.NewWorld(),
		physics:   system.NewPhysicsSystem(cat.Player.Physics.Gravity),
		catalog:   cat,
		input:     input,
		autoStart: cfg.AutoStart,
	}

	roller := system.NewRoller(cfg.Seed)
	d.attack = system.NewAttackStateSystem(attackPolicy(cat.Enemy), roller)
	d.scheduler = ecs.NewScheduler(
		system.NewInputSystem(input),
		system.NewGroundingSystem(),
		system.NewPatrolPursueStateSystem(),
		d.attack,
		system.NewStateChangeSystem(cat),
		system.NewEnemyActionSystem(),
		system.NewPlayerControllerSystem(),
		system.NewSpewSystem(cat, roller),
		d.physics,
		system.NewClockLifetimeSystem(),
		system.NewClockContactSystem(),
		system.NewEnemyContactSystem(),
		system.NewAnimationSystem(),
		system.NewPlayerDeathSystem(),
	)

	return d, nil
}

func (d *Driver) Phase() Phase {
	if d == nil {
		return PhaseLoading
	}
	return d.phase
}

func (d *Driver) World() *ecs.World {
	if d == nil {
		return nil
	}
	return d.world
}

func (d *Driver) Physics() *system.PhysicsSystem {
	if d == nil {
		return nil
	}
	return d.physics
}

func (d *Driver) Catalog() *prefabs.Catalog {
	if d == nil {
		return nil
	}
	return d.catalog
}

// Player returns the player spawned for the current run.
func (d *Driver) Player() (ecs.Entity, bool) {
	if d == nil || !d.world.IsAlive(d.player) {
		return ecs.Entity{}, false
	}
	return d.player, true
}

// Request moves the driver to another phase if the phase graph allows it.
func (d *Driver) Request(to Phase) error {
	if d == nil {
		return nil
	}
	if !CanTransition(d.phase, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, d.phase, to)
	}
	d.transition(to)
	return nil
}

func (d *Driver) transition(to Phase) {
	from := d.phase
	if from == to {
		return
	}
	if from == PhasePlaying || to == PhaseMenu {
		d.cleanup()
	}
	if to == PhasePlayingCutScene {
		d.cutScene = 0
	}
	d.phase = to
	log.Printf("game: phase %s -> %s", from, to)
}

// Tick runs one frame of dt seconds.
func (d *Driver) Tick(dt float64) {
	if d == nil {
		return
	}

	switch d.phase {
	case PhaseLoading:
		d.transition(PhaseMenu)
	case PhaseMenu:
		if d.autoStart || d.input.Intent().Start {
			d.transition(PhaseLoadingLevel)
		}
	case PhaseLoadingLevel:
		d.loadLevel()
	case PhaseSpawningEntities:
		d.spawnEntities()
	case PhaseInitializingPhysics:
		d.initPhysics()
	case PhasePlaying:
		d.world.Advance(dt)
		d.scheduler.Update(d.world)
		if ticker, ok := d.cfg.Stats.(runTicker); ok {
			ticker.Tick(dt)
		}
		d.drainEvents()
	case PhasePlayingCutScene:
		d.cutScene += dt
		if d.cutScene >= d.cfg.CutSceneSeconds {
			d.transition(PhaseMenu)
		}
	}
}

func (d *Driver) loadLevel() {
	lvl, err := d.cfg.LoadLevel(d.cfg.Level)
	if err == nil {
		err = entity.LoadLevelToWorld(d.world, lvl)
	}
	if err != nil {
		d.fail(fmt.Errorf("game: load level %s: %w", d.cfg.Level, err))
		return
	}
	d.level = lvl
	d.transition(PhaseSpawningEntities)
}

func (d *Driver) spawnEntities() {
	player, err := entity.SpawnFromMarkers(d.world, d.catalog)
	if err != nil {
		d.fail(fmt.Errorf("game: spawn entities: %w", err))
		return
	}
	if !player.Valid() {
		log.Printf("game: level %s has no player spawn", d.cfg.Level)
	}
	d.player = player
	d.transition(PhaseInitializingPhysics)
}

func (d *Driver) initPhysics() {
	d.physics.Reset()
	d.physics.SetGravity(d.catalog.Player.Physics.Gravity)
	d.physics.Sync(d.world)
	if d.cfg.Stats != nil {
		d.cfg.Stats.RunStarted()
	}
	d.transition(PhasePlaying)
}

// fail logs a loading error and returns to the menu. Auto start is turned
// off so a broken level is not reloaded every frame.
func (d *Driver) fail(err error) {
	log.Printf("%v", err)
	d.autoStart = false
	d.transition(PhaseMenu)
}

func (d *Driver) drainEvents() {
	for _, evt := range d.world.Events().Drain() {
		switch evt.Type {
		case ecs.EventPhaseRequest:
			req, ok := evt.Data.(ecs.PhaseRequest)
			if !ok {
				continue
			}
			to, ok := ParsePhase(req.Phase)
			if !ok {
				log.Printf("game: unknown phase %q requested (%s)", req.Phase, req.Reason)
				continue
			}
			if err := d.Request(to); err != nil {
				log.Printf("game: %v (%s)", err, req.Reason)
			}
		case ecs.EventPlayerKilled:
			killed, ok := evt.Data.(ecs.PlayerKilled)
			if ok && d.cfg.Stats != nil {
				d.cfg.Stats.PlayerKilled(string(killed.Cause))
			}
		}
	}
}

// cleanup destroys everything bound to the level and drops the physics
// bodies with it.
func (d *Driver) cleanup() {
	var doomed []ecs.Entity
	ecs.ForEach(d.world, component.LevelTagComponent, func(e ecs.Entity, _ *component.LevelTag) {
		doomed = append(doomed, e)
	})
	for _, e := range doomed {
		d.world.DestroyEntity(e)
	}
	d.world.Events().Drain()
	d.physics.Reset()
	d.player = ecs.Entity{}
	d.level = nil
}

// Reload applies a changed prefab or script file between ticks. Actors
// already spawned keep their values; new spawns and the attack policy use
// the reloaded specs.
func (d *Driver) Reload(path string) error {
	if d == nil {
		return nil
	}
	changed, err := d.catalog.Reload(path)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	d.attack.Policy = attackPolicy(d.catalog.Enemy)
	d.physics.SetGravity(d.catalog.Player.Physics.Gravity)
	log.Printf("game: reloaded %s", path)
	return nil
}

func attackPolicy(spec prefabs.EnemySpec) system.AttackPolicy {
	weighted := system.WeightedAttackPolicy{LungeWeight: spec.Attack.LungeWeight}
	if spec.Attack.Script == "" {
		return weighted
	}
	src, err := prefabs.LoadScript(spec.Attack.Script)
	if err != nil {
		log.Printf("game: attack script %s: %v", spec.Attack.Script, err)
		return weighted
	}
	policy, err := system.NewScriptAttackPolicy(src, spec.Attack.LungeWeight)
	if err != nil {
		log.Printf("game: %v", err)
		return weighted
	}
	return policy
}
