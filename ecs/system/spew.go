package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/clockchase/common"
	"github.com/milk9111/clockchase/ecs"
	"github.com/milk9111/clockchase/ecs/component"
	"github.com/milk9111/clockchase/ecs/entity"
	"github.com/milk9111/clockchase/prefabs"
)

// SpewSystem launches clocks from enemies that are spewing. Ready, when set,
// gates spawning on the clock resources being loaded; skipped clocks are
// spawned on the first tick it reports true.
type SpewSystem struct {
	Catalog *prefabs.Catalog
	Roller  Roller
	Ready   func() bool
}

func NewSpewSystem(cat *prefabs.Catalog, roller Roller) *SpewSystem {
	return &SpewSystem{Catalog: cat, Roller: roller}
}

func (s *SpewSystem) Update(w *ecs.World) {
	if s == nil || s.Roller == nil || w == nil {
		return
	}
	spec := prefabs.DefaultClockSpec()
	if s.Catalog != nil {
		spec = s.Catalog.Clock
	}
	dt := w.Time().Delta

	ecs.ForEach2(w, component.EnemyComponent, component.TransformComponent, func(e ecs.Entity, enemy *component.Enemy, transform *component.Transform) {
		action, ok := enemy.CurrentAction.(*component.SpewAttackAction)
		if !ok || action.Duration.Finished() {
			return
		}

		action.Interval.Tick(dt)
		action.Pending += action.Interval.TimesFinished()
		if action.Pending == 0 {
			return
		}
		if s.Ready != nil && !s.Ready() {
			return
		}

		for ; action.Pending > 0; action.Pending-- {
			pos, vel := s.launch(enemy, transform, action)
			frame := 0
			if spec.Sprite.FrameCount > 0 {
				frame = s.Roller.IntN(spec.Sprite.FrameCount)
			}
			clock, err := entity.NewClock(w, spec, pos, vel, frame, e)
			if err != nil {
				log.Printf("ai: entity=%s spawn clock: %v", e, err)
				continue
			}
			w.Events().Push(ecs.Event{Type: ecs.EventClockSpawned, Data: ecs.ClockSpawned{Clock: clock, Source: e}})
		}
	})
}

func (s *SpewSystem) launch(enemy *component.Enemy, transform *component.Transform, action *component.SpewAttackAction) (cp.Vector, cp.Vector) {
	dir := facingSign(enemy.FacingLeft)

	offsetX := action.SourceX
	if !enemy.FacingLeft {
		offsetX = -offsetX
	}
	pos := cp.Vector{X: transform.X + offsetX, Y: transform.Y + action.SourceY}

	speed := common.Lerp(action.MinVelocity, action.MaxVelocity, s.Roller.Float64())
	angle := common.Lerp(action.MinAngle, action.MaxAngle, s.Roller.Float64()) * math.Pi / 180
	vel := cp.Vector{X: dir * speed * math.Cos(angle), Y: speed * math.Sin(angle)}
	return pos, vel
}
