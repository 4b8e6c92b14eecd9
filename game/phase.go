package game

import (
	"errors"
	"fmt"

	"github.com/milk9111/clockchase/ecs"
)

// ErrInvalidTransition is returned by Driver.Request for a move the phase
// graph does not allow.
var ErrInvalidTransition = errors.New("game: invalid phase transition")

// Phase is the top-level game phase.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseMenu
	PhaseLoadingLevel
	PhaseSpawningEntities
	PhaseInitializingPhysics
	PhasePlaying
	PhasePlayingCutScene
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseMenu:
		return ecs.PhaseMenu
	case PhaseLoadingLevel:
		return "loading_level"
	case PhaseSpawningEntities:
		return "spawning_entities"
	case PhaseInitializingPhysics:
		return "initializing_physics"
	case PhasePlaying:
		return "playing"
	case PhasePlayingCutScene:
		return ecs.PhasePlayingCutScene
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// ParsePhase maps a phase name, as carried by ecs.PhaseRequest, to a Phase.
func ParsePhase(name string) (Phase, bool) {
	for p := PhaseLoading; p <= PhasePlayingCutScene; p++ {
		if p.String() == name {
			return p, true
		}
	}
	return 0, false
}

var transitions = map[Phase][]Phase{
	PhaseLoading:             {PhaseMenu},
	PhaseMenu:                {PhaseLoadingLevel},
	PhaseLoadingLevel:        {PhaseSpawningEntities, PhaseMenu},
	PhaseSpawningEntities:    {PhaseInitializingPhysics, PhaseMenu},
	PhaseInitializingPhysics: {PhasePlaying, PhaseMenu},
	PhasePlaying:             {PhasePlayingCutScene, PhaseMenu},
	PhasePlayingCutScene:     {PhaseMenu},
}

// CanTransition reports whether the driver may move from one phase to
// another. Staying in the same phase is always allowed.
func CanTransition(from, to Phase) bool {
	if from == to {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
