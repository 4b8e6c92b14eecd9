package ecs

// EventType identifies an ECS event payload.
type EventType string

const (
	// EventPhaseRequest carries a PhaseRequest. Systems never change the
	// game phase directly; the driver drains these after each tick.
	EventPhaseRequest EventType = "phase_request"
	// EventClockSpawned carries a ClockSpawned.
	EventClockSpawned EventType = "clock_spawned"
	// EventPlayerKilled carries a PlayerKilled.
	EventPlayerKilled EventType = "player_killed"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// Phase names understood by the game driver.
const (
	PhaseMenu            = "menu"
	PhasePlayingCutScene = "playing_cutscene"
)

// PhaseRequest asks the driver to move to a named phase.
type PhaseRequest struct {
	Phase  string
	Reason string
}

type ClockSpawned struct {
	Clock  Entity
	Source Entity
}

// KillCause names what ended a run.
type KillCause string

const (
	KillByEnemy    KillCause = "enemy"
	KillByClock    KillCause = "clock"
	KillByBoundary KillCause = "boundary"
)

type PlayerKilled struct {
	Player Entity
	Cause  KillCause
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
