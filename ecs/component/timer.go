package component

import "math"

type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// timerEpsilon absorbs float drift from summing fixed frame deltas.
const timerEpsilon = 1e-9

// Timer counts elapsed seconds toward Duration. A Once timer stays finished
// after completing; a Repeating timer wraps and reports JustFinished on every
// completion.
type Timer struct {
	Duration float64
	Elapsed  float64
	Mode     TimerMode

	finished      bool
	justFinished  bool
	timesFinished int
}

func NewTimer(seconds float64, mode TimerMode) Timer {
	return Timer{Duration: seconds, Mode: mode}
}

// Tick advances the timer by dt seconds.
func (t *Timer) Tick(dt float64) {
	if t == nil {
		return
	}
	t.justFinished = false
	t.timesFinished = 0
	if t.Mode == TimerOnce && t.finished {
		return
	}
	if dt > 0 {
		t.Elapsed += dt
	}
	if t.Elapsed+timerEpsilon < t.Duration {
		if t.Mode == TimerRepeating {
			t.finished = false
		}
		return
	}

	t.finished = true
	t.justFinished = true
	if t.Mode == TimerOnce {
		t.timesFinished = 1
		t.Elapsed = t.Duration
		return
	}
	if t.Duration <= 0 {
		t.timesFinished = 1
		t.Elapsed = 0
		return
	}
	n := math.Floor((t.Elapsed + timerEpsilon) / t.Duration)
	t.timesFinished = int(n)
	t.Elapsed = math.Max(0, t.Elapsed-n*t.Duration)
}

func (t *Timer) Finished() bool {
	return t != nil && t.finished
}

// JustFinished is true only on the tick the timer completed.
func (t *Timer) JustFinished() bool {
	return t != nil && t.justFinished
}

// TimesFinished is how many times a repeating timer wrapped on the last tick.
func (t *Timer) TimesFinished() int {
	if t == nil {
		return 0
	}
	return t.timesFinished
}

// Remaining is the time left before the next completion.
func (t *Timer) Remaining() float64 {
	if t == nil {
		return 0
	}
	return math.Max(0, t.Duration-t.Elapsed)
}

func (t *Timer) Reset() {
	if t == nil {
		return
	}
	t.Elapsed = 0
	t.finished = false
	t.justFinished = false
	t.timesFinished = 0
}
