package core

import "time"

// DefaultTickInterval is the simulated time between generations.
const DefaultTickInterval = 50 * time.Millisecond

// FixedStep gates simulation ticks to a wall-clock interval that is
// independent of the frame rate. At most one tick fires per call and the
// accumulated time is discarded once it does.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
}

// NewFixedStep constructs a FixedStep controller for the given interval.
// Non-positive intervals fall back to DefaultTickInterval.
func NewFixedStep(interval time.Duration) *FixedStep {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &FixedStep{step: interval}
}

// Advance adds dt to the accumulator and reports whether a tick is due.
func (f *FixedStep) Advance(dt time.Duration) bool {
	if dt > 0 {
		f.accumulator += dt
	}
	if f.accumulator >= f.step {
		f.accumulator = 0
		return true
	}
	return false
}

// Reset discards any accumulated time so the next tick is a full interval away.
func (f *FixedStep) Reset() {
	f.accumulator = 0
}
