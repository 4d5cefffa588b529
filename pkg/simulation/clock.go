package simulation

import "time"

// FrameTimer measures the wall-clock time between two frames.
// The measure is informational: the integrator always uses the fixed step.
type FrameTimer struct {
	now  func() time.Time
	last time.Time
}

// NewFrameTimer starts a timer on the given clock, time.Now when nil.
func NewFrameTimer(now func() time.Time) *FrameTimer {
	if now == nil {
		now = time.Now
	}
	return &FrameTimer{now: now, last: now()}
}

// Sample returns the time elapsed since the previous sample.
// If the clock went backward the delta is reported as zero and anomaly is true.
func (t *FrameTimer) Sample() (delta time.Duration, anomaly bool) {
	current := t.now()
	delta = current.Sub(t.last)
	t.last = current
	if delta < 0 {
		return 0, true
	}
	return delta, false
}
