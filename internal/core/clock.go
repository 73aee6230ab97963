package core

// Clock is a monotonic millisecond tick source.
type Clock interface {
	Ticks() uint32
}

// ManualClock is a Clock advanced explicitly by its owner. Fixed-step
// simulations and tests drive it so every run sees the same timeline.
type ManualClock struct {
	now uint32
}

// NewManualClock returns a clock starting at start.
func NewManualClock(start uint32) *ManualClock {
	return &ManualClock{now: start}
}

// Ticks returns the current time in milliseconds.
func (c *ManualClock) Ticks() uint32 {
	return c.now
}

// Advance moves the clock forward by ms milliseconds.
func (c *ManualClock) Advance(ms uint32) {
	c.now += ms
}
