package core

import "time"

// Clock is a monotonic millisecond time source.
type Clock interface {
	// Millis returns milliseconds elapsed since an arbitrary fixed origin.
	Millis() int64
}

// SystemClock measures wall time from the moment it was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock whose origin is now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Millis returns milliseconds since the clock was created.
func (c *SystemClock) Millis() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock is advanced explicitly. Used for deterministic simulation.
type ManualClock struct {
	now int64
}

// Millis returns the current manual time.
func (c *ManualClock) Millis() int64 {
	return c.now
}

// Advance moves the clock forward by ms milliseconds.
func (c *ManualClock) Advance(ms int64) {
	c.now += ms
}
