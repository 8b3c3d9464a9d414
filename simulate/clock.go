// Package simulate - Lamport logical clock.
package simulate

import "math"

// Clock is a Lamport logical clock: a monotonically advancing counter
// implementing the standard merge rule. Algorithms that need causal ordering
// tick before sending and observe on receipt; the snapshot algorithms use it
// to timestamp their records.
//
// The zero value is a clock at time 0, ready to use.
type Clock struct {
	now uint64
}

// Now returns the current time without advancing it.
func (c *Clock) Now() uint64 { return c.now }

// Tick advances the clock by one and returns the new value. Called before
// sending a causally-timestamped message. Overflow is an engine-fatal
// condition reported as ErrClockOverflow, never wrapped around.
func (c *Clock) Tick() (uint64, error) {
	if c.now == math.MaxUint64 {
		return 0, ErrClockOverflow
	}
	c.now++

	return c.now, nil
}

// Observe merges a remote timestamp: the clock becomes max(local, remote)+1.
// Must run as the first step of handling a timestamped message, before any
// other mutation.
func (c *Clock) Observe(remote uint64) (uint64, error) {
	if remote > c.now {
		c.now = remote
	}

	return c.Tick()
}
