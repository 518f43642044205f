package relay

import "time"

// Clock is a virtual clock. Hops advance it by their modeled delay instead of
// sleeping, so runs are deterministic and metrics are computed against
// simulated time.
type Clock struct {
	now time.Duration
}

// NewClock returns a clock at virtual time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Advance moves the clock forward by d. Negative values are ignored.
func (c *Clock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

// Now returns the elapsed virtual time.
func (c *Clock) Now() time.Duration {
	return c.now
}
