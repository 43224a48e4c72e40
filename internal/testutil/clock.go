package testutil

import "time"

// FixedClock returns a pinned instant from Now. Advance moves it forward so
// tests can simulate elapsed time without sleeping.
type FixedClock struct {
	Instant time.Time
}

// NewFixedClock pins the clock at the given instant.
func NewFixedClock(at time.Time) *FixedClock {
	return &FixedClock{Instant: at}
}

func (c *FixedClock) Now() time.Time {
	return c.Instant
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.Instant = c.Instant.Add(d)
}
