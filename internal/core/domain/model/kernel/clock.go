package kernel

import "time"

// Clock supplies the timestamps stamped on identities and listings by their
// transitions.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC, truncated to the microsecond precision
// postgres keeps, so a snapshot returned by a command equals the stored one.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// FixedClock always returns the same instant. Tests advance it explicitly.
type FixedClock struct {
	At time.Time
}

// Now returns c.At.
func (c *FixedClock) Now() time.Time {
	return c.At
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.At = c.At.Add(d)
}
