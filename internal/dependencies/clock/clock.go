package clock

import "time"

// Precision is the resolution game records are stored with. sqlite keeps
// Unix milliseconds, so stamps finer than that would not survive a reload.
const Precision = time.Millisecond

// Clock stamps game records. Tests swap in mocks.MockClock.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock in UTC at storage precision
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current UTC time truncated to Precision
func (c *RealClock) Now() time.Time {
	return time.Now().UTC().Truncate(Precision)
}
