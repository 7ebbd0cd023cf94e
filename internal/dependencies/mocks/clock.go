package mocks

import (
	"time"

	"github.com/mcoot/czwordle/internal/dependencies/clock"
)

// MockClock is a manually driven Clock for tests.
// With Step set, every call to Now moves the clock forward by Step afterwards,
// so games saved one after another get strictly increasing stamps.
type MockClock struct {
	CurrentTime time.Time
	Step        time.Duration
}

// Ensure MockClock implements Clock
var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock set to the given time
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{CurrentTime: t.UTC().Truncate(clock.Precision)}
}

// Now returns the mocked current time, then applies Step
func (c *MockClock) Now() time.Time {
	now := c.CurrentTime
	c.CurrentTime = c.CurrentTime.Add(c.Step)
	return now
}

// Advance moves the clock forward by the given duration
func (c *MockClock) Advance(d time.Duration) {
	c.CurrentTime = c.CurrentTime.Add(d)
}
