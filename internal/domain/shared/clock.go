package shared

import "time"

// Clock supplies wall-clock time to the journals. Game time is the day
// counter in the state and never reads a Clock.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock
type ClockFunc func() time.Time

// Now implements Clock
func (f ClockFunc) Now() time.Time { return f() }

// NewRealClock returns a Clock reading the system time in UTC
func NewRealClock() Clock {
	return ClockFunc(func() time.Time { return time.Now().UTC() })
}

// OrRealClock returns c, or the system clock when c is nil
func OrRealClock(c Clock) Clock {
	if c == nil {
		return NewRealClock()
	}
	return c
}

// MockClock is a Clock frozen at CurrentTime until advanced
type MockClock struct {
	CurrentTime time.Time
}

// NewMockClock creates a MockClock frozen at start
func NewMockClock(start time.Time) *MockClock {
	return &MockClock{CurrentTime: start}
}

// Now implements Clock
func (m *MockClock) Now() time.Time { return m.CurrentTime }

// Advance moves the clock forward by d
func (m *MockClock) Advance(d time.Duration) {
	m.CurrentTime = m.CurrentTime.Add(d)
}
