// Package timeutil abstracts the system clock so lifecycle timestamps
// can be pinned in tests.
package timeutil

import "time"

// Clock supplies the current time. The secret lifecycle stamps
// created_at, last_validated, and last_used through this interface so
// tests can advance time deterministically.
type Clock interface {
	Now() time.Time
}

// RealClock delegates to the system clock.
type RealClock struct{}

// NewRealClock returns a Clock backed by time.Now.
func NewRealClock() *RealClock {
	return &RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a Clock pinned to a settable instant.
type MockClock struct {
	current time.Time
}

// NewMockClock returns a clock pinned to t.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

// NewMockClockFromString pins the clock to an RFC3339 instant. It panics
// on a malformed string and is meant for test fixtures only.
func NewMockClockFromString(s string) *MockClock {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic("timeutil: bad RFC3339 fixture: " + err.Error())
	}
	return NewMockClock(t)
}

func (m *MockClock) Now() time.Time {
	return m.current
}

// Advance moves the clock by d, which may be negative.
func (m *MockClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}

// AdvanceMinutes moves the clock forward by n minutes.
func (m *MockClock) AdvanceMinutes(n int) {
	m.Advance(time.Duration(n) * time.Minute)
}

// AdvanceHours moves the clock forward by n hours.
func (m *MockClock) AdvanceHours(n int) {
	m.Advance(time.Duration(n) * time.Hour)
}

var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*MockClock)(nil)
)
