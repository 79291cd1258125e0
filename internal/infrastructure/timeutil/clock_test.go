package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClock_TracksSystemTime(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	got := clock.Now()
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestMockClock_PinsTime(t *testing.T) {
	pinned := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	clock := NewMockClock(pinned)

	assert.Equal(t, pinned, clock.Now())
	assert.Equal(t, pinned, clock.Now(), "repeated reads must not drift")
}

func TestMockClock_Advance(t *testing.T) {
	base := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		advance func(*MockClock)
		want    time.Time
	}{
		{
			name:    "forward by duration",
			advance: func(c *MockClock) { c.Advance(90 * time.Second) },
			want:    base.Add(90 * time.Second),
		},
		{
			name:    "backward by negative duration",
			advance: func(c *MockClock) { c.Advance(-time.Hour) },
			want:    base.Add(-time.Hour),
		},
		{
			name:    "minutes helper",
			advance: func(c *MockClock) { c.AdvanceMinutes(45) },
			want:    base.Add(45 * time.Minute),
		},
		{
			name:    "hours helper",
			advance: func(c *MockClock) { c.AdvanceHours(3) },
			want:    base.Add(3 * time.Hour),
		},
		{
			name: "stacked advances accumulate",
			advance: func(c *MockClock) {
				c.AdvanceMinutes(30)
				c.AdvanceHours(2)
			},
			want: base.Add(2*time.Hour + 30*time.Minute),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := NewMockClock(base)
			tt.advance(clock)
			assert.Equal(t, tt.want, clock.Now())
		})
	}
}

func TestNewMockClockFromString(t *testing.T) {
	clock := NewMockClockFromString("2026-08-28T10:00:00Z")
	assert.Equal(t, time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC), clock.Now())

	assert.Panics(t, func() {
		NewMockClockFromString("yesterday-ish")
	})
}

func TestMockClock_ExpiryWindow(t *testing.T) {
	// Mirrors how key expiry is evaluated: a key valid for 30 minutes is
	// usable before the window closes and stale after it.
	clock := NewMockClockFromString("2026-08-28T10:00:00Z")
	expiry := clock.Now().Add(30 * time.Minute)

	assert.True(t, clock.Now().Before(expiry))
	clock.AdvanceHours(1)
	assert.True(t, clock.Now().After(expiry))
}
