package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	at, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return at
}

func TestUntilMidnight(t *testing.T) {
	tests := []struct {
		name string
		now  string
		want string
	}{
		{"one minute before midnight", "2024-01-01T23:59:00Z", "0 hours 1 minutes"},
		// The next midnight is strictly after now, so the exact boundary is a full day.
		{"exactly midnight", "2024-01-01T00:00:00Z", "24 hours 0 minutes"},
		{"one second after midnight", "2024-01-01T00:00:01Z", "23 hours 59 minutes"},
		{"midday", "2024-01-01T12:30:00Z", "11 hours 30 minutes"},
		{"non-UTC input", "2024-01-01T23:00:00-05:00", "20 hours 0 minutes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UntilMidnight(mustParse(t, tt.now)).Short())
		})
	}
}

func TestUntilWeekly(t *testing.T) {
	tests := []struct {
		name string
		now  string
		want Countdown
	}{
		// 2024-01-01 is a Monday.
		{"monday before reset", "2024-01-01T09:00:00Z", Countdown{Hours: 1}},
		{"monday at reset", "2024-01-01T10:00:00Z", Countdown{Days: 7}},
		{"monday after reset", "2024-01-01T10:00:01Z", Countdown{Days: 6, Hours: 23, Minutes: 59, Seconds: 59}},
		{"sunday", "2024-01-07T10:00:00Z", Countdown{Days: 1}},
		{"tuesday", "2024-01-02T08:30:15Z", Countdown{Days: 6, Hours: 1, Minutes: 29, Seconds: 45}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UntilWeekly(mustParse(t, tt.now), time.Monday, 10))
		})
	}
}

func TestCountdownFormats(t *testing.T) {
	c := Countdown{Days: 2, Hours: 3, Minutes: 4, Seconds: 5}
	assert.Equal(t, "2 days, 3 hours, 4 minutes, 5 seconds", c.Long())
	assert.Equal(t, "51 hours 4 minutes", c.Short())
	assert.Equal(t, Countdown{}, NewCountdown(-time.Hour))
}
