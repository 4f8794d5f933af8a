package frame

import (
	"fmt"
	"time"
)

// Countdown is a duration decomposed into whole days, hours, minutes and seconds.
type Countdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// NewCountdown floor-decomposes d. Negative durations are clamped to zero.
func NewCountdown(d time.Duration) Countdown {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds()
	const (
		msSecond = 1000
		msMinute = 60 * msSecond
		msHour   = 60 * msMinute
		msDay    = 24 * msHour
	)
	return Countdown{
		Days:    int(ms / msDay),
		Hours:   int(ms % msDay / msHour),
		Minutes: int(ms % msHour / msMinute),
		Seconds: int(ms % msMinute / msSecond),
	}
}

// UntilWeekly returns the time from now to the next weekday at hour:00 UTC.
// The target is always strictly after now, so at the reset instant itself the
// countdown restarts at seven days.
func UntilWeekly(now time.Time, weekday time.Weekday, hour int) Countdown {
	now = now.UTC()
	target := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, time.UTC)

	days := (int(weekday) - int(now.Weekday()) + 7) % 7
	target = target.AddDate(0, 0, days)
	if !target.After(now) {
		target = target.AddDate(0, 0, 7)
	}
	return NewCountdown(target.Sub(now))
}

// UntilMidnight returns the time from now to the next UTC midnight strictly
// after now. Only Hours and Minutes are meaningful. Exactly at midnight the
// result is 24h0m, not 23h59m: the delta is a whole day and is floored like
// any other, so 23h59m only appears from 00:00:01 on.
func UntilMidnight(now time.Time) Countdown {
	now = now.UTC()
	next := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, time.UTC)

	c := NewCountdown(next.Sub(now))
	c.Hours += c.Days * 24
	c.Days = 0
	c.Seconds = 0
	return c
}

// Long renders the countdown with every unit.
func (c Countdown) Long() string {
	return fmt.Sprintf("%d days, %d hours, %d minutes, %d seconds", c.Days, c.Hours, c.Minutes, c.Seconds)
}

// Short renders hours and minutes only.
func (c Countdown) Short() string {
	return fmt.Sprintf("%d hours %d minutes", c.Hours+c.Days*24, c.Minutes)
}
