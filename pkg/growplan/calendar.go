package growplan

import (
	"time"
)

// Midnight truncates t to 00:00:00 in its own location. Every date entering
// the engine passes through here first; time-of-day is never part of a
// schedule.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// AddDays returns the calendar day `days` after t (negative values walk
// backward), normalized to midnight. The result is built from the civil date
// rather than by adding 24h multiples, so month and year boundaries roll over
// correctly.
func AddDays(t time.Time, days int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+days, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DayKey returns the day-granularity key used for skip-set membership.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DaysBetween returns the whole calendar days from a to b, negative when b
// precedes a. Both arguments are taken at day granularity.
func DaysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}
