// Package dates provides DateKey arithmetic for the tracked Ramadan window.
//
// A DateKey is an ISO calendar-day string ("2006-01-02") identifying one
// tracked day. All maps in the store are keyed by DateKey; these helpers are
// pure and depend only on the standard time package.
package dates

import "time"

// Layout is the DateKey wire format.
const Layout = "2006-01-02"

// Key converts a time to its DateKey in the time's location.
func Key(t time.Time) string {
	return t.Format(Layout)
}

// Parse converts a DateKey back to a midnight time.Time in the local zone.
// A zero time is returned for malformed keys.
func Parse(key string) time.Time {
	t, err := time.ParseInLocation(Layout, key, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// RamadanDay returns the 1-based offset of dateKey from the configured start
// date. Values outside [1, days] are still computed, not clamped; range
// membership is WithinRamadan's job.
func RamadanDay(dateKey, startDate string) int {
	start := Parse(startDate)
	current := Parse(dateKey)
	if start.IsZero() || current.IsZero() {
		return 0
	}
	return daysBetween(start, current) + 1
}

// RamadanDateKeys enumerates the DateKeys of the whole window, day 1 first.
func RamadanDateKeys(startDate string, days int) []string {
	start := Parse(startDate)
	if start.IsZero() || days <= 0 {
		return nil
	}
	keys := make([]string, days)
	for i := 0; i < days; i++ {
		keys[i] = Key(start.AddDate(0, 0, i))
	}
	return keys
}

// WithinRamadan reports whether dateKey falls inside the configured window.
func WithinRamadan(dateKey, startDate string, days int) bool {
	day := RamadanDay(dateKey, startDate)
	return day >= 1 && day <= days
}

// DisplayLong formats a DateKey as "Monday, March 2".
func DisplayLong(dateKey string) string {
	t := Parse(dateKey)
	if t.IsZero() {
		return dateKey
	}
	return t.Format("Monday, January 2")
}

// DisplayShort formats a DateKey as "Mar 2".
func DisplayShort(dateKey string) string {
	t := Parse(dateKey)
	if t.IsZero() {
		return dateKey
	}
	return t.Format("Jan 2")
}

// daysBetween counts calendar days from a to b, ignoring clock time.
// Negative when b precedes a.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	am0 := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	bm0 := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(bm0.Sub(am0) / (24 * time.Hour))
}
