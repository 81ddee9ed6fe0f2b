// Package prayer computes the next-upcoming and already-passed timed prayers
// for a single day from its cached clock times. Times are same-day 24-hour
// local clock strings; the fixed Fajr-to-Isha set never crosses midnight, so
// everything reduces to minutes since midnight.
package prayer

import (
	"fmt"
	"strings"

	"github.com/tartampluch/go-ramadan/internal/store"
)

// Timed pairs a tracked prayer field with its display name and the accessor
// into the day's clock times.
type Timed struct {
	Field store.PrayerField
	Name  string
}

// TimedPrayers lists the five timed prayers in chronological order. The
// optional night prayers have no fixed clock time and are not part of the
// countdown logic.
var TimedPrayers = []Timed{
	{store.PrayerFajr, "Fajr"},
	{store.PrayerDhuhr, "Dhuhr"},
	{store.PrayerAsr, "Asr"},
	{store.PrayerMaghrib, "Maghrib"},
	{store.PrayerIsha, "Isha"},
}

// Upcoming describes the next timed prayer of the day.
type Upcoming struct {
	Field     store.PrayerField
	Name      string
	Clock     string
	Countdown string
}

// clockFor returns the raw clock string for a timed field.
func clockFor(pt store.PrayerTimes, f store.PrayerField) string {
	switch f {
	case store.PrayerFajr:
		return pt.Fajr
	case store.PrayerDhuhr:
		return pt.Dhuhr
	case store.PrayerAsr:
		return pt.Asr
	case store.PrayerMaghrib:
		return pt.Maghrib
	case store.PrayerIsha:
		return pt.Isha
	}
	return ""
}

// ParseClock converts "HH:MM" into minutes since midnight. A trailing
// annotation after the time, such as " (BST)", is ignored. Returns false for
// anything that does not start with a parseable time.
func ParseClock(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if idx := strings.IndexByte(s, ' '); idx != -1 {
		s = s[:idx]
	}

	var hour, min int
	if n, err := fmt.Sscanf(s, "%d:%d", &hour, &min); err != nil || n != 2 {
		return 0, false
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, false
	}
	return hour*60 + min, true
}

// Next returns the earliest timed prayer strictly later than the given
// minute-of-day, or nil when every prayer has passed. Unparseable entries are
// skipped.
func Next(pt store.PrayerTimes, nowMinutes int) *Upcoming {
	for _, tp := range TimedPrayers {
		raw := clockFor(pt, tp.Field)
		m, ok := ParseClock(raw)
		if !ok {
			continue
		}
		if m > nowMinutes {
			return &Upcoming{
				Field:     tp.Field,
				Name:      tp.Name,
				Clock:     raw,
				Countdown: FormatCountdown(m - nowMinutes),
			}
		}
	}
	return nil
}

// Passed returns the set of timed prayers whose clock time is at or before
// the given minute-of-day.
func Passed(pt store.PrayerTimes, nowMinutes int) map[store.PrayerField]bool {
	passed := make(map[store.PrayerField]bool, len(TimedPrayers))
	for _, tp := range TimedPrayers {
		m, ok := ParseClock(clockFor(pt, tp.Field))
		if !ok {
			continue
		}
		if m <= nowMinutes {
			passed[tp.Field] = true
		}
	}
	return passed
}

// FormatCountdown renders a minute delta as "in 2h 45m", dropping the zero
// component: "in 45m" under an hour, "in 2h" on the exact hour.
func FormatCountdown(diffMinutes int) string {
	h := diffMinutes / 60
	m := diffMinutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("in %dm", m)
	case m == 0:
		return fmt.Sprintf("in %dh", h)
	default:
		return fmt.Sprintf("in %dh %dm", h, m)
	}
}

// MinuteOfDay converts a wall-clock hour and minute into the minute-of-day
// scale used by Next and Passed.
func MinuteOfDay(hour, min int) int {
	return hour*60 + min
}
