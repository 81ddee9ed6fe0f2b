package ical_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-ramadan/internal/config"
	"github.com/tartampluch/go-ramadan/internal/ical"
	"github.com/tartampluch/go-ramadan/internal/store"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func testSettings() store.Settings {
	s := store.DefaultSettings()
	s.RamadanStartDate = "2026-02-17"
	s.RamadanDays = 30
	return s
}

func TestGenerate_EmitsOneEventPerTimedPrayer(t *testing.T) {
	gen := ical.NewGenerator(fixedClock{time.Date(2026, 2, 17, 8, 0, 0, 0, time.UTC)})

	times := map[string]store.PrayerTimes{
		"2026-02-17": {Fajr: "05:12", Sunrise: "06:38", Dhuhr: "12:30", Asr: "15:45", Maghrib: "18:10", Isha: "19:30"},
		"2026-02-18": {Fajr: "05:11", Sunrise: "06:37", Dhuhr: "12:30", Asr: "15:46", Maghrib: "18:11", Isha: "19:31"},
	}

	data, count, err := gen.Generate(testSettings(), times)

	require.NoError(t, err)
	// Five timed prayers per covered day; sunrise carries no event.
	assert.Equal(t, 10, count)

	out := string(data)
	assert.Equal(t, 10, strings.Count(out, "BEGIN:VEVENT"))
	assert.Contains(t, out, "SUMMARY:Fajr")
	assert.Contains(t, out, "SUMMARY:Isha")
	assert.NotContains(t, out, "SUMMARY:Sunrise")
	assert.Contains(t, out, "UID:2026-02-17-fajr@"+config.ICalDomain)
	assert.Contains(t, out, "X-WR-CALNAME:"+config.ICalCalName)
}

func TestGenerate_SkipsDaysOutsideWindow(t *testing.T) {
	gen := ical.NewGenerator(fixedClock{time.Date(2026, 2, 17, 8, 0, 0, 0, time.UTC)})

	times := map[string]store.PrayerTimes{
		// Cached from the month lookup but before the window starts.
		"2026-02-10": {Fajr: "05:20", Dhuhr: "12:31", Asr: "15:40", Maghrib: "18:03", Isha: "19:23"},
		"2026-02-17": {Fajr: "05:12", Dhuhr: "12:30", Asr: "15:45", Maghrib: "18:10", Isha: "19:30"},
	}

	data, count, err := gen.Generate(testSettings(), times)

	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.NotContains(t, string(data), "2026-02-10")
}

func TestGenerate_EmptyCacheYieldsValidStub(t *testing.T) {
	gen := ical.NewGenerator(fixedClock{time.Date(2026, 2, 17, 8, 0, 0, 0, time.UTC)})

	data, count, err := gen.Generate(testSettings(), nil)

	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, config.StubVCalendar, string(data))
}

func TestGenerate_SkipsUnparseableClockTimes(t *testing.T) {
	gen := ical.NewGenerator(fixedClock{time.Date(2026, 2, 17, 8, 0, 0, 0, time.UTC)})

	times := map[string]store.PrayerTimes{
		"2026-02-17": {Fajr: "--", Dhuhr: "12:30", Asr: "15:45", Maghrib: "18:10", Isha: "19:30"},
	}

	_, count, err := gen.Generate(testSettings(), times)

	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
