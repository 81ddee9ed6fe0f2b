package store_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-ramadan/internal/store"
)

// populate fills a store with one of everything for roundtrip tests.
func populate(s *store.Store) {
	s.CompleteOnboarding(store.Settings{
		Name: "Yusuf", City: "Kuala Lumpur", Country: "Malaysia",
		CalculationMethod: 11, RamadanStartDate: "2026-02-17",
		RamadanDays: 30, Currency: "MYR",
	})
	s.TogglePrayer("2026-02-18", store.PrayerFajr)
	s.TogglePrayer("2026-02-18", store.PrayerTarawih)
	s.SetQuranPages("2026-02-18", 15)
	s.ToggleJuz(3)
	s.SetFastingStatus("2026-02-18", store.FastingFasted)
	s.SetFastingTime("2026-02-18", store.FastingSuhoor, "05:20")
	s.AddDhikrItem("Hasbunallah", "حسبنا الله", 7)
	s.IncrementDhikr("2026-02-18", "dh1")
	s.UpdateJournal("2026-02-18", "a good day")
	s.AddCharity(42, "dates for the mosque", "2026-02-18")
	s.SetVerseCache(store.DailyVerse{Number: 2955, Arabic: "آية", English: "verse", FetchedDate: "2026-03-02"})
	s.MergePrayerTimes(map[string]store.PrayerTimes{
		"2026-03-02": {Fajr: "05:00", Sunrise: "06:25", Dhuhr: "12:30", Asr: "15:45", Maghrib: "18:10", Isha: "19:30"},
	})
	if !s.DarkMode() {
		s.ToggleDarkMode()
	}
}

func TestExportImport_Roundtrip(t *testing.T) {
	source, _, _ := newTestStore()
	populate(source)

	exported, err := source.ExportData()
	require.NoError(t, err)

	// Export excludes the transient session pointers.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(exported, &raw))
	assert.NotContains(t, raw, "activeView")
	assert.NotContains(t, raw, "selectedDate")
	assert.NotContains(t, raw, "lastDateKey")
	assert.Contains(t, raw, "settings")
	assert.Contains(t, raw, "darkMode")

	// Importing into a fresh aggregate reproduces every domain field.
	fresh, _, _ := newTestStore()
	fresh.SetActiveView(store.ViewProgress)
	require.True(t, fresh.ImportData(exported))

	assert.Equal(t, source.Settings(), fresh.Settings())
	assert.Equal(t, source.Prayers("2026-02-18"), fresh.Prayers("2026-02-18"))
	assert.Equal(t, source.QuranPages("2026-02-18"), fresh.QuranPages("2026-02-18"))
	assert.Equal(t, source.JuzCompleted(), fresh.JuzCompleted())
	assert.Equal(t, source.Fasting("2026-02-18"), fresh.Fasting("2026-02-18"))
	assert.Equal(t, source.DhikrItems(), fresh.DhikrItems())
	assert.Equal(t, source.DhikrCount("2026-02-18", "dh1"), fresh.DhikrCount("2026-02-18", "dh1"))
	assert.Equal(t, source.Journal("2026-02-18").Content, fresh.Journal("2026-02-18").Content)
	assert.Equal(t, source.CharityEntries(), fresh.CharityEntries())
	assert.Equal(t, source.VerseCache("2026-03-02"), fresh.VerseCache("2026-03-02"))
	assert.Equal(t, source.DarkMode(), fresh.DarkMode())

	pt, ok := fresh.PrayerTimesFor("2026-03-02")
	require.True(t, ok)
	assert.Equal(t, "15:45", pt.Asr)
}

func TestImportData_MissingOnboardedFails(t *testing.T) {
	s, _, _ := newTestStore()
	s.SetQuranPages("2026-02-18", 9)

	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "{nope"},
		{"empty object", "{}"},
		{"onboarded false", `{"settings":{"onboarded":false}}`},
		{"settings absent", `{"prayers":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, s.ImportData([]byte(tt.payload)))
			// The live aggregate is completely unchanged on failure.
			assert.Equal(t, 9, s.QuranPages("2026-02-18"))
			assert.False(t, s.Settings().Onboarded)
		})
	}
}

func TestImportData_MissingFieldsFallBackToDefaults(t *testing.T) {
	s, _, _ := newTestStore()
	s.SetQuranPages("2026-02-18", 9)

	payload := `{"settings":{"name":"Zara","onboarded":true}}`
	require.True(t, s.ImportData([]byte(payload)))

	// Full overwrite: the old pages are gone, defaults fill the gaps.
	assert.Zero(t, s.QuranPages("2026-02-18"))
	assert.Len(t, s.JuzCompleted(), 30)
	assert.Len(t, s.DhikrItems(), 5, "missing dhikr items restore the five defaults")
	assert.Empty(t, s.CharityEntries())
	assert.False(t, s.DarkMode())
	assert.Equal(t, "Zara", s.Settings().Name)
}

func TestImportData_ShortJuzArrayIsRepadded(t *testing.T) {
	s, _, _ := newTestStore()

	payload := `{"settings":{"onboarded":true},"juzCompleted":[true,true,true]}`
	require.True(t, s.ImportData([]byte(payload)))

	juz := s.JuzCompleted()
	require.Len(t, juz, 30, "array is fixed-length even right after restore")
	assert.True(t, juz[0])
	assert.True(t, juz[2])
	assert.False(t, juz[3])
}

func TestResetAll(t *testing.T) {
	s, _, blob := newTestStore()
	populate(s)
	require.NotNil(t, blob.Data)

	s.ResetAll()

	assert.Nil(t, blob.Data, "durable storage is cleared")
	assert.False(t, s.Settings().Onboarded, "back to the pre-onboarding state")
	assert.Empty(t, s.CharityEntries())
	assert.Len(t, s.DhikrItems(), 5)
	assert.Zero(t, s.QuranPages("2026-02-18"))
	assert.Equal(t, s.Today(), s.SelectedDate())
}

func TestPersistedBlob_IsSupersetOfExport(t *testing.T) {
	s, _, blob := newTestStore()
	populate(s)
	s.SetActiveView(store.ViewCalendar)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(blob.Data, &raw))

	// Persistence carries everything the export does, plus session state.
	for _, key := range []string{
		"settings", "prayerTimesCache", "prayers", "quranPages", "juzCompleted",
		"fasting", "dhikrItems", "dhikrCounts", "journals", "charityEntries",
		"verseCache", "darkMode",
		"activeView", "selectedDate", "lastDateKey",
	} {
		assert.Contains(t, raw, key)
	}

	// A restored store resumes the session where it left off.
	clock := &MockClock{CurrentTime: ramadanMidpoint.Add(time.Hour)}
	restored := store.New(clock, blob)
	assert.Equal(t, store.ViewCalendar, restored.ActiveView())
	assert.Equal(t, s.SelectedDate(), restored.SelectedDate())
}
