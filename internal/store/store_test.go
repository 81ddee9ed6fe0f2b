package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-ramadan/internal/store"
)

// -----------------------------------------------------------------------------
// Test doubles
// -----------------------------------------------------------------------------

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m *MockClock) Now() time.Time {
	return m.CurrentTime
}

// MemBlob is an in-memory storage.Blob capturing every save.
type MemBlob struct {
	Data  []byte
	Saves int
}

func (m *MemBlob) Load() ([]byte, error) { return m.Data, nil }

func (m *MemBlob) Save(data []byte) error {
	m.Data = append([]byte(nil), data...)
	m.Saves++
	return nil
}

func (m *MemBlob) Clear() error {
	m.Data = nil
	return nil
}

// ramadanMidpoint is a fixed "now" inside the default 2026 window (day 14).
var ramadanMidpoint = time.Date(2026, 3, 2, 13, 0, 0, 0, time.UTC)

func newTestStore() (*store.Store, *MockClock, *MemBlob) {
	clock := &MockClock{CurrentTime: ramadanMidpoint}
	blob := &MemBlob{}
	return store.New(clock, blob), clock, blob
}

// -----------------------------------------------------------------------------
// Defaults for untracked dates
// -----------------------------------------------------------------------------

func TestSelectors_UntrackedDateDefaults(t *testing.T) {
	s, _, blob := newTestStore()
	const dk = "2026-02-20"

	assert.Equal(t, store.DailyPrayers{}, s.Prayers(dk), "absent prayers default to all-false")
	assert.Equal(t, store.FastingNone, s.Fasting(dk).Status)
	assert.Empty(t, s.Fasting(dk).SuhoorTime)
	assert.Zero(t, s.QuranPages(dk))
	assert.Zero(t, s.DhikrCount(dk, "dh1"))
	assert.Empty(t, s.Journal(dk).Content)
	assert.Nil(t, s.VerseCache(dk))

	completed, total := s.PrayerCompletion(dk)
	assert.Zero(t, completed)
	assert.Equal(t, 7, total)

	// Reading defaults must not materialize entries, so nothing new persists.
	saves := blob.Saves
	s.Prayers(dk)
	s.Fasting(dk)
	assert.Equal(t, saves, blob.Saves, "selectors must not trigger writes")
}

// -----------------------------------------------------------------------------
// Prayers
// -----------------------------------------------------------------------------

func TestTogglePrayer_IsItsOwnInverse(t *testing.T) {
	s, _, _ := newTestStore()
	const dk = "2026-02-18"

	s.TogglePrayer(dk, store.PrayerFajr)
	assert.True(t, s.Prayers(dk).Fajr)

	s.TogglePrayer(dk, store.PrayerFajr)
	assert.False(t, s.Prayers(dk).Fajr, "two toggles must cancel")
}

func TestAllFardhDone_IgnoresOptionalPrayers(t *testing.T) {
	s, _, _ := newTestStore()
	const dk = "2026-02-18"

	for _, f := range store.FardhFields {
		s.TogglePrayer(dk, f)
	}
	assert.True(t, s.AllFardhDone(dk), "five fardh flags suffice")

	// Un-marking tarawih/tahajjud must not matter; un-marking a fardh must.
	s.TogglePrayer(dk, store.PrayerTarawih)
	assert.True(t, s.AllFardhDone(dk))

	s.TogglePrayer(dk, store.PrayerIsha)
	assert.False(t, s.AllFardhDone(dk))

	completed, _ := s.PrayerCompletion(dk)
	assert.Equal(t, 5, completed, "4 fardh + tarawih")
}

// -----------------------------------------------------------------------------
// Quran
// -----------------------------------------------------------------------------

func TestSetQuranPages_ClampsNegative(t *testing.T) {
	s, _, _ := newTestStore()
	const dk = "2026-02-18"

	s.SetQuranPages(dk, -5)
	assert.Zero(t, s.QuranPages(dk), "negative pages clamp to 0")

	s.SetQuranPages(dk, 12)
	assert.Equal(t, 12, s.QuranPages(dk))
}

func TestToggleJuz_Bounds(t *testing.T) {
	s, _, _ := newTestStore()

	s.ToggleJuz(0)
	s.ToggleJuz(29)
	juz := s.JuzCompleted()
	require.Len(t, juz, 30)
	assert.True(t, juz[0])
	assert.True(t, juz[29])

	// Out-of-range indexes are silent no-ops and never resize the array.
	s.ToggleJuz(-1)
	s.ToggleJuz(30)
	assert.Len(t, s.JuzCompleted(), 30)
}

// -----------------------------------------------------------------------------
// Fasting
// -----------------------------------------------------------------------------

func TestFasting_StatusAndTimes(t *testing.T) {
	s, _, _ := newTestStore()
	const dk = "2026-02-18"

	s.SetFastingStatus(dk, store.FastingFasted)
	assert.Equal(t, store.FastingFasted, s.Fasting(dk).Status)

	// The store performs no toggle logic: un-selecting is an explicit none.
	s.SetFastingStatus(dk, store.FastingNone)
	assert.Equal(t, store.FastingNone, s.Fasting(dk).Status)

	// Times are stored verbatim, no format validation.
	s.SetFastingTime(dk, store.FastingSuhoor, "05:12")
	s.SetFastingTime(dk, store.FastingIftar, "whenever")
	day := s.Fasting(dk)
	assert.Equal(t, "05:12", day.SuhoorTime)
	assert.Equal(t, "whenever", day.IftarTime)
}

// -----------------------------------------------------------------------------
// Dhikr
// -----------------------------------------------------------------------------

func TestDhikr_IncrementAndReset(t *testing.T) {
	s, _, _ := newTestStore()
	const dk = "2026-02-18"

	for i := 0; i < 40; i++ {
		s.IncrementDhikr(dk, "dh1")
	}
	// dh1's target is 33; counts are uncapped.
	assert.Equal(t, 40, s.DhikrCount(dk, "dh1"))

	s.ResetDhikr(dk, "dh1")
	assert.Zero(t, s.DhikrCount(dk, "dh1"))
}

func TestDhikrAllMet(t *testing.T) {
	s, _, _ := newTestStore()
	const dk = "2026-02-18"

	items := s.DhikrItems()
	require.Len(t, items, 5, "seeded with five defaults")

	for _, item := range items {
		for i := 0; i < item.Target; i++ {
			s.IncrementDhikr(dk, item.ID)
		}
	}
	assert.True(t, s.DhikrAllMet(dk))

	// Adding a new item reinterprets completion for the same date.
	s.AddDhikrItem("Hasbunallah", "حسبنا الله", 7)
	assert.False(t, s.DhikrAllMet(dk))
}

func TestRemoveDhikrItem_KeepsDanglingCounts(t *testing.T) {
	s, _, _ := newTestStore()
	const dk = "2026-02-18"

	s.IncrementDhikr(dk, "dh2")
	s.RemoveDhikrItem("dh2")

	assert.Len(t, s.DhikrItems(), 4)
	// Historical counts survive item removal; pruning would be data loss.
	assert.Equal(t, 1, s.DhikrCount(dk, "dh2"))
}

// -----------------------------------------------------------------------------
// Journal & Charity
// -----------------------------------------------------------------------------

func TestUpdateJournal_OverwritesAndStamps(t *testing.T) {
	s, clock, _ := newTestStore()
	const dk = "2026-02-18"

	s.UpdateJournal(dk, "first draft")
	first := s.Journal(dk)
	assert.Equal(t, "first draft", first.Content)
	assert.Equal(t, clock.CurrentTime, first.UpdatedAt)

	clock.CurrentTime = clock.CurrentTime.Add(2 * time.Hour)
	s.UpdateJournal(dk, "rewritten")
	second := s.Journal(dk)
	assert.Equal(t, "rewritten", second.Content, "content replaced wholesale, not appended")
	assert.True(t, second.UpdatedAt.After(first.UpdatedAt))
}

func TestCharity_AddRemove(t *testing.T) {
	s, _, _ := newTestStore()

	s.AddCharity(25.50, "iftar meals", "2026-02-18")
	s.AddCharity(100, "", "2026-02-19")

	entries := s.CharityEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, 25.50, entries[0].Amount)
	assert.NotEmpty(t, entries[0].ID)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)

	s.RemoveCharity(entries[0].ID)
	assert.Len(t, s.CharityEntries(), 1)

	// Removing an unknown id is a no-op.
	s.RemoveCharity("missing")
	assert.Len(t, s.CharityEntries(), 1)
}

// TestStore_TrustsCaller pins the documented validation asymmetry: pages are
// clamped, charity amounts are accepted as-is.
func TestStore_TrustsCaller(t *testing.T) {
	s, _, _ := newTestStore()

	s.SetQuranPages("2026-02-18", -10)
	assert.Zero(t, s.QuranPages("2026-02-18"))

	s.AddCharity(-5, "bad input the UI should have blocked", "2026-02-18")
	entries := s.CharityEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, -5.0, entries[0].Amount, "the store does not re-validate amounts")
}

// -----------------------------------------------------------------------------
// Verse cache
// -----------------------------------------------------------------------------

func TestVerseCache_SingleEntryKeyedByDate(t *testing.T) {
	s, _, _ := newTestStore()

	s.SetVerseCache(store.DailyVerse{Number: 395, Arabic: "...", FetchedDate: "2026-03-02"})
	require.NotNil(t, s.VerseCache("2026-03-02"))
	assert.Equal(t, 395, s.VerseCache("2026-03-02").Number)

	// The cache holds at most one entry; a different viewed date misses.
	assert.Nil(t, s.VerseCache("2026-03-03"))

	s.SetVerseCache(store.DailyVerse{Number: 592, FetchedDate: "2026-03-03"})
	assert.Nil(t, s.VerseCache("2026-03-02"))
	assert.NotNil(t, s.VerseCache("2026-03-03"))
}

// -----------------------------------------------------------------------------
// Settings & onboarding
// -----------------------------------------------------------------------------

func TestUpdateSettings_PatchSemantics(t *testing.T) {
	s, _, _ := newTestStore()

	city := "Istanbul"
	method := 13
	s.UpdateSettings(store.SettingsPatch{City: &city, CalculationMethod: &method})

	got := s.Settings()
	assert.Equal(t, "Istanbul", got.City)
	assert.Equal(t, 13, got.CalculationMethod)
	// Untouched fields keep their defaults.
	assert.Equal(t, "2026-02-17", got.RamadanStartDate)
	assert.Equal(t, 30, got.RamadanDays)
	assert.False(t, got.Onboarded)
}

func TestCompleteOnboarding_ForcesFlag(t *testing.T) {
	s, _, _ := newTestStore()

	s.CompleteOnboarding(store.Settings{
		Name: "Amina", City: "London", Country: "United Kingdom",
		CalculationMethod: 15, RamadanStartDate: "2026-02-17",
		RamadanDays: 30, Currency: "GBP",
		Onboarded: false, // deliberately false; the store must force it
	})
	assert.True(t, s.Settings().Onboarded)
	assert.Equal(t, "Amina", s.Settings().Name)
}

// -----------------------------------------------------------------------------
// Day transition
// -----------------------------------------------------------------------------

func TestCheckDayTransition(t *testing.T) {
	s, clock, _ := newTestStore()
	assert.Equal(t, "2026-03-02", s.LastDateKey())

	// Same day: no mutation.
	assert.False(t, s.CheckDayTransition())

	// User picked a historical date, then midnight passes.
	s.SetSelectedDate("2026-02-20")
	clock.CurrentTime = clock.CurrentTime.Add(24 * time.Hour)

	assert.True(t, s.CheckDayTransition(), "first check on a new day applies the transition")
	assert.Equal(t, "2026-03-03", s.LastDateKey())
	assert.Equal(t, "2026-03-03", s.SelectedDate(), "selected date snaps to today")

	// Second consecutive check the same day performs no further mutation.
	assert.False(t, s.CheckDayTransition())
}

// -----------------------------------------------------------------------------
// Persistence mirroring & change notification
// -----------------------------------------------------------------------------

func TestMutations_MirrorToStorage(t *testing.T) {
	s, _, blob := newTestStore()

	before := blob.Saves
	s.TogglePrayer("2026-02-18", store.PrayerFajr)
	assert.Greater(t, blob.Saves, before, "every mutation persists without an explicit save step")

	// A second store restored from the same blob sees the mutation.
	clock := &MockClock{CurrentTime: ramadanMidpoint}
	restored := store.New(clock, blob)
	assert.True(t, restored.Prayers("2026-02-18").Fajr)
	assert.Len(t, restored.JuzCompleted(), 30, "juz array has fixed length right after restore")
}

func TestOnChange_FiresAfterMutation(t *testing.T) {
	s, _, _ := newTestStore()

	fired := 0
	s.SetOnChange(func() { fired++ })

	s.TogglePrayer("2026-02-18", store.PrayerFajr)
	s.SetQuranPages("2026-02-18", 3)
	assert.Equal(t, 2, fired)

	s.SetOnChange(nil)
	s.SetQuranPages("2026-02-18", 4)
	assert.Equal(t, 2, fired)
}

// -----------------------------------------------------------------------------
// Progress
// -----------------------------------------------------------------------------

func TestComputeProgress(t *testing.T) {
	s, _, _ := newTestStore()

	// Now = 2026-03-02 → Ramadan day 14 of 30.
	for _, dk := range []string{"2026-02-17", "2026-02-18"} {
		for _, f := range store.FardhFields {
			s.TogglePrayer(dk, f)
		}
		s.SetFastingStatus(dk, store.FastingFasted)
		s.UpdateJournal(dk, "reflection")
	}
	s.TogglePrayer("2026-02-17", store.PrayerTarawih)
	s.SetFastingStatus("2026-02-19", store.FastingPartial)
	s.SetQuranPages("2026-02-17", 20)
	s.SetQuranPages("2026-02-18", 10)
	s.ToggleJuz(0)
	s.ToggleJuz(1)
	s.AddCharity(50, "", "2026-02-17")
	s.AddCharity(25, "", "2026-02-18")

	p := s.ComputeProgress(604)

	assert.Equal(t, 14, p.DaysElapsed)
	assert.Equal(t, 30, p.TotalDays)
	assert.Equal(t, 10, p.FardhCompleted)
	assert.Equal(t, 70, p.FardhPossible, "14 elapsed days x 5 fardh")
	assert.Equal(t, 11, p.TotalPrayers, "includes the optional tarawih")
	assert.Equal(t, 2, p.DaysFasted, "partial days do not count as fasted")
	assert.Equal(t, 30, p.PagesRead)
	assert.Equal(t, 604, p.TotalPages)
	assert.Equal(t, 2, p.JuzDone)
	assert.Zero(t, p.DhikrDaysComplete)
	assert.Equal(t, 2, p.JournalDays)
	assert.Equal(t, 75.0, p.CharityTotal)
	assert.Equal(t, 2, p.CharityCount)
}

func TestComputeProgress_BeforeWindowClampsToZero(t *testing.T) {
	clock := &MockClock{CurrentTime: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)}
	s := store.New(clock, &MemBlob{})

	p := s.ComputeProgress(604)
	assert.Zero(t, p.DaysElapsed, "today precedes day 1")
	assert.Zero(t, p.FardhPossible)
}
