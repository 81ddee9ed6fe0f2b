// Package store holds the entire domain aggregate for the tracker: settings,
// per-date worship records, the verse cache, and the session pointers. It is
// the single writer of that state; every other component reads through
// selectors or requests changes through the named mutation methods.
//
// Mutations are applied under one lock and mirrored to durable storage before
// the lock is released, so callers never observe a partially applied change
// and never need an explicit save step.
package store

import (
	"log/slog"
	"sync"

	"github.com/tartampluch/go-ramadan/internal/config"
	"github.com/tartampluch/go-ramadan/internal/dates"
	"github.com/tartampluch/go-ramadan/internal/storage"
)

// Store owns the aggregate. Construct it with New; the zero value is not
// usable.
type Store struct {
	mu sync.RWMutex

	clock Clock
	blob  storage.Blob

	// onChange, when set, is invoked after every committed mutation. The UI
	// uses it to refresh the visible view. Called outside the lock.
	onChange func()

	// Transient session pointers (persisted but never exported).
	activeView   ViewID
	selectedDate string
	lastDateKey  string

	// Transient error surface for the two external lookups; never persisted.
	fetchError string

	// Domain state.
	settings         Settings
	darkMode         bool
	prayerTimesCache map[string]PrayerTimes
	prayers          map[string]DailyPrayers
	quranPages       map[string]int
	juzCompleted     []bool
	fasting          map[string]DailyFasting
	dhikrItems       []DhikrItem
	dhikrCounts      map[string]map[string]int
	journals         map[string]JournalEntry
	charityEntries   []CharityEntry
	verseCache       *DailyVerse
}

// New creates a Store with default state, then restores any previously
// persisted aggregate from blob. A corrupt blob is logged and discarded
// rather than aborting startup.
func New(clock Clock, blob storage.Blob) *Store {
	s := &Store{
		clock: clock,
		blob:  blob,
	}
	s.resetLocked()
	s.restore()
	return s
}

// SetOnChange registers the single change listener. Pass nil to detach.
func (s *Store) SetOnChange(fn func()) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// resetLocked reinitializes every field to its documented default.
// Caller must hold the write lock (or own the store exclusively, as in New).
func (s *Store) resetLocked() {
	today := dates.Key(s.clock.Now())
	s.activeView = ViewDaily
	s.selectedDate = today
	s.lastDateKey = today
	s.fetchError = ""
	s.settings = DefaultSettings()
	s.darkMode = false
	s.prayerTimesCache = map[string]PrayerTimes{}
	s.prayers = map[string]DailyPrayers{}
	s.quranPages = map[string]int{}
	s.juzCompleted = newJuzArray()
	s.fasting = map[string]DailyFasting{}
	s.dhikrItems = DefaultDhikrItems()
	s.dhikrCounts = map[string]map[string]int{}
	s.journals = map[string]JournalEntry{}
	s.charityEntries = []CharityEntry{}
	s.verseCache = nil
}

// commit persists the aggregate and fires the change listener. Must be called
// with the write lock held; it releases it.
func (s *Store) commit() {
	s.persistLocked()
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// -----------------------------------------------------------------------------
// Session pointers
// -----------------------------------------------------------------------------

// SetActiveView records which main view is visible.
func (s *Store) SetActiveView(view ViewID) {
	s.mu.Lock()
	s.activeView = view
	s.commit()
}

// SetSelectedDate moves the currently viewed date.
func (s *Store) SetSelectedDate(dateKey string) {
	s.mu.Lock()
	s.selectedDate = dateKey
	s.commit()
}

// ToggleDarkMode flips the persisted theme preference and returns the new value.
func (s *Store) ToggleDarkMode() bool {
	s.mu.Lock()
	s.darkMode = !s.darkMode
	next := s.darkMode
	s.commit()
	return next
}

// CheckDayTransition compares the last-observed calendar date against the
// wall clock. On a new day it snaps both the observed date and the selected
// date to today, so reopening the app never strands the user on yesterday.
// It never touches historical per-date records. Returns true when a
// transition was applied.
func (s *Store) CheckDayTransition() bool {
	s.mu.Lock()
	today := dates.Key(s.clock.Now())
	if s.lastDateKey == today {
		s.mu.Unlock()
		return false
	}
	slog.Info(config.MsgDayTransition,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyOld, s.lastDateKey,
		config.LogKeyNew, today,
	)
	s.lastDateKey = today
	s.selectedDate = today
	s.commit()
	return true
}

// -----------------------------------------------------------------------------
// Settings
// -----------------------------------------------------------------------------

// SettingsPatch carries optional field updates for UpdateSettings. Nil fields
// are left untouched.
type SettingsPatch struct {
	Name              *string
	City              *string
	Country           *string
	CalculationMethod *int
	RamadanStartDate  *string
	RamadanDays       *int
	Currency          *string
}

// UpdateSettings shallow-merges the patch into the settings singleton.
func (s *Store) UpdateSettings(patch SettingsPatch) {
	s.mu.Lock()
	if patch.Name != nil {
		s.settings.Name = *patch.Name
	}
	if patch.City != nil {
		s.settings.City = *patch.City
	}
	if patch.Country != nil {
		s.settings.Country = *patch.Country
	}
	if patch.CalculationMethod != nil {
		s.settings.CalculationMethod = *patch.CalculationMethod
	}
	if patch.RamadanStartDate != nil {
		s.settings.RamadanStartDate = *patch.RamadanStartDate
	}
	if patch.RamadanDays != nil {
		s.settings.RamadanDays = *patch.RamadanDays
	}
	if patch.Currency != nil {
		s.settings.Currency = *patch.Currency
	}
	s.commit()
}

// CompleteOnboarding replaces the settings wholesale and marks the app usable.
func (s *Store) CompleteOnboarding(settings Settings) {
	s.mu.Lock()
	settings.Onboarded = true
	s.settings = settings
	s.commit()
	slog.Info(config.MsgOnboardingDone, config.LogKeyComponent, config.CompStore)
}

// -----------------------------------------------------------------------------
// Prayer times cache & fetch error surface
// -----------------------------------------------------------------------------

// MergePrayerTimes folds freshly fetched records into the cache, keyed by
// DateKey. Existing dates are overwritten; unrelated dates are kept.
func (s *Store) MergePrayerTimes(data map[string]PrayerTimes) {
	s.mu.Lock()
	for dk, pt := range data {
		s.prayerTimesCache[dk] = pt
	}
	s.commit()
}

// SetFetchError records a user-visible lookup failure message. Empty string
// clears the banner. The aggregate itself is left untouched by failures.
func (s *Store) SetFetchError(msg string) {
	s.mu.Lock()
	s.fetchError = msg
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// -----------------------------------------------------------------------------
// Prayers
// -----------------------------------------------------------------------------

// TogglePrayer flips one of the seven per-day prayer flags, creating the
// default record first when the date is untracked. Two identical toggles
// cancel out.
func (s *Store) TogglePrayer(dateKey string, field PrayerField) {
	s.mu.Lock()
	day, ok := s.prayers[dateKey]
	if !ok {
		day = NewDailyPrayers()
	}
	day.Toggle(field)
	s.prayers[dateKey] = day
	s.commit()
}

// -----------------------------------------------------------------------------
// Quran
// -----------------------------------------------------------------------------

// SetQuranPages overwrites the page count for a date, clamped to >= 0.
// Independent of Juz tracking; the two are never auto-reconciled.
func (s *Store) SetQuranPages(dateKey string, pages int) {
	s.mu.Lock()
	if pages < 0 {
		pages = 0
	}
	s.quranPages[dateKey] = pages
	s.commit()
}

// ToggleJuz flips the completion flag for one Juz. Out-of-range indexes are
// ignored; the array never resizes.
func (s *Store) ToggleJuz(index int) {
	s.mu.Lock()
	if index < 0 || index >= len(s.juzCompleted) {
		s.mu.Unlock()
		return
	}
	s.juzCompleted[index] = !s.juzCompleted[index]
	s.commit()
}

// -----------------------------------------------------------------------------
// Fasting
// -----------------------------------------------------------------------------

// SetFastingStatus overwrites the day's status. The store performs no toggle
// logic; un-selecting is the caller passing FastingNone.
func (s *Store) SetFastingStatus(dateKey string, status FastingStatus) {
	s.mu.Lock()
	day, ok := s.fasting[dateKey]
	if !ok {
		day = NewDailyFasting()
	}
	day.Status = status
	s.fasting[dateKey] = day
	s.commit()
}

// SetFastingTime overwrites the suhoor or iftar time verbatim; no time-format
// validation happens at this layer.
func (s *Store) SetFastingTime(dateKey string, field FastingField, value string) {
	s.mu.Lock()
	day, ok := s.fasting[dateKey]
	if !ok {
		day = NewDailyFasting()
	}
	switch field {
	case FastingSuhoor:
		day.SuhoorTime = value
	case FastingIftar:
		day.IftarTime = value
	}
	s.fasting[dateKey] = day
	s.commit()
}

// -----------------------------------------------------------------------------
// Dhikr
// -----------------------------------------------------------------------------

// AddDhikrItem appends a new phrase to the global list.
func (s *Store) AddDhikrItem(name, arabicName string, target int) {
	s.mu.Lock()
	s.dhikrItems = append(s.dhikrItems, DhikrItem{
		ID:         newID(),
		Name:       name,
		ArabicName: arabicName,
		Target:     target,
	})
	s.commit()
}

// RemoveDhikrItem deletes a phrase from the global list. Historical counts
// for the removed id are deliberately kept; pruning them would be silent data
// loss.
func (s *Store) RemoveDhikrItem(id string) {
	s.mu.Lock()
	kept := s.dhikrItems[:0]
	for _, d := range s.dhikrItems {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	s.dhikrItems = kept
	s.commit()
}

// IncrementDhikr adds exactly 1 to the item's count for the date, creating
// the day's count map when absent. Counts are uncapped and may exceed the
// item's target; display clamping is the caller's concern.
func (s *Store) IncrementDhikr(dateKey, itemID string) {
	s.mu.Lock()
	day, ok := s.dhikrCounts[dateKey]
	if !ok {
		day = map[string]int{}
		s.dhikrCounts[dateKey] = day
	}
	day[itemID]++
	s.commit()
}

// ResetDhikr sets the item's count for the date to exactly 0.
func (s *Store) ResetDhikr(dateKey, itemID string) {
	s.mu.Lock()
	day, ok := s.dhikrCounts[dateKey]
	if !ok {
		day = map[string]int{}
		s.dhikrCounts[dateKey] = day
	}
	day[itemID] = 0
	s.commit()
}

// -----------------------------------------------------------------------------
// Journal
// -----------------------------------------------------------------------------

// UpdateJournal replaces the day's content wholesale and stamps the current
// time. Length limits are enforced by the UI before the call.
func (s *Store) UpdateJournal(dateKey, content string) {
	s.mu.Lock()
	s.journals[dateKey] = JournalEntry{
		Content:   content,
		UpdatedAt: s.clock.Now(),
	}
	s.commit()
}

// -----------------------------------------------------------------------------
// Charity
// -----------------------------------------------------------------------------

// AddCharity appends a donation with a fresh id and timestamp. Amount sign is
// not re-validated here; the UI guards input before calling.
func (s *Store) AddCharity(amount float64, note, dateKey string) {
	s.mu.Lock()
	s.charityEntries = append(s.charityEntries, CharityEntry{
		ID:        newID(),
		Amount:    amount,
		Note:      note,
		DateKey:   dateKey,
		CreatedAt: s.clock.Now(),
	})
	s.commit()
}

// RemoveCharity deletes the entry with the given id; no-op when absent.
func (s *Store) RemoveCharity(id string) {
	s.mu.Lock()
	kept := s.charityEntries[:0]
	for _, c := range s.charityEntries {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.charityEntries = kept
	s.commit()
}

// -----------------------------------------------------------------------------
// Verse cache
// -----------------------------------------------------------------------------

// SetVerseCache unconditionally replaces the single cached verse.
func (s *Store) SetVerseCache(verse DailyVerse) {
	s.mu.Lock()
	v := verse
	s.verseCache = &v
	s.commit()
}
