package store

import (
	"github.com/tartampluch/go-ramadan/internal/dates"
)

// Selectors are pure reads over the aggregate. Absent DateKeys always yield
// the documented default and never materialize an entry in the backing map.

// ActiveView returns the persisted navigation pointer.
func (s *Store) ActiveView() ViewID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeView
}

// SelectedDate returns the currently viewed DateKey.
func (s *Store) SelectedDate() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedDate
}

// LastDateKey returns the last calendar date the day-transition monitor
// observed.
func (s *Store) LastDateKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastDateKey
}

// Today resolves the wall-clock DateKey through the injected clock.
func (s *Store) Today() string {
	return dates.Key(s.clock.Now())
}

// DarkMode returns the persisted theme preference.
func (s *Store) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.darkMode
}

// FetchError returns the current lookup-failure banner text, empty when none.
func (s *Store) FetchError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchError
}

// Settings returns a copy of the settings singleton.
func (s *Store) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// PrayerTimesFor returns the cached clock times for a date.
func (s *Store) PrayerTimesFor(dateKey string) (PrayerTimes, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pt, ok := s.prayerTimesCache[dateKey]
	return pt, ok
}

// Prayers returns the day's prayer record, all-false when untracked.
func (s *Store) Prayers(dateKey string) DailyPrayers {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if day, ok := s.prayers[dateKey]; ok {
		return day
	}
	return NewDailyPrayers()
}

// PrayerCompletion counts true flags across all seven prayer fields.
func (s *Store) PrayerCompletion(dateKey string) (completed, total int) {
	day := s.Prayers(dateKey)
	for _, f := range AllPrayerFields {
		if day.Get(f) {
			completed++
		}
	}
	return completed, len(AllPrayerFields)
}

// AllFardhDone reports whether all five obligatory prayers are marked for the
// date. The optional night prayers do not count toward this signal.
func (s *Store) AllFardhDone(dateKey string) bool {
	day := s.Prayers(dateKey)
	for _, f := range FardhFields {
		if !day.Get(f) {
			return false
		}
	}
	return true
}

// Fasting returns the day's fasting record, status none when untracked.
func (s *Store) Fasting(dateKey string) DailyFasting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if day, ok := s.fasting[dateKey]; ok {
		return day
	}
	return NewDailyFasting()
}

// QuranPages returns the day's page count, 0 when untracked.
func (s *Store) QuranPages(dateKey string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quranPages[dateKey]
}

// JuzCompleted returns a copy of the fixed 30-length completion array.
func (s *Store) JuzCompleted() []bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]bool, len(s.juzCompleted))
	copy(out, s.juzCompleted)
	return out
}

// DhikrItems returns a copy of the global phrase list.
func (s *Store) DhikrItems() []DhikrItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]DhikrItem, len(s.dhikrItems))
	copy(out, s.dhikrItems)
	return out
}

// DhikrCount returns the tap count for one item on one date, 0 when absent.
func (s *Store) DhikrCount(dateKey, itemID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dhikrCounts[dateKey][itemID]
}

// DhikrAllMet reports whether every currently defined item reached its target
// for the date. Because the item list is global, completion for past dates is
// reinterpreted if the list later changes; that follows from the data model
// and is intentional.
func (s *Store) DhikrAllMet(dateKey string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dhikrAllMetLocked(dateKey)
}

func (s *Store) dhikrAllMetLocked(dateKey string) bool {
	day := s.dhikrCounts[dateKey]
	for _, item := range s.dhikrItems {
		if day[item.ID] < item.Target {
			return false
		}
	}
	return true
}

// Journal returns the day's entry, zero-valued when untracked.
func (s *Store) Journal(dateKey string) JournalEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.journals[dateKey]
}

// CharityEntries returns a copy of the donation list, oldest first.
func (s *Store) CharityEntries() []CharityEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]CharityEntry, len(s.charityEntries))
	copy(out, s.charityEntries)
	return out
}

// VerseCache returns the cached daily verse, nil when empty or when it was
// fetched for a different date than the one given.
func (s *Store) VerseCache(dateKey string) *DailyVerse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.verseCache == nil || s.verseCache.FetchedDate != dateKey {
		return nil
	}
	v := *s.verseCache
	return &v
}

// Progress aggregates completion ratios over the elapsed portion of the
// Ramadan window.
type Progress struct {
	DaysElapsed int
	TotalDays   int

	FardhCompleted int
	FardhPossible  int
	TotalPrayers   int

	DaysFasted int

	PagesRead  int
	TotalPages int
	JuzDone    int

	DhikrDaysComplete int
	JournalDays       int

	CharityTotal float64
	CharityCount int
}

// ComputeProgress walks the configured date range from day 1 through
// min(today's Ramadan day, total days), clamped to 0 when today precedes the
// window.
func (s *Store) ComputeProgress(totalPages int) Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := dates.RamadanDateKeys(s.settings.RamadanStartDate, s.settings.RamadanDays)
	today := dates.Key(s.clock.Now())
	currentDay := dates.RamadanDay(today, s.settings.RamadanStartDate)

	elapsed := currentDay
	if elapsed > s.settings.RamadanDays {
		elapsed = s.settings.RamadanDays
	}
	if elapsed < 0 {
		elapsed = 0
	}

	p := Progress{
		DaysElapsed: elapsed,
		TotalDays:   s.settings.RamadanDays,
		TotalPages:  totalPages,
	}
	p.FardhPossible = elapsed * len(FardhFields)

	for _, dk := range keys {
		if day, ok := s.prayers[dk]; ok {
			for _, f := range AllPrayerFields {
				if day.Get(f) {
					p.TotalPrayers++
				}
			}
			for _, f := range FardhFields {
				if day.Get(f) {
					p.FardhCompleted++
				}
			}
		}
		if day, ok := s.fasting[dk]; ok && day.Status == FastingFasted {
			p.DaysFasted++
		}
		if _, ok := s.dhikrCounts[dk]; ok && s.dhikrAllMetLocked(dk) {
			p.DhikrDaysComplete++
		}
		if entry, ok := s.journals[dk]; ok && entry.Content != "" {
			p.JournalDays++
		}
	}

	for _, pages := range s.quranPages {
		p.PagesRead += pages
	}
	for _, done := range s.juzCompleted {
		if done {
			p.JuzDone++
		}
	}
	for _, c := range s.charityEntries {
		p.CharityTotal += c.Amount
		p.CharityCount++
	}

	return p
}
