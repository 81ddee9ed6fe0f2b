package store

import (
	"encoding/json"
	"log/slog"

	"github.com/tartampluch/go-ramadan/internal/config"
)

// snapshot is the export/import payload: every domain field, excluding the
// transient session pointers. Slices and maps use pointer-free nil checks on
// import to tell "absent" from "empty".
type snapshot struct {
	Settings         Settings                  `json:"settings"`
	PrayerTimesCache map[string]PrayerTimes    `json:"prayerTimesCache"`
	Prayers          map[string]DailyPrayers   `json:"prayers"`
	QuranPages       map[string]int            `json:"quranPages"`
	JuzCompleted     []bool                    `json:"juzCompleted"`
	Fasting          map[string]DailyFasting   `json:"fasting"`
	DhikrItems       []DhikrItem               `json:"dhikrItems"`
	DhikrCounts      map[string]map[string]int `json:"dhikrCounts"`
	Journals         map[string]JournalEntry   `json:"journals"`
	CharityEntries   []CharityEntry            `json:"charityEntries"`
	VerseCache       *DailyVerse               `json:"verseCache"`
	DarkMode         bool                      `json:"darkMode"`
}

// persisted is the durable blob layout: a strict superset of the export
// payload, adding only session/navigation state.
type persisted struct {
	snapshot
	ActiveView   ViewID `json:"activeView"`
	SelectedDate string `json:"selectedDate"`
	LastDateKey  string `json:"lastDateKey"`
}

// snapshotLocked assembles the export payload. Caller holds at least a read
// lock.
func (s *Store) snapshotLocked() snapshot {
	return snapshot{
		Settings:         s.settings,
		PrayerTimesCache: s.prayerTimesCache,
		Prayers:          s.prayers,
		QuranPages:       s.quranPages,
		JuzCompleted:     s.juzCompleted,
		Fasting:          s.fasting,
		DhikrItems:       s.dhikrItems,
		DhikrCounts:      s.dhikrCounts,
		Journals:         s.journals,
		CharityEntries:   s.charityEntries,
		VerseCache:       s.verseCache,
		DarkMode:         s.darkMode,
	}
}

// applySnapshot replaces every domain field from the payload, substituting
// the documented default for anything absent. Full overwrite, never a merge.
// Caller holds the write lock.
func (s *Store) applySnapshot(snap snapshot) {
	s.settings = snap.Settings
	s.darkMode = snap.DarkMode

	s.prayerTimesCache = snap.PrayerTimesCache
	if s.prayerTimesCache == nil {
		s.prayerTimesCache = map[string]PrayerTimes{}
	}
	s.prayers = snap.Prayers
	if s.prayers == nil {
		s.prayers = map[string]DailyPrayers{}
	}
	s.quranPages = snap.QuranPages
	if s.quranPages == nil {
		s.quranPages = map[string]int{}
	}
	s.juzCompleted = normalizeJuz(snap.JuzCompleted)
	s.fasting = snap.Fasting
	if s.fasting == nil {
		s.fasting = map[string]DailyFasting{}
	}
	s.dhikrItems = snap.DhikrItems
	if s.dhikrItems == nil {
		s.dhikrItems = DefaultDhikrItems()
	}
	s.dhikrCounts = snap.DhikrCounts
	if s.dhikrCounts == nil {
		s.dhikrCounts = map[string]map[string]int{}
	}
	s.journals = snap.Journals
	if s.journals == nil {
		s.journals = map[string]JournalEntry{}
	}
	s.charityEntries = snap.CharityEntries
	if s.charityEntries == nil {
		s.charityEntries = []CharityEntry{}
	}
	s.verseCache = snap.VerseCache
}

// normalizeJuz forces the completion array back to its fixed length, padding
// or truncating whatever a restore produced.
func normalizeJuz(in []bool) []bool {
	out := newJuzArray()
	copy(out, in)
	return out
}

// ExportData produces the JSON backup payload.
func (s *Store) ExportData() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.MarshalIndent(s.snapshotLocked(), "", "  ")
}

// ImportData restores a backup. It returns false — leaving the aggregate
// completely untouched — when the payload does not parse or its
// settings.onboarded flag is absent or false. On success the import is a full
// overwrite and the session pointers fall back to their defaults.
func (s *Store) ImportData(data []byte) bool {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		slog.Warn(config.MsgImportFail,
			config.LogKeyComponent, config.CompStore,
			config.LogKeyError, err,
		)
		return false
	}
	if !snap.Settings.Onboarded {
		slog.Warn(config.MsgImportFail, config.LogKeyComponent, config.CompStore)
		return false
	}

	s.mu.Lock()
	s.applySnapshot(snap)
	s.commit()

	slog.Info(config.MsgImportOK, config.LogKeyComponent, config.CompStore)
	return true
}

// ResetAll clears durable storage and returns the aggregate to its
// pre-onboarding state.
func (s *Store) ResetAll() {
	slog.Info(config.MsgResetAll, config.LogKeyComponent, config.CompStore)

	s.mu.Lock()
	if err := s.blob.Clear(); err != nil {
		slog.Error(config.ErrStateWrite,
			config.LogKeyComponent, config.CompStore,
			config.LogKeyError, err,
		)
	}
	s.resetLocked()
	fn := s.onChange
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// persistLocked mirrors the aggregate into the durable blob. A storage
// failure is logged, never surfaced to the mutating caller: the in-memory
// aggregate stays authoritative. Caller holds the write lock.
func (s *Store) persistLocked() {
	payload := persisted{
		snapshot:     s.snapshotLocked(),
		ActiveView:   s.activeView,
		SelectedDate: s.selectedDate,
		LastDateKey:  s.lastDateKey,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error(config.ErrStateWrite,
			config.LogKeyComponent, config.CompStore,
			config.LogKeyError, err,
		)
		return
	}
	if err := s.blob.Save(data); err != nil {
		slog.Error(config.ErrStateWrite,
			config.LogKeyComponent, config.CompStore,
			config.LogKeyError, err,
		)
	}
}

// restore loads the persisted blob into a freshly defaulted store. Only
// called from New, before the store is shared.
func (s *Store) restore() {
	data, err := s.blob.Load()
	if err != nil {
		slog.Error(config.ErrStateRead,
			config.LogKeyComponent, config.CompStore,
			config.LogKeyError, err,
		)
		return
	}
	if data == nil {
		slog.Info(config.MsgStateFresh, config.LogKeyComponent, config.CompStore)
		return
	}

	var payload persisted
	if err := json.Unmarshal(data, &payload); err != nil {
		slog.Error(config.ErrStateRead,
			config.LogKeyComponent, config.CompStore,
			config.LogKeyError, err,
		)
		return
	}

	s.applySnapshot(payload.snapshot)
	if payload.ActiveView != "" {
		s.activeView = payload.ActiveView
	}
	if payload.SelectedDate != "" {
		s.selectedDate = payload.SelectedDate
	}
	if payload.LastDateKey != "" {
		s.lastDateKey = payload.LastDateKey
	}
	slog.Info(config.MsgStateLoaded, config.LogKeyComponent, config.CompStore)
}
