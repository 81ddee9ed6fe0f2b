package store

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/tartampluch/go-ramadan/internal/config"
)

// ViewID identifies one of the main application views.
type ViewID string

// Main views, persisted so the app reopens where the user left it.
const (
	ViewDaily    ViewID = "daily"
	ViewCalendar ViewID = "calendar"
	ViewProgress ViewID = "progress"
	ViewSettings ViewID = "settings"
)

// FastingStatus is the per-day fasting state.
type FastingStatus string

const (
	FastingFasted     FastingStatus = "fasted"
	FastingPartial    FastingStatus = "partial"
	FastingNotFasting FastingStatus = "not_fasting"
	FastingNone       FastingStatus = "none"
)

// Settings is the singleton user configuration driving date-range generation
// and the prayer-time lookups.
type Settings struct {
	Name              string `json:"name"`
	City              string `json:"city"`
	Country           string `json:"country"`
	CalculationMethod int    `json:"calculationMethod"`
	RamadanStartDate  string `json:"ramadanStartDate"` // DateKey
	RamadanDays       int    `json:"ramadanDays"`      // 29 or 30
	Currency          string `json:"currency"`
	Onboarded         bool   `json:"onboarded"`
}

// DefaultSettings returns the pre-onboarding configuration.
func DefaultSettings() Settings {
	return Settings{
		CalculationMethod: config.DefaultMethodID,
		RamadanStartDate:  config.DefaultStartDate,
		RamadanDays:       config.DefaultRamadanDays,
		Currency:          config.DefaultCurrency,
	}
}

// PrayerTimes holds one day's clock times as fetched from the lookup service,
// already stripped of any trailing timezone annotation.
type PrayerTimes struct {
	Fajr    string `json:"Fajr"`
	Sunrise string `json:"Sunrise"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

// PrayerField names one of the seven tracked prayer flags.
type PrayerField string

const (
	PrayerFajr     PrayerField = "fajr"
	PrayerDhuhr    PrayerField = "dhuhr"
	PrayerAsr      PrayerField = "asr"
	PrayerMaghrib  PrayerField = "maghrib"
	PrayerIsha     PrayerField = "isha"
	PrayerTarawih  PrayerField = "tarawih"
	PrayerTahajjud PrayerField = "tahajjud"
)

// FardhFields lists the five obligatory prayers in chronological order.
var FardhFields = []PrayerField{PrayerFajr, PrayerDhuhr, PrayerAsr, PrayerMaghrib, PrayerIsha}

// AllPrayerFields lists every tracked prayer, fardh first, then the optional
// night prayers.
var AllPrayerFields = []PrayerField{
	PrayerFajr, PrayerDhuhr, PrayerAsr, PrayerMaghrib, PrayerIsha,
	PrayerTarawih, PrayerTahajjud,
}

// DailyPrayers tracks the five obligatory prayers plus two optional night
// prayers for a single day.
type DailyPrayers struct {
	Fajr     bool `json:"fajr"`
	Dhuhr    bool `json:"dhuhr"`
	Asr      bool `json:"asr"`
	Maghrib  bool `json:"maghrib"`
	Isha     bool `json:"isha"`
	Tarawih  bool `json:"tarawih"`
	Tahajjud bool `json:"tahajjud"`
}

// NewDailyPrayers is the canonical all-false default for an untracked day.
func NewDailyPrayers() DailyPrayers {
	return DailyPrayers{}
}

// Get reads one flag. Unknown fields read false.
func (d DailyPrayers) Get(f PrayerField) bool {
	switch f {
	case PrayerFajr:
		return d.Fajr
	case PrayerDhuhr:
		return d.Dhuhr
	case PrayerAsr:
		return d.Asr
	case PrayerMaghrib:
		return d.Maghrib
	case PrayerIsha:
		return d.Isha
	case PrayerTarawih:
		return d.Tarawih
	case PrayerTahajjud:
		return d.Tahajjud
	}
	return false
}

// Toggle flips one flag in place. Unknown fields are ignored.
func (d *DailyPrayers) Toggle(f PrayerField) {
	switch f {
	case PrayerFajr:
		d.Fajr = !d.Fajr
	case PrayerDhuhr:
		d.Dhuhr = !d.Dhuhr
	case PrayerAsr:
		d.Asr = !d.Asr
	case PrayerMaghrib:
		d.Maghrib = !d.Maghrib
	case PrayerIsha:
		d.Isha = !d.Isha
	case PrayerTarawih:
		d.Tarawih = !d.Tarawih
	case PrayerTahajjud:
		d.Tahajjud = !d.Tahajjud
	}
}

// FastingField names one of the two editable fasting clock times.
type FastingField string

const (
	FastingSuhoor FastingField = "suhoorTime"
	FastingIftar  FastingField = "iftarTime"
)

// DailyFasting tracks one day's fasting status and meal times.
type DailyFasting struct {
	Status     FastingStatus `json:"status"`
	SuhoorTime string        `json:"suhoorTime"`
	IftarTime  string        `json:"iftarTime"`
}

// NewDailyFasting is the canonical default for an untracked day.
func NewDailyFasting() DailyFasting {
	return DailyFasting{Status: FastingNone}
}

// DhikrItem is a remembrance phrase tracked against a daily tap-count target.
type DhikrItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ArabicName string `json:"arabicName"`
	Target     int    `json:"target"`
}

// DefaultDhikrItems returns the five seeded remembrance phrases.
func DefaultDhikrItems() []DhikrItem {
	return []DhikrItem{
		{ID: "dh1", Name: "SubhanAllah", ArabicName: "سبحان الله", Target: 33},
		{ID: "dh2", Name: "Alhamdulillah", ArabicName: "الحمد لله", Target: 33},
		{ID: "dh3", Name: "Allahu Akbar", ArabicName: "الله أكبر", Target: 34},
		{ID: "dh4", Name: "Astaghfirullah", ArabicName: "أستغفر الله", Target: 100},
		{ID: "dh5", Name: "La ilaha illallah", ArabicName: "لا إله إلا الله", Target: 100},
	}
}

// JournalEntry is one day's free-text reflection, overwritten wholesale on
// each save.
type JournalEntry struct {
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CharityEntry is one donation record in the append-only charity list.
type CharityEntry struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Note      string    `json:"note"`
	DateKey   string    `json:"dateKey"`
	CreatedAt time.Time `json:"createdAt"`
}

// DailyVerse is the single system-wide cached verse, tagged with the DateKey
// it was fetched for.
type DailyVerse struct {
	Number           int    `json:"number"`
	Arabic           string `json:"arabic"`
	English          string `json:"english"`
	SurahName        string `json:"surahName"`
	SurahEnglishName string `json:"surahEnglishName"`
	AyahNumber       int    `json:"ayahNumber"`
	FetchedDate      string `json:"fetchedDate"`
}

// newJuzArray is the canonical 30-length completion array.
func newJuzArray() []bool {
	return make([]bool, config.TotalJuz)
}

// newID generates a random identifier for charity and dhikr records.
func newID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// Timestamp fallback keeps ids unique enough for a single-user list.
		return hex.EncodeToString([]byte(time.Now().Format(time.RFC3339Nano)))
	}
	return hex.EncodeToString(buf)
}

// JuzNames lists the traditional opening-words name of each of the 30 Juz.
var JuzNames = []string{
	"Alif Laam Meem", "Sayaqool", "Tilkal Rusul", "Lan Tanaloo", "Wal Muhsanaat",
	"La Yuhibbullah", "Wa Iza Samiu", "Wa Lau Annana", "Qalal Mala", "Wa Aalamu",
	"Yatazeroon", "Wa Mamin Daabbah", "Wa Ma Ubrioo", "Rubama", "Subhanal Lazi",
	"Qal Alam", "Iqtaraba", "Qad Aflaha", "Wa Qalal Lazeena", "Amman Khalaq",
	"Utlu Ma Oohiya", "Wa Man Yaqnut", "Wa Mali", "Faman Azlamu", "Ilayhi Yuraddu",
	"Haa Meem", "Qala Fama Khatbukum", "Qad Sami Allah", "Tabarakal Lazi", "Amma",
}
