package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Go-Ramadan/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Ramadan"
	AppID             = "com.github.tartampluch.go-ramadan"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
	StateFileName     = "state.json"
	ExportFileName    = "ramadan-backup.json"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for the log file and the persisted state blob.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWindowWidth  = 420
	MainWindowHeight = 720

	// Preference Keys (UI session prefs; domain settings live in the store)
	PrefLanguage   = "language"
	PrefServerPort = "server_port"
	PrefLastRun    = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "ar"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle        = "win_title"
	TKeyTabDaily        = "tab_daily"
	TKeyTabCalendar     = "tab_calendar"
	TKeyTabProgress     = "tab_progress"
	TKeyTabSettings     = "tab_settings"
	TKeyLblLanguage     = "lbl_language"
	TKeyLblName         = "lbl_name"
	TKeyLblCity         = "lbl_city"
	TKeyLblCountry      = "lbl_country"
	TKeyLblMethod       = "lbl_method"
	TKeyLblStartDate    = "lbl_start_date"
	TKeyLblDayCount     = "lbl_day_count"
	TKeyLblCurrency     = "lbl_currency"
	TKeyLblPort         = "lbl_server_port"
	TKeyHelpPort        = "help_server_port"
	TKeyLblDarkMode     = "lbl_dark_mode"
	TKeyBtnBegin        = "btn_begin"
	TKeyBtnSave         = "btn_save"
	TKeyBtnCancel       = "btn_cancel"
	TKeyBtnAdd          = "btn_add"
	TKeyBtnExport       = "btn_export"
	TKeyBtnImport       = "btn_import"
	TKeyBtnResetAll     = "btn_reset_all"
	TKeyLblPrayers      = "lbl_prayers"
	TKeyLblFasting      = "lbl_fasting"
	TKeyLblQuran        = "lbl_quran"
	TKeyLblPages        = "lbl_pages"
	TKeyLblJuz          = "lbl_juz"
	TKeyLblDhikr        = "lbl_dhikr"
	TKeyLblJournal      = "lbl_journal"
	TKeyLblCharity      = "lbl_charity"
	TKeyLblAmount       = "lbl_amount"
	TKeyLblNote         = "lbl_note"
	TKeyLblSuhoor       = "lbl_suhoor"
	TKeyLblIftar        = "lbl_iftar"
	TKeyFastFasted      = "fast_fasted"
	TKeyFastPartial     = "fast_partial"
	TKeyFastNot         = "fast_not_fasting"
	TKeyLblNextPrayer   = "lbl_next_prayer"
	TKeyLblRamadanDay   = "lbl_ramadan_day"
	TKeyLblVerse        = "lbl_verse"
	TKeyMsgAllPrayers   = "msg_all_prayers_done"
	TKeyErrFetchTimes   = "err_fetch_prayer_times"
	TKeyErrFetchVerse   = "err_fetch_verse"
	TKeyErrImport       = "err_import_failed"
	TKeyMsgImportOK     = "msg_import_ok"
	TKeyConfirmReset    = "confirm_reset_all"
	TKeyLblOnboardTitle = "lbl_onboard_title"
	TKeyStatFardh       = "stat_fardh_prayers"
	TKeyStatFasting     = "stat_fasting"
	TKeyStatQuran       = "stat_quran_pages"
	TKeyStatDhikr       = "stat_dhikr_days"
	TKeyStatJournal     = "stat_journal_days"
	TKeyStatCharity     = "stat_charity_total"

	// Validation Errors (UI)
	TKeyErrNameReq   = "err_name_required"
	TKeyErrCityReq   = "err_city_required"
	TKeyErrAmountPos = "err_amount_positive"
	TKeyErrPortReq   = "err_port_required"
	TKeyErrPortNum   = "err_port_number"
	TKeyErrPortRange = "err_port_range"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultPort        = "18081"
	DefaultLanguage    = "en"
	DefaultCurrency    = "USD"
	DefaultMethodID    = 15 // Moonsighting Committee Worldwide
	DefaultStartDate   = "2026-02-17"
	DefaultRamadanDays = 30

	// JournalMaxLen caps journal content at the UI boundary; the store itself
	// accepts any length.
	JournalMaxLen = 2000
	// CharityNoteMaxLen caps the optional charity note at the UI boundary.
	CharityNoteMaxLen = 100

	// JournalDebounce coalesces rapid journal keystrokes into one store write.
	JournalDebounce = 500 * time.Millisecond

	// TickInterval drives the day-transition check and the next-prayer countdown.
	// Date- and minute-granularity state makes once per minute sufficient.
	TickInterval = 60 * time.Second
)

// -----------------------------------------------------------------------------
// Quran Constants
// -----------------------------------------------------------------------------

const (
	TotalJuz   = 30
	TotalPages = 604

	// TotalAyahs is the fixed verse count used by the daily-verse index mapping.
	TotalAyahs = 6236
	// AyahStride spreads consecutive Ramadan days across the whole text.
	AyahStride = 197
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	AladhanBaseURL = "https://api.aladhan.com/v1"
	AlQuranBaseURL = "https://api.alquran.cloud/v1"

	// Verse editions fetched for the daily verse (Arabic text + English translation).
	EditionArabic  = "ar.alafasy"
	EditionEnglish = "en.sahih"

	HTTPTimeout        = 15 * time.Second
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "10"
	AllowedMethods     = "GET, HEAD"
	SchemeHTTP         = "http"
	SchemeHTTPS        = "https"
	RouteRoot          = "/"
	AddrSeparator      = ":"

	MinPort = 1
	MaxPort = 65535
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderUserAgent       = "User-Agent"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// iCalendar Feed
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Ramadan//Feed//EN"
	ICalCalName = "Ramadan Prayer Times"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "goramadan"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	FormatUID = "%s-%s@%s"

	// StubVCalendar is the minimal valid iCalendar object used before any
	// prayer times have been fetched.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrPortRequired   = "server port is required"
	ErrAPIStatus      = "server returned unexpected status"
	ErrAPICode        = "API returned non-success code"
	ErrAPIDecode      = "failed to decode API response"
	ErrAPIRequest     = "API request failed"
	ErrAPIScheme      = "refusing non-HTTP request URL"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrConfigDir      = "could not determine user config dir"
	ErrCreateDir      = "could not create app directory"
	ErrAppFailed      = "application failed unexpectedly"
	ErrWriteResp      = "failed to write response body"
	ErrStateRead      = "failed to read persisted state"
	ErrStateWrite     = "failed to write persisted state"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrLocNotInit     = "localizer not initialized"
	ErrUIRecovered    = "view rendering panicked, rebuilding window"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Calendar initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped gracefully"
	MsgCtxCancel      = "Context cancelled, shutting down UI"
	MsgServerListen   = "HTTP server listening"
	MsgServerStop     = "Shutting down HTTP server..."
	MsgFeedUpdated    = "Prayer-times feed updated"
	MsgCacheUpdated   = "Feed cache refreshed"
	MsgStateLoaded    = "Persisted state loaded"
	MsgStateFresh     = "No persisted state found, starting fresh"
	MsgStateCleared   = "Persisted state cleared"
	MsgDayTransition  = "Day transition detected"
	MsgFetchTimes     = "Fetching monthly prayer times"
	MsgAPIResponse    = "Lookup completed"
	MsgFetchVerse     = "Fetching daily verse"
	MsgFetchStale     = "Discarding stale fetch result"
	MsgImportOK       = "Data import succeeded"
	MsgImportFail     = "Data import rejected"
	MsgResetAll       = "Resetting all data"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgWorkerStart    = "Background ticker started"
	MsgWorkerStop     = "Ticker stopping due to context cancellation"
	MsgOnboardingDone = "Onboarding completed"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyDate      = "date"
	LogKeyCity      = "city"
	LogKeyCountry   = "country"
	LogKeyMethod    = "method"
	LogKeyMonth     = "month"
	LogKeyYear      = "year"
	LogKeyDay       = "ramadan_day"
	LogKeyAyah      = "ayah"
	LogKeyCount     = "count"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyDuration  = "duration_ms"
	LogKeyOld       = "old"
	LogKeyNew       = "new"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI      = "ui"
	CompStore   = "store"
	CompStorage = "storage"
	CompAPI     = "api"
	CompServer  = "server"
	CompFeed    = "feed"
	CompMain    = "main"
	CompI18n    = "i18n"
)
