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

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName          = "Go Birthfacts"
	AppID            = "com.github.tartampluch.go-birthfacts"
	BinaryName       = "go-birthfacts"
	LogFileName      = "app.log"
	SettingsFile     = "config.toml"
	ICalUIDNamespace = "go-birthfacts.tartampluch.github.com"
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
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// FilePermUserRWGroupR represents -rw-r--r--, used for exported calendars.
	FilePermUserRWGroupR fs.FileMode = 0644

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Commands, Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	CmdReport   = "report"
	CmdYears    = "years"
	CmdContacts = "contacts"
	CmdCalendar = "calendar"
	CmdVersion  = "version"
	CmdSettings = "settings"
	CmdInit     = "init"

	FlagDebug    = "debug"
	FlagConfig   = "config"
	FlagLang     = "lang"
	FlagDate     = "date"
	FlagAnimal   = "animal"
	FlagAge1     = "age1"
	FlagAge2     = "age2"
	FlagMonth    = "month"
	FlagDay      = "day"
	FlagFile     = "file"
	FlagOut      = "out"
	FlagSort     = "sort"
	FlagDesc     = "desc"
	FlagReminder = "reminder"

	FlagDescDebug    = "Enable debug logging to stderr and the log file"
	FlagDescConfig   = "Path to the TOML settings file"
	FlagDescLang     = "Language: 1=English 2=Simplified Chinese 3=Traditional Chinese 4/5=alternative naming"
	FlagDescDate     = "Birth date (YYYY-MM-DD, YYYYMMDD, YYYY/MM/DD or DD.MM.YYYY); today when omitted or invalid"
	FlagDescAnimal   = "Symbolic animal index (0=Rat ... 11=Boar)"
	FlagDescAge1     = "First age of the range"
	FlagDescAge2     = "Second age of the range"
	FlagDescMonth    = "Birthday month used to anchor the range"
	FlagDescDay      = "Birthday day used to anchor the range"
	FlagDescFile     = "Path to a .vcf file"
	FlagDescOut      = "Write the iCalendar feed to this file instead of stdout"
	FlagDescSort     = "Sort contacts by: date, name or age"
	FlagDescDesc     = "Sort in descending order"
	FlagDescReminder = "ISO8601 alarm trigger added to every event (e.g. -P1D)"

	ShortRoot     = "Zodiac signs, symbolic animals, ages and birthday countdowns"
	ShortReport   = "Print every fact about a birth date"
	ShortYears    = "List birth years of a symbolic animal within an age range"
	ShortContacts = "List the birthdays found in a vCard file"
	ShortCalendar = "Export the birthdays of a vCard file as iCalendar"
	ShortVersion  = "Print the version number"
	ShortSettings = "Show the effective settings"
	ShortInit     = "Write the effective settings to the settings file"

	MsgVersionOutput = "%s version %s (%s, %s) %s/%s\n"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultLanguage    = 1
	LanguageCount      = 5 // Selectors run from 1 to LanguageCount
	DefaultMonth       = 1
	DefaultDay         = 1
	DefaultLeapYear    = 2000 // Leap year fallback for dates like --02-29
	DefaultSortKey     = SortByDate
	EpochYear          = 1900 // Year of the Rat used as index 0
	AnimalCycle        = 12
	CNYFirstYear       = 1876
	CNYLastYear        = 2163
	LatestCNYMonth     = 2 // Chinese New Year never falls after February
	MonthDayMultiplier = 100
	MaxAgeInput        = 200

	SortByDate = "date"
	SortByName = "name"
	SortByAge  = "age"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Birthfacts//Engine//EN"
	ICalCalName   = "Birthdays"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "gobirthfacts"

	// iCal/vCard Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"

	DefaultICalRefresh = 24 * time.Hour
)

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	// Date layouts used for parsing vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
	DateFormatNoYearD   = "--01-02"
	DateFormatNoYearB   = "--0102"

	// Extra layouts accepted on the command line
	DateFormatSlash  = "2006/01/02"
	DateFormatDotted = "02.01.2006"

	DateFormatDisplay = "2006-01-02"
	FormatYMD         = "%04d-%02d-%02d"
	FormatUIDInput    = "%s|%s"
	FormatUID         = "%s-%d@%s"

	AgeUnknown          = "-"
	FormatAgeTransition = "%d → %d"
	ColumnGap           = "  "
	ExtICS              = ".ics"

	// Embedded locale files are named active.<tag>.json
	LocalesDir   = "locales"
	LocalePrefix = "active."
	LocaleExt    = ".json"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyToday          = "lbl_today"
	TKeyBirthday       = "lbl_birthday"
	TKeyAnchor         = "lbl_anchor" // Requires Month, Day
	TKeyZodiac         = "lbl_zodiac"
	TKeyAnimal         = "lbl_animal"
	TKeyAge            = "lbl_age"
	TKeyAgeYMD         = "lbl_age_ymd" // Requires Years, Months, Days
	TKeyDaysLived      = "lbl_days_lived"
	TKeyDaysSinceLast  = "lbl_days_since_last"
	TKeyDaysToNext     = "lbl_days_to_next"
	TKeyOutOfRange     = "msg_out_of_range"
	TKeyAgeRange       = "lbl_age_range"  // Requires From, To
	TKeyYearRange      = "lbl_year_range" // Requires From, To
	TKeyAnimalYears    = "lbl_animal_years"
	TKeyNone           = "msg_none"
	TKeyColName        = "col_name"
	TKeyColDate        = "col_date"
	TKeyColAge         = "col_age"
	TKeyColZodiac      = "col_zodiac"
	TKeyColAnimal      = "col_animal"
	TKeyEvtSummary     = "event_summary"       // Requires Name
	TKeyEvtSummaryAge  = "event_summary_age"   // Requires Name, Age
	TKeyEvtSummaryBrth = "event_summary_birth" // Requires Name (For age 0)
	TKeyEvtDescription = "event_description"   // Requires Zodiac, Animal
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidDate     = "invalid date"
	ErrDateStart       = "start"
	ErrDateEnd         = "end"
	ErrVCardOpen       = "failed to open vCard file"
	ErrVCardRead       = "failed to read vCard stream"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrDateParse       = "unable to parse date"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrConfigDir       = "could not determine user config dir"
	ErrCreateDir       = "could not create app directory"
	ErrAppFailed       = "application failed unexpectedly"
	ErrSettingsRead    = "failed to read settings file"
	ErrSettingsParse   = "failed to parse settings file"
	ErrSettingsSortKey = "unknown sort key"
	ErrWriteOutput     = "failed to write output"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrFileRequired    = "a vCard file is required"
	ErrAnimalIndex     = "animal index must be between 0 and 11"
)

// -----------------------------------------------------------------------------
// Fallbacks & Log Messages
// -----------------------------------------------------------------------------

const (
	FallbackSummary      = "Birthday: %s"
	FallbackSummaryAge   = "Birthday: %s (%d)"
	FallbackSummaryBirth = "Birthday: %s (birth)"
	FallbackName         = "Unknown"
	FallbackDescription  = "%s / %s"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	MsgGenStarted     = "Calendar generation started"
	MsgSkippedCard    = "Skipping malformed vCard"
	MsgSkippedDate    = "Skipping invalid date format"
	MsgGenSuccess     = "Calendar generation successful"
	MsgAppStarting    = "Starting application"
	MsgAppStop        = "Application stopped"
	MsgBdayToday      = "Birthday found today"
	MsgCNYOutOfRange  = "Year outside the Chinese New Year table, treating as passed"
	MsgDateFallback   = "Unparseable birth date, using today"
	MsgSettingsLoaded = "Settings loaded"
	MsgSettingsAbsent = "Settings file not found, using defaults"
	MsgSettingsSaved  = "Settings saved"
	MsgSettingsIgnore = "Settings file ignored, using defaults"
	MsgLocaleSkip     = "Skipping non-locale file"
	MsgLocaleBadName  = "Skipping malformed locale filename"
	MsgLocaleLoaded   = "Locale loaded successfully"
	MsgTransMissing   = "Missing translation key"
	MsgLogWarning     = "Warning: %s at %s: %v\n"
	MsgSorted         = "Contacts sorted"
	MsgCalendarSaved  = "Calendar written"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyYear      = "year"
	LogKeyTotal     = "total_cards"
	LogKeyFound     = "birthdays_found"
	LogKeyToday     = "birthdays_today"
	LogKeyStats     = "stats"
	LogKeySortCol   = "sort_column"
	LogKeySortAsc   = "sort_asc"
	LogKeyName      = "name"
	LogKeyDOB       = "date_of_birth"
	LogKeyDuration  = "duration_ms"
	LogKeySizeBytes = "size_bytes"

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
	CompEngine   = "engine"
	CompCalendar = "calendar"
	CompCLI      = "cli"
	CompMain     = "main"
	CompI18n     = "i18n"
	CompSettings = "settings"
)
