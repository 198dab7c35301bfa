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
var UserAgent = "Go-Jyotish/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go Jyotish"
	AppCommand        = "go-jyotish"
	AppID             = "com.github.tartampluch.go-jyotish"
	KeyringService    = "com.github.tartampluch.go-jyotish"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
	ConfigFileName    = "go-jyotish"
	ConfigFileType    = "toml"
	EnvPrefix         = "JYOTISH"
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

	// FilePermPublic represents -rw-r--r-- for generated calendars.
	FilePermPublic fs.FileMode = 0644

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagConfig     = "config"
	FlagDebug      = "debug"
	FlagLanguage   = "lang"
	FlagDate       = "date"
	FlagTime       = "time"
	FlagZone       = "zone"
	FlagLatitude   = "lat"
	FlagLongitude  = "lon"
	FlagName       = "name"
	FlagHouses     = "houses"
	FlagDivisions  = "divisions"
	FlagDepth      = "depth"
	FlagFormat     = "format"
	FlagEphemeris  = "ephemeris"
	FlagNode       = "node"
	FlagAt         = "at"
	FlagSource     = "source"
	FlagUser       = "user"
	FlagOut        = "out"
	FlagPort       = "port"
	FlagTarget     = "target"
	FlagReminder   = "reminder"
	FlagDescConfig = "config file (default ./go-jyotish.toml or ~/go-jyotish.toml)"
	FlagDescDebug  = "Enable debug logging to stdout"
	FlagDescLang   = "language for names and calendar summaries"
	FlagDescDate   = "birth date (YYYY-MM-DD)"
	FlagDescTime   = "birth time (HH:MM or HH:MM:SS)"
	FlagDescZone   = "time zone (IANA name, UTC or ±HH:MM)"
	FlagDescLat    = "latitude in degrees, north positive"
	FlagDescLon    = "longitude in degrees, east positive"
	FlagDescName   = "label stored on the chart"
	FlagDescHouses = "house system: wholeSign or placidus"
	FlagDescDivs   = "divisional charts to compute (e.g. 9,10)"
	FlagDescDepth  = "dasha levels to generate (1=Mahadasha)"
	FlagDescFormat = "output format: text, json or yaml"
	FlagDescEphem  = "ephemeris provider: analytic or horizons"
	FlagDescNode   = "lunar node model: mean or true"
	FlagDescAt     = "date for the active period lookup (default today)"
	FlagDescSource = "vCard or TOML birth records (file path or http(s) URL)"
	FlagDescUser   = "username for HTTP basic auth"
	FlagDescOut    = "write output to this file instead of stdout"
	FlagDescPort   = "local port for the calendar server"
	FlagDescTarget = "credential target: source or ephemeris"
	FlagDescRemind = "ISO8601 alarm trigger for period changes (e.g. -P1D)"

	MsgVersionOutput  = "%s version %s (%s) built %s (%s/%s)\n"
	MsgPasswordPrompt = "Password: "
	MsgPasswordStored = "Password stored for %s\n"
)

// -----------------------------------------------------------------------------
// CLI Commands
// -----------------------------------------------------------------------------

const (
	CmdChart       = "chart"
	CmdDasha       = "dasha"
	CmdCalendar    = "calendar"
	CmdServe       = "serve"
	CmdCredentials = "credentials"
	CmdSet         = "set"
	CmdVersion     = "version"

	CmdDescRoot        = "Sidereal charts and Vimshottari dasha periods"
	CmdDescRootLong    = "Computes Lahiri sidereal charts and Vimshottari dasha trees, and publishes period calendars for a set of birth records."
	CmdDescChart       = "Compute a sidereal chart"
	CmdDescDasha       = "Show the Mahadashas and the active period"
	CmdDescCalendar    = "Render the dasha calendar for birth records"
	CmdDescServe       = "Serve the dasha calendar and chart JSON, refreshed in the background"
	CmdDescCredentials = "Manage passwords stored in the OS keyring"
	CmdDescSet         = "Store a password read from stdin"
	CmdDescVersion     = "Print version information"

	// Text output
	TextTitle       = "%s\n"
	TextLabelValue  = "%s:\t%s\n"
	TextDegrees     = "%.4f°"
	TextPlacement   = "%s %s (%s %d)"
	TextFallback    = "%s (%s)"
	TextFlagMark    = "R"
	TextCombustMark = "C"
	TextCurrentMark = "*"
	TextDateRange   = "%s .. %s"
	TextEmptyCell   = "-"
)

// Preference keys read through viper.
const (
	KeyLanguage       = "language"
	KeyWorkers        = "workers"
	KeyEphemerisMode  = "ephemeris.mode"
	KeyEphemerisURL   = "ephemeris.url"
	KeyEphemerisUser  = "ephemeris.user"
	KeyEphemerisTO    = "ephemeris.timeout"
	KeyEphemerisTTL   = "ephemeris.cache_ttl"
	KeyEphemerisNode  = "ephemeris.node"
	KeyHouseSystem    = "chart.house_system"
	KeyDivisions      = "chart.divisions"
	KeyDashaDepth     = "chart.dasha_depth"
	KeySourceMode     = "source.mode"
	KeySourcePath     = "source.path"
	KeySourceURL      = "source.url"
	KeySourceUser     = "source.user"
	KeyCalendarDepth  = "calendar.depth"
	KeyCalendarRemind = "calendar.reminder"
	KeyServerPort     = "server.port"
	KeyServerRefresh  = "server.refresh_minutes"
)

// SupportedLanguages defines the list of available languages (ISO 639-1).
var SupportedLanguages = []string{"en", "hi"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyBodyPrefix      = "body_"            // body_sun, body_moon, ...
	TKeySignPrefix      = "sign_"            // sign_aries, ...
	TKeyNakshatraPrefix = "nakshatra_"       // nakshatra_0 .. nakshatra_26
	TKeyEvtMahadasha    = "event_mahadasha"  // Requires Name, Lord
	TKeyEvtAntardasha   = "event_antardasha" // Requires Name, Lord, SubLord
	TKeyEvtDeepPeriod   = "event_period"     // Requires Name, Path
	TKeyCalName         = "calendar_name"
	TKeyHdrBody         = "hdr_body"
	TKeyHdrSign         = "hdr_sign"
	TKeyHdrDegree       = "hdr_degree"
	TKeyHdrNakshatra    = "hdr_nakshatra"
	TKeyHdrHouse        = "hdr_house"
	TKeyHdrDignity      = "hdr_dignity"
	TKeyHdrLord         = "hdr_lord"
	TKeyHdrStart        = "hdr_start"
	TKeyHdrEnd          = "hdr_end"
	TKeyLblAscendant    = "lbl_ascendant"
	TKeyLblAyanamsa     = "lbl_ayanamsa"
	TKeyLblHouseSystem  = "lbl_house_system"
	TKeyLblRetrograde   = "lbl_retrograde"
	TKeyLblCombust      = "lbl_combust"
	TKeyLblCurrent      = "lbl_current_period"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	SourceModeWeb        = "web"
	SourceModeLocal      = "local"
	DefaultPort          = "18081"
	DefaultRefreshMin    = 60
	DefaultLanguage      = "en"
	DefaultWorkers       = 4
	DefaultDashaDepth    = 3
	DefaultCalendarDepth = 2
	MaxDashaDepth        = 6
	UIDSalt              = "go-jyotish-v1-" // Salt for deterministic UID generation

	EphemerisAnalytic = "analytic"
	EphemerisHorizons = "horizons"
	NodeMean          = "mean"
	NodeTrue          = "true"
	HouseWholeSign    = "wholeSign"
	HousePlacidus     = "placidus"

	TargetSource    = "source"
	TargetEphemeris = "ephemeris"

	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"

	// DashaYearDays is the civil length of one dasha year.
	DashaYearDays = 365.25
)

// DefaultDivisions lists the divisional charts computed when none are configured.
var DefaultDivisions = []int{9}

// -----------------------------------------------------------------------------
// Ephemeris (JPL Horizons)
// -----------------------------------------------------------------------------

const (
	HorizonsURL       = "https://ssd.jpl.nasa.gov/api/horizons.api"
	HorizonsCenter    = "'500@399'" // Geocentric
	HorizonsQuantity  = "'31'"      // Observer ecliptic longitude & latitude
	HorizonsEphemType = "'OBSERVER'"
	HorizonsSOE       = "$$SOE"
	HorizonsEOE       = "$$EOE"

	DefaultEphemerisTimeout = 20 * time.Second
	DefaultEphemerisTTL     = 1 * time.Hour
	// SpeedStepDays is the half-width of the central difference used for speeds.
	SpeedStepDays = 0.5
)

// -----------------------------------------------------------------------------
// Chart Analysis
// -----------------------------------------------------------------------------

const (
	OrbConjunction = 8.0
	OrbOpposition  = 8.0
	OrbTrine       = 8.0
	OrbSquare      = 7.0
	OrbSextile     = 6.0

	// CuspTolerance bounds the distance between cusp 1 and the ascendant.
	CuspTolerance = 1e-6

	StrengthAngular     = 3.0
	StrengthSuccedent   = 2.0
	StrengthCadent      = 1.0
	StrengthExalted     = 3.0
	StrengthOwn         = 2.0
	StrengthNeutral     = 1.0
	StrengthDebilitated = 0.0
	StrengthRetrograde  = 0.5
	StrengthCombust     = 1.0
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion   = "2.0"
	ICalProdid    = "-//Go Jyotish//Dasha Engine//EN"
	ICalCalName   = "Vimshottari Dasha"
	ICalMethod    = "PUBLISH"
	ICalScale     = "GREGORIAN"
	ICalComponent = "VALARM"
	ICalAction    = "DISPLAY"
	ICalDomain    = "gojyotish"

	// iCal/vCard Fields
	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDTStart     = "DTSTART"
	PropDTEnd       = "DTEND"
	PropDTStamp     = "DTSTAMP"
	PropCategories  = "CATEGORIES"
	PropRefresh     = "REFRESH-INTERVAL"
	PropAction      = "ACTION"
	PropDescription = "DESCRIPTION"
	PropTrigger     = "TRIGGER"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	VCardBDAY  = "BDAY"
	VCardFN    = "FN"
	VCardN     = "N"
	VCardTZ    = "TZ"
	VCardGEO   = "GEO"
	VCardBegin = "BEGIN:VCARD"

	GeoURIPrefix = "geo:"

	// Event categories per period level
	CategoryMahadasha       = "Mahadasha"
	CategoryAntardasha      = "Antardasha"
	CategoryPratyantardasha = "Pratyantardasha"
	CategoryLevel           = "Level %d"
	PathSeparator           = " / "

	DefaultICalRefresh = 1 * time.Hour
)

// -----------------------------------------------------------------------------
// Data Formats & Limits
// -----------------------------------------------------------------------------

const (
	// Civil layouts
	DateLayout        = "2006-01-02"
	TimeLayoutSeconds = "15:04:05"
	TimeLayoutMinutes = "15:04"

	// Layouts used for parsing vCard BDAY fields that carry a time
	DateTimeBasic      = "20060102T150405"
	DateTimeBasicMin   = "20060102T1504"
	DateTimeExtended   = "2006-01-02T15:04:05"
	DateTimeExtendedMn = "2006-01-02T15:04"

	// Limits
	MinPort      = 1
	MaxPort      = 65535
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
	// MaxOffsetHours bounds fixed UTC offsets (UTC+14 is the widest in use).
	MaxOffsetHours = 14

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%s@%s"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	RetryAfterSeconds   = "10"
	AllowedMethods      = "GET, HEAD"
	MaxHTTPResponseSize = 64 * 1024 * 1024 // 64MB
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	RouteCalendar       = "/dasha.ics"
	RouteCharts         = "/charts.json"
	AddrSeparator       = ":"
	WatchDebounce       = 500 * time.Millisecond
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
	HeaderAccept          = "Accept"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar = "text/calendar; charset=utf-8"
	MimeJSON         = "application/json; charset=utf-8"
	// AcceptRecords asks for either birth record format.
	AcceptRecords       = "text/vcard, application/toml;q=0.9, */*;q=0.1"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrLocalPathEmpty = "configuration error: local path is empty"
	ErrWebURLEmpty    = "configuration error: web URL is empty"
	ErrFetcherMissing = "internal error: network fetcher is not initialized"
	ErrCalculatorNil  = "internal error: chart calculator is not initialized"
	ErrModeUnsupport  = "configuration error: unsupported source mode"
	ErrEphemerisMode  = "configuration error: unsupported ephemeris mode"
	ErrNodeMode       = "configuration error: unsupported node mode"
	ErrHouseSystem    = "configuration error: unsupported house system"
	ErrDivision       = "configuration error: unsupported divisional chart"
	ErrDepth          = "configuration error: dasha depth out of range"
	ErrFormat         = "configuration error: unsupported output format"
	ErrTarget         = "configuration error: unsupported credential target"
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrRouteUnknown   = "unknown feed route"
	ErrPortRequired   = "server port is required"
	ErrPortNumber     = "server port must be a number"
	ErrPortRange      = "server port must be between 1 and 65535"
	ErrInvalidURL     = "invalid URL structure"
	ErrProtocol       = "unsupported protocol scheme (http/https only)"
	ErrTOMLParse      = "failed to parse TOML birth records"
	ErrSourceRead     = "failed to read birth records"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrJSONEncode     = "failed to encode chart data"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
	ErrWriteResp      = "failed to write response body"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrWatcher        = "failed to watch source file"
	ErrKeyring        = "keyring access failed"
	ErrUserRequired   = "credential user is required"
	ErrPasswordRead   = "failed to read password from stdin"
	ErrOutputWrite    = "failed to write output"
	ErrAtDate         = "--at must use YYYY-MM-DD"
	ErrConfigLoad     = "failed to load configuration"
	ErrRequestBuild   = "failed to create request"
	ErrNetwork        = "network error during fetch"
	ErrFetchStatus    = "server returned unexpected status"
	ErrBirthTime      = "birthday carries no time of day"
	ErrGeoFormat      = "GEO is neither geo:lat,lon nor lat;lon"

	// Chart core
	ErrBirthData        = "invalid birth data"
	ErrDateMissing      = "date is required"
	ErrTimeMissing      = "time is required"
	ErrZoneMissing      = "time zone is required"
	ErrLatitudeRange    = "latitude must be within [-90, 90]"
	ErrLongitudeRange   = "longitude must be within [-180, 180]"
	ErrCoordNotFinite   = "coordinates must be finite numbers"
	ErrDateFormat       = "date must use YYYY-MM-DD"
	ErrTimeFormat       = "time must use HH:MM or HH:MM:SS"
	ErrZoneUnknown      = "time zone is neither a known zone name nor a ±HH:MM offset"
	ErrOffsetRange      = "UTC offset out of range"
	ErrLocalTimeGap     = "local time does not exist in this zone (DST gap)"
	ErrAscendantPolar   = "latitude too close to a pole"
	ErrAscendantFinite  = "ascendant has no finite solution"
	ErrEphemeris        = "ephemeris provider failed"
	ErrEphemerisBody    = "ephemeris provider does not support body"
	ErrEphemerisRange   = "ephemeris returned a non-finite longitude"
	ErrEphemerisStatus  = "ephemeris service returned unexpected status"
	ErrEphemerisPayload = "ephemeris response could not be parsed"
	ErrDashaNakshatra   = "nakshatra index out of range"
	ErrDashaFraction    = "elapsed fraction must be within [0, 1)"
	ErrDashaLord        = "no nakshatra lord for index"
	ErrDashaPeriod      = "no full period for body"
	ErrDashaSequence    = "body is missing from the dasha order"
	ErrCuspCount        = "cuspal system must yield 12 cusps"
	ErrCuspFinite       = "cusp is not a finite longitude"
	ErrCuspAscendant    = "first cusp does not match the ascendant"
	ErrCuspOrder        = "cusps are not in monotonic zodiacal order"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Dasha feed initializing, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Fallbacks & Defaults
// -----------------------------------------------------------------------------

const (
	FallbackMahadasha  = "%s: %s Mahadasha"
	FallbackAntardasha = "%s: %s–%s Antardasha"
	FallbackPeriod     = "%s: %s period"
	FallbackName       = "Unknown"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	MsgLocalTimeAmbiguous = "local time is ambiguous (DST overlap), using the earlier instant"
	MsgHouseFallback      = "Cuspal houses rejected, using whole-sign houses"
	MsgChartComputed      = "Chart computed"
	MsgSyncStarted        = "Synchronization started..."
	MsgSyncFailed         = "Synchronization failed. Check logs."
	MsgWorkerStart        = "Background worker started"
	MsgWorkerStop         = "Worker stopping due to context cancellation"
	MsgWatchEvent         = "Source file changed"
	MsgAppStop            = "Application stopped gracefully"
	MsgSkippedCard        = "Skipping malformed vCard"
	MsgSkippedRecord      = "Skipping incomplete birth record"
	MsgSkippedChart       = "Skipping record whose chart failed"
	MsgGenSuccess         = "Calendar generation successful"
	MsgAppStarting        = "Starting application"
	MsgServerListen       = "HTTP server listening"
	MsgServerStop         = "Shutting down HTTP server..."
	MsgCacheUpdated       = "Cache updated"
	MsgCacheHit           = "Ephemeris cache hit"
	MsgLocaleSkip         = "Skipping non-locale file"
	MsgLocaleBadName      = "Skipping malformed locale filename"
	MsgLocaleLoaded       = "Locale loaded successfully"
	MsgTransMissing       = "Missing translation key"
	MsgPassFail           = "Password retrieval failed (might be empty)"
	MsgCredSaved          = "Credentials stored in keyring"
	MsgLogWarning         = "Warning: %s at %s: %v\n"
	MsgTransitionToday    = "Period transition found today"
	MsgHorizonsRequest    = "Requesting Horizons ephemeris"
	MsgFetchStart         = "Initiating birth record download"
	MsgFetchStatus        = "Server returned error status"
	MsgFetchOK            = "Birth records downloading"
	MsgSyncFinished       = "Sync finished"
	MsgRefreshDisabled    = "Periodic refresh disabled"

	// Reasons attached to skipped records
	ReasonIncomplete  = "missing date, time, zone or coordinates"
	ReasonNoBirthday  = "no BDAY"
	ReasonNoBirthTime = "BDAY has no time of day"
	ReasonNoZone      = "no time zone"
	ReasonNoGeo       = "no usable GEO"
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
	LogKeyMode      = "mode"
	LogKeyInterval  = "interval"
	LogKeyUser      = "user"
	LogKeyTarget    = "target"
	LogKeyTotal     = "total_records"
	LogKeyCharts    = "charts_computed"
	LogKeyToday     = "transitions_today"
	LogKeySkipped   = "records_skipped"
	LogKeyFailed    = "charts_failed"
	LogKeyEvents    = "events"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyRoute     = "route"
	LogKeyStats     = "stats"
	LogKeyName      = "name"
	LogKeyDuration  = "duration_ms"
	LogKeyBody      = "body"
	LogKeyJD        = "julian_day"
	LogKeyZone      = "zone"
	LogKeyHouses    = "house_system"
	LogKeyReason    = "reason"
	LogKeyNode      = "node_mode"
	LogKeyAyanamsa  = "ayanamsa"
	LogKeyLord      = "lord"
	LogKeyLevel     = "level"

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
	CompEngine    = "engine"
	CompChart     = "chart"
	CompEphemeris = "ephemeris"
	CompServer    = "server"
	CompFetcher   = "fetcher"
	CompWorker    = "worker"
	CompWatcher   = "watcher"
	CompMain      = "main"
	CompI18n      = "i18n"
	CompSecret    = "secret"
)
