package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EphemerisSettings selects and tunes the position provider.
type EphemerisSettings struct {
	Mode     string        `mapstructure:"mode"`
	URL      string        `mapstructure:"url"`
	User     string        `mapstructure:"user"`
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	Node     string        `mapstructure:"node"`
}

// ChartSettings controls what each chart contains.
type ChartSettings struct {
	HouseSystem string `mapstructure:"house_system"`
	Divisions   []int  `mapstructure:"divisions"`
	DashaDepth  int    `mapstructure:"dasha_depth"`
}

// SourceSettings locates the birth records used by calendar and serve.
type SourceSettings struct {
	Mode string `mapstructure:"mode"`
	Path string `mapstructure:"path"`
	URL  string `mapstructure:"url"`
	User string `mapstructure:"user"`
}

// CalendarSettings shapes the generated iCalendar feed.
type CalendarSettings struct {
	Depth    int    `mapstructure:"depth"`
	Reminder string `mapstructure:"reminder"`
}

// ServerSettings configures the local feed server.
type ServerSettings struct {
	Port           string `mapstructure:"port"`
	RefreshMinutes int    `mapstructure:"refresh_minutes"`
}

// Settings holds all runtime configuration.
// Values come from go-jyotish.toml, JYOTISH_* env vars and CLI flags.
type Settings struct {
	Language  string            `mapstructure:"language"`
	Workers   int               `mapstructure:"workers"`
	Ephemeris EphemerisSettings `mapstructure:"ephemeris"`
	Chart     ChartSettings     `mapstructure:"chart"`
	Source    SourceSettings    `mapstructure:"source"`
	Calendar  CalendarSettings  `mapstructure:"calendar"`
	Server    ServerSettings    `mapstructure:"server"`
}

// SetDefaults registers every key so env lookups and Unmarshal see them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLanguage, DefaultLanguage)
	v.SetDefault(KeyWorkers, DefaultWorkers)
	v.SetDefault(KeyEphemerisMode, EphemerisAnalytic)
	v.SetDefault(KeyEphemerisURL, HorizonsURL)
	v.SetDefault(KeyEphemerisUser, "")
	v.SetDefault(KeyEphemerisTO, DefaultEphemerisTimeout)
	v.SetDefault(KeyEphemerisTTL, DefaultEphemerisTTL)
	v.SetDefault(KeyEphemerisNode, NodeMean)
	v.SetDefault(KeyHouseSystem, HouseWholeSign)
	v.SetDefault(KeyDivisions, DefaultDivisions)
	v.SetDefault(KeyDashaDepth, DefaultDashaDepth)
	v.SetDefault(KeySourceMode, SourceModeLocal)
	v.SetDefault(KeySourcePath, "")
	v.SetDefault(KeySourceURL, "")
	v.SetDefault(KeySourceUser, "")
	v.SetDefault(KeyCalendarDepth, DefaultCalendarDepth)
	v.SetDefault(KeyCalendarRemind, "")
	v.SetDefault(KeyServerPort, DefaultPort)
	v.SetDefault(KeyServerRefresh, DefaultRefreshMin)
}

// BindEnv maps nested keys to JYOTISH_SECTION_KEY variables.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load applies defaults and decodes v into Settings.
func Load(v *viper.Viper) (Settings, error) {
	SetDefaults(v)

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", ErrConfigLoad, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the numeric ranges. Mode names are checked by the
// packages that interpret them.
func (s Settings) Validate() error {
	if s.Workers < 1 {
		return fmt.Errorf("%s: workers = %d", ErrConfigLoad, s.Workers)
	}
	if s.Chart.DashaDepth < 1 || s.Chart.DashaDepth > MaxDashaDepth {
		return fmt.Errorf("%s: %d", ErrDepth, s.Chart.DashaDepth)
	}
	if s.Calendar.Depth < 1 || s.Calendar.Depth > MaxDashaDepth {
		return fmt.Errorf("%s: calendar %d", ErrDepth, s.Calendar.Depth)
	}
	return ValidatePort(s.Server.Port)
}

// ValidatePort checks that port is a TCP port number.
func ValidatePort(port string) error {
	if strings.TrimSpace(port) == "" {
		return errors.New(ErrPortRequired)
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrPortNumber, err)
	}
	if n < MinPort || n > MaxPort {
		return fmt.Errorf("%s: %d", ErrPortRange, n)
	}
	return nil
}
