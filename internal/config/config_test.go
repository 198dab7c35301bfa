package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-jyotish/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"UserAgent", config.UserAgent},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"HorizonsURL", config.HorizonsURL},
		{"EnvPrefix", config.EnvPrefix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Greater(t, config.DefaultRefreshMin, 0, "Default refresh interval must be positive")
	assert.Equal(t, 365.25, config.DashaYearDays, "Dasha years are Julian years")
	assert.GreaterOrEqual(t, config.DefaultDashaDepth, config.DefaultCalendarDepth)
	assert.LessOrEqual(t, config.DefaultDashaDepth, config.MaxDashaDepth)
	assert.NotEmpty(t, config.DefaultDivisions)

	assert.Equal(t, 30*time.Second, config.HTTPTimeout)
}

// TestOrbs_Tighten ensures minor aspects never get wider orbs than major ones.
func TestOrbs_Tighten(t *testing.T) {
	assert.GreaterOrEqual(t, config.OrbConjunction, config.OrbSquare)
	assert.GreaterOrEqual(t, config.OrbSquare, config.OrbSextile)
	assert.GreaterOrEqual(t, config.OrbSextile, 6.0)
	assert.LessOrEqual(t, config.OrbConjunction, 8.0)
}

// TestUserAgent_Format ensures the UA string follows the standard format.
func TestUserAgent_Format(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.UserAgent, "Go-Jyotish/"), "UserAgent must start with AppName/")
}

// TestTimeoutsAndLimits ensures that operational constraints are reasonable.
func TestTimeoutsAndLimits(t *testing.T) {
	t.Parallel()

	assert.Greater(t, config.HTTPTimeout, 0*time.Second, "HTTPTimeout must be positive")
	assert.LessOrEqual(t, config.HTTPTimeout, 2*time.Minute, "HTTPTimeout should not be excessively long")
	assert.Greater(t, config.ShutdownTimeout, 0*time.Second, "ShutdownTimeout must be positive")
	assert.Less(t, config.DefaultEphemerisTimeout, config.HTTPTimeout, "ephemeris calls fail before the outer request")

	assert.Greater(t, config.MaxHTTPResponseSize, 0, "MaxHTTPResponseSize must be positive")
	// Large address books still fit, infinite streams do not.
	assert.GreaterOrEqual(t, int64(config.MaxHTTPResponseSize), int64(10*1024*1024))
	assert.Less(t, int64(config.MaxHTTPResponseSize), int64(1*1024*1024*1024), "MaxHTTPResponseSize should stay under 1GB to protect RAM")
}
