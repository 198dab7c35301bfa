package astro_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-jyotish/internal/astro"
)

func TestCalendarToJD(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		day   float64
		want  float64
	}{
		{"J2000 epoch", 2000, 1, 1.5, 2451545.0},
		{"Sputnik launch", 1957, 10, 4.81, 2436116.31},
		{"Julian calendar date", 333, 1, 27.5, 1842713.0},
		{"First Gregorian day", 1582, 10, 15, 2299160.5},
		{"Last Julian day", 1582, 10, 4, 2299159.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, astro.CalendarToJD(tt.year, tt.month, tt.day), 1e-9)
		})
	}
}

func TestJulianDay_RoundTrip(t *testing.T) {
	instant := time.Date(1990, 5, 15, 9, 0, 0, 0, time.UTC)
	jd := astro.JulianDay(instant)

	assert.InDelta(t, 2448026.875, jd, 1e-9)
	assert.True(t, instant.Equal(astro.TimeOf(jd)))
}

func TestJulianDay_IgnoresLocation(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*3600+1800)
	local := time.Date(1990, 5, 15, 14, 30, 0, 0, kolkata)
	assert.Equal(t, astro.JulianDay(local.UTC()), astro.JulianDay(local))
}

func TestDeltaT(t *testing.T) {
	assert.InDelta(t, 63.86, astro.DeltaT(2000), 1e-9)
	assert.InDelta(t, 66.7006, astro.DeltaT(2010), 1e-9)
	assert.InDelta(t, 45.45, astro.DeltaT(1975), 1e-9)

	// Continuous across the 2005 seam to within a second.
	assert.InDelta(t, astro.DeltaT(2004.9999), astro.DeltaT(2005.0), 1.0)
}

func TestTerrestrialTime(t *testing.T) {
	tt := astro.TerrestrialTime(astro.J2000)
	assert.InDelta(t, 63.86/86400, tt-astro.J2000, 1e-7)
}
