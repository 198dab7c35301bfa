package engine

import (
	"strings"
	"testing"

	"github.com/emersion/go-vcard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/go-jyotish/internal/config"
)

func TestParseBirthday(t *testing.T) {
	tests := []struct {
		in        string
		date      string
		clock     string
		zone      string
		expectErr bool
	}{
		{"19900515T103000", "1990-05-15", "10:30:00", "", false},
		{"19900515T1030", "1990-05-15", "10:30:00", "", false},
		{"1990-05-15T10:30:15", "1990-05-15", "10:30:15", "", false},
		{"1990-05-15T10:30", "1990-05-15", "10:30:00", "", false},
		{"19900515T050000Z", "1990-05-15", "05:00:00", "UTC", false},
		{"1990-05-15T10:30:00+05:30", "1990-05-15", "10:30:00", "+05:30", false},
		{"19900515T103000-0500", "1990-05-15", "10:30:00", "-0500", false},
		{"19900515T103000+02", "1990-05-15", "10:30:00", "+02:00", false},
		{"1990-05-15", "", "", "", true},
		{"--0515", "", "", "", true},
		{"1990-05-15T25:00", "", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			date, clock, zone, err := parseBirthday(tt.in)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.date, date)
			assert.Equal(t, tt.clock, clock)
			assert.Equal(t, tt.zone, zone)
		})
	}
}

func TestParseGeo(t *testing.T) {
	tests := []struct {
		in        string
		lat, lon  float64
		expectErr bool
	}{
		{"geo:28.6139,77.209", 28.6139, 77.209, false},
		{"GEO:-33.86,151.21;u=35", -33.86, 151.21, false},
		{"48.85;2.35", 48.85, 2.35, false},
		{"48.85", 0, 0, true},
		{"geo:north,east", 0, 0, true},
	}
	for _, tt := range tests {
		lat, lon, err := parseGeo(tt.in)
		if tt.expectErr {
			assert.ErrorContains(t, err, config.ErrGeoFormat, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.lat, lat)
		assert.Equal(t, tt.lon, lon)
	}
}

func TestBirthFromCard_Reasons(t *testing.T) {
	card := func(fields map[string]string) vcard.Card {
		c := make(vcard.Card)
		for k, v := range fields {
			c.SetValue(k, v)
		}
		return c
	}

	tests := []struct {
		name   string
		fields map[string]string
		reason string
	}{
		{"complete", map[string]string{"FN": "Asha", "BDAY": "19900515T103000", "TZ": "Asia/Kolkata", "GEO": "geo:28.6,77.2"}, ""},
		{"zone from BDAY", map[string]string{"FN": "Ravi", "BDAY": "19900515T050000Z", "GEO": "geo:28.6,77.2"}, ""},
		{"no BDAY", map[string]string{"FN": "Mina"}, config.ReasonNoBirthday},
		{"date only", map[string]string{"FN": "Mina", "BDAY": "1990-05-15"}, config.ReasonNoBirthTime},
		{"no zone", map[string]string{"FN": "Mina", "BDAY": "19900515T103000", "GEO": "geo:1,2"}, config.ReasonNoZone},
		{"no geo", map[string]string{"FN": "Mina", "BDAY": "19900515T103000", "TZ": "UTC"}, config.ReasonNoGeo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, reason := birthFromCard(card(tt.fields))
			assert.Equal(t, tt.reason, reason)
			assert.Equal(t, tt.fields["FN"], in.Name)
			if reason == "" {
				assert.NoError(t, in.Validate())
			}
		})
	}
}

func TestReadRecords_TOML(t *testing.T) {
	const manifest = `
[[person]]
name = "Asha"
date = "1990-05-15"
time = "10:30"
zone = "Asia/Kolkata"
latitude = 28.6139
longitude = 77.209

[[person]]
name = "Equator baby"
date = "2001-01-01"
time = "00:00"
zone = "UTC"
latitude = 0.0
longitude = 0.0

[[person]]
name = "No coordinates"
date = "1985-02-01"
time = "08:00"
zone = "Europe/Paris"
`
	got, skipped, err := readRecords(strings.NewReader(manifest))
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, got, 2)
	assert.Equal(t, "Asha", got[0].Name)
	assert.Equal(t, 28.6139, got[0].Latitude)
	assert.Equal(t, "Equator baby", got[1].Name, "explicit 0° is kept")
}

func TestReadRecords_Errors(t *testing.T) {
	_, _, err := readRecords(strings.NewReader("[[person]\nname ="))
	assert.ErrorContains(t, err, config.ErrTOMLParse)

	got, skipped, err := readRecords(strings.NewReader("\r\nBEGIN:VCARD\r\nVERSION:4.0\r\nFN:Solo\r\nEND:VCARD\r\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 1, skipped)
}
