package astro_test

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-jyotish/internal/astro"
	jerrors "github.com/tartampluch/go-jyotish/internal/errors"
)

func TestParseInstant_Zones(t *testing.T) {
	want := time.Date(1990, 5, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date string
		time string
		zone string
		want time.Time
	}{
		{"Fixed offset", "1990-05-15", "14:30", "+05:30", want},
		{"Compact offset", "1990-05-15", "14:30", "+0530", want},
		{"IANA zone", "1990-05-15", "14:30:00", "Asia/Kolkata", want},
		{"UTC literal", "1990-05-15", "09:00", "UTC", want},
		{"GMT literal", "1990-05-15", "09:00", "gmt", want},
		{"Negative offset", "1990-05-15", "04:00", "-05:00", want},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, err := astro.ParseInstant(tt.date, tt.time, tt.zone)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(inst.UTC), "got %s", inst.UTC)
			assert.InDelta(t, astro.JulianDay(tt.want), inst.JulianDay, 1e-9)
			assert.Empty(t, inst.Warnings)
		})
	}
}

func TestParseInstant_Invalid(t *testing.T) {
	tests := []struct {
		name string
		date string
		time string
		zone string
	}{
		{"Unknown zone", "1990-05-15", "14:30", "Mars/Olympus_Mons"},
		{"Empty zone", "1990-05-15", "14:30", ""},
		{"Local is not a zone", "1990-05-15", "14:30", "Local"},
		{"Offset too wide", "1990-05-15", "14:30", "+15:00"},
		{"Offset minutes", "1990-05-15", "14:30", "+05:75"},
		{"Bad date", "15/05/1990", "14:30", "UTC"},
		{"Impossible date", "1990-02-30", "14:30", "UTC"},
		{"Bad time", "1990-05-15", "2pm", "UTC"},
		{"DST gap", "2021-03-14", "02:30", "America/New_York"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := astro.ParseInstant(tt.date, tt.time, tt.zone)
			require.Error(t, err)
			assert.True(t, errors.Is(err, jerrors.ErrInvalidTemporalInput), "got %v", err)
		})
	}
}

func TestParseInstant_DSTOverlapPicksEarlier(t *testing.T) {
	inst, err := astro.ParseInstant("2021-11-07", "01:30", "America/New_York")
	require.NoError(t, err)

	// 01:30 EDT (UTC-4) happens before 01:30 EST (UTC-5).
	assert.True(t, time.Date(2021, 11, 7, 5, 30, 0, 0, time.UTC).Equal(inst.UTC), "got %s", inst.UTC)
	assert.Equal(t, -4*3600, inst.OffsetSeconds)
	assert.Len(t, inst.Warnings, 1)
}
