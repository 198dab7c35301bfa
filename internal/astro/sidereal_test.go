package astro_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-jyotish/internal/astro"
	jerrors "github.com/tartampluch/go-jyotish/internal/errors"
)

func TestGMST_J2000(t *testing.T) {
	assert.InDelta(t, 280.46061837, astro.GMST(astro.J2000), 1e-8)
}

func TestAscendant_EquatorMatchesRisingRA(t *testing.T) {
	// On the equator the rising point has right ascension RAMC + 90°.
	jd := astro.J2000
	ramc := astro.LocalSiderealTime(jd, 0)
	eps := astro.Obliquity(jd) * math.Pi / 180
	ra := (ramc + 90) * math.Pi / 180
	want := astro.Normalize(math.Atan2(math.Sin(ra), math.Cos(ra)*math.Cos(eps)) * 180 / math.Pi)

	got, err := astro.Ascendant(jd, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, want, got, 1e-9)
	assert.InDelta(t, 11.38, got, 0.01)
}

func TestAscendant_AheadOfMidheaven(t *testing.T) {
	jd := 2448026.875
	for _, lat := range []float64{-60, -33.9, 0, 28.6, 51.5, 66} {
		asc, err := astro.Ascendant(jd, lat, 77.2)
		require.NoError(t, err)
		mc := astro.Midheaven(jd, 77.2)
		arc := astro.Normalize(asc - mc)
		assert.Greater(t, arc, 0.0, "lat %v", lat)
		assert.Less(t, arc, 180.0, "lat %v", lat)
	}
}

func TestAscendant_PolarUndefined(t *testing.T) {
	for _, lat := range []float64{90, -90} {
		_, err := astro.Ascendant(astro.J2000, lat, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, jerrors.ErrAscendantUndefined))
	}
}

func TestPlacidus_Delhi(t *testing.T) {
	jd := 2448026.875
	cusps, err := astro.Placidus(jd, 28.6139, 77.209)
	require.NoError(t, err)
	require.Len(t, cusps, 12)

	asc, _ := astro.Ascendant(jd, 28.6139, 77.209)
	assert.InDelta(t, asc, cusps[0], 1e-9)
	assert.InDelta(t, astro.Midheaven(jd, 77.209), cusps[9], 1e-9)

	total := 0.0
	for i := range cusps {
		arc := astro.Normalize(cusps[(i+1)%12] - cusps[i])
		assert.Greater(t, arc, 0.0, "house %d", i+1)
		assert.Less(t, arc, 180.0, "house %d", i+1)
		total += arc
	}
	assert.InDelta(t, 360.0, total, 1e-9)
}

func TestPlacidus_EquatorIsFinite(t *testing.T) {
	cusps, err := astro.Placidus(astro.J2000, 0, 0)
	require.NoError(t, err)
	for i, c := range cusps {
		assert.False(t, math.IsNaN(c), "cusp %d", i+1)
	}
}

func TestPlacidus_CircumpolarFails(t *testing.T) {
	_, err := astro.Placidus(astro.J2000, 89, 0)
	assert.ErrorIs(t, err, astro.ErrCircumpolar)
}
