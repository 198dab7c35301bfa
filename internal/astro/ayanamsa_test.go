package astro_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-jyotish/internal/astro"
)

func TestLahiri_J2000(t *testing.T) {
	assert.InDelta(t, 23.857092, astro.Lahiri(astro.J2000), 1e-9)
}

func TestLahiri_Smooth(t *testing.T) {
	// Precession is roughly 50.3" per year, about 0.0000383° per day.
	newYear := astro.CalendarToJD(2024, 1, 1)
	before := astro.Lahiri(newYear - 0.001)
	after := astro.Lahiri(newYear + 0.001)
	assert.Greater(t, after, before)
	assert.Less(t, after-before, 1e-6, "no jump at year boundary")

	perYear := astro.Lahiri(astro.J2000+365.25) - astro.Lahiri(astro.J2000)
	assert.InDelta(t, 50.29/3600, perYear, 0.01/3600)
}

func TestSidereal_Deterministic(t *testing.T) {
	jd := 2448026.875
	ayan := astro.Lahiri(jd)
	first := astro.Sidereal(10.0, ayan)
	for iter := 0; iter < 5; iter++ {
		assert.Equal(t, first, astro.Sidereal(10.0, astro.Lahiri(jd)))
	}
	assert.GreaterOrEqual(t, first, 0.0)
	assert.Less(t, first, 360.0)
}

func TestNormalizeAndSeparation(t *testing.T) {
	assert.Equal(t, 0.0, astro.Normalize(360))
	assert.Equal(t, 350.0, astro.Normalize(-10))
	assert.InDelta(t, 4.76, astro.Separation(187.24, 192.0), 1e-9)
	assert.InDelta(t, 20.0, astro.Separation(350, 10), 1e-9)
	assert.InDelta(t, 180.0, astro.Separation(0, 180), 1e-9)
	assert.InDelta(t, -20.0, astro.Delta(10, 350), 1e-9)
	assert.InDelta(t, 20.0, astro.Delta(350, 10), 1e-9)
}
