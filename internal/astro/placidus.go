package astro

import (
	"errors"
	"fmt"
	"math"
)

const (
	placidusMaxIter   = 100
	placidusTolerance = 1e-9
)

// ErrCircumpolar is returned when a house cusp never crosses the horizon.
var ErrCircumpolar = errors.New("cusp is circumpolar at this latitude")

// Placidus returns the twelve tropical Placidus cusps, house 1 first.
func Placidus(jd, latitude, longitude float64) ([]float64, error) {
	asc, err := Ascendant(jd, latitude, longitude)
	if err != nil {
		return nil, err
	}
	ramc := LocalSiderealTime(jd, longitude)
	eps := Obliquity(jd)
	mc := Midheaven(jd, longitude)

	type cuspSpec struct {
		house    int
		fraction float64
		above    bool
	}
	specs := []cuspSpec{
		{11, 1.0 / 3, true},
		{12, 2.0 / 3, true},
		{2, 2.0 / 3, false},
		{3, 1.0 / 3, false},
	}
	solved := make(map[int]float64, len(specs))
	for _, s := range specs {
		c, err := placidusCusp(ramc, eps, latitude, s.fraction, s.above)
		if err != nil {
			return nil, fmt.Errorf("house %d: %w", s.house, err)
		}
		solved[s.house] = c
	}

	return []float64{
		asc,
		solved[2],
		solved[3],
		Normalize(mc + 180),
		Normalize(solved[11] + 180),
		Normalize(solved[12] + 180),
		Normalize(asc + 180),
		Normalize(solved[2] + 180),
		Normalize(solved[3] + 180),
		mc,
		solved[11],
		solved[12],
	}, nil
}

// placidusCusp iterates the semi-arc condition for one intermediate cusp.
// Cusps above the horizon trisect the diurnal semi-arc east of the MC,
// cusps below trisect the nocturnal semi-arc east of the IC.
func placidusCusp(ramc, eps, latitude, fraction float64, above bool) (float64, error) {
	ra := ramc + fraction*90
	if !above {
		ra = ramc + 180 - fraction*90
	}

	for iter := 0; iter < placidusMaxIter; iter++ {
		lambda := atan2D(sinD(ra), cosD(ra)*cosD(eps))
		dec := asinD(sinD(eps) * sinD(lambda))
		x := tanD(latitude) * tanD(dec)
		if math.Abs(x) >= 1 || math.IsNaN(x) {
			return 0, ErrCircumpolar
		}
		ad := asinD(x)

		next := ramc + fraction*(90+ad)
		if !above {
			next = ramc + 180 - fraction*(90-ad)
		}
		if math.Abs(Delta(ra, next)) < placidusTolerance {
			ra = next
			return Normalize(atan2D(sinD(ra), cosD(ra)*cosD(eps))), nil
		}
		ra = next
	}
	return 0, errors.New("placidus iteration did not converge")
}
