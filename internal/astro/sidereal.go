package astro

import (
	"math"

	"github.com/tartampluch/go-jyotish/internal/config"
	jerrors "github.com/tartampluch/go-jyotish/internal/errors"
)

// PolarLimit is the latitude beyond which the ascendant is undefined.
const PolarLimit = 89.9999

// Obliquity returns the mean obliquity of the ecliptic in degrees.
func Obliquity(jd float64) float64 {
	t := Centuries(jd)
	return poly(t, 23.439291111, -0.0130041667, -1.6389e-7, 5.0361e-7)
}

// GMST returns Greenwich mean sidereal time in degrees for a UT Julian Day.
func GMST(jd float64) float64 {
	t := Centuries(jd)
	return Normalize(280.46061837 + 360.98564736629*(jd-J2000) + 0.000387933*t*t - t*t*t/38710000)
}

// LocalSiderealTime returns the right ascension of the meridian (RAMC) in
// degrees for an east-positive geographic longitude.
func LocalSiderealTime(jd, longitude float64) float64 {
	return Normalize(GMST(jd) + longitude)
}

// Midheaven returns the tropical longitude of the MC.
func Midheaven(jd, longitude float64) float64 {
	ramc := LocalSiderealTime(jd, longitude)
	eps := Obliquity(jd)
	return Normalize(atan2D(sinD(ramc), cosD(ramc)*cosD(eps)))
}

// Ascendant returns the tropical longitude of the ecliptic point rising on
// the eastern horizon.
func Ascendant(jd, latitude, longitude float64) (float64, error) {
	if math.Abs(latitude) >= PolarLimit {
		return 0, jerrors.New(jerrors.AscendantUndefined, "Ascendant", config.ErrAscendantPolar)
	}
	ramc := LocalSiderealTime(jd, longitude)
	eps := Obliquity(jd)

	y := cosD(ramc)
	x := -(sinD(ramc)*cosD(eps) + tanD(latitude)*sinD(eps))
	asc := atan2D(y, x)
	if math.IsNaN(asc) || math.IsInf(asc, 0) {
		return 0, jerrors.New(jerrors.AscendantUndefined, "Ascendant", config.ErrAscendantFinite)
	}
	return Normalize(asc), nil
}
