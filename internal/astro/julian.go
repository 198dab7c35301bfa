package astro

import (
	"math"
	"time"
)

const (
	// J2000 is the Julian Day of 2000-01-01T12:00:00 TT.
	J2000 = 2451545.0
	// DaysPerCentury is the length of a Julian century.
	DaysPerCentury = 36525.0
	// unixEpochJD is the Julian Day of 1970-01-01T00:00:00 UTC.
	unixEpochJD = 2440587.5
)

// gregorianStart is the Julian Day of 1582-10-15, the first Gregorian date.
const gregorianStart = 2299160.5

// CalendarToJD converts a calendar date with a fractional day to a Julian Day.
// Dates from 1582-10-15 use the Gregorian calendar, earlier ones the Julian.
func CalendarToJD(year, month int, day float64) float64 {
	y, m := float64(year), float64(month)
	if month <= 2 {
		y--
		m += 12
	}
	jd := math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + day - 1524.5
	if jd >= gregorianStart {
		a := math.Floor(y / 100)
		jd += 2 - a + math.Floor(a/4)
	}
	return jd
}

// JulianDay returns the Julian Day of an instant.
func JulianDay(t time.Time) float64 {
	u := t.UTC()
	frac := (float64(u.Hour()) +
		float64(u.Minute())/60 +
		(float64(u.Second())+float64(u.Nanosecond())/1e9)/3600) / 24
	return CalendarToJD(u.Year(), int(u.Month()), float64(u.Day())+frac)
}

// TimeOf converts a Julian Day back to a UTC instant, rounded to the millisecond.
func TimeOf(jd float64) time.Time {
	ms := math.Round((jd - unixEpochJD) * 86400 * 1000)
	return time.UnixMilli(int64(ms)).UTC()
}

// Centuries returns Julian centuries elapsed since J2000.
func Centuries(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}

// DecimalYear approximates the calendar year of a Julian Day.
func DecimalYear(jd float64) float64 {
	return 2000 + (jd-J2000)/365.25
}
