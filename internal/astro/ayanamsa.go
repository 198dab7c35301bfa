package astro

// lahiriAtJ2000 is the Lahiri (Chitrapaksha) ayanamsa at J2000.0, in degrees.
const lahiriAtJ2000 = 23.857092

// Lahiri returns the Lahiri ayanamsa in degrees at a Julian Day.
// It applies the IAU general precession in longitude to the J2000 value,
// so the result varies smoothly with time.
func Lahiri(jd float64) float64 {
	t := Centuries(jd)
	return lahiriAtJ2000 + (5028.796195*t+1.1054348*t*t)/3600
}

// Sidereal converts a tropical longitude to sidereal using the given ayanamsa.
func Sidereal(tropical, ayanamsa float64) float64 {
	return Normalize(tropical - ayanamsa)
}
