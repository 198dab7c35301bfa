package ephemeris

import (
	"math"

	"github.com/tartampluch/go-jyotish/internal/vedic"
)

// elements are J2000 Keplerian mean elements and their rates per century
// (Standish, valid 1800–2050): semi-major axis (au), eccentricity,
// inclination, mean longitude, longitude of perihelion and of the
// ascending node (degrees).
type elements struct {
	a, e, i, l, peri, node                   float64
	aDot, eDot, iDot, lDot, periDot, nodeDot float64
}

var earthMoonBarycenter = elements{
	1.00000261, 0.01671123, -0.00001531, 100.46457166, 102.93768193, 0.0,
	0.00000562, -0.00004392, -0.01294668, 35999.37244981, 0.32327364, 0.0,
}

var planetElements = map[vedic.Body]elements{
	vedic.Mercury: {
		0.38709927, 0.20563593, 7.00497902, 252.25032350, 77.45779628, 48.33076593,
		0.00000037, 0.00001906, -0.00594749, 149472.67411175, 0.16047689, -0.12534081,
	},
	vedic.Venus: {
		0.72333566, 0.00677672, 3.39467605, 181.97909950, 131.60246718, 76.67984255,
		0.00000390, -0.00004107, -0.00078890, 58517.81538729, 0.00268329, -0.27769418,
	},
	vedic.Mars: {
		1.52371034, 0.09339410, 1.84969142, -4.55343205, -23.94362959, 49.55953891,
		0.00001847, 0.00007882, -0.00813131, 19140.30268499, 0.44441088, -0.29257343,
	},
	vedic.Jupiter: {
		5.20288700, 0.04838624, 1.30439695, 34.39644051, 14.72847983, 100.47390909,
		-0.00011607, -0.00013253, -0.00183714, 3034.74612775, 0.21252668, 0.20469106,
	},
	vedic.Saturn: {
		9.53667594, 0.05386179, 2.48599187, 49.95424423, 92.59887831, 113.66242448,
		-0.00125060, -0.00050991, 0.00193609, 1222.49362201, -0.41897216, -0.28867794,
	},
}

// heliocentric returns J2000 ecliptic rectangular coordinates in au.
func (el elements) heliocentric(t float64) (x, y, z float64) {
	a := el.a + el.aDot*t
	e := el.e + el.eDot*t
	inc := el.i + el.iDot*t
	l := el.l + el.lDot*t
	peri := el.peri + el.periDot*t
	node := el.node + el.nodeDot*t

	omega := peri - node
	m := math.Remainder(l-peri, 360)
	ecc := solveKepler(m*math.Pi/180, e)

	xp := a * (math.Cos(ecc) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(ecc)

	co, so := cos(omega), sin(omega)
	cn, sn := cos(node), sin(node)
	ci, si := cos(inc), sin(inc)

	x = (co*cn-so*sn*ci)*xp + (-so*cn-co*sn*ci)*yp
	y = (co*sn+so*cn*ci)*xp + (-so*sn+co*cn*ci)*yp
	z = (so*si)*xp + (co*si)*yp
	return x, y, z
}

// solveKepler returns the eccentric anomaly for mean anomaly m (radians).
func solveKepler(m, e float64) float64 {
	ecc := m + e*math.Sin(m)
	for iter := 0; iter < 30; iter++ {
		delta := (ecc - e*math.Sin(ecc) - m) / (1 - e*math.Cos(ecc))
		ecc -= delta
		if math.Abs(delta) < 1e-12 {
			break
		}
	}
	return ecc
}

// planetLongitude returns the geometric geocentric longitude referred to the
// J2000 ecliptic and equinox.
func planetLongitude(t float64, body vedic.Body) float64 {
	el, ok := planetElements[body]
	if !ok {
		return math.NaN()
	}
	px, py, _ := el.heliocentric(t)
	ex, ey, _ := earthMoonBarycenter.heliocentric(t)
	return math.Atan2(py-ey, px-ex) * 180 / math.Pi
}
