package ephemeris

import (
	"context"
	"fmt"
	"math"

	"github.com/tartampluch/go-jyotish/internal/astro"
	"github.com/tartampluch/go-jyotish/internal/config"
	jerrors "github.com/tartampluch/go-jyotish/internal/errors"
	"github.com/tartampluch/go-jyotish/internal/vedic"
)

const opAnalytic = "Analytic.PositionAt"

// Analytic computes low-precision positions offline: Meeus series for the
// Sun, Moon and nodes, Keplerian mean elements for the planets. Accuracy is a
// few arc-minutes between 1800 and 2050.
type Analytic struct {
	Node NodeModel
}

// PositionAt implements Provider.
func (a *Analytic) PositionAt(ctx context.Context, jd float64, body vedic.Body) (Reading, error) {
	if err := ctx.Err(); err != nil {
		return Reading{}, err
	}
	if body == vedic.Ketu || !body.Valid() {
		return Reading{}, jerrors.New(jerrors.EphemerisUnavailable, opAnalytic, config.ErrEphemerisBody).
			WithDetails(body.String())
	}

	lon := func(jdUT float64) float64 {
		return a.longitude(astro.TerrestrialTime(jdUT), body)
	}

	h := config.SpeedStepDays
	l := lon(jd)
	if math.IsNaN(l) || math.IsInf(l, 0) {
		return Reading{}, jerrors.New(jerrors.EphemerisUnavailable, opAnalytic, config.ErrEphemerisRange).
			WithDetails(fmt.Sprintf("%s at JD %.5f", body, jd))
	}
	speed := astro.Delta(lon(jd-h), lon(jd+h)) / (2 * h)
	return Reading{Longitude: l, Speed: speed}, nil
}

// longitude returns the apparent tropical longitude of date at a TT Julian Day.
func (a *Analytic) longitude(jde float64, body vedic.Body) float64 {
	t := astro.Centuries(jde)
	dpsi := nutationLongitude(t)

	switch body {
	case vedic.Sun:
		return astro.Normalize(sunTrueLongitude(t) + dpsi - 0.00569)
	case vedic.Moon:
		return astro.Normalize(moonLongitude(t) + dpsi)
	case vedic.Rahu:
		if a.Node == NodeTrue {
			return astro.Normalize(trueNode(t))
		}
		return astro.Normalize(meanNode(t))
	default:
		return astro.Normalize(planetLongitude(t, body) + generalPrecession(t) + dpsi)
	}
}

// generalPrecession is the accumulated precession in longitude since J2000, in degrees.
func generalPrecession(t float64) float64 {
	return (5028.796195*t + 1.1054348*t*t) / 3600
}

// nutationLongitude returns Δψ in degrees (Meeus ch. 22, low precision).
func nutationLongitude(t float64) float64 {
	omega := 125.04452 - 1934.136261*t
	lSun := 280.4665 + 36000.7698*t
	lMoon := 218.3165 + 481267.8813*t
	arcsec := -17.20*sin(omega) - 1.32*sin(2*lSun) - 0.23*sin(2*lMoon) + 0.21*sin(2*omega)
	return arcsec / 3600
}

// sunTrueLongitude follows Meeus ch. 25.
func sunTrueLongitude(t float64) float64 {
	l0 := 280.46646 + 36000.76983*t + 0.0003032*t*t
	m := 357.52911 + 35999.05029*t - 0.0001537*t*t
	c := (1.914602-0.004817*t-0.000014*t*t)*sin(m) +
		(0.019993-0.000101*t)*sin(2*m) +
		0.000289*sin(3*m)
	return l0 + c
}

type lunarTerm struct {
	d, m, mp, f int
	coeff       float64 // 1e-6 degree
}

// Principal longitude terms of Meeus table 47.A.
var lunarTerms = []lunarTerm{
	{0, 0, 1, 0, 6288774}, {2, 0, -1, 0, 1274027}, {2, 0, 0, 0, 658314},
	{0, 0, 2, 0, 213618}, {0, 1, 0, 0, -185116}, {0, 0, 0, 2, -114332},
	{2, 0, -2, 0, 58793}, {2, -1, -1, 0, 57066}, {2, 0, 1, 0, 53322},
	{2, -1, 0, 0, 45758}, {0, 1, -1, 0, -40923}, {1, 0, 0, 0, -34720},
	{0, 1, 1, 0, -30383}, {2, 0, 0, -2, 15327}, {0, 0, 1, 2, -12528},
	{0, 0, 1, -2, 10980}, {4, 0, -1, 0, 10675}, {0, 0, 3, 0, 10034},
	{4, 0, -2, 0, 8548}, {2, 1, -1, 0, -7888}, {2, 1, 0, 0, -6766},
	{1, 0, -1, 0, -5163}, {1, 1, 0, 0, 4987}, {2, -1, 1, 0, 4036},
	{2, 0, 2, 0, 3994}, {4, 0, 0, 0, 3861}, {2, 0, -3, 0, 3665},
	{0, 1, -2, 0, -2689}, {2, 0, -1, 2, -2602}, {2, -1, -2, 0, 2390},
	{1, 0, 1, 0, -2348}, {2, -2, 0, 0, 2236}, {0, 1, 2, 0, -2120},
	{0, 2, 0, 0, -2069}, {2, -2, -1, 0, 2048}, {2, 0, 1, -2, -1773},
	{2, 0, 0, 2, -1595}, {4, -1, -1, 0, 1215}, {0, 0, 2, 2, -1110},
}

type lunarArgs struct {
	lp, d, m, mp, f float64
}

func lunarArguments(t float64) lunarArgs {
	return lunarArgs{
		lp: 218.3164477 + 481267.88123421*t - 0.0015786*t*t + t*t*t/538841,
		d:  297.8501921 + 445267.1114034*t - 0.0018819*t*t + t*t*t/545868,
		m:  357.5291092 + 35999.0502909*t - 0.0001536*t*t,
		mp: 134.9633964 + 477198.8675055*t + 0.0087414*t*t + t*t*t/69699,
		f:  93.2720950 + 483202.0175233*t - 0.0036539*t*t,
	}
}

// moonLongitude follows Meeus ch. 47 with the principal periodic terms.
func moonLongitude(t float64) float64 {
	a := lunarArguments(t)
	e := 1 - 0.002516*t - 0.0000074*t*t

	sum := 0.0
	for _, term := range lunarTerms {
		arg := float64(term.d)*a.d + float64(term.m)*a.m + float64(term.mp)*a.mp + float64(term.f)*a.f
		c := term.coeff
		switch term.m {
		case 1, -1:
			c *= e
		case 2, -2:
			c *= e * e
		}
		sum += c * sin(arg)
	}

	a1 := 119.75 + 131.849*t
	a2 := 53.09 + 479264.290*t
	sum += 3958*sin(a1) + 1962*sin(a.lp-a.f) + 318*sin(a2)
	return a.lp + sum/1e6
}

// meanNode is the mean longitude of the ascending lunar node (Meeus 47.7).
func meanNode(t float64) float64 {
	return 125.0445479 - 1934.1362891*t + 0.0020754*t*t + t*t*t/467441 - t*t*t*t/60616000
}

// trueNode adds the main periodic terms to the mean node.
func trueNode(t float64) float64 {
	a := lunarArguments(t)
	return meanNode(t) -
		1.4979*sin(2*(a.d-a.f)) -
		0.1500*sin(a.m) -
		0.1226*sin(2*a.d) +
		0.1176*sin(2*a.f) -
		0.0801*sin(2*(a.mp-a.f))
}

func sin(deg float64) float64 { return math.Sin(deg * math.Pi / 180) }
func cos(deg float64) float64 { return math.Cos(deg * math.Pi / 180) }
