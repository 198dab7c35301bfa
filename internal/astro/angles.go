package astro

import "math"

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

// Normalize maps an angle in degrees into [0,360).
func Normalize(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	if m >= 360 {
		m = 0
	}
	return m
}

// Separation returns the shorter-arc distance between two longitudes, in [0,180].
func Separation(a, b float64) float64 {
	d := math.Abs(Normalize(a) - Normalize(b))
	return math.Min(d, 360-d)
}

// Delta returns the signed shortest rotation from a to b, in (-180,180].
func Delta(a, b float64) float64 {
	d := Normalize(b - a)
	if d > 180 {
		d -= 360
	}
	return d
}

func sinD(x float64) float64 { return math.Sin(x * deg2rad) }
func cosD(x float64) float64 { return math.Cos(x * deg2rad) }
func tanD(x float64) float64 { return math.Tan(x * deg2rad) }

func atan2D(y, x float64) float64 { return math.Atan2(y, x) * rad2deg }
func asinD(x float64) float64     { return math.Asin(x) * rad2deg }
