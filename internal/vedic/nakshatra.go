package vedic

import "math"

const (
	// NakshatraCount is the number of lunar mansions.
	NakshatraCount = 27
	// NakshatraSpan is 13°20′.
	NakshatraSpan = 360.0 / NakshatraCount
	// PadaSpan is 3°20′.
	PadaSpan = NakshatraSpan / 4
)

var nakshatraNames = [NakshatraCount]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni", "Uttara Phalguni",
	"Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// NakshatraName returns the name of the nakshatra at index 0..26.
func NakshatraName(index int) string {
	if index < 0 || index >= NakshatraCount {
		return ""
	}
	return nakshatraNames[index]
}

// NakshatraOf returns the nakshatra index, pada (1-4) and the fraction
// already traversed within the nakshatra for a sidereal longitude in [0,360).
func NakshatraOf(longitude float64) (index, pada int, elapsed float64) {
	index = int(math.Floor(longitude / NakshatraSpan))
	if index >= NakshatraCount {
		index = NakshatraCount - 1
	}
	within := longitude - float64(index)*NakshatraSpan
	pada = int(math.Floor(within/PadaSpan)) + 1
	if pada > 4 {
		pada = 4
	}
	elapsed = within / NakshatraSpan
	if elapsed >= 1 {
		elapsed = math.Nextafter(1, 0)
	}
	return index, pada, elapsed
}
