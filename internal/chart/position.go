package chart

import (
	"github.com/tartampluch/go-jyotish/internal/astro"
	"github.com/tartampluch/go-jyotish/internal/vedic"
)

// BodyPosition is the resolved sidereal placement of one body.
type BodyPosition struct {
	Body              vedic.Body    `json:"body" yaml:"body"`
	TropicalLongitude float64       `json:"tropicalLongitude" yaml:"tropicalLongitude"`
	SiderealLongitude float64       `json:"siderealLongitude" yaml:"siderealLongitude"`
	Speed             float64       `json:"speed" yaml:"speed"`
	Retrograde        bool          `json:"retrograde" yaml:"retrograde"`
	Sign              vedic.Sign    `json:"sign" yaml:"sign"`
	DegreeInSign      float64       `json:"degreeInSign" yaml:"degreeInSign"`
	Nakshatra         int           `json:"nakshatra" yaml:"nakshatra"`
	NakshatraName     string        `json:"nakshatraName" yaml:"nakshatraName"`
	Pada              int           `json:"pada" yaml:"pada"`
	Dignity           vedic.Dignity `json:"dignity" yaml:"dignity"`
	Combust           bool          `json:"combust" yaml:"combust"`
	House             int           `json:"house" yaml:"house"`
}

// Ascendant is the rising point. It has no speed and is always in house 1.
type Ascendant struct {
	TropicalLongitude float64    `json:"tropicalLongitude" yaml:"tropicalLongitude"`
	SiderealLongitude float64    `json:"siderealLongitude" yaml:"siderealLongitude"`
	Sign              vedic.Sign `json:"sign" yaml:"sign"`
	DegreeInSign      float64    `json:"degreeInSign" yaml:"degreeInSign"`
	Nakshatra         int        `json:"nakshatra" yaml:"nakshatra"`
	NakshatraName     string     `json:"nakshatraName" yaml:"nakshatraName"`
	Pada              int        `json:"pada" yaml:"pada"`
	House             int        `json:"house" yaml:"house"`
}

// zodiacal holds the fields shared by bodies and the ascendant.
type zodiacal struct {
	sidereal  float64
	sign      vedic.Sign
	degree    float64
	nakshatra int
	pada      int
}

func place(sidereal float64) zodiacal {
	sign := vedic.SignOf(sidereal)
	degree := sidereal - sign.Start()
	if degree >= vedic.SignSpan {
		degree = 0
	}
	idx, pada, _ := vedic.NakshatraOf(sidereal)
	return zodiacal{sidereal: sidereal, sign: sign, degree: degree, nakshatra: idx, pada: pada}
}

// newBodyPosition derives the zodiacal fields of a body from its sidereal longitude.
func newBodyPosition(tables *vedic.Tables, body vedic.Body, tropical, sidereal, speed float64) BodyPosition {
	z := place(sidereal)
	return BodyPosition{
		Body:              body,
		TropicalLongitude: astro.Normalize(tropical),
		SiderealLongitude: z.sidereal,
		Speed:             speed,
		Retrograde:        speed < 0,
		Sign:              z.sign,
		DegreeInSign:      z.degree,
		Nakshatra:         z.nakshatra,
		NakshatraName:     vedic.NakshatraName(z.nakshatra),
		Pada:              z.pada,
		Dignity:           tables.Dignity(body, z.sign),
	}
}

func newAscendant(tropical, ayanamsa float64) Ascendant {
	z := place(astro.Sidereal(tropical, ayanamsa))
	return Ascendant{
		TropicalLongitude: astro.Normalize(tropical),
		SiderealLongitude: z.sidereal,
		Sign:              z.sign,
		DegreeInSign:      z.degree,
		Nakshatra:         z.nakshatra,
		NakshatraName:     vedic.NakshatraName(z.nakshatra),
		Pada:              z.pada,
		House:             1,
	}
}
