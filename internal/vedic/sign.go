package vedic

import (
	"fmt"
	"math"
)

// Sign is a zodiac sign numbered 1 (Aries) to 12 (Pisces).
type Sign int

const (
	Aries Sign = iota + 1
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

const (
	// SignCount is the number of zodiac signs.
	SignCount = 12
	// SignSpan is the width of a sign in degrees.
	SignSpan = 30.0
)

var signNames = [SignCount]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

var signSanskrit = [SignCount]string{
	"Mesha", "Vrishabha", "Mithuna", "Karka", "Simha", "Kanya",
	"Tula", "Vrishchika", "Dhanu", "Makara", "Kumbha", "Meena",
}

// Modality is the movable/fixed/dual classification of a sign.
type Modality int

const (
	Movable Modality = iota
	Fixed
	Dual
)

func (m Modality) String() string {
	switch m {
	case Movable:
		return "movable"
	case Fixed:
		return "fixed"
	case Dual:
		return "dual"
	}
	return fmt.Sprintf("Modality(%d)", int(m))
}

// MarshalText encodes the modality by name.
func (m Modality) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Element is the classical element of a sign.
type Element string

const (
	Fire  Element = "fire"
	Earth Element = "earth"
	Air   Element = "air"
	Water Element = "water"
)

// SignOf returns the sign containing the longitude, which must be in [0,360).
func SignOf(longitude float64) Sign {
	s := Sign(math.Floor(longitude/SignSpan)) + 1
	if s > Pisces {
		s = Pisces
	}
	return s
}

// Valid reports whether s is in 1..12.
func (s Sign) Valid() bool {
	return s >= Aries && s <= Pisces
}

// Add moves n signs forward cyclically. Add(0) is the identity.
func (s Sign) Add(n int) Sign {
	return Sign(((int(s)-1+n)%SignCount+SignCount)%SignCount + 1)
}

// Start returns the longitude where the sign begins.
func (s Sign) Start() float64 {
	return float64(s-1) * SignSpan
}

// Modality classifies the sign as movable (1,4,7,10), fixed (2,5,8,11) or dual.
func (s Sign) Modality() Modality {
	switch (int(s) - 1) % 3 {
	case 0:
		return Movable
	case 1:
		return Fixed
	default:
		return Dual
	}
}

// Element cycles fire, earth, air, water from Aries.
func (s Sign) Element() Element {
	return [...]Element{Fire, Earth, Air, Water}[(int(s)-1)%4]
}

// Odd reports whether the sign has an odd number (Aries, Gemini, ...).
func (s Sign) Odd() bool {
	return int(s)%2 == 1
}

// Sanskrit returns the traditional name of the sign.
func (s Sign) Sanskrit() string {
	if !s.Valid() {
		return ""
	}
	return signSanskrit[s-1]
}

func (s Sign) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	return signNames[s-1]
}
