package chart

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/tartampluch/go-jyotish/internal/astro"
	"github.com/tartampluch/go-jyotish/internal/config"
	"github.com/tartampluch/go-jyotish/internal/vedic"
)

// HouseSystem names a house division.
type HouseSystem string

const (
	WholeSign HouseSystem = config.HouseWholeSign
	Placidus  HouseSystem = config.HousePlacidus
)

// ParseHouseSystem validates a house system name.
func ParseHouseSystem(s string) (HouseSystem, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case strings.ToLower(string(WholeSign)), "whole-sign", "whole_sign":
		return WholeSign, nil
	case string(Placidus):
		return Placidus, nil
	}
	return "", fmt.Errorf("%s: %q", config.ErrHouseSystem, s)
}

// HouseCusp is the start of one house.
type HouseCusp struct {
	House     int        `json:"house" yaml:"house"`
	Longitude float64    `json:"longitude" yaml:"longitude"`
	Sign      vedic.Sign `json:"sign" yaml:"sign"`
}

// Houses is the outcome of house assignment.
type Houses struct {
	Cusps []HouseCusp `json:"cusps" yaml:"cusps"`
	// SystemUsed differs from the requested system after a fallback.
	SystemUsed     HouseSystem `json:"systemUsed" yaml:"systemUsed"`
	FallbackReason string      `json:"fallbackReason,omitempty" yaml:"fallbackReason,omitempty"`
}

// WholeSignHouse returns the house of sign s counted from the ascendant sign.
func WholeSignHouse(ascendant, s vedic.Sign) int {
	return (int(s)-int(ascendant)+vedic.SignCount)%vedic.SignCount + 1
}

// HouseOf returns the house containing a sidereal longitude.
func (h Houses) HouseOf(longitude float64) int {
	if h.SystemUsed == WholeSign {
		return WholeSignHouse(h.Cusps[0].Sign, vedic.SignOf(longitude))
	}
	for i, c := range h.Cusps {
		next := h.Cusps[(i+1)%len(h.Cusps)]
		span := astro.Normalize(next.Longitude - c.Longitude)
		if astro.Normalize(longitude-c.Longitude) < span {
			return c.House
		}
	}
	return h.Cusps[len(h.Cusps)-1].House
}

// HouseAssigner divides the chart into twelve houses.
type HouseAssigner struct {
	System HouseSystem
}

// Assign builds the houses for the chart. A cuspal system that cannot
// produce a valid set of cusps falls back to whole-sign houses; the result
// records the reason.
func (a HouseAssigner) Assign(jd, latitude, longitude, ayanamsa float64, asc Ascendant) Houses {
	if a.System != Placidus {
		return wholeSignHouses(asc)
	}

	tropical, err := astro.Placidus(jd, latitude, longitude)
	if err == nil {
		sidereal := make([]float64, len(tropical))
		for i, c := range tropical {
			sidereal[i] = astro.Sidereal(c, ayanamsa)
		}
		if err = ValidateCusps(sidereal, asc.SiderealLongitude); err == nil {
			cusps := make([]HouseCusp, len(sidereal))
			for i, c := range sidereal {
				cusps[i] = HouseCusp{House: i + 1, Longitude: c, Sign: vedic.SignOf(c)}
			}
			return Houses{Cusps: cusps, SystemUsed: Placidus}
		}
	}

	slog.Warn(config.MsgHouseFallback,
		config.LogKeyComponent, config.CompChart,
		config.LogKeyHouses, string(a.System),
		config.LogKeyReason, err.Error())

	h := wholeSignHouses(asc)
	h.FallbackReason = err.Error()
	return h
}

func wholeSignHouses(asc Ascendant) Houses {
	cusps := make([]HouseCusp, vedic.SignCount)
	for i := range cusps {
		s := asc.Sign.Add(i)
		cusps[i] = HouseCusp{House: i + 1, Longitude: s.Start(), Sign: s}
	}
	return Houses{Cusps: cusps, SystemUsed: WholeSign}
}

// ValidateCusps accepts a cuspal result only when it has exactly twelve
// finite cusps in [0,360), cusp 1 on the ascendant, and every house spanning
// more than 0° and less than 180° in zodiacal order so the arcs close at 360°.
func ValidateCusps(cusps []float64, ascendant float64) error {
	if len(cusps) != vedic.SignCount {
		return fmt.Errorf("%s: got %d", config.ErrCuspCount, len(cusps))
	}
	for i, c := range cusps {
		if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 || c >= 360 {
			return fmt.Errorf("%s: house %d = %v", config.ErrCuspFinite, i+1, c)
		}
	}
	if astro.Separation(cusps[0], ascendant) > config.CuspTolerance {
		return fmt.Errorf("%s: %v vs %v", config.ErrCuspAscendant, cusps[0], ascendant)
	}

	total := 0.0
	for i, c := range cusps {
		arc := astro.Normalize(cusps[(i+1)%len(cusps)] - c)
		if arc <= 0 || arc >= 180 {
			return fmt.Errorf("%s: house %d spans %v", config.ErrCuspOrder, i+1, arc)
		}
		total += arc
	}
	if math.Abs(total-360) > 1e-6 {
		return fmt.Errorf("%s: arcs sum to %v", config.ErrCuspOrder, total)
	}
	return nil
}
