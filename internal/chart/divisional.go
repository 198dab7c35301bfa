package chart

import (
	"fmt"
	"slices"

	"github.com/tartampluch/go-jyotish/internal/config"
	"github.com/tartampluch/go-jyotish/internal/vedic"
)

// StartRule picks the sign that receives the first part of a source sign.
// The returned offset is counted forward from the source sign, 0 meaning
// the source sign itself.
type StartRule interface {
	Offset(source vedic.Sign) int
}

// ModalityRule offsets by the modality of the source sign.
type ModalityRule struct {
	Movable, Fixed, Dual int
}

func (r ModalityRule) Offset(source vedic.Sign) int {
	switch source.Modality() {
	case vedic.Movable:
		return r.Movable
	case vedic.Fixed:
		return r.Fixed
	default:
		return r.Dual
	}
}

// ParityRule offsets by whether the source sign is odd or even.
type ParityRule struct {
	Odd, Even int
}

func (r ParityRule) Offset(source vedic.Sign) int {
	if source.Odd() {
		return r.Odd
	}
	return r.Even
}

// Varga is one harmonic division of the zodiac.
type Varga struct {
	Code    string    `json:"code" yaml:"code"`
	Divisor int       `json:"divisor" yaml:"divisor"`
	Start   StartRule `json:"-" yaml:"-"`
}

// Transform maps a sidereal longitude into the division. It returns the
// destination sign, the 1-based part of the source sign, and the divisional
// longitude, which stretches the part back over the full destination sign.
func (v Varga) Transform(longitude float64) (dest vedic.Sign, pada int, divisional float64) {
	z := place(longitude)
	part := vedic.SignSpan / float64(v.Divisor)
	pada = int(z.degree/part) + 1
	if pada > v.Divisor {
		pada = v.Divisor
	}
	start := z.sign.Add(v.Start.Offset(z.sign))
	dest = start.Add(pada - 1)
	within := (z.degree - float64(pada-1)*part) * float64(v.Divisor)
	if within >= vedic.SignSpan {
		within = vedic.SignSpan - 1e-9
	}
	if within < 0 {
		within = 0
	}
	return dest, pada, dest.Start() + within
}

// VargaTable is the registry of supported divisions keyed by divisor.
type VargaTable map[int]Varga

// DefaultVargaTable registers D1, D7, D9, D10 and D12.
func DefaultVargaTable() VargaTable {
	return VargaTable{
		1:  {Code: "D1", Divisor: 1, Start: ModalityRule{}},
		7:  {Code: "D7", Divisor: 7, Start: ParityRule{Odd: 0, Even: 6}},
		9:  {Code: "D9", Divisor: 9, Start: ModalityRule{Movable: 0, Fixed: 8, Dual: 4}},
		10: {Code: "D10", Divisor: 10, Start: ParityRule{Odd: 0, Even: 8}},
		12: {Code: "D12", Divisor: 12, Start: ModalityRule{}},
	}
}

// Lookup returns the varga registered for a divisor.
func (t VargaTable) Lookup(divisor int) (Varga, error) {
	v, ok := t[divisor]
	if !ok {
		return Varga{}, fmt.Errorf("%s: D%d", config.ErrDivision, divisor)
	}
	return v, nil
}

// Divisors lists the registered divisors in ascending order.
func (t VargaTable) Divisors() []int {
	out := make([]int, 0, len(t))
	for d := range t {
		out = append(out, d)
	}
	slices.Sort(out)
	return out
}

// DivisionalPosition is one body placed in a divisional chart.
type DivisionalPosition struct {
	Body      vedic.Body `json:"body" yaml:"body"`
	Longitude float64    `json:"longitude" yaml:"longitude"`
	Sign      vedic.Sign `json:"sign" yaml:"sign"`
	Pada      int        `json:"pada" yaml:"pada"`
	House     int        `json:"house" yaml:"house"`
}

// DivisionalChart is the full set of placements for one division. Houses are
// whole-sign from the divisional ascendant.
type DivisionalChart struct {
	Code               string               `json:"code" yaml:"code"`
	Divisor            int                  `json:"divisor" yaml:"divisor"`
	AscendantSign      vedic.Sign           `json:"ascendantSign" yaml:"ascendantSign"`
	AscendantLongitude float64              `json:"ascendantLongitude" yaml:"ascendantLongitude"`
	Positions          []DivisionalPosition `json:"positions" yaml:"positions"`
}

// Divisional transforms the ascendant and every body into the varga.
func Divisional(v Varga, asc Ascendant, bodies []BodyPosition) DivisionalChart {
	ascSign, _, ascLon := v.Transform(asc.SiderealLongitude)
	dc := DivisionalChart{
		Code:               v.Code,
		Divisor:            v.Divisor,
		AscendantSign:      ascSign,
		AscendantLongitude: ascLon,
		Positions:          make([]DivisionalPosition, 0, len(bodies)),
	}
	for _, b := range bodies {
		sign, pada, lon := v.Transform(b.SiderealLongitude)
		dc.Positions = append(dc.Positions, DivisionalPosition{
			Body:      b.Body,
			Longitude: lon,
			Sign:      sign,
			Pada:      pada,
			House:     WholeSignHouse(ascSign, sign),
		})
	}
	return dc
}
