package chart

import (
	"math"

	"github.com/tartampluch/go-jyotish/internal/astro"
	"github.com/tartampluch/go-jyotish/internal/config"
	"github.com/tartampluch/go-jyotish/internal/vedic"
)

// AspectKind is a longitudinal aspect with its exact angle and allowed orb.
type AspectKind struct {
	Name  string  `json:"name" yaml:"name"`
	Angle float64 `json:"angle" yaml:"angle"`
	Orb   float64 `json:"orb" yaml:"orb"`
}

// DefaultAspectKinds returns the five major aspects, tightest orb last.
func DefaultAspectKinds() []AspectKind {
	return []AspectKind{
		{Name: "conjunction", Angle: 0, Orb: config.OrbConjunction},
		{Name: "opposition", Angle: 180, Orb: config.OrbOpposition},
		{Name: "trine", Angle: 120, Orb: config.OrbTrine},
		{Name: "square", Angle: 90, Orb: config.OrbSquare},
		{Name: "sextile", Angle: 60, Orb: config.OrbSextile},
	}
}

// Aspect links two bodies. Strength is 1 at exactitude and 0 at the edge of the orb.
type Aspect struct {
	From     vedic.Body `json:"from" yaml:"from"`
	To       vedic.Body `json:"to" yaml:"to"`
	Kind     string     `json:"kind" yaml:"kind"`
	Angle    float64    `json:"angle" yaml:"angle"`
	Orb      float64    `json:"orb" yaml:"orb"`
	Strength float64    `json:"strength" yaml:"strength"`
}

// Drishti lists the houses a body casts its sight on, counted inclusively
// from its own house, and the bodies found there.
type Drishti struct {
	Body      vedic.Body   `json:"body" yaml:"body"`
	FromHouse int          `json:"fromHouse" yaml:"fromHouse"`
	Houses    []int        `json:"houses" yaml:"houses"`
	Targets   []vedic.Body `json:"targets,omitempty" yaml:"targets,omitempty"`
}

// HouseClass groups houses by their angular distance from the ascendant.
type HouseClass string

const (
	Angular   HouseClass = "angular"
	Succedent HouseClass = "succedent"
	Cadent    HouseClass = "cadent"
)

// ClassOf returns the class of a house number.
func ClassOf(house int) HouseClass {
	switch house % 3 {
	case 1:
		return Angular
	case 2:
		return Succedent
	default:
		return Cadent
	}
}

// Strength is the deterministic score of one body.
type Strength struct {
	Body       vedic.Body `json:"body" yaml:"body"`
	HouseClass HouseClass `json:"houseClass" yaml:"houseClass"`
	Score      float64    `json:"score" yaml:"score"`
}

// Analysis is the output of the Analyzer.
type Analysis struct {
	Aspects   []Aspect   `json:"aspects" yaml:"aspects"`
	Drishti   []Drishti  `json:"drishti" yaml:"drishti"`
	Strengths []Strength `json:"strengths" yaml:"strengths"`
}

// specialDrishti holds the extra house counts beyond the 7th.
var specialDrishti = map[vedic.Body][]int{
	vedic.Mars:    {4, 8},
	vedic.Jupiter: {5, 9},
	vedic.Saturn:  {3, 10},
}

// Analyzer scores dignity, aspects and strength for resolved positions.
type Analyzer struct {
	Kinds []AspectKind
}

// NewAnalyzer returns an Analyzer over the default aspect kinds.
func NewAnalyzer() Analyzer {
	return Analyzer{Kinds: DefaultAspectKinds()}
}

// Analyze expects bodies with houses already assigned.
func (a Analyzer) Analyze(bodies []BodyPosition) Analysis {
	aspects := a.Aspects(bodies)
	return Analysis{
		Aspects:   aspects,
		Drishti:   GrahaDrishti(bodies),
		Strengths: Strengths(bodies, aspects),
	}
}

// Aspects finds at most one aspect per pair of bodies, the one with the
// tightest orb. The Rahu-Ketu axis is always an exact opposition and is skipped.
func (a Analyzer) Aspects(bodies []BodyPosition) []Aspect {
	var out []Aspect
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			p, q := bodies[i], bodies[j]
			if p.Body.IsNode() && q.Body.IsNode() {
				continue
			}
			sep := astro.Separation(p.SiderealLongitude, q.SiderealLongitude)
			if asp, ok := a.match(sep); ok {
				asp.From, asp.To = p.Body, q.Body
				out = append(out, asp)
			}
		}
	}
	return out
}

func (a Analyzer) match(sep float64) (Aspect, bool) {
	best := Aspect{Orb: math.Inf(1)}
	found := false
	for _, k := range a.Kinds {
		orb := math.Abs(sep - k.Angle)
		if orb <= k.Orb && orb < best.Orb {
			strength := 1.0
			if k.Orb > 0 {
				strength = 1 - orb/k.Orb
			}
			best = Aspect{Kind: k.Name, Angle: k.Angle, Orb: orb, Strength: strength}
			found = true
		}
	}
	return best, found
}

// GrahaDrishti applies whole-house sight: every body aspects the 7th house
// from itself, Mars also the 4th and 8th, Jupiter the 5th and 9th, Saturn
// the 3rd and 10th.
func GrahaDrishti(bodies []BodyPosition) []Drishti {
	occupants := make(map[int][]vedic.Body, len(bodies))
	for _, b := range bodies {
		occupants[b.House] = append(occupants[b.House], b.Body)
	}

	out := make([]Drishti, 0, len(bodies))
	for _, b := range bodies {
		counts := append([]int{7}, specialDrishti[b.Body]...)
		d := Drishti{Body: b.Body, FromHouse: b.House, Houses: make([]int, 0, len(counts))}
		for _, n := range counts {
			h := (b.House+n-2)%vedic.SignCount + 1
			d.Houses = append(d.Houses, h)
			d.Targets = append(d.Targets, occupants[h]...)
		}
		out = append(out, d)
	}
	return out
}

// Strengths scores every body. The score rises with house class, dignity,
// aspect tightness and retrograde motion, and drops when combust. It never
// goes below zero.
func Strengths(bodies []BodyPosition, aspects []Aspect) []Strength {
	tightness := make(map[vedic.Body]float64, len(bodies))
	for _, a := range aspects {
		tightness[a.From] += a.Strength
		tightness[a.To] += a.Strength
	}

	out := make([]Strength, 0, len(bodies))
	for _, b := range bodies {
		class := ClassOf(b.House)
		score := classWeight(class) + dignityWeight(b.Dignity) + tightness[b.Body]
		if b.Retrograde {
			score += config.StrengthRetrograde
		}
		if b.Combust {
			score -= config.StrengthCombust
		}
		out = append(out, Strength{Body: b.Body, HouseClass: class, Score: math.Max(0, score)})
	}
	return out
}

func classWeight(c HouseClass) float64 {
	switch c {
	case Angular:
		return config.StrengthAngular
	case Succedent:
		return config.StrengthSuccedent
	default:
		return config.StrengthCadent
	}
}

func dignityWeight(d vedic.Dignity) float64 {
	switch d {
	case vedic.Exalted:
		return config.StrengthExalted
	case vedic.OwnSign:
		return config.StrengthOwn
	case vedic.Debilitated:
		return config.StrengthDebilitated
	default:
		return config.StrengthNeutral
	}
}
