// Package dasha generates the Vimshottari period tree anchored at the Moon's
// nakshatra. All offsets are fractional years from birth.
package dasha

import (
	"fmt"
	"math"

	"github.com/tartampluch/go-jyotish/internal/config"
	jerrors "github.com/tartampluch/go-jyotish/internal/errors"
	"github.com/tartampluch/go-jyotish/internal/vedic"
)

const (
	opMahadashas = "dasha.Mahadashas"
	opSubdivide  = "dasha.Subdivide"
)

// Level names for the first three tiers.
const (
	LevelMahadasha       = 1
	LevelAntardasha      = 2
	LevelPratyantardasha = 3
)

// Seed is the Moon's nakshatra at birth.
type Seed struct {
	NakshatraIndex  int     `json:"nakshatraIndex" yaml:"nakshatraIndex"`
	ElapsedFraction float64 `json:"elapsedFraction" yaml:"elapsedFraction"`
}

// SeedFromMoon derives the seed from the Moon's sidereal longitude.
func SeedFromMoon(siderealLongitude float64) Seed {
	idx, _, elapsed := vedic.NakshatraOf(siderealLongitude)
	return Seed{NakshatraIndex: idx, ElapsedFraction: elapsed}
}

// Node is one period of the tree.
type Node struct {
	Lord     vedic.Body `json:"lord" yaml:"lord"`
	Level    int        `json:"level" yaml:"level"`
	Start    float64    `json:"startYears" yaml:"startYears"`
	End      float64    `json:"endYears" yaml:"endYears"`
	Duration float64    `json:"durationYears" yaml:"durationYears"`
	Parent   *Node      `json:"-" yaml:"-"`
	Children []*Node    `json:"children,omitempty" yaml:"children,omitempty"`
}

// Contains reports whether the offset falls in [Start, End).
func (n *Node) Contains(offset float64) bool {
	return offset >= n.Start && offset < n.End
}

// Path returns the lords from the Mahadasha down to n.
func (n *Node) Path() []vedic.Body {
	var path []vedic.Body
	for cur := n; cur != nil; cur = cur.Parent {
		path = append([]vedic.Body{cur.Lord}, path...)
	}
	return path
}

// Engine builds period trees from injected tables.
type Engine struct {
	tables *vedic.Tables
}

// NewEngine creates an Engine over tables.
func NewEngine(tables *vedic.Tables) *Engine {
	return &Engine{tables: tables}
}

// Mahadashas returns the top-level periods. The birth lord runs for its
// unelapsed balance, the next eight lords run in full, and when the Moon had
// already traversed part of its nakshatra a closing period of the birth lord
// completes the 120-year cycle.
func (e *Engine) Mahadashas(seed Seed) ([]*Node, error) {
	if seed.NakshatraIndex < 0 || seed.NakshatraIndex >= vedic.NakshatraCount {
		return nil, jerrors.New(jerrors.InvalidDashaSeed, opMahadashas, config.ErrDashaNakshatra).
			WithDetails(fmt.Sprintf("index %d", seed.NakshatraIndex))
	}
	if math.IsNaN(seed.ElapsedFraction) || seed.ElapsedFraction < 0 || seed.ElapsedFraction >= 1 {
		return nil, jerrors.New(jerrors.InvalidDashaSeed, opMahadashas, config.ErrDashaFraction).
			WithDetails(fmt.Sprintf("fraction %v", seed.ElapsedFraction))
	}

	lord, ok := e.tables.NakshatraLord(seed.NakshatraIndex)
	if !ok {
		return nil, jerrors.New(jerrors.InvalidDashaSeed, opMahadashas, config.ErrDashaLord).
			WithDetails(fmt.Sprintf("index %d", seed.NakshatraIndex))
	}
	seq, periods, err := e.sequence(opMahadashas, lord)
	if err != nil {
		return nil, err
	}

	roots := make([]*Node, 0, len(seq)+1)
	offset := 0.0
	add := func(b vedic.Body, d float64) {
		roots = append(roots, &Node{Lord: b, Level: LevelMahadasha, Start: offset, End: offset + d, Duration: d})
		offset += d
	}

	add(lord, periods[0]*(1-seed.ElapsedFraction))
	for i := 1; i < len(seq); i++ {
		add(seq[i], periods[i])
	}
	if seed.ElapsedFraction > 0 {
		add(lord, periods[0]*seed.ElapsedFraction)
	}
	return roots, nil
}

// Subdivide returns the children of n without modifying it. The sequence
// starts from n's own lord and each child lasts n.Duration × period / cycle.
func (e *Engine) Subdivide(n *Node) ([]*Node, error) {
	seq, periods, err := e.sequence(opSubdivide, n.Lord)
	if err != nil {
		return nil, err
	}
	cycle := 0.0
	for _, p := range periods {
		cycle += p
	}

	children := make([]*Node, len(seq))
	offset := n.Start
	for i, b := range seq {
		d := n.Duration * periods[i] / cycle
		children[i] = &Node{Lord: b, Level: n.Level + 1, Start: offset, End: offset + d, Duration: d, Parent: n}
		offset += d
	}
	return children, nil
}

// Build returns the Mahadashas expanded to depth levels (1 = Mahadashas only).
func (e *Engine) Build(seed Seed, depth int) ([]*Node, error) {
	roots, err := e.Mahadashas(seed)
	if err != nil {
		return nil, err
	}
	for _, r := range roots {
		if err := e.expand(r, depth); err != nil {
			return nil, err
		}
	}
	return roots, nil
}

func (e *Engine) expand(n *Node, depth int) error {
	if n.Level >= depth {
		return nil
	}
	children, err := e.Subdivide(n)
	if err != nil {
		return err
	}
	n.Children = children
	for _, c := range children {
		if err := e.expand(c, depth); err != nil {
			return err
		}
	}
	return nil
}

// ActivePath returns the nodes containing the offset, from the Mahadasha
// down to depth levels. Levels missing from the tree are subdivided on the
// fly without being attached. Offsets past the end of the cycle wrap.
func (e *Engine) ActivePath(roots []*Node, offset float64, depth int) ([]*Node, error) {
	if len(roots) == 0 || offset < 0 {
		return nil, nil
	}
	total := roots[len(roots)-1].End
	if offset >= total {
		offset = math.Mod(offset, total)
	}

	var path []*Node
	level := roots
	for d := 1; d <= depth; d++ {
		var hit *Node
		for _, n := range level {
			if n.Contains(offset) {
				hit = n
				break
			}
		}
		if hit == nil {
			break
		}
		path = append(path, hit)
		if d == depth {
			break
		}
		level = hit.Children
		if len(level) == 0 {
			next, err := e.Subdivide(hit)
			if err != nil {
				return nil, err
			}
			level = next
		}
	}
	return path, nil
}

// sequence resolves the nine lords starting at start with their full periods.
func (e *Engine) sequence(op string, start vedic.Body) ([]vedic.Body, []float64, error) {
	seq, ok := e.tables.DashaSequence(start)
	if !ok {
		return nil, nil, jerrors.New(jerrors.InvalidDashaSeed, op, config.ErrDashaSequence).WithDetails(start.String())
	}
	periods := make([]float64, len(seq))
	for i, b := range seq {
		p, ok := e.tables.Period(b)
		if !ok || p <= 0 {
			return nil, nil, jerrors.New(jerrors.InvalidDashaSeed, op, config.ErrDashaPeriod).WithDetails(b.String())
		}
		periods[i] = p
	}
	return seq, periods, nil
}
