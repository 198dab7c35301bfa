package dasha

import (
	"math"
	"time"

	"github.com/tartampluch/go-jyotish/internal/config"
	"github.com/tartampluch/go-jyotish/internal/vedic"
)

const yearDuration = time.Duration(config.DashaYearDays * 24 * float64(time.Hour))

// DateAt projects a year offset from birth onto the calendar.
func DateAt(birth time.Time, offsetYears float64) time.Time {
	return birth.Add(time.Duration(offsetYears * float64(yearDuration)))
}

// AgeAt returns the fractional dasha years elapsed between birth and at.
func AgeAt(birth, at time.Time) float64 {
	return float64(at.Sub(birth)) / float64(yearDuration)
}

// Period is a node projected onto calendar dates.
type Period struct {
	Lord  vedic.Body   `json:"lord" yaml:"lord"`
	Path  []vedic.Body `json:"path" yaml:"path"`
	Level int          `json:"level" yaml:"level"`
	Start time.Time    `json:"start" yaml:"start"`
	End   time.Time    `json:"end" yaml:"end"`
}

// Dated converts n to calendar dates relative to birth.
func Dated(n *Node, birth time.Time) Period {
	return Period{
		Lord:  n.Lord,
		Path:  n.Path(),
		Level: n.Level,
		Start: DateAt(birth, n.Start),
		End:   DateAt(birth, n.End),
	}
}

// Walk visits nodes depth-first, parents first. Children of a node are
// skipped when fn returns false for it.
func Walk(nodes []*Node, fn func(*Node) bool) {
	for _, n := range nodes {
		if fn(n) {
			Walk(n.Children, fn)
		}
	}
}

// ActivePeriods dates the active path at the calendar instant at, down to
// depth levels. Past the end of the cycle the path repeats and is dated in
// the current repetition.
func (e *Engine) ActivePeriods(roots []*Node, birth, at time.Time, depth int) ([]Period, error) {
	age := AgeAt(birth, at)
	path, err := e.ActivePath(roots, age, depth)
	if err != nil {
		return nil, err
	}

	shift := 0.0
	if n := len(roots); n > 0 && age >= roots[n-1].End {
		total := roots[n-1].End
		shift = math.Floor(age/total) * total
	}
	periods := make([]Period, 0, len(path))
	for _, n := range path {
		p := Dated(n, birth)
		p.Start = DateAt(birth, n.Start+shift)
		p.End = DateAt(birth, n.End+shift)
		periods = append(periods, p)
	}
	return periods, nil
}
