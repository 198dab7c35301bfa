package engine

import (
	"time"

	"github.com/tartampluch/go-jyotish/internal/chart"
	"github.com/tartampluch/go-jyotish/internal/dasha"
)

// ChartEntry is one computed record as served on /charts.json.
type ChartEntry struct {
	// UID is stable across syncs for the same birth data.
	UID   string       `json:"uid" yaml:"uid"`
	Name  string       `json:"name" yaml:"name"`
	Chart *chart.Chart `json:"chart" yaml:"chart"`

	// Current is the active period path on the sync date, Mahadasha first.
	Current []dasha.Period `json:"current" yaml:"current"`

	// NextTransition is when the deepest current period ends.
	// It is the sorting key for upcoming changes.
	NextTransition time.Time `json:"nextTransition" yaml:"nextTransition"`
}
