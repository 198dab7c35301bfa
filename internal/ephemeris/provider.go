package ephemeris

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tartampluch/go-jyotish/internal/config"
	"github.com/tartampluch/go-jyotish/internal/vedic"
)

// Reading is a geocentric tropical position of date.
type Reading struct {
	// Longitude is the apparent ecliptic longitude in [0,360).
	Longitude float64 `json:"longitude"`
	// Speed is the signed longitudinal speed in degrees per day.
	Speed float64 `json:"speed"`
}

// Provider answers tropical positions for a UT Julian Day.
// Implementations must be safe for concurrent use.
type Provider interface {
	PositionAt(ctx context.Context, jd float64, body vedic.Body) (Reading, error)
}

// Mode selects the provider implementation.
type Mode string

const (
	ModeAnalytic Mode = config.EphemerisAnalytic
	ModeHorizons Mode = config.EphemerisHorizons
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeAnalytic, ModeHorizons:
		return m, nil
	}
	return "", fmt.Errorf("%s: %q", config.ErrEphemerisMode, s)
}

// NodeModel selects how Rahu is computed.
type NodeModel string

const (
	// NodeMean is the smoothly regressing mean node.
	NodeMean NodeModel = config.NodeMean
	// NodeTrue is the osculating node including the main periodic terms.
	NodeTrue NodeModel = config.NodeTrue
)

// ParseNodeModel validates a node model name.
func ParseNodeModel(s string) (NodeModel, error) {
	switch n := NodeModel(strings.ToLower(strings.TrimSpace(s))); n {
	case NodeMean, NodeTrue:
		return n, nil
	}
	return "", fmt.Errorf("%s: %q", config.ErrNodeMode, s)
}

// Options configures New.
type Options struct {
	Mode     Mode
	Node     NodeModel
	URL      string
	User     string
	Password string
	Timeout  time.Duration
	CacheTTL time.Duration
	Client   *http.Client
}

// New builds the provider described by opts. A positive CacheTTL wraps it in a Cache.
func New(opts Options) (Provider, error) {
	node := opts.Node
	if node == "" {
		node = NodeMean
	}
	if _, err := ParseNodeModel(string(node)); err != nil {
		return nil, err
	}
	analytic := &Analytic{Node: node}

	var p Provider
	switch opts.Mode {
	case ModeAnalytic, "":
		p = analytic
	case ModeHorizons:
		h := NewHorizons(opts.URL, opts.Timeout)
		if opts.Client != nil {
			h.Client = opts.Client
		}
		h.User, h.Password = opts.User, opts.Password
		h.Nodes = analytic
		p = h
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrEphemerisMode, opts.Mode)
	}

	if opts.CacheTTL > 0 {
		p = NewCache(p, opts.CacheTTL)
	}
	return p, nil
}
