// Package chart assembles a sidereal birth chart from an ephemeris provider:
// body positions, ascendant, houses, divisional charts, aspects and the
// Vimshottari period tree.
package chart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/tartampluch/go-jyotish/internal/astro"
	"github.com/tartampluch/go-jyotish/internal/config"
	"github.com/tartampluch/go-jyotish/internal/dasha"
	"github.com/tartampluch/go-jyotish/internal/ephemeris"
	"github.com/tartampluch/go-jyotish/internal/vedic"
)

// chartNamespace scopes chart IDs so equal inputs always get the same ID.
var chartNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte(config.AppID))

// Chart is the complete output for one birth.
type Chart struct {
	ID        uuid.UUID     `json:"id" yaml:"id"`
	Name      string        `json:"name,omitempty" yaml:"name,omitempty"`
	Birth     astro.Instant `json:"birth" yaml:"birth"`
	Latitude  float64       `json:"latitude" yaml:"latitude"`
	Longitude float64       `json:"longitude" yaml:"longitude"`
	Ayanamsa  float64       `json:"ayanamsa" yaml:"ayanamsa"`
	// NodeModel records how Rahu was computed.
	NodeModel ephemeris.NodeModel `json:"nodeModel" yaml:"nodeModel"`

	Ascendant           Ascendant      `json:"ascendant" yaml:"ascendant"`
	Bodies              []BodyPosition `json:"bodies" yaml:"bodies"`
	Houses              []HouseCusp    `json:"houses" yaml:"houses"`
	HouseSystemUsed     HouseSystem    `json:"houseSystemUsed" yaml:"houseSystemUsed"`
	HouseFallbackReason string         `json:"houseFallbackReason,omitempty" yaml:"houseFallbackReason,omitempty"`

	Divisional map[int]DivisionalChart `json:"divisional,omitempty" yaml:"divisional,omitempty"`
	Aspects    []Aspect                `json:"aspects" yaml:"aspects"`
	Drishti    []Drishti               `json:"drishti" yaml:"drishti"`
	Strengths  []Strength              `json:"strengths" yaml:"strengths"`

	DashaSeed dasha.Seed    `json:"dashaSeed" yaml:"dashaSeed"`
	Dasha     []*dasha.Node `json:"dasha" yaml:"dasha"`
	Warnings  []string      `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Body returns the position of b.
func (c *Chart) Body(b vedic.Body) (BodyPosition, bool) {
	for _, p := range c.Bodies {
		if p.Body == b {
			return p, true
		}
	}
	return BodyPosition{}, false
}

// Options are the per-calculator chart settings.
type Options struct {
	HouseSystem HouseSystem
	Divisions   []int
	DashaDepth  int
	NodeModel   ephemeris.NodeModel
	// Timeout bounds each ephemeris call.
	Timeout time.Duration
}

// Calculator wires the chart components together.
type Calculator struct {
	tables   *vedic.Tables
	resolver *PositionResolver
	houses   HouseAssigner
	vargas   []Varga
	analyzer Analyzer
	dasha    *dasha.Engine
	opts     Options
}

// NewCalculator validates opts and builds a Calculator over the provider.
func NewCalculator(tables *vedic.Tables, provider ephemeris.Provider, opts Options) (*Calculator, error) {
	if tables == nil || provider == nil {
		return nil, errors.New(config.ErrCalculatorNil)
	}
	if opts.HouseSystem == "" {
		opts.HouseSystem = WholeSign
	}
	if _, err := ParseHouseSystem(string(opts.HouseSystem)); err != nil {
		return nil, err
	}
	if opts.NodeModel == "" {
		opts.NodeModel = ephemeris.NodeMean
	}
	if opts.DashaDepth < 1 || opts.DashaDepth > config.MaxDashaDepth {
		return nil, fmt.Errorf("%s: %d", config.ErrDepth, opts.DashaDepth)
	}

	table := DefaultVargaTable()
	divisions := slices.Clone(opts.Divisions)
	slices.Sort(divisions)
	divisions = slices.Compact(divisions)
	vargas := make([]Varga, 0, len(divisions))
	for _, d := range divisions {
		v, err := table.Lookup(d)
		if err != nil {
			return nil, err
		}
		vargas = append(vargas, v)
	}

	return &Calculator{
		tables:   tables,
		resolver: &PositionResolver{Tables: tables, Provider: provider, Timeout: opts.Timeout},
		houses:   HouseAssigner{System: opts.HouseSystem},
		vargas:   vargas,
		analyzer: NewAnalyzer(),
		dasha:    dasha.NewEngine(tables),
		opts:     opts,
	}, nil
}

// Dasha exposes the period engine so callers can expand nodes lazily.
func (c *Calculator) Dasha() *dasha.Engine {
	return c.dasha
}

// Compute builds the chart for one birth. Input problems fail before the
// provider is called; provider failures are returned, never papered over.
func (c *Calculator) Compute(ctx context.Context, in BirthInput) (*Chart, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	inst, err := astro.ParseInstant(in.Date, in.Time, in.Zone)
	if err != nil {
		return nil, err
	}
	for _, w := range inst.Warnings {
		slog.Warn(w,
			config.LogKeyComponent, config.CompChart,
			config.LogKeyName, in.Name,
			config.LogKeyZone, in.Zone)
	}

	ayan := astro.Lahiri(inst.JulianDay)
	bodies, err := c.resolver.Resolve(ctx, inst.JulianDay, ayan)
	if err != nil {
		return nil, err
	}
	asc, err := AscendantAt(inst.JulianDay, in.Latitude, in.Longitude, ayan)
	if err != nil {
		return nil, err
	}

	houses := c.houses.Assign(inst.JulianDay, in.Latitude, in.Longitude, ayan, asc)
	for i := range bodies {
		bodies[i].House = houses.HouseOf(bodies[i].SiderealLongitude)
	}

	ch := &Chart{
		ID:                  chartID(in, c.opts),
		Name:                in.Name,
		Birth:               inst,
		Latitude:            in.Latitude,
		Longitude:           in.Longitude,
		Ayanamsa:            ayan,
		NodeModel:           c.opts.NodeModel,
		Ascendant:           asc,
		Bodies:              bodies,
		Houses:              houses.Cusps,
		HouseSystemUsed:     houses.SystemUsed,
		HouseFallbackReason: houses.FallbackReason,
		Warnings:            slices.Clone(inst.Warnings),
	}

	if len(c.vargas) > 0 {
		ch.Divisional = make(map[int]DivisionalChart, len(c.vargas))
		for _, v := range c.vargas {
			ch.Divisional[v.Divisor] = Divisional(v, asc, bodies)
		}
	}

	analysis := c.analyzer.Analyze(bodies)
	ch.Aspects, ch.Drishti, ch.Strengths = analysis.Aspects, analysis.Drishti, analysis.Strengths

	ch.DashaSeed = dasha.SeedFromMoon(bodies[vedic.Moon].SiderealLongitude)
	ch.Dasha, err = c.dasha.Build(ch.DashaSeed, c.opts.DashaDepth)
	if err != nil {
		return nil, err
	}

	slog.Debug(config.MsgChartComputed,
		config.LogKeyComponent, config.CompChart,
		config.LogKeyName, in.Name,
		config.LogKeyJD, inst.JulianDay,
		config.LogKeyAyanamsa, ayan,
		config.LogKeyHouses, string(houses.SystemUsed),
		config.LogKeyNode, string(c.opts.NodeModel))

	return ch, nil
}

func chartID(in BirthInput, opts Options) uuid.UUID {
	key := []string{
		in.Date, in.Time, in.Zone,
		strconv.FormatFloat(in.Latitude, 'f', -1, 64),
		strconv.FormatFloat(in.Longitude, 'f', -1, 64),
		string(opts.NodeModel), string(opts.HouseSystem),
	}
	var b []byte
	for _, k := range key {
		b = append(b, k...)
		b = append(b, 0)
	}
	return uuid.NewSHA1(chartNamespace, b)
}
