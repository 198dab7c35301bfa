package main

import (
	"strings"

	"github.com/tartampluch/go-jyotish/internal/chart"
	"github.com/tartampluch/go-jyotish/internal/config"
	"github.com/tartampluch/go-jyotish/internal/engine"
	"github.com/tartampluch/go-jyotish/internal/ephemeris"
	"github.com/tartampluch/go-jyotish/internal/vedic"
)

// provider builds the configured ephemeris. The Horizons password comes
// from the keyring.
func (c *cli) provider() (ephemeris.Provider, error) {
	e := c.settings.Ephemeris
	mode, err := ephemeris.ParseMode(e.Mode)
	if err != nil {
		return nil, err
	}
	node, err := ephemeris.ParseNodeModel(e.Node)
	if err != nil {
		return nil, err
	}
	return ephemeris.New(ephemeris.Options{
		Mode:     mode,
		Node:     node,
		URL:      e.URL,
		User:     e.User,
		Password: c.secrets.Lookup(config.TargetEphemeris, e.User),
		Timeout:  e.Timeout,
		CacheTTL: e.CacheTTL,
	})
}

// calculator builds a chart calculator whose dasha trees reach at least
// minDepth levels.
func (c *cli) calculator(minDepth int) (*chart.Calculator, error) {
	p, err := c.provider()
	if err != nil {
		return nil, err
	}
	houses, err := chart.ParseHouseSystem(c.settings.Chart.HouseSystem)
	if err != nil {
		return nil, err
	}
	node, err := ephemeris.ParseNodeModel(c.settings.Ephemeris.Node)
	if err != nil {
		return nil, err
	}
	return chart.NewCalculator(vedic.DefaultTables(), p, chart.Options{
		HouseSystem: houses,
		Divisions:   c.settings.Chart.Divisions,
		DashaDepth:  max(c.settings.Chart.DashaDepth, minDepth),
		NodeModel:   node,
		Timeout:     c.settings.Ephemeris.Timeout,
	})
}

// generator wires the sync pipeline around calc.
func (c *cli) generator(calc *chart.Calculator) *engine.Generator {
	return &engine.Generator{
		Clock:         c.clock,
		Fetcher:       engine.NewHTTPFetcher(),
		Calculator:    calc,
		Periods:       calc.Dasha(),
		Workers:       c.settings.Workers,
		FormatSummary: c.tr.Summary,
	}
}

// syncConfig resolves the record source. A non-empty source overrides the
// configured one: http(s) URLs are fetched, anything else is a local path.
func (c *cli) syncConfig(source, user, reminder string) engine.SyncConfig {
	s := c.settings.Source
	cfg := engine.SyncConfig{
		Mode:            s.Mode,
		LocalPath:       s.Path,
		WebURL:          s.URL,
		WebUser:         s.User,
		Depth:           c.settings.Calendar.Depth,
		ReminderTrigger: c.settings.Calendar.Reminder,
	}
	if source != "" {
		if isWebSource(source) {
			cfg.Mode, cfg.WebURL = config.SourceModeWeb, source
		} else {
			cfg.Mode, cfg.LocalPath = config.SourceModeLocal, source
		}
	}
	if user != "" {
		cfg.WebUser = user
	}
	if reminder != "" {
		cfg.ReminderTrigger = reminder
	}
	if cfg.Mode == config.SourceModeWeb {
		cfg.WebPass = c.secrets.Lookup(config.TargetSource, cfg.WebUser)
	}
	return cfg
}

func isWebSource(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, config.SchemeHTTP+"://") || strings.HasPrefix(lower, config.SchemeHTTPS+"://")
}
