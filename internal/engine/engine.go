// Package engine turns a set of birth records into charts and an
// iCalendar feed of their Vimshottari periods.
package engine

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"golang.org/x/sync/errgroup"

	"github.com/tartampluch/go-jyotish/internal/chart"
	"github.com/tartampluch/go-jyotish/internal/config"
	"github.com/tartampluch/go-jyotish/internal/dasha"
	"github.com/tartampluch/go-jyotish/internal/vedic"
)

// SyncConfig contains all parameters required to perform a synchronization.
type SyncConfig struct {
	Mode            string // config.SourceModeLocal or config.SourceModeWeb
	LocalPath       string // Path to a .vcf or .toml file
	WebURL          string // HTTP(S) URL of the same
	WebUser         string // HTTP Basic Auth Username
	WebPass         string // HTTP Basic Auth Password
	Depth           int    // Period levels emitted as events (1 = Mahadasha)
	ReminderTrigger string // ISO8601 duration string (e.g., "-P1D")
}

// ChartCalculator computes one chart. *chart.Calculator satisfies it.
type ChartCalculator interface {
	Compute(ctx context.Context, in chart.BirthInput) (*chart.Chart, error)
}

// Generator fetches birth records, computes their charts and renders the
// period calendar.
type Generator struct {
	Clock      Clock
	Fetcher    SourceFetcher
	Calculator ChartCalculator

	// Periods locates active periods below the computed depth.
	// Nil uses the default tables.
	Periods *dasha.Engine

	// Workers bounds concurrent chart computations. Values below 1 mean one.
	Workers int

	// FormatSummary lets callers localize event titles. path runs from the
	// Mahadasha lord down to the period's own lord.
	FormatSummary func(name string, path []vedic.Body) string
}

type syncStats struct {
	records, skipped, charts, failed, events, today int
}

// RunSync executes the fetching, computing and rendering pipeline.
// It returns the ICS data, the chart entries, the number of period
// transitions starting today, and any error.
func (g *Generator) RunSync(ctx context.Context, cfg SyncConfig) ([]byte, []ChartEntry, int, error) {
	start := time.Now()
	log := slog.With(
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyMode, cfg.Mode,
	)
	log.InfoContext(ctx, config.MsgSyncStarted)

	if g.Calculator == nil {
		return nil, nil, 0, errors.New(config.ErrCalculatorNil)
	}

	reader, err := g.acquireStream(ctx, cfg)
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, 0, ctx.Err()
		}
		return nil, nil, 0, fmt.Errorf("%s: %w", config.ErrSourceRead, err)
	}
	defer func() { _ = reader.Close() }()

	if err := ctx.Err(); err != nil {
		return nil, nil, 0, err
	}

	records, skipped, err := readRecords(reader)
	if err != nil {
		return nil, nil, 0, err
	}
	stats := syncStats{records: len(records) + skipped, skipped: skipped}

	entries, err := g.computeCharts(ctx, records, &stats)
	if err != nil {
		return nil, nil, 0, err
	}

	ics, err := g.generateCalendar(ctx, entries, cfg, &stats)
	if err != nil {
		return nil, nil, 0, err
	}

	g.logSuccess(stats)
	log.Debug(config.MsgSyncFinished, config.LogKeyDuration, time.Since(start).Milliseconds())
	return ics, entries, stats.today, nil
}

// acquireStream opens the appropriate data source based on configuration.
func (g *Generator) acquireStream(ctx context.Context, cfg SyncConfig) (io.ReadCloser, error) {
	switch cfg.Mode {
	case config.SourceModeLocal:
		if cfg.LocalPath == "" {
			return nil, errors.New(config.ErrLocalPathEmpty)
		}
		return os.Open(cfg.LocalPath)
	case config.SourceModeWeb:
		if cfg.WebURL == "" {
			return nil, errors.New(config.ErrWebURLEmpty)
		}
		if g.Fetcher == nil {
			return nil, errors.New(config.ErrFetcherMissing)
		}
		return g.Fetcher.Fetch(ctx, cfg.WebURL, cfg.WebUser, cfg.WebPass)
	default:
		return nil, fmt.Errorf("%s: %q", config.ErrModeUnsupport, cfg.Mode)
	}
}

// computeCharts fans the records out over Workers goroutines. A record
// whose chart fails is logged and dropped; cancellation aborts the sync.
func (g *Generator) computeCharts(ctx context.Context, records []chart.BirthInput, stats *syncStats) ([]ChartEntry, error) {
	now := g.Clock.Now()
	results := make([]*ChartEntry, len(records))

	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(g.Workers, 1))
	for i, in := range records {
		i, in := i, in
		eg.Go(func() error {
			ch, err := g.Calculator.Compute(egctx, in)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				slog.Warn(config.MsgSkippedChart,
					config.LogKeyComponent, config.CompWorker,
					config.LogKeyName, in.Name,
					config.LogKeyError, err)
				return nil
			}
			entry, err := g.newEntry(ch, now)
			if err != nil {
				return err
			}
			results[i] = entry
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	entries := make([]ChartEntry, 0, len(results))
	for _, e := range results {
		if e == nil {
			stats.failed++
			continue
		}
		entries = append(entries, *e)
	}
	stats.charts = len(entries)
	return entries, nil
}

func (g *Generator) newEntry(ch *chart.Chart, now time.Time) (*ChartEntry, error) {
	entry := &ChartEntry{
		UID:   uidFor(ch),
		Name:  ch.Name,
		Chart: ch,
	}

	periods := g.Periods
	if periods == nil {
		periods = dasha.NewEngine(vedic.DefaultTables())
	}

	current, err := periods.ActivePeriods(ch.Dasha, ch.Birth.UTC, now, treeDepth(ch.Dasha))
	if err != nil {
		return nil, err
	}
	entry.Current = current
	if len(entry.Current) > 0 {
		entry.NextTransition = entry.Current[len(entry.Current)-1].End
	}
	return entry, nil
}

func treeDepth(roots []*dasha.Node) int {
	depth := 0
	dasha.Walk(roots, func(n *dasha.Node) bool {
		depth = max(depth, n.Level)
		return true
	})
	return depth
}

// uidFor derives a stable identifier from the chart ID.
func uidFor(ch *chart.Chart) string {
	input := fmt.Sprintf(config.FormatHashInput, ch.Name, ch.ID.String(), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}

// generateCalendar emits one all-day spanning event per period down to
// cfg.Depth levels.
func (g *Generator) generateCalendar(ctx context.Context, entries []ChartEntry, cfg SyncConfig, stats *syncStats) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	// Period boundaries are compared against the local calendar day.
	now := g.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	depth := cfg.Depth
	if depth < 1 {
		depth = config.DefaultCalendarDepth
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		events, today := g.createEvents(entry, depth, cfg.ReminderTrigger, now)
		for _, e := range events {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
		stats.events += len(events)
		stats.today += today
	}

	if len(cal.Children) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	return buf.Bytes(), nil
}

// createEvents walks the period tree of one chart. It reports how many of
// the periods start on today's date.
func (g *Generator) createEvents(entry ChartEntry, depth int, reminderTrigger string, now time.Time) ([]*ical.Event, int) {
	birth := entry.Chart.Birth.UTC
	loc := now.Location()
	today := dateOf(now, loc)

	var events []*ical.Event
	transitions := 0

	var visit func(nodes []*dasha.Node, key []string)
	visit = func(nodes []*dasha.Node, key []string) {
		for i, n := range nodes {
			if n.Level > depth {
				return
			}
			k := append(slices.Clip(key), strconv.Itoa(i))
			p := dasha.Dated(n, birth)

			startDay := dateOf(p.Start, loc)
			endDay := dateOf(p.End, loc)
			if !endDay.After(startDay) {
				endDay = startDay.AddDate(0, 0, 1)
			}
			if startDay.Equal(today) {
				transitions++
				slog.Info(config.MsgTransitionToday,
					config.LogKeyComponent, config.CompEngine,
					config.LogKeyName, entry.Name,
					config.LogKeyLord, n.Lord.String(),
					config.LogKeyLevel, n.Level)
			}

			summary := g.summary(entry.Name, p)

			event := ical.NewEvent()
			event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, entry.UID, strings.Join(k, "."), config.ICalDomain))
			event.Props.SetText(config.PropSummary, summary)
			event.Props.SetText(config.PropDescription, pathString(p.Path))
			event.Props.SetText(config.PropCategories, levelName(n.Level))

			dtStart := ical.NewProp(config.PropDTStart)
			dtStart.SetDate(startDay)
			event.Props.Set(dtStart)
			dtEnd := ical.NewProp(config.PropDTEnd)
			dtEnd.SetDate(endDay)
			event.Props.Set(dtEnd)

			if reminderTrigger != "" {
				addAlarm(event, reminderTrigger, summary)
			}
			events = append(events, event)

			visit(n.Children, k)
		}
	}
	visit(entry.Chart.Dasha, nil)
	return events, transitions
}

func (g *Generator) summary(name string, p dasha.Period) string {
	if g.FormatSummary != nil {
		return g.FormatSummary(name, p.Path)
	}
	switch len(p.Path) {
	case 1:
		return fmt.Sprintf(config.FallbackMahadasha, name, p.Path[0])
	case 2:
		return fmt.Sprintf(config.FallbackAntardasha, name, p.Path[0], p.Path[1])
	default:
		return fmt.Sprintf(config.FallbackPeriod, name, pathString(p.Path))
	}
}

func pathString(path []vedic.Body) string {
	names := make([]string, len(path))
	for i, b := range path {
		names[i] = b.String()
	}
	return strings.Join(names, config.PathSeparator)
}

func levelName(level int) string {
	switch level {
	case dasha.LevelMahadasha:
		return config.CategoryMahadasha
	case dasha.LevelAntardasha:
		return config.CategoryAntardasha
	case dasha.LevelPratyantardasha:
		return config.CategoryPratyantardasha
	}
	return fmt.Sprintf(config.CategoryLevel, level)
}

func dateOf(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}

// logSuccess logs the final statistics of the generation process.
func (g *Generator) logSuccess(stats syncStats) {
	slog.Info(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompEngine,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.records),
			slog.Int(config.LogKeySkipped, stats.skipped),
			slog.Int(config.LogKeyCharts, stats.charts),
			slog.Int(config.LogKeyFailed, stats.failed),
			slog.Int(config.LogKeyEvents, stats.events),
			slog.Int(config.LogKeyToday, stats.today),
		),
	)
}
