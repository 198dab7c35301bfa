package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/tartampluch/go-jyotish/internal/config"
	"github.com/tartampluch/go-jyotish/internal/engine"
	"github.com/tartampluch/go-jyotish/internal/server"
)

func newServeCmd(c *cli) *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:   config.CmdServe,
		Short: config.CmdDescServe,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			calc, err := c.calculator(c.settings.Calendar.Depth)
			if err != nil {
				return err
			}
			gen := c.generator(calc)
			cfg := c.syncConfig(src.source, src.user, src.reminder)
			srv := server.NewFeedServer(c.settings.Server.Port)

			watchPath := ""
			if cfg.Mode == config.SourceModeLocal {
				watchPath = cfg.LocalPath
			}
			interval := time.Duration(c.settings.Server.RefreshMinutes) * time.Minute

			eg, ctx := errgroup.WithContext(cmd.Context())
			eg.Go(func() error { return srv.Start(ctx) })
			eg.Go(func() error {
				return refreshLoop(ctx, watchPath, interval, func(ctx context.Context) {
					syncFeeds(ctx, gen, cfg, srv)
				})
			})
			return eg.Wait()
		},
	}
	src.register(cmd)
	cmd.Flags().String(config.FlagPort, config.DefaultPort, config.FlagDescPort)
	_ = c.v.BindPFlag(config.KeyServerPort, cmd.Flags().Lookup(config.FlagPort))
	return cmd
}

// syncFeeds runs one sync and publishes both documents. Failures keep the
// previous documents served.
func syncFeeds(ctx context.Context, gen *engine.Generator, cfg engine.SyncConfig, srv *server.FeedServer) {
	ics, entries, _, err := gen.RunSync(ctx, cfg)
	if err != nil {
		if ctx.Err() == nil {
			slog.Error(config.MsgSyncFailed,
				config.LogKeyComponent, config.CompWorker,
				config.LogKeyError, err,
			)
		}
		return
	}
	charts, err := json.Marshal(entries)
	if err != nil {
		slog.Error(config.ErrJSONEncode,
			config.LogKeyComponent, config.CompWorker,
			config.LogKeyError, err,
		)
		return
	}
	_ = srv.Update(config.RouteCalendar, ics)
	_ = srv.Update(config.RouteCharts, charts)
}

// refreshLoop syncs once, then again on every interval tick and whenever
// watchPath changes. Bursts of file events within config.WatchDebounce
// trigger a single sync. A zero interval or empty path disables that
// trigger.
func refreshLoop(ctx context.Context, watchPath string, interval time.Duration, sync func(context.Context)) error {
	slog.Info(config.MsgWorkerStart,
		config.LogKeyComponent, config.CompWorker,
		config.LogKeyInterval, interval.String(),
	)
	sync(ctx)

	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
	} else {
		slog.Info(config.MsgRefreshDisabled, config.LogKeyComponent, config.CompWorker)
	}

	var events <-chan fsnotify.Event
	var watchErrs <-chan error
	if watchPath != "" {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("%s: %w", config.ErrWatcher, err)
		}
		defer func() { _ = w.Close() }()
		// Editors often replace the file, so the directory is watched.
		if err := w.Add(filepath.Dir(watchPath)); err != nil {
			return fmt.Errorf("%s: %w", config.ErrWatcher, err)
		}
		events, watchErrs = w.Events, w.Errors
	}
	target := filepath.Clean(watchPath)

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			slog.Info(config.MsgWorkerStop, config.LogKeyComponent, config.CompWorker)
			return nil

		case <-tick:
			sync(ctx)

		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				slog.Debug(config.MsgWatchEvent,
					config.LogKeyComponent, config.CompWatcher,
					config.LogKeyFile, ev.Name,
				)
				debounce = time.After(config.WatchDebounce)
			}

		case <-debounce:
			debounce = nil
			sync(ctx)

		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			slog.Warn(config.ErrWatcher,
				config.LogKeyComponent, config.CompWatcher,
				config.LogKeyError, err,
			)
		}
	}
}
