package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settleDelay coalesces the burst of events editors emit for one save.
const settleDelay = 150 * time.Millisecond

// watch generates once, then rebuilds the graph from scratch and generates
// again every time the input file is written, until ctx is cancelled.
// The graph is never updated in place: each change produces a new graph.
func (a *app) watch(ctx context.Context, asJSON bool) error {
	if a.cfg.MetricsAddr != "" {
		stop := a.serveMetrics(a.cfg.MetricsAddr)
		defer stop()
	}

	regen := func() {
		g, _, err := a.loadGraph()
		if err == nil {
			err = a.generate(ctx, g, asJSON)
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Error("regeneration failed", slog.Any("error", err))
		}
	}
	regen()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	target, err := filepath.Abs(a.cfg.Input)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	// Watch the directory: editors often replace the file via rename.
	if err = watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	a.logger.Info("watching lyrics", slog.String("path", target))

	settle := time.NewTimer(settleDelay)
	settle.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event, target) {
				continue
			}
			settle.Reset(settleDelay)

		case <-settle.C:
			a.logger.Info("lyrics changed, rebuilding")
			regen()

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("file watcher error", slog.Any("error", werr))
		}
	}
}

// relevant reports whether event touches the watched file's content.
func relevant(event fsnotify.Event, target string) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != target {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// serveMetrics exposes /metrics on addr and returns a shutdown func.
func (a *app) serveMetrics(addr string) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.rec.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("metrics server stopped", slog.Any("error", err))
		}
	}()
	a.logger.Info("serving metrics", slog.String("addr", addr))

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
