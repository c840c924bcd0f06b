// Package internal provides the application entry points behind the CLI.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/steven-cutting/decree/internal/mcpserver"
	"github.com/steven-cutting/decree/internal/title"
	"github.com/steven-cutting/decree/internal/watch"
)

func newApplication(opts []Option) (*application, error) {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if app.logger == nil {
		app.logger = slog.New(slog.DiscardHandler)
	}
	return app, nil
}

// SetTitle updates the title of the entry identified by target.
func SetTitle(ctx context.Context, target, newTitle string, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	return title.UpdateTitle(app.config.Entries.Dir, target, newTitle, app.rename, app.execContext())
}

// Sync runs one title sync over the entry directory.
func Sync(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	return title.SyncTitles(app.config.Entries.Dir, app.rename, app.execContext())
}

// Watch syncs the entry directory, then keeps it in sync until ctx is
// cancelled or the process receives SIGINT or SIGTERM. A failing first
// sync is returned before watching continues.
func Watch(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	cfg := app.config
	logger := app.logger

	store, err := title.OpenDir(cfg.Entries.Dir)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return watch.Watch(gCtx, store, cfg.Watch.Debounce, logger, func(context.Context) error {
			return title.SyncTitles(cfg.Entries.Dir, app.rename, app.execContext())
		})
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
			cancel()
		case <-gCtx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Watcher error", slog.String("error", err.Error()))
		return err
	}
	logger.Info("Watcher stopped")
	return nil
}

// ServeMCP serves the MCP tools for the entry directory over stdio.
func ServeMCP(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	dir := app.config.Entries.Dir
	store, err := title.OpenDir(dir)
	if err != nil {
		return err
	}
	app.logger.Info("MCP server starting", slog.String("dir", dir))
	return mcpserver.New(dir, store, app.logger).ServeStdio()
}
