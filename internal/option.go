package internal

import (
	"log/slog"

	"github.com/steven-cutting/decree/internal/title"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	logger *slog.Logger
	sink   title.Sink
	dryRun bool
	rename *bool
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *application) {
		a.logger = logger
	}
}

// WithSink sets where progress messages go.
func WithSink(sink title.Sink) Option {
	return func(a *application) {
		a.sink = sink
	}
}

// WithDryRun reports changes without writing them.
func WithDryRun(dryRun bool) Option {
	return func(a *application) {
		a.dryRun = dryRun
	}
}

// WithRename overrides the directory's rename policy. Nil defers to it.
func WithRename(rename *bool) Option {
	return func(a *application) {
		a.rename = rename
	}
}

func (a *application) execContext() title.ExecutionContext {
	return title.ExecutionContext{
		DryRun: a.dryRun,
		Sink:   a.sink,
		Logger: a.logger,
	}
}
