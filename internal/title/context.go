package title

import (
	"fmt"
	"log/slog"
)

// Sink receives one human-readable message per observable change.
type Sink interface {
	Emit(message string)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(message string)

// Emit calls f(message).
func (f SinkFunc) Emit(message string) {
	f(message)
}

// ExecutionContext carries per-invocation settings. It is never persisted.
type ExecutionContext struct {
	// DryRun computes and reports every effect without touching the file system.
	DryRun bool
	// Sink receives progress messages. Nil discards them.
	Sink Sink
	// Logger receives diagnostics. Nil discards them.
	Logger *slog.Logger
}

func (ec ExecutionContext) emit(format string, args ...any) {
	if ec.Sink == nil {
		return
	}
	ec.Sink.Emit(fmt.Sprintf(format, args...))
}

func (ec ExecutionContext) logger() *slog.Logger {
	if ec.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return ec.Logger
}
