package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/steven-cutting/decree/internal"
	"github.com/steven-cutting/decree/internal/output"
	"github.com/steven-cutting/decree/internal/title"
	pkgconfig "github.com/steven-cutting/decree/pkg/config"
)

// app carries the state built by the root command's Before hook.
type app struct {
	stdout  io.Writer
	stderr  io.Writer
	config  *internal.Config
	logger  *slog.Logger
	printer *output.Printer
}

func (a *app) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	isTTY := output.ResolveColorMode(cmd.String("color"), output.IsTTY(a.stdout))
	a.printer = output.NewPrinter(a.stdout, isTTY).WithStderr(a.stderr)

	path := cmd.String("config")
	if cmd.IsSet("config") && path != "" {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			a.printer.Warn("config file %s not found, using defaults", path)
		}
	}
	cfg := internal.NewDefaultConfig()
	if err := pkgconfig.LoadOptional(path, cfg); err != nil {
		return ctx, output.NewConfigError(err.Error(), err)
	}
	if cmd.IsSet("dir") {
		cfg.Entries.Dir = cmd.String("dir")
	}
	a.config = cfg

	a.logger = cfg.App.NewLogger(a.stderr)
	slog.SetDefault(a.logger)

	a.logger.Debug("Configuration loaded",
		slog.String("dir", cfg.Entries.Dir),
		slog.String("log_level", cfg.App.LogLevel.String()))
	return ctx, nil
}

// options returns the runtime options shared by every command.
func (a *app) options(dryRun bool, rename *bool) []internal.Option {
	return []internal.Option{
		internal.WithConfig(a.config),
		internal.WithLogger(a.logger),
		internal.WithDryRun(dryRun),
		internal.WithRename(rename),
		internal.WithSink(title.SinkFunc(a.printer.Sink(dryRun))),
	}
}

func usageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return output.NewUsageError(err.Error())
}

func newRootCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:           "decree",
		Usage:          "Keep numbered and dated Markdown records named after their titles",
		Writer:         a.stdout,
		ErrWriter:      a.stderr,
		Before:         a.before,
		OnUsageError:   usageError,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("DECREE_CONFIG"),
			},
			&cli.StringFlag{
				Name:        "dir",
				Usage:       "Entry directory",
				DefaultText: internal.DefaultDir,
				Sources:     cli.EnvVars("DECREE_DIR"),
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "When to color output: auto, always, never",
				Value: "auto",
			},
		},
		Commands: []*cli.Command{
			newTitleCommand(a),
			newMCPCommand(a),
		},
	}
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{
		stdout:  stdout,
		stderr:  stderr,
		printer: output.NewPrinter(stdout, false).WithStderr(stderr),
	}
	err := newRootCommand(a).Run(ctx, args)
	if err != nil {
		a.printer.Error(err)
	}
	return output.GetExitCode(err)
}

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}
