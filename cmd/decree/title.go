package main

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/steven-cutting/decree/internal"
	"github.com/steven-cutting/decree/internal/output"
)

func renameFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "rename",
			Usage: "Rename files to match their titles (overrides .decree/config.toml)",
		},
		&cli.BoolFlag{
			Name:  "no-rename",
			Usage: "Keep filenames unchanged (overrides .decree/config.toml)",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Show what would change without writing anything",
		},
	}
}

// renameOverride returns nil when neither --rename nor --no-rename is given.
func renameOverride(cmd *cli.Command) (*bool, error) {
	yes, no := cmd.Bool("rename"), cmd.Bool("no-rename")
	var v bool
	switch {
	case yes && no:
		return nil, output.NewUsageError("--rename and --no-rename cannot be used together")
	case yes:
		v = true
	case no:
		v = false
	default:
		return nil, nil
	}
	return &v, nil
}

func newTitleCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:         "title",
		Usage:        "Manage entry titles, filenames, and links",
		OnUsageError: usageError,
		Commands: []*cli.Command{
			{
				Name:         "set",
				Usage:        "Set the title of one entry",
				ArgsUsage:    "<target> <title words...>",
				OnUsageError: usageError,
				Flags:        renameFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					args := cmd.Args().Slice()
					if len(args) < 2 {
						return output.NewUsageError("expected a target and a title")
					}
					newTitle := strings.Join(args[1:], " ")
					if strings.TrimSpace(newTitle) == "" {
						return output.NewUsageError("title must not be empty")
					}
					rename, err := renameOverride(cmd)
					if err != nil {
						return err
					}
					return internal.SetTitle(ctx, args[0], newTitle, a.options(cmd.Bool("dry-run"), rename)...)
				},
			},
			{
				Name:         "sync",
				Usage:        "Align every entry's heading prefix and filename with its title",
				OnUsageError: usageError,
				Flags: append(renameFlags(), &cli.BoolFlag{
					Name:  "watch",
					Usage: "Keep syncing as files change",
				}),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Present() {
						return output.NewUsageError("sync takes no arguments")
					}
					rename, err := renameOverride(cmd)
					if err != nil {
						return err
					}
					dryRun := cmd.Bool("dry-run")
					if cmd.Bool("watch") {
						if dryRun {
							return output.NewUsageError("--watch cannot be combined with --dry-run")
						}
						return internal.Watch(ctx, a.options(false, rename)...)
					}
					return internal.Sync(ctx, a.options(dryRun, rename)...)
				},
			},
		},
	}
}
