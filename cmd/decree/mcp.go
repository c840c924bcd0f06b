package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/steven-cutting/decree/internal"
)

func newMCPCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:         "mcp",
		Usage:        "Serve the title tools over MCP on stdin/stdout",
		OnUsageError: usageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return internal.ServeMCP(ctx, a.options(false, nil)...)
		},
	}
}
