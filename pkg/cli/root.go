/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/logging"
)

const (
	name           = "skaelvox"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Shared flags across commands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   "yaml",
		Usage:   "Output format (yaml, json, table, csv)",
	}
	regionFlag = &cli.StringFlag{
		Name:    "region",
		Aliases: []string{"r"},
		Sources: cli.EnvVars("SKAELVOX_REGION"),
		Usage:   "Target region (e.g. eastus)",
	}
	catalogFlag = &cli.StringFlag{
		Name:    "catalog",
		Aliases: []string{"c"},
		Sources: cli.EnvVars("SKAELVOX_CATALOG"),
		Usage:   "Path or URL to a SKU catalog snapshot; falls back to the built-in static table",
	}
	quotaFileFlag = &cli.StringFlag{
		Name:    "quota-file",
		Sources: cli.EnvVars("SKAELVOX_QUOTA"),
		Usage:   "Path or URL to a quota usage snapshot",
	}
	pricesFlag = &cli.StringFlag{
		Name:    "prices",
		Sources: cli.EnvVars("SKAELVOX_PRICES"),
		Usage:   "Path or URL to a price snapshot; use --live-prices to query the retail API instead",
	}
	livePricesFlag = &cli.BoolFlag{
		Name:  "live-prices",
		Usage: "Fetch prices from the public retail prices API",
	}
	osFlag = &cli.StringFlag{
		Name:  "os",
		Value: "linux",
		Usage: "OS pricing line (linux, windows)",
	}
	leapFlag = &cli.IntFlag{
		Name:  "leap",
		Value: 2,
		Usage: "Generation leap distance (1-3)",
	}
	noEvolveFlag = &cli.BoolFlag{
		Name:  "no-evolve",
		Usage: "Disable generation evolution; stay on the current generation",
	}
	noFallbackFlag = &cli.BoolFlag{
		Name:  "no-fallback",
		Usage: "Accept only the leap target generation, no intermediate fallback",
	}
)

// Root assembles the CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "VM SKU resolution engine",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Usage:   "Log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date)
			return ctx, nil
		},
		Commands: []*cli.Command{
			resolveCmd(),
			rankCmd(),
			skusCmd(),
			quotaCmd(),
			analyzeCmd(),
		},
	}
}

// Execute runs the CLI with signal-aware cancellation.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Root().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
