/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/analysis"
)

// analyzeCmd resolves a whole fleet file and reports per-workload
// verdicts plus the aggregate savings picture.
func analyzeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "analyze",
		EnableShellCompletion: true,
		Usage:                 "Analyze a fleet of workloads against the catalog",
		Description: "Reads a fleet file (one entry per workload with its current SKU), resolves " +
			"each entry concurrently, and emits a report with verdicts, failures, and the " +
			"estimated monthly savings of moving each workload to its resolved SKU.",
		Flags: []cli.Flag{
			regionFlag,
			catalogFlag,
			quotaFileFlag,
			pricesFlag,
			livePricesFlag,
			osFlag,
			leapFlag,
			noEvolveFlag,
			noFallbackFlag,
			outputFlag,
			formatFlag,
			&cli.StringFlag{
				Name:     "fleet",
				Aliases:  []string{"f"},
				Required: true,
				Usage:    "Path or URL to the fleet file",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "Concurrent resolution workers (default: 8)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w, err := newWriter(cmd)
			if err != nil {
				return err
			}
			defer w.Close()

			fleet, err := analysis.LoadFleet(cmd.String("fleet"))
			if err != nil {
				return err
			}
			cat, err := loadCatalog(ctx, cmd)
			if err != nil {
				return err
			}
			ledger, err := loadLedger(cmd)
			if err != nil {
				return err
			}
			r, err := buildResolver(cmd)
			if err != nil {
				return err
			}

			report, err := analysis.NewAnalyzer(r, cmd.Int("workers")).Run(ctx, fleet, cat, ledger)
			if err != nil {
				return err
			}
			return w.Serialize(ctx, report)
		},
	}
}
