/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

// resolveCmd answers "which SKU should I run, and can I actually get it".
func resolveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "resolve",
		EnableShellCompletion: true,
		Usage:                 "Resolve the best available SKU for a workload",
		Description: "Scores every catalog SKU that satisfies the requirements, then walks " +
			"the ranking through region restrictions, zone availability, and quota headroom " +
			"until one passes. Blocked candidates are reported as alternatives.",
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
				Name:  "sku",
				Usage: "Current SKU, used as the generation and similarity anchor",
			},
			&cli.IntFlag{
				Name:  "min-vcpus",
				Usage: "Minimum vCPU count",
			},
			&cli.Float64Flag{
				Name:  "min-memory",
				Usage: "Minimum memory in GiB",
			},
			&cli.StringSliceFlag{
				Name:  "capability",
				Usage: "Required capability (repeatable, e.g. PremiumIO)",
			},
			&cli.StringSliceFlag{
				Name:  "zone",
				Usage: "Required availability zone (repeatable)",
			},
			&cli.IntFlag{
				Name:  "count",
				Value: 1,
				Usage: "Instance count the quota check should budget for",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w, err := newWriter(cmd)
			if err != nil {
				return err
			}
			defer w.Close()

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
			profile, err := buildProfile(cmd, cat)
			if err != nil {
				return err
			}

			verdict, err := r.Resolve(ctx, profile, cat, ledger)
			if err != nil {
				return err
			}
			return w.Serialize(ctx, verdict)
		},
	}
}
