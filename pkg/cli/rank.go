/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

// rankCmd shows the full scored ranking without the availability gates,
// which is the view you want when tuning requirements.
func rankCmd() *cli.Command {
	return &cli.Command{
		Name:                  "rank",
		EnableShellCompletion: true,
		Usage:                 "Score and rank all matching SKUs",
		Description: "Like resolve, but stops after scoring: prints every SKU that satisfies " +
			"the requirements with its composite score and per-factor breakdown, best first.",
		Flags: []cli.Flag{
			regionFlag,
			catalogFlag,
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
				Usage: "Current SKU, used as the generation anchor",
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
			&cli.IntFlag{
				Name:  "top",
				Usage: "Limit output to the N best candidates (0 = all)",
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
			r, err := buildResolver(cmd)
			if err != nil {
				return err
			}
			profile, err := buildProfile(cmd, cat)
			if err != nil {
				return err
			}

			ranked, _, err := r.Rank(profile, cat)
			if err != nil {
				return err
			}
			if top := cmd.Int("top"); top > 0 && top < len(ranked) {
				ranked = ranked[:top]
			}
			return w.Serialize(ctx, ranked)
		},
	}
}
