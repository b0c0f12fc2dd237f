/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/quota"
)

type quotaRow struct {
	Family    string `json:"family" yaml:"family"`
	Region    string `json:"region" yaml:"region"`
	Usage     int    `json:"currentUsage" yaml:"currentUsage"`
	Limit     int    `json:"limit" yaml:"limit"`
	Available int    `json:"available" yaml:"available"`
}

// quotaCmd reports per-family vCPU headroom from a quota snapshot.
func quotaCmd() *cli.Command {
	return &cli.Command{
		Name:                  "quota",
		EnableShellCompletion: true,
		Usage:                 "Show vCPU quota headroom per family",
		Flags: []cli.Flag{
			quotaFileFlag,
			outputFlag,
			formatFlag,
			&cli.StringFlag{
				Name:    "family",
				Aliases: []string{"f"},
				Usage:   "Only show this family (e.g. Dsv5)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w, err := newWriter(cmd)
			if err != nil {
				return err
			}
			defer w.Close()

			if cmd.String("quota-file") == "" {
				return fmt.Errorf("--quota-file is required")
			}
			ledger, err := loadLedger(cmd)
			if err != nil {
				return err
			}

			if family := cmd.String("family"); family != "" {
				rec, err := ledger.Lookup(family)
				if err != nil {
					return err
				}
				return w.Serialize(ctx, quotaRowFor(rec))
			}

			records := ledger.Records()
			rows := make([]quotaRow, 0, len(records))
			for _, rec := range records {
				rows = append(rows, quotaRowFor(rec))
			}
			return w.Serialize(ctx, rows)
		},
	}
}

func quotaRowFor(rec quota.Record) quotaRow {
	return quotaRow{
		Family:    rec.Family,
		Region:    rec.Region,
		Usage:     rec.CurrentUsage,
		Limit:     rec.Limit,
		Available: rec.Available(),
	}
}
