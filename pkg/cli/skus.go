/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/sku"
)

type skuRow struct {
	Name       string   `json:"name" yaml:"name"`
	Family     string   `json:"family" yaml:"family"`
	Generation int      `json:"generation" yaml:"generation"`
	VCPUs      int      `json:"vcpus" yaml:"vcpus"`
	MemoryGiB  float64  `json:"memoryGiB" yaml:"memoryGiB"`
	Zones      []string `json:"zones,omitempty" yaml:"zones,omitempty"`
	PriceHour  *float64 `json:"pricePerHour,omitempty" yaml:"pricePerHour,omitempty"`
}

// skusCmd lists the catalog, optionally narrowed to one family.
func skusCmd() *cli.Command {
	return &cli.Command{
		Name:                  "skus",
		EnableShellCompletion: true,
		Usage:                 "List catalog SKUs",
		Flags: []cli.Flag{
			regionFlag,
			catalogFlag,
			pricesFlag,
			livePricesFlag,
			osFlag,
			outputFlag,
			formatFlag,
			&cli.StringFlag{
				Name:    "family",
				Aliases: []string{"f"},
				Usage:   "Only list SKUs of this family (e.g. D)",
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
			os, err := parseOSFlag(cmd)
			if err != nil {
				return err
			}

			specs := cat.All()
			if family := cmd.String("family"); family != "" {
				specs = cat.Family(family)
			}

			rows := make([]skuRow, 0, len(specs))
			for _, s := range specs {
				rows = append(rows, skuRowFor(s, cat.Region(), os))
			}
			return w.Serialize(ctx, rows)
		},
	}
}

func skuRowFor(s *sku.Spec, region string, os sku.OS) skuRow {
	row := skuRow{
		Name:       s.Name,
		Family:     strings.ToUpper(s.Family),
		Generation: s.Generation,
		VCPUs:      s.VCPUs,
		MemoryGiB:  s.MemoryGiB,
		Zones:      s.AvailableZones(region),
	}
	if price, ok := s.PricePerHour(region, os); ok {
		row.PriceHour = &price
	}
	return row
}
