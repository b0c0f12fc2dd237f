/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/catalog"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/evolver"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/pricing"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/quota"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/resolver"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/scorer"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/serializer"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/similarity"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/sku"
)

// newWriter validates the format flag and opens the output writer.
func newWriter(cmd *cli.Command) (*serializer.Writer, error) {
	outFormat := serializer.Format(cmd.String("format"))
	if outFormat.IsUnknown() {
		return nil, fmt.Errorf("unknown output format: %q (supported: %v)",
			outFormat, serializer.SupportedFormats())
	}
	return serializer.NewFileWriterOrStdout(outFormat, cmd.String("output")), nil
}

// parseOSFlag validates the os flag.
func parseOSFlag(cmd *cli.Command) (sku.OS, error) {
	os, ok := sku.ParseOS(cmd.String("os"))
	if !ok {
		return "", fmt.Errorf("invalid os: %q (supported: linux, windows)", cmd.String("os"))
	}
	return os, nil
}

// loadCatalog builds the catalog from the snapshot flag, or from the
// static table when no snapshot is given. Prices are baked in when a
// price source is configured.
func loadCatalog(ctx context.Context, cmd *cli.Command) (*catalog.Catalog, error) {
	var cat *catalog.Catalog
	var err error

	if path := cmd.String("catalog"); path != "" {
		cat, err = catalog.LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading catalog snapshot: %w", err)
		}
	} else {
		region := cmd.String("region")
		if region == "" {
			return nil, fmt.Errorf("either --catalog or --region is required")
		}
		cat = catalog.NewStatic(region)
		slog.Warn("no catalog snapshot given, using the static table",
			"region", cat.Region(), "skus", cat.Len())
	}

	if err := applyPrices(ctx, cmd, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// applyPrices bakes prices from the configured source into the catalog.
func applyPrices(ctx context.Context, cmd *cli.Command, cat *catalog.Catalog) error {
	os, err := parseOSFlag(cmd)
	if err != nil {
		return err
	}

	var src pricing.Source
	switch {
	case cmd.String("prices") != "":
		src, err = pricing.LoadSnapshotSource(cmd.String("prices"))
		if err != nil {
			return fmt.Errorf("loading price snapshot: %w", err)
		}
	case cmd.Bool("live-prices"):
		src = pricing.NewRetailClient()
	default:
		return nil
	}

	prices, err := src.Prices(ctx, cat.Region(), os)
	if err != nil {
		return fmt.Errorf("fetching prices: %w", err)
	}
	priced := pricing.Apply(prices, cat.All(), cat.Region(), os)
	slog.Debug("prices applied", "region", cat.Region(), "priced", priced, "of", cat.Len())
	return nil
}

// loadLedger reads the quota snapshot when one is configured. A nil
// ledger makes every quota check indeterminate rather than failing.
func loadLedger(cmd *cli.Command) (*quota.Ledger, error) {
	path := cmd.String("quota-file")
	if path == "" {
		return nil, nil
	}
	ledger, err := quota.LoadLedgerFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading quota snapshot: %w", err)
	}
	return ledger, nil
}

// buildResolver assembles the engine from the policy flags.
func buildResolver(cmd *cli.Command) (*resolver.Resolver, error) {
	policy, err := evolver.NewPolicy(
		cmd.Int("leap"),
		!cmd.Bool("no-evolve"),
		!cmd.Bool("no-fallback"),
	)
	if err != nil {
		return nil, err
	}
	return resolver.New(policy, scorer.New(scorer.DefaultWeights()), similarity.DefaultMatcher()), nil
}

// buildProfile reads the requirement flags shared by resolve and rank.
func buildProfile(cmd *cli.Command, cat *catalog.Catalog) (resolver.Profile, error) {
	os, err := parseOSFlag(cmd)
	if err != nil {
		return resolver.Profile{}, err
	}
	return resolver.Profile{
		MinVCPUs:             cmd.Int("min-vcpus"),
		MinMemoryGiB:         cmd.Float64("min-memory"),
		OS:                   os,
		RequiredCapabilities: cmd.StringSlice("capability"),
		TargetRegion:         cat.Region(),
		TargetZones:          cmd.StringSlice("zone"),
		CurrentSKU:           cmd.String("sku"),
		InstanceCount:        cmd.Int("count"),
	}, nil
}
