/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package api

import (
	"context"
	"log/slog"
	"os"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/catalog"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/errors"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/logging"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/pricing"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/quota"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/server"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/sku"
)

const (
	name           = "skaelvoxd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/jamelachahbar/skaelvox-vm-evolver/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, loads the data snapshots, and handles
// graceful shutdown. Returns an error if the snapshots cannot be
// loaded or the server encounters a fatal error.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	deps, err := loadDeps(context.Background())
	if err != nil {
		return err
	}

	config := server.NewConfig()
	config.Name = name
	config.Version = version

	if err := server.Run(config, deps); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}
	return nil
}

// loadDeps assembles the server dependencies from the environment.
func loadDeps(ctx context.Context) (server.Deps, error) {
	cat, err := loadCatalog()
	if err != nil {
		return server.Deps{}, err
	}

	if err := applyPrices(ctx, cat); err != nil {
		return server.Deps{}, err
	}

	ledger, err := loadLedger()
	if err != nil {
		return server.Deps{}, err
	}

	return server.Deps{Catalog: cat, Ledger: ledger}, nil
}

func loadCatalog() (*catalog.Catalog, error) {
	if path := os.Getenv("SKAELVOX_CATALOG"); path != "" {
		return catalog.LoadFromFile(path)
	}
	region := os.Getenv("SKAELVOX_REGION")
	if region == "" {
		return nil, errors.New(errors.ErrCodeConfiguration,
			"either SKAELVOX_CATALOG or SKAELVOX_REGION must be set")
	}
	cat := catalog.NewStatic(region)
	slog.Warn("no catalog snapshot given, using the static table",
		"region", cat.Region(), "skus", cat.Len())
	return cat, nil
}

func loadLedger() (*quota.Ledger, error) {
	path := os.Getenv("SKAELVOX_QUOTA")
	if path == "" {
		slog.Warn("no quota snapshot given, quota checks will be indeterminate")
		return nil, nil
	}
	return quota.LoadLedgerFromFile(path)
}

func applyPrices(ctx context.Context, cat *catalog.Catalog) error {
	path := os.Getenv("SKAELVOX_PRICES")
	if path == "" {
		return nil
	}

	osLine, ok := sku.ParseOS(os.Getenv("SKAELVOX_OS"))
	if !ok {
		return errors.New(errors.ErrCodeConfiguration, "invalid SKAELVOX_OS value")
	}

	src, err := pricing.LoadSnapshotSource(path)
	if err != nil {
		return err
	}
	prices, err := src.Prices(ctx, cat.Region(), osLine)
	if err != nil {
		return err
	}
	priced := pricing.Apply(prices, cat.All(), cat.Region(), osLine)
	slog.Info("prices applied", "region", cat.Region(), "priced", priced, "of", cat.Len())
	return nil
}
