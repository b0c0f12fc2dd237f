/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/

// Package api wires the resolution engine into the skaelvoxd HTTP
// server. It is a thin layer over pkg/server: it configures logging,
// loads the catalog, quota, and price snapshots named by environment
// variables, and hands the assembled dependencies to the server.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/jamelachahbar/skaelvox-vm-evolver/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Configuration
//
// Snapshot sources are taken from the environment:
//   - SKAELVOX_CATALOG - path or URL to a SKU catalog snapshot
//   - SKAELVOX_REGION  - region for the built-in static catalog when
//     no snapshot is given (required if SKAELVOX_CATALOG is unset)
//   - SKAELVOX_QUOTA   - path or URL to a quota usage snapshot (optional)
//   - SKAELVOX_PRICES  - path or URL to a price snapshot (optional)
//   - SKAELVOX_OS      - OS pricing line for baked-in prices (default linux)
//
// Server behavior (PORT, SHUTDOWN_TIMEOUT_SECONDS) is configured by
// pkg/server.
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET /v1/resolve - Resolve the best available SKU for a workload
//   - GET /v1/skus    - List catalog SKUs
//   - GET /v1/quota   - Show vCPU quota headroom per family
//
// System endpoints (no rate limiting):
//   - GET /healthz  - Health check (liveness probe)
//   - GET /readyz   - Readiness check
//   - GET /metrics  - Prometheus metrics
package api
