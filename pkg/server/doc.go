/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/

// Package server exposes the SKU resolution engine over a read-only
// HTTP API.
//
// # Architecture
//
// The server is stateless between requests; catalog and quota snapshots
// are built once at startup and held read-only. Key components:
//
//   - Rate limiting using token bucket algorithm (golang.org/x/time/rate)
//   - Request ID tracking for distributed tracing
//   - Panic recovery for resilience
//   - Graceful shutdown handling
//   - Health and readiness probes for Kubernetes
//   - Prometheus metrics on /metrics
//
// # Usage
//
// Basic server startup:
//
//	cfg := server.NewConfig()
//	cfg.Port = 9090
//	if err := server.Run(cfg, deps); err != nil {
//	    panic(err)
//	}
//
// # API Endpoints
//
// GET /v1/resolve - Resolve a deployable SKU for a requirement profile
//
//	Query parameters:
//	  - minVCPUs: minimum vCPU count (default 0)
//	  - minMemoryGiB: minimum memory in GiB (default 0)
//	  - os: linux or windows (default linux)
//	  - sku: current SKU name, drives generation evolution (optional)
//	  - zones: comma-separated target zones (optional)
//	  - capabilities: comma-separated required capability names (optional)
//	  - count: instance count for the quota check (default 1)
//
//	Example:
//	  curl "http://localhost:8080/v1/resolve?minVCPUs=4&minMemoryGiB=16&sku=Standard_D4s_v3"
//
// GET /v1/skus - List catalog SKUs, optionally filtered by ?family=
//
// GET /v1/quota - List quota records for the region
//
// GET /healthz - Liveness probe, always 200 when the process serves
//
// GET /readyz - Readiness probe, 503 until snapshots are loaded
//
// GET /metrics - Prometheus metrics
//
// # Observability
//
// All requests accept an optional X-Request-Id header (UUID format).
// If not provided, the server generates one automatically. The request
// ID is returned in the X-Request-Id response header and included in
// all error responses for tracing.
//
// Rate limit status is reported via X-RateLimit-Limit,
// X-RateLimit-Remaining and X-RateLimit-Reset headers; a rejected
// request gets 429 with Retry-After.
//
// # Error Handling
//
// All errors return a consistent JSON structure:
//
//	{
//	  "code": "INVALID_REQUEST",
//	  "message": "minVCPUs must be a non-negative integer",
//	  "details": {...},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-03-01T12:00:00Z",
//	  "retryable": false
//	}
package server
