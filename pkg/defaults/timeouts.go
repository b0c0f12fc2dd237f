/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package defaults

import "time"

// Provider timeouts for outbound calls to the cloud APIs.
const (
	// ProviderTimeout is the default timeout for a single provider call
	// (SKU listing, quota usage, pricing page). Callers should respect
	// parent context deadlines when shorter.
	ProviderTimeout = 30 * time.Second

	// PricingPageTimeout is the timeout for a single retail prices page.
	PricingPageTimeout = 15 * time.Second

	// CatalogRefreshTimeout bounds a full per-region catalog rebuild,
	// which may span several paged listings.
	CatalogRefreshTimeout = 2 * time.Minute
)

// Handler timeouts for HTTP request processing.
const (
	// ResolveHandlerTimeout is the timeout for a single resolve request.
	ResolveHandlerTimeout = 30 * time.Second

	// AnalyzeHandlerTimeout is the timeout for fleet analysis requests.
	// Longer than resolve because it fans out across many VMs.
	AnalyzeHandlerTimeout = 2 * time.Minute
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// HTTP client timeouts for outbound requests.
const (
	// HTTPClientTimeout is the total timeout for one outbound HTTP request.
	HTTPClientTimeout = 30 * time.Second

	// HTTPConnectTimeout is the TCP connect timeout.
	HTTPConnectTimeout = 5 * time.Second

	// HTTPKeepAlive is the TCP keep-alive interval.
	HTTPKeepAlive = 30 * time.Second

	// HTTPTLSHandshakeTimeout is the TLS handshake timeout.
	HTTPTLSHandshakeTimeout = 10 * time.Second

	// HTTPResponseHeaderTimeout is the time to wait for response headers.
	HTTPResponseHeaderTimeout = 10 * time.Second

	// HTTPIdleConnTimeout is how long idle connections are kept in the pool.
	HTTPIdleConnTimeout = 90 * time.Second
)

// Analysis limits for fleet fan-out.
const (
	// AnalysisWorkers is the default number of concurrent VM analyses.
	AnalysisWorkers = 8

	// AnalysisMaxVMs caps the number of VMs accepted in one batch request.
	AnalysisMaxVMs = 500
)

// Pricing client limits.
const (
	// PricingRequestsPerSecond is the rate limit applied to the retail
	// prices API, which throttles aggressively above this.
	PricingRequestsPerSecond = 5

	// PricingBurst is the rate limiter burst size for the pricing client.
	PricingBurst = 10
)
