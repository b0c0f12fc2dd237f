/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package defaults

import (
	"testing"
	"time"
)

func TestTimeoutConstants(t *testing.T) {
	tests := []struct {
		name     string
		timeout  time.Duration
		minValue time.Duration
		maxValue time.Duration
	}{
		// Provider timeouts
		{"ProviderTimeout", ProviderTimeout, 10 * time.Second, 60 * time.Second},
		{"PricingPageTimeout", PricingPageTimeout, 5 * time.Second, 30 * time.Second},
		{"CatalogRefreshTimeout", CatalogRefreshTimeout, 30 * time.Second, 5 * time.Minute},

		// Handler timeouts
		{"ResolveHandlerTimeout", ResolveHandlerTimeout, 10 * time.Second, 60 * time.Second},
		{"AnalyzeHandlerTimeout", AnalyzeHandlerTimeout, 30 * time.Second, 5 * time.Minute},

		// Server timeouts
		{"ServerReadTimeout", ServerReadTimeout, 5 * time.Second, 30 * time.Second},
		{"ServerWriteTimeout", ServerWriteTimeout, 15 * time.Second, 60 * time.Second},
		{"ServerIdleTimeout", ServerIdleTimeout, 30 * time.Second, 300 * time.Second},
		{"ServerShutdownTimeout", ServerShutdownTimeout, 10 * time.Second, 60 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.timeout < tt.minValue {
				t.Errorf("%s (%v) is below minimum expected value (%v)", tt.name, tt.timeout, tt.minValue)
			}
			if tt.timeout > tt.maxValue {
				t.Errorf("%s (%v) is above maximum expected value (%v)", tt.name, tt.timeout, tt.maxValue)
			}
		})
	}
}

func TestHTTPClientTimeoutRelationships(t *testing.T) {
	// Connect timeout should be less than total timeout
	if HTTPConnectTimeout >= HTTPClientTimeout {
		t.Errorf("HTTPConnectTimeout (%v) should be less than HTTPClientTimeout (%v)",
			HTTPConnectTimeout, HTTPClientTimeout)
	}

	// TLS handshake timeout should be less than total timeout
	if HTTPTLSHandshakeTimeout >= HTTPClientTimeout {
		t.Errorf("HTTPTLSHandshakeTimeout (%v) should be less than HTTPClientTimeout (%v)",
			HTTPTLSHandshakeTimeout, HTTPClientTimeout)
	}
}

func TestPricingPageLessThanProvider(t *testing.T) {
	// A single pricing page must fit well inside one provider call budget
	if PricingPageTimeout >= ProviderTimeout {
		t.Errorf("PricingPageTimeout (%v) should be less than ProviderTimeout (%v)",
			PricingPageTimeout, ProviderTimeout)
	}
}

func TestServerTimeoutRelationships(t *testing.T) {
	// Read timeout should be shorter than write timeout
	if ServerReadTimeout > ServerWriteTimeout {
		t.Errorf("ServerReadTimeout (%v) should not exceed ServerWriteTimeout (%v)",
			ServerReadTimeout, ServerWriteTimeout)
	}

	// Idle timeout should be longer than write timeout
	if ServerIdleTimeout < ServerWriteTimeout {
		t.Errorf("ServerIdleTimeout (%v) should be at least ServerWriteTimeout (%v)",
			ServerIdleTimeout, ServerWriteTimeout)
	}
}

func TestResolveTimeoutLessThanAnalyze(t *testing.T) {
	// Fleet analysis fans out across many VMs and needs more headroom
	// than a single resolve
	if ResolveHandlerTimeout > AnalyzeHandlerTimeout {
		t.Errorf("ResolveHandlerTimeout (%v) should not exceed AnalyzeHandlerTimeout (%v)",
			ResolveHandlerTimeout, AnalyzeHandlerTimeout)
	}
}

func TestAnalysisLimits(t *testing.T) {
	if AnalysisWorkers < 1 {
		t.Errorf("AnalysisWorkers must be positive, got %d", AnalysisWorkers)
	}
	if AnalysisMaxVMs < AnalysisWorkers {
		t.Errorf("AnalysisMaxVMs (%d) should be at least AnalysisWorkers (%d)",
			AnalysisMaxVMs, AnalysisWorkers)
	}
}
