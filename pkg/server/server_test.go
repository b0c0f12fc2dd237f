/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/catalog"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/quota"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/resolver"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/sku"
)

const testRegion = "eastus"

func testSpec(name string, vcpus int, mem float64, price float64) *sku.Spec {
	return &sku.Spec{
		Name:       name,
		Family:     sku.ParseFamily(name),
		Generation: sku.ParseGeneration(name),
		VCPUs:      vcpus,
		MemoryGiB:  mem,
		Zones:      map[string][]string{testRegion: {"1", "2", "3"}},
		Prices: map[string]map[sku.OS]float64{
			testRegion: {sku.OSLinux: price},
		},
	}
}

func testServer(t *testing.T) *Server {
	t.Helper()

	cat := catalog.New(testRegion, time.Now(), "test", []*sku.Spec{
		testSpec("Standard_D4s_v3", 4, 16, 0.229),
		testSpec("Standard_D4s_v5", 4, 16, 0.192),
		testSpec("Standard_E4s_v5", 4, 32, 0.252),
	})
	ledger := quota.NewLedger(testRegion, time.Now(), []quota.Record{
		{Family: "D", Region: testRegion, CurrentUsage: 0, Limit: 1000},
		{Family: "E", Region: testRegion, CurrentUsage: 0, Limit: 1000},
	})

	s, err := NewServer(NewConfig(), Deps{
		Catalog:  cat,
		Ledger:   ledger,
		Resolver: resolver.Default(),
	})
	require.NoError(t, err)
	s.SetReady(true)
	return s
}

func doRequest(t *testing.T, s *Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestNewServerRequiresCatalog(t *testing.T) {
	_, err := NewServer(NewConfig(), Deps{})
	require.Error(t, err)
}

func TestHealthEndpoints(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/readyz")
	assert.Equal(t, http.StatusOK, rec.Code)

	s.SetReady(false)
	rec = doRequest(t, s, http.MethodGet, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestDefaultRoute(t *testing.T) {
	s := testServer(t)
	rec := doRequest(t, s, http.MethodGet, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Name   string   `json:"name"`
		Region string   `json:"region"`
		Routes []string `json:"routes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "skaelvoxd", resp.Name)
	assert.Equal(t, testRegion, resp.Region)
	assert.Contains(t, resp.Routes, "GET /v1/resolve")
}

func TestHandleResolve(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodGet,
		"/v1/resolve?minVCPUs=4&minMemoryGiB=16&sku=Standard_D4s_v3")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var verdict resolver.Verdict
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &verdict))
	assert.True(t, verdict.IsAvailable)
	assert.Equal(t, "Standard_D4s_v5", verdict.SKU)
	assert.Equal(t, []int{5, 4, 3}, verdict.GenerationPreference)
}

func TestHandleResolveBadParams(t *testing.T) {
	s := testServer(t)

	tests := []struct {
		name   string
		target string
	}{
		{"bad minVCPUs", "/v1/resolve?minVCPUs=eight"},
		{"negative minVCPUs", "/v1/resolve?minVCPUs=-2"},
		{"bad minMemoryGiB", "/v1/resolve?minMemoryGiB=lots"},
		{"zero count", "/v1/resolve?count=0"},
		{"bad os", "/v1/resolve?os=solaris"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, s, http.MethodGet, tt.target)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var errResp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
			assert.Equal(t, "INVALID_REQUEST", errResp.Code)
			assert.NotEmpty(t, errResp.RequestID)
		})
	}
}

func TestHandleResolveNoCandidates(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/v1/resolve?minVCPUs=512")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var errResp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, "NO_CANDIDATES", errResp.Code)
}

func TestHandleResolveMethodNotAllowed(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodPost, "/v1/resolve")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
}

func TestHandleSKUs(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/v1/skus")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SKUListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, testRegion, resp.Region)
	assert.Equal(t, 3, resp.Count)

	rec = doRequest(t, s, http.MethodGet, "/v1/skus?family=E")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "Standard_E4s_v5", resp.SKUs[0].Name)
}

func TestHandleQuota(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/v1/quota")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp QuotaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, testRegion, resp.Region)
	require.Len(t, resp.Quotas, 2)
	assert.Equal(t, 1000, resp.Quotas[0].Available)
}
