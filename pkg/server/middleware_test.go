/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDGenerated(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/v1/skus")
	id := rec.Header().Get("X-Request-Id")
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestIDPropagated(t *testing.T) {
	s := testServer(t)

	want := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/v1/skus", nil)
	req.Header.Set("X-Request-Id", want)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, want, rec.Header().Get("X-Request-Id"))
}

func TestRequestIDInvalidReplaced(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/skus", nil)
	req.Header.Set("X-Request-Id", "not-a-uuid")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	got := rec.Header().Get("X-Request-Id")
	require.NotEmpty(t, got)
	assert.NotEqual(t, "not-a-uuid", got)
	_, err := uuid.Parse(got)
	assert.NoError(t, err)
}

func TestAPIVersionHeader(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/v1/skus")
	assert.Equal(t, "v1", rec.Header().Get("X-API-Version"))

	req := httptest.NewRequest(http.MethodGet, "/v1/skus", nil)
	req.Header.Set("Accept", "application/vnd.skaelvox.v1+json")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "v1", rec.Header().Get("X-API-Version"))
}

func TestRateLimitHeaders(t *testing.T) {
	s := testServer(t)

	rec := doRequest(t, s, http.MethodGet, "/v1/skus")
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Reset"))
}

func TestRateLimitRejects(t *testing.T) {
	cfg := NewConfig()
	cfg.RateLimit = 1
	cfg.RateLimitBurst = 1

	base := testServer(t)
	s, err := NewServer(cfg, Deps{Catalog: base.catalog, Ledger: base.ledger, Resolver: base.resolver})
	require.NoError(t, err)
	s.SetReady(true)

	first := doRequest(t, s, http.MethodGet, "/v1/skus")
	require.Equal(t, http.StatusOK, first.Code)

	second := doRequest(t, s, http.MethodGet, "/v1/skus")
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
}

func TestNegotiateAPIVersion(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{"empty defaults", "", "v1"},
		{"plain json", "application/json", "v1"},
		{"vendor v1", "application/vnd.skaelvox.v1+json", "v1"},
		{"vendor unknown version", "application/vnd.skaelvox.v9+json", "v1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			assert.Equal(t, tt.want, negotiateAPIVersion(req))
		})
	}
}
