/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/serializer"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/sku"
)

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// Default handler
	mux.HandleFunc("/", s.handleDefault)

	// System endpoints (no rate limiting)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.Handle("/metrics", promhttp.Handler())

	// API endpoints with middleware
	mux.HandleFunc("/v1/resolve", s.withMiddleware(s.handleResolve))
	mux.HandleFunc("/v1/skus", s.withMiddleware(s.handleSKUs))
	mux.HandleFunc("/v1/quota", s.withMiddleware(s.handleQuota))

	return mux
}

func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	slog.Debug("handling default route",
		"path", r.URL.Path,
		"method", r.Method,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
	)

	resp := struct {
		Name       string   `json:"name"`
		Version    string   `json:"version"`
		Region     string   `json:"region"`
		RegionName string   `json:"regionName"`
		Ready      bool     `json:"ready"`
		Timestamp  string   `json:"timestamp"`
		Routes     []string `json:"routes"`
	}{
		Name:       s.config.Name,
		Version:    s.config.Version,
		Region:     s.catalog.Region(),
		RegionName: sku.RegionDisplayName(s.catalog.Region()),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Routes: []string{
			"GET /v1/resolve",
			"GET /v1/skus",
			"GET /v1/quota",
			"GET /healthz",
			"GET /readyz",
			"GET /metrics",
		},
	}

	s.mu.RLock()
	resp.Ready = s.ready
	s.mu.RUnlock()

	serializer.RespondJSON(w, http.StatusOK, resp)
}
