/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package server

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/errors"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/resolver"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/serializer"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/sku"
)

// requireGet rejects non-GET methods with a structured 405.
func (s *Server) requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	w.Header().Set("Allow", http.MethodGet)
	s.writeError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{"method": r.Method})
	return false
}

// handleResolve processes GET /v1/resolve requests end-to-end, ensuring
// structured error responses consistent with the rest of the server surface.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}

	profile, err := parseProfile(r, s.catalog.Region())
	if err != nil {
		s.writeStructuredError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.config.ResolveTimeout)
	defer cancel()

	verdict, err := s.resolver.Resolve(ctx, profile, s.catalog, s.ledger)
	if err != nil {
		s.writeStructuredError(w, r, err)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, verdict)
}

// parseProfile builds a requirement profile from query parameters.
func parseProfile(r *http.Request, region string) (resolver.Profile, error) {
	q := r.URL.Query()
	p := resolver.Profile{
		TargetRegion: region,
		CurrentSKU:   q.Get("sku"),
	}

	if v := q.Get("minVCPUs"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return p, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"minVCPUs must be a non-negative integer", map[string]any{"minVCPUs": v})
		}
		p.MinVCPUs = n
	}
	if v := q.Get("minMemoryGiB"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return p, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"minMemoryGiB must be a non-negative number", map[string]any{"minMemoryGiB": v})
		}
		p.MinMemoryGiB = f
	}
	if v := q.Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return p, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"count must be a positive integer", map[string]any{"count": v})
		}
		p.InstanceCount = n
	}
	if v := q.Get("os"); v != "" {
		os, ok := sku.ParseOS(v)
		if !ok {
			return p, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"os must be linux or windows", map[string]any{"os": v})
		}
		p.OS = os
	}
	p.TargetZones = splitList(q.Get("zones"))
	p.RequiredCapabilities = splitList(q.Get("capabilities"))
	return p, nil
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// handleSKUs processes GET /v1/skus, optionally filtered by family.
func (s *Server) handleSKUs(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}

	specs := s.catalog.All()
	if family := r.URL.Query().Get("family"); family != "" {
		specs = s.catalog.Family(family)
	}

	resp := SKUListResponse{
		Region:  s.catalog.Region(),
		Source:  s.catalog.Source(),
		BuiltAt: s.catalog.BuiltAt(),
		Count:   len(specs),
		SKUs:    make([]SKUItem, 0, len(specs)),
	}
	for _, spec := range specs {
		item := SKUItem{
			Name:       spec.Name,
			Family:     spec.Family,
			Generation: spec.Generation,
			VCPUs:      spec.VCPUs,
			MemoryGiB:  spec.MemoryGiB,
			Zones:      spec.AvailableZones(s.catalog.Region()),
		}
		if price, ok := spec.PricePerHour(s.catalog.Region(), sku.OSLinux); ok {
			item.PricePerHour = price
		}
		resp.SKUs = append(resp.SKUs, item)
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// handleQuota processes GET /v1/quota.
func (s *Server) handleQuota(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}

	resp := QuotaResponse{
		Region:  s.ledger.Region(),
		BuiltAt: s.ledger.BuiltAt(),
	}
	for _, rec := range s.ledger.Records() {
		resp.Quotas = append(resp.Quotas, QuotaItem{
			Family:       rec.Family,
			CurrentUsage: rec.CurrentUsage,
			Limit:        rec.Limit,
			Available:    rec.Available(),
		})
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}
