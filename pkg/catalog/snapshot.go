/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package catalog

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/errors"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/serializer"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/sku"
)

// Capability names carrying the core sizing figures in provider payloads.
const (
	capVCPUs    = "vCPUs"
	capMemoryGB = "MemoryGB"
)

// Snapshot is the serialized form of a region's SKU listing, the shape
// handed over by the external catalog builder.
type Snapshot struct {
	Region  string        `json:"region" yaml:"region"`
	BuiltAt time.Time     `json:"builtAt" yaml:"builtAt"`
	SKUs    []SnapshotSKU `json:"skus" yaml:"skus"`
}

// SnapshotSKU is one raw SKU entry in a snapshot document.
type SnapshotSKU struct {
	Name         string               `json:"name" yaml:"name"`
	Capabilities []SnapshotCapability `json:"capabilities,omitempty" yaml:"capabilities,omitempty"`
	Locations    []SnapshotLocation   `json:"locations,omitempty" yaml:"locations,omitempty"`
	Restrictions []sku.Restriction    `json:"restrictions,omitempty" yaml:"restrictions,omitempty"`
	// Prices are hourly USD by OS for the snapshot's region.
	Prices map[sku.OS]float64 `json:"prices,omitempty" yaml:"prices,omitempty"`
}

// SnapshotCapability is a raw name/value capability flag.
type SnapshotCapability struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// SnapshotLocation describes where a SKU can deploy, with the optional
// per-zone placement signal.
type SnapshotLocation struct {
	Location  string            `json:"location" yaml:"location"`
	Zones     []string          `json:"zones,omitempty" yaml:"zones,omitempty"`
	Placement map[string]string `json:"placement,omitempty" yaml:"placement,omitempty"`
}

// Build converts the snapshot into a Catalog. Entries without positive
// vCPU and memory figures are dropped after consulting the static
// fallback table for memory, mirroring the provider's occasionally
// incomplete capability lists.
func (s *Snapshot) Build() (*Catalog, error) {
	if s.Region == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest,
			"catalog snapshot has no region")
	}

	start := time.Now()
	builtAt := s.BuiltAt
	if builtAt.IsZero() {
		builtAt = time.Now().UTC()
	}

	specs := make([]*sku.Spec, 0, len(s.SKUs))
	for _, raw := range s.SKUs {
		spec, ok := s.buildSpec(raw)
		if !ok {
			skippedSKUs.Inc()
			continue
		}
		specs = append(specs, spec)
	}

	c := New(strings.ToLower(s.Region), builtAt, "snapshot", specs)
	buildDuration.Observe(time.Since(start).Seconds())
	catalogSKUs.WithLabelValues(s.Region, c.Source()).Set(float64(c.Len()))

	slog.Debug("catalog built",
		"region", s.Region,
		"skus", c.Len(),
		"dropped", len(s.SKUs)-c.Len(),
	)
	return c, nil
}

func (s *Snapshot) buildSpec(raw SnapshotSKU) (*sku.Spec, bool) {
	if raw.Name == "" {
		return nil, false
	}

	caps := make(map[string]string, len(raw.Capabilities))
	for _, c := range raw.Capabilities {
		caps[c.Name] = c.Value
	}

	vcpus := parseIntCapability(caps[capVCPUs])
	memory := parseFloatCapability(caps[capMemoryGB])
	if memory <= 0 {
		memory = FallbackMemoryGiB(raw.Name)
	}
	if vcpus <= 0 || memory <= 0 {
		slog.Warn("dropping sku with incomplete sizing data",
			"sku", raw.Name, "vcpus", vcpus, "memoryGiB", memory)
		return nil, false
	}
	delete(caps, capVCPUs)
	delete(caps, capMemoryGB)

	zones := make(map[string][]string)
	var placement map[string]map[string]sku.PlacementScore
	for _, loc := range raw.Locations {
		region := strings.ToLower(loc.Location)
		zones[region] = append(zones[region], loc.Zones...)
		if len(loc.Placement) > 0 {
			if placement == nil {
				placement = make(map[string]map[string]sku.PlacementScore)
			}
			byZone := make(map[string]sku.PlacementScore, len(loc.Placement))
			for zone, score := range loc.Placement {
				byZone[zone] = sku.ParsePlacementScore(score)
			}
			placement[region] = byZone
		}
	}

	var prices map[string]map[sku.OS]float64
	if len(raw.Prices) > 0 {
		prices = map[string]map[sku.OS]float64{
			strings.ToLower(s.Region): raw.Prices,
		}
	}

	return &sku.Spec{
		Name:         raw.Name,
		Family:       sku.ParseFamily(raw.Name),
		Generation:   sku.ParseGeneration(raw.Name),
		VCPUs:        vcpus,
		MemoryGiB:    memory,
		Capabilities: caps,
		Zones:        zones,
		Restrictions: raw.Restrictions,
		Prices:       prices,
		Placement:    placement,
	}, true
}

func parseIntCapability(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}

func parseFloatCapability(v string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0
	}
	return f
}

// LoadFromFile reads a catalog snapshot document (JSON or YAML, by
// extension) and builds a Catalog from it.
func LoadFromFile(path string) (*Catalog, error) {
	snap, err := serializer.FromFile[Snapshot](path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataUnavailable,
			"failed to load catalog snapshot", err)
	}
	return snap.Build()
}
