/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package pricing

import (
	"context"
	"strings"
	"time"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/errors"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/serializer"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/sku"
)

// SnapshotItem is one price line in a snapshot document.
type SnapshotItem struct {
	SKU          string  `json:"sku" yaml:"sku"`
	Region       string  `json:"region" yaml:"region"`
	OS           sku.OS  `json:"os" yaml:"os"`
	PricePerHour float64 `json:"pricePerHour" yaml:"pricePerHour"`
}

// Snapshot is a point-in-time price capture, loadable from JSON or YAML.
type Snapshot struct {
	RetrievedAt time.Time      `json:"retrievedAt" yaml:"retrievedAt"`
	Items       []SnapshotItem `json:"items" yaml:"items"`
}

// StaticSource serves prices from an in-memory snapshot.
type StaticSource struct {
	snapshot Snapshot
}

// NewStaticSource wraps a snapshot as a Source.
func NewStaticSource(snapshot Snapshot) *StaticSource {
	return &StaticSource{snapshot: snapshot}
}

// LoadSnapshotSource reads a price snapshot file.
func LoadSnapshotSource(path string) (*StaticSource, error) {
	snap, err := serializer.FromFile[Snapshot](path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataUnavailable, "reading price snapshot", err)
	}
	return NewStaticSource(*snap), nil
}

// RetrievedAt reports the snapshot's freshness timestamp.
func (s *StaticSource) RetrievedAt() time.Time {
	return s.snapshot.RetrievedAt
}

// Prices returns the snapshot lines matching region and OS, keyed by
// lowercase SKU name.
func (s *StaticSource) Prices(_ context.Context, region string, os sku.OS) (map[string]float64, error) {
	region = strings.ToLower(region)
	out := make(map[string]float64)
	for _, item := range s.snapshot.Items {
		if !strings.EqualFold(item.Region, region) {
			continue
		}
		itemOS := item.OS
		if itemOS == "" {
			itemOS = sku.OSLinux
		}
		if itemOS != os {
			continue
		}
		out[strings.ToLower(item.SKU)] = item.PricePerHour
	}
	if len(out) == 0 {
		return nil, errors.NewWithContext(errors.ErrCodeDataUnavailable,
			"price snapshot has no entries for region", map[string]any{
				"region": region,
				"os":     string(os),
			})
	}
	return out, nil
}
