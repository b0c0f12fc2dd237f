/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/

// Package quota holds the per-family vCPU quota snapshot for a region.
// A Ledger is built once from provider usage data and consulted, never
// mutated, during resolution. Refresh replaces the whole Ledger.
package quota

import (
	"slices"
	"strings"
	"time"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/errors"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/serializer"
)

// Record is the usage/limit pair for one SKU family in one region.
// Units are vCPUs.
type Record struct {
	Family       string `json:"family" yaml:"family"`
	Region       string `json:"region" yaml:"region"`
	CurrentUsage int    `json:"currentUsage" yaml:"currentUsage"`
	Limit        int    `json:"limit" yaml:"limit"`
}

// Available returns the deployable vCPU headroom. A transiently
// over-quota family reports 0, never negative capacity.
func (r Record) Available() int {
	avail := r.Limit - r.CurrentUsage
	if avail < 0 {
		return 0
	}
	return avail
}

// Ledger is an immutable per-region quota snapshot keyed by family.
type Ledger struct {
	region   string
	builtAt  time.Time
	byFamily map[string]Record
}

// NewLedger builds a Ledger from records. Family lookup is
// case-insensitive. Records for other regions are skipped; records
// without a region inherit the ledger's.
func NewLedger(region string, builtAt time.Time, records []Record) *Ledger {
	byFamily := make(map[string]Record, len(records))
	for _, rec := range records {
		if rec.Region != "" && !strings.EqualFold(rec.Region, region) {
			continue
		}
		rec.Region = region
		byFamily[strings.ToUpper(rec.Family)] = rec
	}
	return &Ledger{
		region:   region,
		builtAt:  builtAt,
		byFamily: byFamily,
	}
}

// Region returns the region this snapshot was built for.
func (l *Ledger) Region() string {
	return l.region
}

// BuiltAt returns the snapshot freshness timestamp.
func (l *Ledger) BuiltAt() time.Time {
	return l.builtAt
}

// Lookup returns the quota record for a family. Absence fails with a
// DATA_UNAVAILABLE error: a family missing from the snapshot means the
// headroom is unknown, not unlimited.
func (l *Ledger) Lookup(family string) (Record, error) {
	rec, ok := l.byFamily[strings.ToUpper(family)]
	if !ok {
		return Record{}, errors.NewWithContext(errors.ErrCodeDataUnavailable,
			"no quota record for family", map[string]any{
				"family": family,
				"region": l.region,
			})
	}
	return rec, nil
}

// Families returns the family tokens present in the snapshot, sorted.
func (l *Ledger) Families() []string {
	families := make([]string, 0, len(l.byFamily))
	for f := range l.byFamily {
		families = append(families, f)
	}
	slices.Sort(families)
	return families
}

// Records returns all records sorted by family, for reporting.
func (l *Ledger) Records() []Record {
	records := make([]Record, 0, len(l.byFamily))
	for _, f := range l.Families() {
		records = append(records, l.byFamily[f])
	}
	return records
}

// Snapshot is the serialized form of a quota ledger, the shape handed
// over by the external quota source.
type Snapshot struct {
	Region  string    `json:"region" yaml:"region"`
	BuiltAt time.Time `json:"builtAt" yaml:"builtAt"`
	Quotas  []Record  `json:"quotas" yaml:"quotas"`
}

// LoadLedgerFromFile reads a quota snapshot document (JSON or YAML, by
// extension) and builds a Ledger from it.
func LoadLedgerFromFile(path string) (*Ledger, error) {
	snap, err := serializer.FromFile[Snapshot](path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataUnavailable,
			"failed to load quota snapshot", err)
	}
	if snap.Region == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest,
			"quota snapshot has no region")
	}
	builtAt := snap.BuiltAt
	if builtAt.IsZero() {
		builtAt = time.Now().UTC()
	}
	return NewLedger(snap.Region, builtAt, snap.Quotas), nil
}
