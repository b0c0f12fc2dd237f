/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/

// Package similarity scores how interchangeable two compute SKUs are.
// The score is symmetric and price-independent; price only enters as a
// tie-break when ranking alternatives.
package similarity

import (
	"math"
	"slices"
	"strings"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/errors"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/sku"
)

// DefaultThreshold is the minimum similarity an alternative must reach
// to be listed at all.
const DefaultThreshold = 0.5

// Factor weights of the blend. Fixed, not caller-tunable.
const (
	weightVCPU         = 0.40
	weightMemory       = 0.30
	weightFamily       = 0.20
	weightCapabilities = 0.10
)

// Score computes the interchangeability of two SKUs in [0,1].
// Score(a, b) == Score(b, a) and Score(a, a) == 1.
func Score(a, b *sku.Spec) float64 {
	s := weightVCPU*closeness(float64(a.VCPUs), float64(b.VCPUs)) +
		weightMemory*closeness(a.MemoryGiB, b.MemoryGiB) +
		weightFamily*familyMatch(a, b) +
		weightCapabilities*jaccard(a.CapabilityNames(), b.CapabilityNames())
	return min(1, max(0, s))
}

// closeness maps two magnitudes to [0,1], 1.0 at equality and linearly
// degrading with relative distance.
func closeness(a, b float64) float64 {
	m := math.Max(a, b)
	if m <= 0 {
		return 1.0
	}
	return 1.0 - math.Abs(a-b)/m
}

func familyMatch(a, b *sku.Spec) float64 {
	if strings.EqualFold(a.Family, b.Family) {
		return 1.0
	}
	return 0.0
}

// jaccard computes set overlap over two sorted capability name lists.
// Two empty sets are identical, not dissimilar.
func jaccard(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	inter := 0
	for _, name := range a {
		if slices.Contains(b, name) {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 1.0
	}
	return float64(inter) / float64(union)
}

// Alternative pairs a candidate SKU with its similarity to a target.
type Alternative struct {
	Spec       *sku.Spec
	Similarity float64
}

// Matcher ranks alternatives to a target SKU above a similarity floor.
type Matcher struct {
	threshold float64
}

// NewMatcher builds a Matcher with the given minimum similarity.
// The threshold must be within [0,1].
func NewMatcher(threshold float64) (*Matcher, error) {
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return nil, errors.NewWithContext(errors.ErrCodeConfiguration,
			"similarity threshold must be within [0,1]",
			map[string]any{"threshold": threshold})
	}
	return &Matcher{threshold: threshold}, nil
}

// DefaultMatcher returns a Matcher with DefaultThreshold.
func DefaultMatcher() *Matcher {
	return &Matcher{threshold: DefaultThreshold}
}

// Threshold returns the minimum similarity for inclusion.
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Alternatives scores every pool entry against the target and returns
// those at or above the threshold, sorted by similarity descending then
// hourly price ascending for the given region and OS. The target itself
// is never listed as its own alternative.
func (m *Matcher) Alternatives(target *sku.Spec, pool []*sku.Spec, region string, os sku.OS) []Alternative {
	alts := make([]Alternative, 0, len(pool))
	for _, c := range pool {
		if strings.EqualFold(c.Name, target.Name) {
			continue
		}
		s := Score(target, c)
		if s < m.threshold {
			continue
		}
		alts = append(alts, Alternative{Spec: c, Similarity: s})
	}
	slices.SortFunc(alts, func(a, b Alternative) int {
		if a.Similarity != b.Similarity {
			if a.Similarity > b.Similarity {
				return -1
			}
			return 1
		}
		pa, _ := a.Spec.PricePerHour(region, os)
		pb, _ := b.Spec.PricePerHour(region, os)
		if pa != pb {
			if pa < pb {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Spec.Name, b.Spec.Name)
	})
	return alts
}
