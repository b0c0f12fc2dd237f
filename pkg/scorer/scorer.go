/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/

// Package scorer ranks candidate SKUs against a requirement using the
// weighted four-factor model: price, performance fit, generation
// affinity, and feature coverage. Scoring is pure and deterministic;
// ties are broken by price, then generation, then name.
package scorer

import (
	"slices"
	"strings"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/sku"
)

// scoreEpsilon is the tolerance within which two final scores count as
// tied and the deterministic tie-break applies.
const scoreEpsilon = 1e-9

// Request carries everything one ranking call needs. The comparison set
// passed to Rank defines the price normalization, so candidates must be
// ranked together, not one at a time.
type Request struct {
	MinVCPUs             int
	MinMemoryGiB         float64
	RequiredCapabilities []string
	Region               string
	OS                   sku.OS
	// GenerationPreference is the ordered output of the generation
	// resolver, most preferred first.
	GenerationPreference []int
}

// Breakdown records the per-factor sub-scores for explainability.
type Breakdown struct {
	Price       float64 `json:"price" yaml:"price"`
	Performance float64 `json:"performance" yaml:"performance"`
	Generation  float64 `json:"generation" yaml:"generation"`
	Features    float64 `json:"features" yaml:"features"`
}

// Candidate is one scored SKU. The Spec is borrowed from the catalog,
// never owned; Candidate values are ephemeral and recomputed per query.
type Candidate struct {
	Spec      *sku.Spec `json:"spec" yaml:"spec"`
	Score     float64   `json:"score" yaml:"score"`
	Breakdown Breakdown `json:"breakdown" yaml:"breakdown"`
	// PricePerHour is the hourly USD used for the price factor, 0 when
	// unknown.
	PricePerHour float64 `json:"pricePerHour" yaml:"pricePerHour"`
}

// Scorer applies a validated weight set. Safe for concurrent use.
type Scorer struct {
	weights Weights
}

// New creates a Scorer with the given weights.
func New(weights Weights) *Scorer {
	return &Scorer{weights: weights}
}

// Weights returns the weight set the scorer applies.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// Rank scores every candidate against the request and returns them
// sorted best first. The whole set is scored together because the price
// factor normalizes against the most expensive candidate in the set.
func (s *Scorer) Rank(req Request, specs []*sku.Spec) []Candidate {
	if len(specs) == 0 {
		return nil
	}

	maxPrice := 0.0
	prices := make([]float64, len(specs))
	for i, spec := range specs {
		if p, ok := spec.PricePerHour(req.Region, req.OS); ok {
			prices[i] = p
			if p > maxPrice {
				maxPrice = p
			}
		}
	}
	// A lone candidate has nothing to normalize against and takes the
	// full price sub-score.
	if len(specs) == 1 {
		maxPrice = 0
	}

	ranked := make([]Candidate, len(specs))
	for i, spec := range specs {
		ranked[i] = s.scoreOne(req, spec, prices[i], maxPrice)
	}

	slices.SortFunc(ranked, func(a, b Candidate) int {
		return compareCandidates(a, b)
	})
	return ranked
}

func (s *Scorer) scoreOne(req Request, spec *sku.Spec, price, maxPrice float64) Candidate {
	b := Breakdown{
		Price:       priceScore(price, maxPrice),
		Performance: performanceScore(req.MinVCPUs, req.MinMemoryGiB, spec),
		Generation:  generationScore(spec.Generation, req.GenerationPreference),
		Features:    featureScore(req.RequiredCapabilities, spec),
	}

	total := s.weights.price*b.Price +
		s.weights.performance*b.Performance +
		s.weights.generation*b.Generation +
		s.weights.features*b.Features

	return Candidate{
		Spec:         spec,
		Score:        total,
		Breakdown:    b,
		PricePerHour: price,
	}
}

// priceScore rewards cheaper candidates relative to the most expensive
// one in the comparison set. A zero-price set (single candidate, or no
// pricing data) scores 1.0 for everyone.
func priceScore(price, maxPrice float64) float64 {
	if maxPrice <= 0 {
		return 1.0
	}
	return 1.0 - price/maxPrice
}

// performanceScore measures sizing fit. 1.0 is an exact match; the score
// decays symmetrically as the candidate overshoots the requirement.
// Unset requirement figures do not penalize.
func performanceScore(minVCPUs int, minMemoryGiB float64, spec *sku.Spec) float64 {
	cpuFit := 1.0
	if minVCPUs > 0 && spec.VCPUs > 0 {
		r := float64(minVCPUs) / float64(spec.VCPUs)
		cpuFit = min(r, 1/r)
	}
	memFit := 1.0
	if minMemoryGiB > 0 && spec.MemoryGiB > 0 {
		r := minMemoryGiB / spec.MemoryGiB
		memFit = min(r, 1/r)
	}
	return cpuFit * memFit
}

// generationScore is 1.0 for the most preferred generation, decaying
// linearly by rank, and 0.0 when the candidate's generation is not in
// the preference list at all.
func generationScore(generation int, preference []int) float64 {
	for rank, g := range preference {
		if g == generation {
			return 1.0 - float64(rank)/float64(len(preference))
		}
	}
	return 0.0
}

// featureScore is the fraction of required capabilities the candidate
// carries. Extra capabilities earn no bonus; an empty requirement set
// scores 1.0.
func featureScore(required []string, spec *sku.Spec) float64 {
	if len(required) == 0 {
		return 1.0
	}
	present := 0
	for _, name := range required {
		if spec.HasCapability(name) {
			present++
		}
	}
	return float64(present) / float64(len(required))
}

// compareCandidates orders by score descending, with ties within
// scoreEpsilon broken by lower price, then higher generation, then
// lexicographic name. The order is total and reproducible.
func compareCandidates(a, b Candidate) int {
	diff := a.Score - b.Score
	if diff > scoreEpsilon {
		return -1
	}
	if diff < -scoreEpsilon {
		return 1
	}
	if a.PricePerHour != b.PricePerHour {
		if a.PricePerHour < b.PricePerHour {
			return -1
		}
		return 1
	}
	if a.Spec.Generation != b.Spec.Generation {
		if a.Spec.Generation > b.Spec.Generation {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Spec.Name, b.Spec.Name)
}
