/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package scorer

import (
	"math"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/errors"
)

// weightSumTolerance is the allowed deviation from 1.0 for the sum of
// the four factor weights.
const weightSumTolerance = 1e-6

// Default factor weights.
const (
	DefaultPriceWeight       = 0.35
	DefaultPerformanceWeight = 0.25
	DefaultGenerationWeight  = 0.20
	DefaultFeaturesWeight    = 0.20
)

// Weights is the validated scoring weight value object. The four factors
// are fixed; their weights must be non-negative and sum to 1.0. Construct
// via NewWeights; the zero value is not usable.
type Weights struct {
	price       float64
	performance float64
	generation  float64
	features    float64
}

// NewWeights validates and builds a Weights value. Weights that are
// negative or do not sum to 1.0 (within tolerance) fail with an
// INVALID_WEIGHTS error at construction, not at scoring time.
func NewWeights(price, performance, generation, features float64) (Weights, error) {
	for name, w := range map[string]float64{
		"price":       price,
		"performance": performance,
		"generation":  generation,
		"features":    features,
	} {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return Weights{}, errors.NewWithContext(errors.ErrCodeInvalidWeights,
				"scoring weight must be a non-negative finite number",
				map[string]any{"factor": name, "weight": w})
		}
	}

	sum := price + performance + generation + features
	if math.Abs(sum-1.0) > weightSumTolerance {
		return Weights{}, errors.NewWithContext(errors.ErrCodeInvalidWeights,
			"scoring weights must sum to 1.0", map[string]any{
				"sum":         sum,
				"price":       price,
				"performance": performance,
				"generation":  generation,
				"features":    features,
			})
	}

	return Weights{
		price:       price,
		performance: performance,
		generation:  generation,
		features:    features,
	}, nil
}

// DefaultWeights returns the stock weighting: price 0.35, performance
// 0.25, generation 0.20, features 0.20.
func DefaultWeights() Weights {
	w, _ := NewWeights(DefaultPriceWeight, DefaultPerformanceWeight,
		DefaultGenerationWeight, DefaultFeaturesWeight)
	return w
}

// Price returns the price factor weight.
func (w Weights) Price() float64 { return w.price }

// Performance returns the performance factor weight.
func (w Weights) Performance() float64 { return w.performance }

// Generation returns the generation factor weight.
func (w Weights) Generation() float64 { return w.generation }

// Features returns the features factor weight.
func (w Weights) Features() float64 { return w.features }

// Map returns the weights keyed by factor name, for reporting.
func (w Weights) Map() map[string]float64 {
	return map[string]float64{
		"price":       w.price,
		"performance": w.performance,
		"generation":  w.generation,
		"features":    w.features,
	}
}
