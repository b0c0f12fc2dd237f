/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/

// Package evolver computes the ordered generation preference for a SKU
// replacement: how many hardware generations forward to aim and whether
// older generations remain acceptable when the target is unavailable.
package evolver

import (
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/errors"
)

const (
	// MinLeap and MaxLeap bound how many generations forward a policy
	// may aim. Values outside the range are rejected at construction.
	MinLeap = 1
	MaxLeap = 3

	// DefaultLeap is the leap applied when none is configured.
	DefaultLeap = 2
)

// Policy is the validated generation evolution configuration. The zero
// value is not usable; construct via NewPolicy.
type Policy struct {
	leap     int
	evolve   bool
	fallback bool
}

// NewPolicy validates and builds a Policy. A leap outside [MinLeap,
// MaxLeap] fails with a CONFIGURATION error; it is never silently
// clamped.
func NewPolicy(leap int, evolve, fallback bool) (Policy, error) {
	if leap < MinLeap || leap > MaxLeap {
		return Policy{}, errors.NewWithContext(errors.ErrCodeConfiguration,
			"generation leap out of range", map[string]any{
				"leap": leap,
				"min":  MinLeap,
				"max":  MaxLeap,
			})
	}
	return Policy{leap: leap, evolve: evolve, fallback: fallback}, nil
}

// DefaultPolicy returns the stock policy: leap 2, evolution and fallback
// enabled.
func DefaultPolicy() Policy {
	p, _ := NewPolicy(DefaultLeap, true, true)
	return p
}

// Leap returns the configured generation leap.
func (p Policy) Leap() int {
	return p.leap
}

// EvolveEnabled reports whether generation evolution is on.
func (p Policy) EvolveEnabled() bool {
	return p.evolve
}

// FallbackEnabled reports whether older-than-target generations are
// acceptable.
func (p Policy) FallbackEnabled() bool {
	return p.fallback
}

// Resolve maps the current generation to the ordered preference list,
// most preferred first. The result is never empty.
//
// With evolution disabled only the current generation is preferred. With
// fallback enabled the list descends from target down to the current
// generation; strict mode returns the target alone. Generation 0 (a
// legacy name with no version token) is treated as generation 1 for the
// arithmetic; the SKU name itself is never rewritten.
func (p Policy) Resolve(currentGeneration int) []int {
	if !p.evolve {
		return []int{currentGeneration}
	}

	current := currentGeneration
	if current < 1 {
		current = 1
	}
	target := current + p.leap

	if !p.fallback {
		return []int{target}
	}

	prefs := make([]int, 0, p.leap+1)
	for g := target; g >= current; g-- {
		prefs = append(prefs, g)
	}
	return prefs
}
