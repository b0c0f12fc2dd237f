/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package resolver

import (
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/scorer"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/sku"
)

// ZoneStatus is the per-zone outcome for a candidate in the target
// region.
type ZoneStatus struct {
	Available bool               `json:"available" yaml:"available"`
	Placement sku.PlacementScore `json:"placement,omitempty" yaml:"placement,omitempty"`
}

// Alternative is a deployable or near-deployable stand-in for the
// requested configuration.
type Alternative struct {
	SKU             string   `json:"sku" yaml:"sku"`
	SimilarityScore float64  `json:"similarityScore" yaml:"similarityScore"`
	Zones           []string `json:"zones,omitempty" yaml:"zones,omitempty"`
	// QuotaBlocked marks a candidate that passed every feasibility gate
	// except family quota.
	QuotaBlocked bool    `json:"quotaBlocked,omitempty" yaml:"quotaBlocked,omitempty"`
	PricePerHour float64 `json:"pricePerHour,omitempty" yaml:"pricePerHour,omitempty"`
}

// Verdict is the ephemeral result of one resolution call.
type Verdict struct {
	// SKU is the resolved candidate name when available, otherwise the
	// best-scored candidate the gates rejected.
	SKU    string `json:"sku" yaml:"sku"`
	Region string `json:"region" yaml:"region"`
	// IsAvailable is true when a candidate passed every gate.
	IsAvailable bool `json:"isAvailable" yaml:"isAvailable"`
	// Reason explains a negative or unknown verdict.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`
	// RestrictionReason carries the provider reason code when a region
	// restriction blocked the requested configuration.
	RestrictionReason string `json:"restrictionReason,omitempty" yaml:"restrictionReason,omitempty"`
	// QuotaUnknown is true when quota data for the decisive family was
	// missing, making deployability indeterminate rather than false.
	QuotaUnknown bool `json:"quotaUnknown,omitempty" yaml:"quotaUnknown,omitempty"`
	// Zones reports per-zone availability for the resolved candidate.
	Zones map[string]ZoneStatus `json:"zones,omitempty" yaml:"zones,omitempty"`
	// QuotaSufficient is true when the resolved candidate's family has
	// headroom for the requested instance count.
	QuotaSufficient bool `json:"quotaSufficient" yaml:"quotaSufficient"`
	// Score and Breakdown explain the resolved candidate's ranking.
	Score     float64          `json:"score" yaml:"score"`
	Breakdown scorer.Breakdown `json:"breakdown" yaml:"breakdown"`
	// PricePerHour is the resolved candidate's hourly USD, 0 if unknown.
	PricePerHour float64 `json:"pricePerHour,omitempty" yaml:"pricePerHour,omitempty"`
	// GenerationPreference is the evolution order the ranking used.
	GenerationPreference []int `json:"generationPreference" yaml:"generationPreference"`
	// Alternatives are ranked stand-ins, similarity descending.
	Alternatives []Alternative `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`
}
