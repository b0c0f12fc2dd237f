/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package sku

import "strings"

// PlacementScore is the provider's capacity-probability signal for a
// SKU/zone/region combination. It is consumed from snapshot data, never
// computed here.
type PlacementScore string

const (
	PlacementHigh    PlacementScore = "High"
	PlacementMedium  PlacementScore = "Medium"
	PlacementLow     PlacementScore = "Low"
	PlacementUnknown PlacementScore = "Unknown"
)

// ParsePlacementScore converts a string to a PlacementScore,
// case-insensitive. Unrecognized values map to PlacementUnknown.
func ParsePlacementScore(s string) PlacementScore {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return PlacementHigh
	case "medium":
		return PlacementMedium
	case "low":
		return PlacementLow
	default:
		return PlacementUnknown
	}
}

// Rank orders placement scores for sorting, higher is better.
func (p PlacementScore) Rank() int {
	switch p {
	case PlacementHigh:
		return 3
	case PlacementMedium:
		return 2
	case PlacementLow:
		return 1
	default:
		return 0
	}
}

// IsValid returns true if the placement score is a known value.
func (p PlacementScore) IsValid() bool {
	switch p {
	case PlacementHigh, PlacementMedium, PlacementLow, PlacementUnknown:
		return true
	default:
		return false
	}
}
