/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package sku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpec() *Spec {
	return &Spec{
		Name:       "Standard_D4s_v5",
		Family:     "D",
		Generation: 5,
		VCPUs:      4,
		MemoryGiB:  16,
		Capabilities: map[string]string{
			CapabilityPremiumIO:             "True",
			CapabilityAcceleratedNetworking: "True",
			CapabilityEphemeralOSDisk:       "False",
			CapabilityHyperVGenerations:     "V1,V2",
		},
		Zones: map[string][]string{
			"eastus": {"1", "2", "3"},
		},
		Restrictions: []Restriction{
			{Scope: ScopeZone, Values: []string{"3"}, ReasonCode: "NotAvailableForSubscription"},
		},
		Prices: map[string]map[OS]float64{
			"eastus": {OSLinux: 0.192, OSWindows: 0.376},
		},
	}
}

func TestHasCapability(t *testing.T) {
	s := testSpec()

	assert.True(t, s.HasCapability(CapabilityPremiumIO))
	assert.True(t, s.HasCapability(CapabilityHyperVGenerations))
	assert.False(t, s.HasCapability(CapabilityEphemeralOSDisk), "explicit False is disabled")
	assert.False(t, s.HasCapability("UltraSSDAvailable"), "absent capability")
}

func TestCapabilityNames(t *testing.T) {
	s := testSpec()
	names := s.CapabilityNames()

	assert.Contains(t, names, CapabilityPremiumIO)
	assert.Contains(t, names, CapabilityAcceleratedNetworking)
	assert.NotContains(t, names, CapabilityEphemeralOSDisk)
	assert.IsIncreasing(t, names)
}

func TestPricePerHour(t *testing.T) {
	s := testSpec()

	p, ok := s.PricePerHour("eastus", OSLinux)
	require.True(t, ok)
	assert.InDelta(t, 0.192, p, 1e-9)

	_, ok = s.PricePerHour("westus2", OSLinux)
	assert.False(t, ok, "unknown region has no price")
}

func TestRestrictedInRegion(t *testing.T) {
	s := testSpec()
	s.Restrictions = append(s.Restrictions, Restriction{
		Scope:      ScopeRegion,
		Values:     []string{"westeurope"},
		ReasonCode: "NotAvailableForSubscription",
	})

	reason, blocked := s.RestrictedInRegion("westeurope")
	require.True(t, blocked)
	assert.Equal(t, "NotAvailableForSubscription", reason)

	_, blocked = s.RestrictedInRegion("eastus")
	assert.False(t, blocked)
}

func TestAvailableZones(t *testing.T) {
	s := testSpec()

	zones := s.AvailableZones("eastus")
	assert.Equal(t, []string{"1", "2"}, zones, "restricted zone 3 is removed")

	assert.Nil(t, s.AvailableZones("westus2"), "no declared zones")
}

func TestParseOS(t *testing.T) {
	tests := []struct {
		input    string
		expected OS
		ok       bool
	}{
		{"linux", OSLinux, true},
		{"Linux", OSLinux, true},
		{"WINDOWS", OSWindows, true},
		{"", OSLinux, true},
		{"solaris", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseOS(tt.input)
		if ok != tt.ok || got != tt.expected {
			t.Errorf("ParseOS(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestParsePlacementScore(t *testing.T) {
	tests := []struct {
		input    string
		expected PlacementScore
	}{
		{"high", PlacementHigh},
		{"High", PlacementHigh},
		{"MEDIUM", PlacementMedium},
		{"low", PlacementLow},
		{"", PlacementUnknown},
		{"n/a", PlacementUnknown},
	}

	for _, tt := range tests {
		if got := ParsePlacementScore(tt.input); got != tt.expected {
			t.Errorf("ParsePlacementScore(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestPlacementScoreRank(t *testing.T) {
	if PlacementHigh.Rank() <= PlacementMedium.Rank() {
		t.Error("High should outrank Medium")
	}
	if PlacementMedium.Rank() <= PlacementLow.Rank() {
		t.Error("Medium should outrank Low")
	}
	if PlacementLow.Rank() <= PlacementUnknown.Rank() {
		t.Error("Low should outrank Unknown")
	}
}

func TestRegionDisplayName(t *testing.T) {
	tests := []struct {
		region   string
		expected string
	}{
		{"eastus2", "East US 2"},
		{"westeurope", "West Europe"},
		{"EASTUS", "East US"},
		{"swedencentral", "Sweden Central"},
		{"newregion", "Newregion"},
	}

	for _, tt := range tests {
		if got := RegionDisplayName(tt.region); got != tt.expected {
			t.Errorf("RegionDisplayName(%q) = %q, want %q", tt.region, got, tt.expected)
		}
	}
}
