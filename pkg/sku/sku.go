/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package sku

import (
	"slices"
	"strings"
)

// OS identifies the operating system family a price applies to.
type OS string

const (
	// OSLinux is the Linux OS family.
	OSLinux OS = "linux"
	// OSWindows is the Windows OS family.
	OSWindows OS = "windows"
)

// ParseOS converts a string to an OS, case-insensitive.
// Returns OSLinux for empty input.
func ParseOS(s string) (OS, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linux":
		return OSLinux, true
	case "windows":
		return OSWindows, true
	default:
		return "", false
	}
}

// IsValid returns true if the OS is a known value.
func (o OS) IsValid() bool {
	return o == OSLinux || o == OSWindows
}

// Common capability names as they appear in provider SKU payloads.
const (
	CapabilityPremiumIO             = "PremiumIO"
	CapabilityAcceleratedNetworking = "AcceleratedNetworkingEnabled"
	CapabilityHyperVGenerations     = "HyperVGenerations"
	CapabilityEphemeralOSDisk       = "EphemeralOSDiskSupported"
	CapabilityEncryptionAtHost      = "EncryptionAtHostSupported"
	CapabilityCPUArchitecture       = "CpuArchitectureType"
)

// RestrictionScope classifies what a deployment restriction applies to.
type RestrictionScope string

const (
	// ScopeRegion restricts deployment across an entire region.
	ScopeRegion RestrictionScope = "Location"
	// ScopeZone restricts deployment into specific zones of a region.
	ScopeZone RestrictionScope = "Zone"
)

// Restriction describes a provider-imposed deployment restriction.
type Restriction struct {
	Scope      RestrictionScope `json:"scope" yaml:"scope"`
	Values     []string         `json:"values" yaml:"values"`
	ReasonCode string           `json:"reasonCode" yaml:"reasonCode"`
}

// Spec is the immutable description of one compute SKU. Instances are
// constructed by the catalog layer and shared read-only afterwards.
type Spec struct {
	// Name is the provider-assigned SKU name, e.g. "Standard_D4s_v5".
	Name string `json:"name" yaml:"name"`
	// Family is the series letter(s) extracted from the name, e.g. "D", "NC".
	Family string `json:"family" yaml:"family"`
	// Generation is the hardware revision parsed from the name, 0 if absent.
	Generation int `json:"generation" yaml:"generation"`
	// VCPUs is the virtual CPU count.
	VCPUs int `json:"vcpus" yaml:"vcpus"`
	// MemoryGiB is the memory size in GiB.
	MemoryGiB float64 `json:"memoryGiB" yaml:"memoryGiB"`
	// Capabilities holds provider capability flags by name. Values are the
	// raw provider strings ("True", "False", "V1,V2", "x64").
	Capabilities map[string]string `json:"capabilities,omitempty" yaml:"capabilities,omitempty"`
	// Zones maps region name to the zone identifiers the SKU can deploy
	// into, before restrictions are applied.
	Zones map[string][]string `json:"zones,omitempty" yaml:"zones,omitempty"`
	// Restrictions lists active deployment restrictions.
	Restrictions []Restriction `json:"restrictions,omitempty" yaml:"restrictions,omitempty"`
	// Prices maps region, then OS, to hourly USD. Populated by the pricing
	// source before the spec reaches the resolution engine.
	Prices map[string]map[OS]float64 `json:"prices,omitempty" yaml:"prices,omitempty"`
	// Placement maps region, then zone, to the provider's capacity signal.
	// Consumed from snapshot data when present, never computed.
	Placement map[string]map[string]PlacementScore `json:"placement,omitempty" yaml:"placement,omitempty"`
}

// PlacementFor returns the capacity signal for a region/zone pair,
// PlacementUnknown when the snapshot carried none.
func (s *Spec) PlacementFor(region, zone string) PlacementScore {
	byZone, ok := s.Placement[region]
	if !ok {
		return PlacementUnknown
	}
	p, ok := byZone[zone]
	if !ok {
		return PlacementUnknown
	}
	return p
}

// HasCapability reports whether the named capability is present and not
// explicitly disabled ("False").
func (s *Spec) HasCapability(name string) bool {
	v, ok := s.Capabilities[name]
	if !ok {
		return false
	}
	return !strings.EqualFold(v, "False")
}

// CapabilityNames returns the names of all enabled capabilities, sorted.
func (s *Spec) CapabilityNames() []string {
	names := make([]string, 0, len(s.Capabilities))
	for name := range s.Capabilities {
		if s.HasCapability(name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// PricePerHour returns the hourly USD price for the region and OS.
// The second return is false when no price is known.
func (s *Spec) PricePerHour(region string, os OS) (float64, bool) {
	byOS, ok := s.Prices[region]
	if !ok {
		return 0, false
	}
	p, ok := byOS[os]
	return p, ok
}

// RestrictedInRegion reports whether a region-scoped restriction blocks
// deployment into the given region, along with its reason code.
func (s *Spec) RestrictedInRegion(region string) (string, bool) {
	for _, r := range s.Restrictions {
		if r.Scope != ScopeRegion {
			continue
		}
		for _, v := range r.Values {
			if strings.EqualFold(v, region) {
				return r.ReasonCode, true
			}
		}
	}
	return "", false
}

// RestrictedZones returns the zones blocked by zone-scoped restrictions.
func (s *Spec) RestrictedZones() []string {
	var blocked []string
	for _, r := range s.Restrictions {
		if r.Scope != ScopeZone {
			continue
		}
		blocked = append(blocked, r.Values...)
	}
	return blocked
}

// AvailableZones returns the zones the SKU can actually deploy into for
// the region: declared zones minus zone-scoped restrictions.
func (s *Spec) AvailableZones(region string) []string {
	declared := s.Zones[region]
	if len(declared) == 0 {
		return nil
	}
	blocked := s.RestrictedZones()
	avail := make([]string, 0, len(declared))
	for _, z := range declared {
		if !slices.Contains(blocked, z) {
			avail = append(avail, z)
		}
	}
	slices.Sort(avail)
	return avail
}
