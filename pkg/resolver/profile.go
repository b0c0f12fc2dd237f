/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package resolver

import (
	"strings"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/errors"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/sku"
)

// Profile is the caller's requirement set for one resolution.
type Profile struct {
	// MinVCPUs and MinMemoryGiB are hard lower bounds on candidate size.
	MinVCPUs     int     `json:"minVCPUs" yaml:"minVCPUs"`
	MinMemoryGiB float64 `json:"minMemoryGiB" yaml:"minMemoryGiB"`
	// OS selects the pricing line. Empty means linux.
	OS sku.OS `json:"os,omitempty" yaml:"os,omitempty"`
	// RequiredCapabilities must all be present on a candidate.
	RequiredCapabilities []string `json:"requiredCapabilities,omitempty" yaml:"requiredCapabilities,omitempty"`
	// TargetRegion is where the deployment lands.
	TargetRegion string `json:"targetRegion" yaml:"targetRegion"`
	// TargetZones, when set, restricts placement to these zones.
	TargetZones []string `json:"targetZones,omitempty" yaml:"targetZones,omitempty"`
	// CurrentSKU, when set, seeds generation evolution from its parsed
	// generation.
	CurrentSKU string `json:"currentSKU,omitempty" yaml:"currentSKU,omitempty"`
	// InstanceCount scales the quota check. Zero means one.
	InstanceCount int `json:"instanceCount,omitempty" yaml:"instanceCount,omitempty"`
}

// normalized returns a copy with defaults applied, or an INVALID_REQUEST
// error when the profile is unusable.
func (p Profile) normalized() (Profile, error) {
	if p.TargetRegion == "" {
		return Profile{}, errors.New(errors.ErrCodeInvalidRequest, "target region is required")
	}
	if p.MinVCPUs < 0 || p.MinMemoryGiB < 0 {
		return Profile{}, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"size requirements must not be negative", map[string]any{
				"minVCPUs":     p.MinVCPUs,
				"minMemoryGiB": p.MinMemoryGiB,
			})
	}
	if p.InstanceCount < 0 {
		return Profile{}, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"instance count must be at least 1", map[string]any{"instanceCount": p.InstanceCount})
	}
	if p.InstanceCount == 0 {
		p.InstanceCount = 1
	}
	if p.OS == "" {
		p.OS = sku.OSLinux
	}
	if !p.OS.IsValid() {
		return Profile{}, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"unknown os", map[string]any{"os": string(p.OS)})
	}
	p.TargetRegion = strings.ToLower(strings.TrimSpace(p.TargetRegion))
	return p, nil
}

// matches reports whether a spec satisfies the profile's hard
// constraints. Price presence is not a hard constraint; an unpriced
// candidate simply scores without a price advantage.
func (p Profile) matches(s *sku.Spec) bool {
	if s.VCPUs < p.MinVCPUs {
		return false
	}
	if s.MemoryGiB < p.MinMemoryGiB {
		return false
	}
	for _, name := range p.RequiredCapabilities {
		if !s.HasCapability(name) {
			return false
		}
	}
	return true
}
