/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/

// Package resolver answers whether a SKU satisfying a requirement
// profile is deployable in a region, and ranks what to deploy instead
// when it is not.
package resolver

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/catalog"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/errors"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/evolver"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/quota"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/scorer"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/similarity"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/sku"
)

// Resolver orchestrates catalog, quota, generation evolution, scoring
// and similarity into availability verdicts. Safe for concurrent use.
type Resolver struct {
	policy  evolver.Policy
	scorer  *scorer.Scorer
	matcher *similarity.Matcher
}

// New builds a Resolver from its collaborators.
func New(policy evolver.Policy, sc *scorer.Scorer, matcher *similarity.Matcher) *Resolver {
	return &Resolver{policy: policy, scorer: sc, matcher: matcher}
}

// Default returns a Resolver with the default generation policy,
// default weights and the default similarity threshold.
func Default() *Resolver {
	return New(evolver.DefaultPolicy(), scorer.New(scorer.DefaultWeights()), similarity.DefaultMatcher())
}

// Rank filters the catalog by the profile's hard constraints and scores
// every surviving candidate. It returns the ranked candidates and the
// generation preference order used, best first. An empty filtered set
// fails with a NO_CANDIDATES error.
func (r *Resolver) Rank(profile Profile, cat *catalog.Catalog) ([]scorer.Candidate, []int, error) {
	p, err := profile.normalized()
	if err != nil {
		return nil, nil, err
	}
	return r.rank(p, cat)
}

func (r *Resolver) rank(p Profile, cat *catalog.Catalog) ([]scorer.Candidate, []int, error) {
	var pool []*sku.Spec
	for _, s := range cat.All() {
		if p.matches(s) {
			pool = append(pool, s)
		}
	}
	if len(pool) == 0 {
		return nil, nil, errors.NewWithContext(errors.ErrCodeNoCandidates,
			"no sku satisfies the hard constraints", map[string]any{
				"region":       p.TargetRegion,
				"minVCPUs":     p.MinVCPUs,
				"minMemoryGiB": p.MinMemoryGiB,
				"capabilities": p.RequiredCapabilities,
				"catalogSize":  cat.Len(),
			})
	}

	currentGen := 0
	if p.CurrentSKU != "" {
		currentGen = sku.ParseGeneration(p.CurrentSKU)
	}
	pref := r.policy.Resolve(currentGen)

	ranked := r.scorer.Rank(scorer.Request{
		MinVCPUs:             p.MinVCPUs,
		MinMemoryGiB:         p.MinMemoryGiB,
		RequiredCapabilities: p.RequiredCapabilities,
		Region:               p.TargetRegion,
		OS:                   p.OS,
		GenerationPreference: pref,
	}, pool)
	return ranked, pref, nil
}

// gated records a candidate that passed region and zone checks but was
// stopped at the quota gate.
type gated struct {
	candidate scorer.Candidate
	zones     []string
	unknown   bool
}

// Resolve walks the ranked candidates through the deployability gates
// and returns a verdict. Quota and data problems yield a negative or
// unknown verdict, not an error; only an invalid profile, a region
// mismatch or an empty hard-filter set fail.
func (r *Resolver) Resolve(ctx context.Context, profile Profile, cat *catalog.Catalog, ledger *quota.Ledger) (*Verdict, error) {
	start := time.Now()
	defer func() {
		resolutionDuration.Observe(time.Since(start).Seconds())
	}()

	if err := ctx.Err(); err != nil {
		resolutions.WithLabelValues(outcomeError).Inc()
		return nil, errors.Wrap(errors.ErrCodeTimeout, "resolution canceled", err)
	}
	p, err := profile.normalized()
	if err != nil {
		resolutions.WithLabelValues(outcomeError).Inc()
		return nil, err
	}
	if cat.Region() != p.TargetRegion {
		resolutions.WithLabelValues(outcomeError).Inc()
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"catalog region does not match target region", map[string]any{
				"catalog": cat.Region(),
				"target":  p.TargetRegion,
			})
	}

	ranked, pref, err := r.rank(p, cat)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeNoCandidates) {
			resolutions.WithLabelValues(outcomeNoCandidates).Inc()
		} else {
			resolutions.WithLabelValues(outcomeError).Inc()
		}
		return nil, err
	}

	verdict := &Verdict{
		Region:               p.TargetRegion,
		GenerationPreference: pref,
	}
	if p.CurrentSKU != "" {
		if cur, lookupErr := cat.Lookup(p.CurrentSKU); lookupErr == nil {
			if reason, restricted := cur.RestrictedInRegion(p.TargetRegion); restricted {
				verdict.RestrictionReason = reason
			}
		}
	}

	var blocked []gated
	var topReason string
	for _, c := range ranked {
		if reason, restricted := c.Spec.RestrictedInRegion(p.TargetRegion); restricted {
			if topReason == "" {
				topReason = "region restriction " + reason
			}
			continue
		}

		zones, ok := r.zoneStatus(p, c.Spec)
		if !ok {
			if topReason == "" {
				topReason = "no requested zone is available"
			}
			continue
		}

		available, unknown, quotaErr := familyHeadroom(ledger, c.Spec.Family)
		if unknown {
			if topReason == "" {
				topReason = "quota data unavailable for family " + c.Spec.Family
			}
			slog.Debug("quota lookup failed, candidate indeterminate",
				"sku", c.Spec.Name, "family", c.Spec.Family, "error", quotaErr)
			blocked = append(blocked, gated{candidate: c, zones: availableIn(zones), unknown: true})
			continue
		}
		required := c.Spec.VCPUs * p.InstanceCount
		if required > available {
			if topReason == "" {
				topReason = "insufficient quota for family " + c.Spec.Family
			}
			blocked = append(blocked, gated{candidate: c, zones: availableIn(zones)})
			continue
		}

		verdict.SKU = c.Spec.Name
		verdict.IsAvailable = true
		verdict.QuotaSufficient = true
		verdict.Zones = zones
		verdict.Score = c.Score
		verdict.Breakdown = c.Breakdown
		verdict.PricePerHour = c.PricePerHour
		break
	}

	if !verdict.IsAvailable {
		verdict.SKU = ranked[0].Spec.Name
		verdict.Score = ranked[0].Score
		verdict.Breakdown = ranked[0].Breakdown
		verdict.PricePerHour = ranked[0].PricePerHour
		verdict.Reason = topReason
		if verdict.Reason == "" {
			verdict.Reason = "no candidate passed the deployability gates"
		}
		for _, g := range blocked {
			if g.unknown {
				verdict.QuotaUnknown = true
				break
			}
		}
	}

	verdict.Alternatives = r.alternatives(p, cat, ranked, blocked, verdict)
	alternativesReturned.Observe(float64(len(verdict.Alternatives)))
	resolutions.WithLabelValues(outcomeFor(verdict)).Inc()
	slog.Debug("resolution complete",
		"region", p.TargetRegion,
		"sku", verdict.SKU,
		"available", verdict.IsAvailable,
		"alternatives", len(verdict.Alternatives),
		"duration", time.Since(start))

	return verdict, nil
}

// zoneStatus computes per-zone availability for a candidate. The second
// return is false when the profile requests zones and none of them is
// open for the candidate.
func (r *Resolver) zoneStatus(p Profile, s *sku.Spec) (map[string]ZoneStatus, bool) {
	avail := s.AvailableZones(p.TargetRegion)
	if len(p.TargetZones) == 0 {
		if len(avail) == 0 {
			// Regional SKU without zone placement.
			return nil, true
		}
		zones := make(map[string]ZoneStatus, len(avail))
		for _, z := range avail {
			zones[z] = ZoneStatus{Available: true, Placement: s.PlacementFor(p.TargetRegion, z)}
		}
		return zones, true
	}

	zones := make(map[string]ZoneStatus, len(p.TargetZones))
	anyOpen := false
	for _, z := range p.TargetZones {
		open := slices.Contains(avail, z)
		anyOpen = anyOpen || open
		zones[z] = ZoneStatus{Available: open, Placement: s.PlacementFor(p.TargetRegion, z)}
	}
	if !anyOpen {
		return nil, false
	}
	return zones, true
}

// alternatives merges similarity-ranked stand-ins with every
// quota-gated candidate, so a quota-blocked SKU always surfaces even
// below the similarity threshold.
func (r *Resolver) alternatives(p Profile, cat *catalog.Catalog, ranked []scorer.Candidate, blocked []gated, verdict *Verdict) []Alternative {
	ref := ranked[0].Spec
	if p.CurrentSKU != "" {
		if cur, err := cat.Lookup(p.CurrentSKU); err == nil {
			ref = cur
		}
	}

	// Only deployability-feasible SKUs may stand in. Quota-gated
	// candidates are merged below regardless.
	pool := make([]*sku.Spec, 0, len(ranked))
	for _, c := range ranked {
		if _, restricted := c.Spec.RestrictedInRegion(p.TargetRegion); restricted {
			continue
		}
		if _, ok := r.zoneStatus(p, c.Spec); !ok {
			continue
		}
		pool = append(pool, c.Spec)
	}

	seen := make(map[string]int)
	var alts []Alternative
	for _, a := range r.matcher.Alternatives(ref, pool, p.TargetRegion, p.OS) {
		if verdict.IsAvailable && strings.EqualFold(a.Spec.Name, verdict.SKU) {
			continue
		}
		price, _ := a.Spec.PricePerHour(p.TargetRegion, p.OS)
		seen[strings.ToLower(a.Spec.Name)] = len(alts)
		alts = append(alts, Alternative{
			SKU:             a.Spec.Name,
			SimilarityScore: a.Similarity,
			Zones:           a.Spec.AvailableZones(p.TargetRegion),
			PricePerHour:    price,
		})
	}

	for _, g := range blocked {
		name := strings.ToLower(g.candidate.Spec.Name)
		if i, ok := seen[name]; ok {
			if !g.unknown {
				alts[i].QuotaBlocked = true
			}
			continue
		}
		if verdict.IsAvailable && strings.EqualFold(g.candidate.Spec.Name, verdict.SKU) {
			continue
		}
		alts = append(alts, Alternative{
			SKU:             g.candidate.Spec.Name,
			SimilarityScore: similarity.Score(ref, g.candidate.Spec),
			Zones:           g.zones,
			QuotaBlocked:    !g.unknown,
			PricePerHour:    g.candidate.PricePerHour,
		})
	}

	slices.SortFunc(alts, func(a, b Alternative) int {
		if a.SimilarityScore != b.SimilarityScore {
			if a.SimilarityScore > b.SimilarityScore {
				return -1
			}
			return 1
		}
		if a.PricePerHour != b.PricePerHour {
			if a.PricePerHour < b.PricePerHour {
				return -1
			}
			return 1
		}
		return strings.Compare(a.SKU, b.SKU)
	})
	return alts
}

// familyHeadroom returns the deployable vCPU headroom for a family.
// unknown is true when the ledger cannot answer for the family.
func familyHeadroom(ledger *quota.Ledger, family string) (available int, unknown bool, err error) {
	if ledger == nil {
		return 0, true, errors.New(errors.ErrCodeDataUnavailable, "no quota ledger supplied")
	}
	rec, err := ledger.Lookup(family)
	if err != nil {
		return 0, true, err
	}
	return rec.Available(), false, nil
}

func availableIn(zones map[string]ZoneStatus) []string {
	var out []string
	for z, st := range zones {
		if st.Available {
			out = append(out, z)
		}
	}
	slices.Sort(out)
	return out
}

func outcomeFor(v *Verdict) string {
	switch {
	case v.IsAvailable:
		return outcomeAvailable
	case v.QuotaUnknown:
		return outcomeUnknown
	default:
		return outcomeUnavailable
	}
}
