/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/

// Package analysis resolves a whole fleet of workloads against one
// region snapshot. One workload's failure is captured in its result and
// never aborts the batch.
package analysis

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/catalog"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/defaults"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/errors"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/header"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/pricing"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/quota"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/resolver"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/sku"
)

// Workload is one VM (or VM scale set line) to analyze.
type Workload struct {
	// Name identifies the workload in the report.
	Name string `json:"name" yaml:"name"`
	// SKU is the workload's current SKU name.
	SKU string `json:"sku" yaml:"sku"`
	// OS selects the pricing line, linux when empty.
	OS sku.OS `json:"os,omitempty" yaml:"os,omitempty"`
	// Zones optionally pins the workload to specific zones.
	Zones []string `json:"zones,omitempty" yaml:"zones,omitempty"`
	// InstanceCount scales the quota check, 1 when zero.
	InstanceCount int `json:"instanceCount,omitempty" yaml:"instanceCount,omitempty"`
}

// Result is one workload's outcome.
type Result struct {
	Workload   string `json:"workload" yaml:"workload"`
	CurrentSKU string `json:"currentSKU" yaml:"currentSKU"`
	// Recommendation is the resolved SKU name, or the human-readable
	// "no recommendation available (reason)" line report rows carry.
	Recommendation string `json:"recommendation" yaml:"recommendation"`
	// CurrentPricePerHour is the workload's present hourly USD, 0 when
	// unknown.
	CurrentPricePerHour float64 `json:"currentPricePerHour,omitempty" yaml:"currentPricePerHour,omitempty"`
	// Verdict is nil when Error is set.
	Verdict *resolver.Verdict `json:"verdict,omitempty" yaml:"verdict,omitempty"`
	// MonthlySavings is per instance count, positive when the resolved
	// SKU is cheaper than the current one.
	MonthlySavings decimal.Decimal `json:"monthlySavings" yaml:"monthlySavings"`
	Error          string          `json:"error,omitempty" yaml:"error,omitempty"`
}

// Summary aggregates a run.
type Summary struct {
	Total       int `json:"total" yaml:"total"`
	Available   int `json:"available" yaml:"available"`
	Unavailable int `json:"unavailable" yaml:"unavailable"`
	Unknown     int `json:"unknown" yaml:"unknown"`
	Failed      int `json:"failed" yaml:"failed"`
	// TotalMonthlySavings sums positive per-workload savings.
	TotalMonthlySavings decimal.Decimal `json:"totalMonthlySavings" yaml:"totalMonthlySavings"`
}

// Report is the full output of one analysis run.
type Report struct {
	header.Header `json:",inline" yaml:",inline"`

	RunID     string        `json:"runID" yaml:"runID"`
	Region    string        `json:"region" yaml:"region"`
	StartedAt time.Time     `json:"startedAt" yaml:"startedAt"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
	Results   []Result      `json:"results" yaml:"results"`
	Summary   Summary       `json:"summary" yaml:"summary"`
}

// Analyzer runs fleet analyses with a bounded worker pool.
type Analyzer struct {
	resolver *resolver.Resolver
	workers  int
	maxVMs   int
}

// NewAnalyzer builds an Analyzer. Non-positive workers fall back to the
// default pool size.
func NewAnalyzer(r *resolver.Resolver, workers int) *Analyzer {
	if workers <= 0 {
		workers = defaults.AnalysisWorkers
	}
	return &Analyzer{resolver: r, workers: workers, maxVMs: defaults.AnalysisMaxVMs}
}

// Run analyzes every workload against the catalog and quota ledger.
// The only errors are an empty or oversized fleet; per-workload
// failures land in their results.
func (a *Analyzer) Run(ctx context.Context, fleet []Workload, cat *catalog.Catalog, ledger *quota.Ledger) (*Report, error) {
	if len(fleet) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "fleet is empty")
	}
	if len(fleet) > a.maxVMs {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"fleet exceeds the analysis limit", map[string]any{
				"fleet": len(fleet),
				"limit": a.maxVMs,
			})
	}

	report := &Report{
		Header: header.New(header.KindAnalysisReport,
			header.WithMetadata("region", cat.Region()),
			header.WithMetadata("regionName", sku.RegionDisplayName(cat.Region()))),
		RunID:     uuid.NewString(),
		Region:    cat.Region(),
		StartedAt: time.Now(),
		Results:   make([]Result, len(fleet)),
	}
	analysisRuns.Inc()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, w := range fleet {
		g.Go(func() error {
			report.Results[i] = a.analyzeOne(gctx, w, cat, ledger)
			return nil
		})
	}
	// Workers never return errors; Wait only orders completion.
	_ = g.Wait()

	report.Duration = time.Since(report.StartedAt)
	sortResults(report.Results)
	report.Summary = summarize(report.Results)

	slog.Info("fleet analysis complete",
		"runID", report.RunID,
		"region", report.Region,
		"workloads", report.Summary.Total,
		"failed", report.Summary.Failed,
		"totalMonthlySavings", report.Summary.TotalMonthlySavings.StringFixed(2),
		"duration", report.Duration)
	return report, nil
}

func (a *Analyzer) analyzeOne(ctx context.Context, w Workload, cat *catalog.Catalog, ledger *quota.Ledger) Result {
	res := Result{Workload: w.Name, CurrentSKU: w.SKU}

	current, err := cat.Lookup(w.SKU)
	if err != nil {
		res.Error = err.Error()
		res.Recommendation = noRecommendation(err.Error())
		analysisWorkloads.WithLabelValues("failed").Inc()
		return res
	}
	if price, ok := current.PricePerHour(cat.Region(), osOrLinux(w.OS)); ok {
		res.CurrentPricePerHour = price
	}

	verdict, err := a.resolver.Resolve(ctx, resolver.Profile{
		MinVCPUs:      current.VCPUs,
		MinMemoryGiB:  current.MemoryGiB,
		OS:            w.OS,
		TargetRegion:  cat.Region(),
		TargetZones:   w.Zones,
		CurrentSKU:    w.SKU,
		InstanceCount: w.InstanceCount,
	}, cat, ledger)
	if err != nil {
		res.Error = err.Error()
		res.Recommendation = noRecommendation(err.Error())
		analysisWorkloads.WithLabelValues("failed").Inc()
		return res
	}

	res.Verdict = verdict
	if verdict.IsAvailable {
		res.Recommendation = verdict.SKU
	} else {
		res.Recommendation = noRecommendation(verdict.Reason)
	}
	if verdict.IsAvailable && res.CurrentPricePerHour > 0 && verdict.PricePerHour > 0 {
		count := w.InstanceCount
		if count < 1 {
			count = 1
		}
		res.MonthlySavings = pricing.MonthlySavings(res.CurrentPricePerHour, verdict.PricePerHour).
			Mul(decimal.NewFromInt(int64(count)))
	}
	analysisWorkloads.WithLabelValues(verdictOutcome(verdict)).Inc()
	return res
}

func noRecommendation(reason string) string {
	if reason == "" {
		reason = "unknown"
	}
	return "no recommendation available (" + reason + ")"
}

// sortResults orders by savings descending, then name; failures sink to
// the bottom.
func sortResults(results []Result) {
	slices.SortFunc(results, func(a, b Result) int {
		if (a.Error == "") != (b.Error == "") {
			if a.Error == "" {
				return -1
			}
			return 1
		}
		if c := b.MonthlySavings.Cmp(a.MonthlySavings); c != 0 {
			return c
		}
		return strings.Compare(a.Workload, b.Workload)
	})
}

func summarize(results []Result) Summary {
	s := Summary{Total: len(results), TotalMonthlySavings: decimal.Zero}
	for _, r := range results {
		switch {
		case r.Error != "":
			s.Failed++
		case r.Verdict != nil && r.Verdict.IsAvailable:
			s.Available++
			if r.MonthlySavings.IsPositive() {
				s.TotalMonthlySavings = s.TotalMonthlySavings.Add(r.MonthlySavings)
			}
		case r.Verdict != nil && r.Verdict.QuotaUnknown:
			s.Unknown++
		default:
			s.Unavailable++
		}
	}
	return s
}

func verdictOutcome(v *resolver.Verdict) string {
	switch {
	case v.IsAvailable:
		return "available"
	case v.QuotaUnknown:
		return "unknown"
	default:
		return "unavailable"
	}
}

func osOrLinux(os sku.OS) sku.OS {
	if os == "" {
		return sku.OSLinux
	}
	return os
}
