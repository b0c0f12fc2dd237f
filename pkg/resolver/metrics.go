/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package resolver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skx_resolutions_total",
			Help: "Resolution calls by outcome",
		},
		[]string{"outcome"},
	)

	resolutionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "skx_resolution_duration_seconds",
			Help:    "End-to-end resolution latency",
			Buckets: prometheus.DefBuckets,
		},
	)

	alternativesReturned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "skx_resolution_alternatives",
			Help:    "Alternatives returned per verdict",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
	)
)

const (
	outcomeAvailable    = "available"
	outcomeUnavailable  = "unavailable"
	outcomeUnknown      = "unknown"
	outcomeNoCandidates = "no_candidates"
	outcomeError        = "error"
)
