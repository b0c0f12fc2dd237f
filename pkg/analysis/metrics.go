/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package analysis

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analysisRuns = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skx_analysis_runs_total",
			Help: "Fleet analysis runs started",
		},
	)

	analysisWorkloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skx_analysis_workloads_total",
			Help: "Workloads analyzed by outcome",
		},
		[]string{"outcome"},
	)
)
