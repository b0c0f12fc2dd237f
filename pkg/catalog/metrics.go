/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package catalog

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	buildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "skx_catalog_build_duration_seconds",
			Help:    "Time to build a catalog from snapshot data",
			Buckets: prometheus.DefBuckets,
		},
	)

	catalogSKUs = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "skx_catalog_skus",
			Help: "Number of SKUs indexed per region and source",
		},
		[]string{"region", "source"},
	)

	skippedSKUs = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skx_catalog_skipped_skus_total",
			Help: "Total SKU entries dropped during catalog build for missing specs",
		},
	)
)
