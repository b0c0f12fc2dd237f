/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package pricing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var pricingRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "skx_pricing_requests_total",
		Help: "Retail prices API page requests by result",
	},
	[]string{"result"},
)
