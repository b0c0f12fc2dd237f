/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package server

import (
	"time"
)

// ErrorResponse is the error shape every endpoint returns.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// HealthResponse represents health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Reason    string    `json:"reason,omitempty"`
}

// SKUListResponse is the /v1/skus payload.
type SKUListResponse struct {
	Region  string    `json:"region"`
	Source  string    `json:"source"`
	BuiltAt time.Time `json:"builtAt"`
	Count   int       `json:"count"`
	SKUs    []SKUItem `json:"skus"`
}

// SKUItem is one catalog entry in list responses.
type SKUItem struct {
	Name         string   `json:"name"`
	Family       string   `json:"family"`
	Generation   int      `json:"generation"`
	VCPUs        int      `json:"vcpus"`
	MemoryGiB    float64  `json:"memoryGiB"`
	Zones        []string `json:"zones,omitempty"`
	PricePerHour float64  `json:"pricePerHour,omitempty"`
}

// QuotaResponse is the /v1/quota payload.
type QuotaResponse struct {
	Region  string      `json:"region"`
	BuiltAt time.Time   `json:"builtAt"`
	Quotas  []QuotaItem `json:"quotas"`
}

// QuotaItem is one family's usage line.
type QuotaItem struct {
	Family       string `json:"family"`
	CurrentUsage int    `json:"currentUsage"`
	Limit        int    `json:"limit"`
	Available    int    `json:"available"`
}
