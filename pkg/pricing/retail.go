/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/defaults"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/errors"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/serializer"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/sku"
)

// DefaultRetailEndpoint is the public, unauthenticated retail prices
// API.
const DefaultRetailEndpoint = "https://prices.azure.com/api/retail/prices"

const retailAPIVersion = "2023-01-01-preview"

// retailPage mirrors one page of the retail prices response.
type retailPage struct {
	Items        []retailItem `json:"Items"`
	NextPageLink string       `json:"NextPageLink"`
	Count        int          `json:"Count"`
}

type retailItem struct {
	ArmSkuName    string  `json:"armSkuName"`
	ArmRegionName string  `json:"armRegionName"`
	ProductName   string  `json:"productName"`
	MeterName     string  `json:"meterName"`
	UnitPrice     float64 `json:"unitPrice"`
	PriceType     string  `json:"type"`
}

// RetailClient fetches VM consumption prices from the retail prices
// API, one region at a time, under a client-side rate limit.
type RetailClient struct {
	endpoint string
	reader   *serializer.HttpReader
	limiter  *rate.Limiter
}

// RetailOption configures a RetailClient.
type RetailOption func(*RetailClient)

// WithEndpoint overrides the API endpoint, mainly for tests.
func WithEndpoint(endpoint string) RetailOption {
	return func(c *RetailClient) {
		c.endpoint = endpoint
	}
}

// WithLimiter overrides the request rate limiter.
func WithLimiter(l *rate.Limiter) RetailOption {
	return func(c *RetailClient) {
		c.limiter = l
	}
}

// WithReader overrides the HTTP reader.
func WithReader(r *serializer.HttpReader) RetailOption {
	return func(c *RetailClient) {
		c.reader = r
	}
}

// NewRetailClient builds a client with the default endpoint, reader and
// rate limit.
func NewRetailClient(opts ...RetailOption) *RetailClient {
	c := &RetailClient{
		endpoint: DefaultRetailEndpoint,
		reader: serializer.NewHttpReader(
			serializer.WithTotalTimeout(defaults.PricingPageTimeout),
		),
		limiter: rate.NewLimiter(rate.Limit(defaults.PricingRequestsPerSecond), defaults.PricingBurst),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Prices walks every page of VM consumption prices for the region and
// returns hourly USD by lowercase SKU name. Spot and low-priority
// meters are excluded; the Windows product line lands under the
// windows OS, everything else under linux.
func (c *RetailClient) Prices(ctx context.Context, region string, os sku.OS) (map[string]float64, error) {
	start := time.Now()
	region = strings.ToLower(region)

	pageURL := c.firstPageURL(region)
	out := make(map[string]float64)
	pages := 0
	for pageURL != "" {
		if err := c.limiter.Wait(ctx); err != nil {
			pricingRequests.WithLabelValues("canceled").Inc()
			return nil, errors.Wrap(errors.ErrCodeTimeout, "rate limit wait canceled", err)
		}

		body, err := c.reader.ReadWithContext(ctx, pageURL)
		if err != nil {
			pricingRequests.WithLabelValues("error").Inc()
			return nil, errors.WrapWithContext(errors.ErrCodeDataUnavailable,
				"retail prices request failed", err, map[string]any{
					"region": region,
					"page":   pages,
				})
		}
		pricingRequests.WithLabelValues("ok").Inc()

		var page retailPage
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, errors.Wrap(errors.ErrCodeDataUnavailable, "decoding retail prices page", err)
		}

		for _, item := range page.Items {
			if !keepRetailItem(item, os) {
				continue
			}
			name := strings.ToLower(item.ArmSkuName)
			// Keep the cheapest meter when a SKU has several.
			if existing, ok := out[name]; !ok || item.UnitPrice < existing {
				out[name] = item.UnitPrice
			}
		}

		pages++
		pageURL = page.NextPageLink
	}

	slog.Debug("retail prices fetched",
		"region", region,
		"os", string(os),
		"skus", len(out),
		"pages", pages,
		"duration", time.Since(start))

	if len(out) == 0 {
		return nil, errors.NewWithContext(errors.ErrCodeDataUnavailable,
			"retail prices api returned no vm prices", map[string]any{"region": region})
	}
	return out, nil
}

func (c *RetailClient) firstPageURL(region string) string {
	filter := fmt.Sprintf(
		"serviceName eq 'Virtual Machines' and armRegionName eq '%s' and priceType eq 'Consumption'",
		region)
	q := url.Values{}
	q.Set("api-version", retailAPIVersion)
	q.Set("$filter", filter)
	return c.endpoint + "?" + q.Encode()
}

// keepRetailItem filters one price line down to on-demand VM meters of
// the requested OS.
func keepRetailItem(item retailItem, os sku.OS) bool {
	if item.ArmSkuName == "" || item.UnitPrice <= 0 {
		return false
	}
	if strings.Contains(item.MeterName, "Spot") || strings.Contains(item.MeterName, "Low Priority") {
		return false
	}
	isWindows := strings.HasSuffix(item.ProductName, "Windows")
	if os == sku.OSWindows {
		return isWindows
	}
	return !isWindows
}
