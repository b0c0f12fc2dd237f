/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/

// Package pricing supplies hourly retail prices and bakes them into SKU
// specs before they reach the resolution engine. The engine itself
// never fetches a price.
package pricing

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/sku"
)

// HoursPerMonth is the standard 730-hour month used for monthly cost
// projection.
const HoursPerMonth = 730

// Source supplies hourly USD prices for one region and OS, keyed by
// lowercase SKU name.
type Source interface {
	Prices(ctx context.Context, region string, os sku.OS) (map[string]float64, error)
}

// Apply bakes a price map into each spec's price table for the region
// and OS. Specs without a price entry are left untouched; the scorer
// treats them as unpriced. Returns the number of specs priced.
func Apply(prices map[string]float64, specs []*sku.Spec, region string, os sku.OS) int {
	region = strings.ToLower(region)
	priced := 0
	for _, s := range specs {
		p, ok := prices[strings.ToLower(s.Name)]
		if !ok {
			continue
		}
		if s.Prices == nil {
			s.Prices = make(map[string]map[sku.OS]float64)
		}
		if s.Prices[region] == nil {
			s.Prices[region] = make(map[sku.OS]float64)
		}
		s.Prices[region][os] = p
		priced++
	}
	return priced
}

// MonthlyCost projects an hourly USD price to a 730-hour month.
func MonthlyCost(hourly float64) decimal.Decimal {
	return decimal.NewFromFloat(hourly).Mul(decimal.NewFromInt(HoursPerMonth))
}

// MonthlySavings returns the monthly saving moving from the current to
// the proposed hourly price. Negative when the move costs more.
func MonthlySavings(currentHourly, proposedHourly float64) decimal.Decimal {
	return MonthlyCost(currentHourly).Sub(MonthlyCost(proposedHourly))
}

// SavingsPercent returns the saving as a percentage of the current
// monthly cost, zero when the current price is zero or unknown.
func SavingsPercent(currentHourly, proposedHourly float64) decimal.Decimal {
	cur := MonthlyCost(currentHourly)
	if cur.IsZero() {
		return decimal.Zero
	}
	return MonthlySavings(currentHourly, proposedHourly).
		Div(cur).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}
