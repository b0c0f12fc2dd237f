/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/errors"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/sku"
)

func TestApply(t *testing.T) {
	specs := []*sku.Spec{
		{Name: "Standard_D4s_v5"},
		{Name: "Standard_E4s_v5"},
		{Name: "Standard_NC6"},
	}
	prices := map[string]float64{
		"standard_d4s_v5": 0.192,
		"standard_e4s_v5": 0.252,
	}

	priced := Apply(prices, specs, "EastUS", sku.OSLinux)
	assert.Equal(t, 2, priced)

	p, ok := specs[0].PricePerHour("eastus", sku.OSLinux)
	require.True(t, ok)
	assert.Equal(t, 0.192, p)

	_, ok = specs[2].PricePerHour("eastus", sku.OSLinux)
	assert.False(t, ok, "unpriced specs stay unpriced")
}

func TestApplyPreservesOtherOS(t *testing.T) {
	s := &sku.Spec{
		Name: "Standard_D4s_v5",
		Prices: map[string]map[sku.OS]float64{
			"eastus": {sku.OSWindows: 0.376},
		},
	}

	Apply(map[string]float64{"standard_d4s_v5": 0.192}, []*sku.Spec{s}, "eastus", sku.OSLinux)

	linux, ok := s.PricePerHour("eastus", sku.OSLinux)
	require.True(t, ok)
	assert.Equal(t, 0.192, linux)
	windows, ok := s.PricePerHour("eastus", sku.OSWindows)
	require.True(t, ok)
	assert.Equal(t, 0.376, windows)
}

func TestMonthlyCost(t *testing.T) {
	assert.Equal(t, "140.16", MonthlyCost(0.192).StringFixed(2))
	assert.True(t, MonthlyCost(0).IsZero())
}

func TestMonthlySavings(t *testing.T) {
	saving := MonthlySavings(0.252, 0.192)
	assert.Equal(t, "43.80", saving.StringFixed(2))

	regression := MonthlySavings(0.192, 0.252)
	assert.True(t, regression.IsNegative())
}

func TestSavingsPercent(t *testing.T) {
	pct := SavingsPercent(0.20, 0.15)
	assert.Equal(t, "25", pct.String())

	assert.True(t, SavingsPercent(0, 0.15).IsZero())
}

func TestStaticSource(t *testing.T) {
	src := NewStaticSource(Snapshot{
		RetrievedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Items: []SnapshotItem{
			{SKU: "Standard_D4s_v5", Region: "eastus", OS: sku.OSLinux, PricePerHour: 0.192},
			{SKU: "Standard_D4s_v5", Region: "eastus", OS: sku.OSWindows, PricePerHour: 0.376},
			{SKU: "Standard_E4s_v5", Region: "eastus", PricePerHour: 0.252},
			{SKU: "Standard_D4s_v5", Region: "westeurope", OS: sku.OSLinux, PricePerHour: 0.212},
		},
	})

	prices, err := src.Prices(t.Context(), "EastUS", sku.OSLinux)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{
		"standard_d4s_v5": 0.192,
		"standard_e4s_v5": 0.252,
	}, prices, "missing os defaults to linux")

	win, err := src.Prices(t.Context(), "eastus", sku.OSWindows)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"standard_d4s_v5": 0.376}, win)

	_, err = src.Prices(t.Context(), "australiaeast", sku.OSLinux)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeDataUnavailable))
}
