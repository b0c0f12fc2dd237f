/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package pricing

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/errors"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/sku"
)

func retailServer(t *testing.T) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2023-01-01-preview", r.URL.Query().Get("api-version"))

		page := retailPage{}
		if r.URL.Query().Get("page") == "2" {
			page.Items = []retailItem{
				{ArmSkuName: "Standard_E4s_v5", ArmRegionName: "eastus", ProductName: "Virtual Machines Esv5 Series", MeterName: "E4s v5", UnitPrice: 0.252},
				{ArmSkuName: "Standard_D4s_v5", ArmRegionName: "eastus", ProductName: "Virtual Machines Dsv5 Series", MeterName: "D4s v5 Alt", UnitPrice: 0.250},
			}
		} else {
			assert.Contains(t, r.URL.Query().Get("$filter"), "armRegionName eq 'eastus'")
			page.Items = []retailItem{
				{ArmSkuName: "Standard_D4s_v5", ArmRegionName: "eastus", ProductName: "Virtual Machines Dsv5 Series", MeterName: "D4s v5", UnitPrice: 0.192},
				{ArmSkuName: "Standard_D4s_v5", ArmRegionName: "eastus", ProductName: "Virtual Machines Dsv5 Series", MeterName: "D4s v5 Spot", UnitPrice: 0.042},
				{ArmSkuName: "Standard_D4s_v5", ArmRegionName: "eastus", ProductName: "Virtual Machines Dsv5 Series Windows", MeterName: "D4s v5", UnitPrice: 0.376},
				{ArmSkuName: "", ArmRegionName: "eastus", ProductName: "Virtual Machines Dsv5 Series", MeterName: "Nameless", UnitPrice: 0.1},
			}
			page.NextPageLink = srv.URL + "?api-version=2023-01-01-preview&page=2"
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(page))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRetailClientPrices(t *testing.T) {
	srv := retailServer(t)
	client := NewRetailClient(WithEndpoint(srv.URL))

	prices, err := client.Prices(t.Context(), "EastUS", sku.OSLinux)
	require.NoError(t, err)

	// Spot, windows and nameless meters dropped; the cheaper of the two
	// on-demand D4s meters wins; the second page contributes E4s.
	assert.Equal(t, map[string]float64{
		"standard_d4s_v5": 0.192,
		"standard_e4s_v5": 0.252,
	}, prices)
}

func TestRetailClientPricesWindows(t *testing.T) {
	srv := retailServer(t)
	client := NewRetailClient(WithEndpoint(srv.URL))

	prices, err := client.Prices(t.Context(), "eastus", sku.OSWindows)
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"standard_d4s_v5": 0.376}, prices)
}

func TestRetailClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "throttled", http.StatusTooManyRequests)
	}))
	t.Cleanup(srv.Close)

	client := NewRetailClient(WithEndpoint(srv.URL))
	_, err := client.Prices(t.Context(), "eastus", sku.OSLinux)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeDataUnavailable))
}

func TestKeepRetailItem(t *testing.T) {
	tests := []struct {
		name string
		item retailItem
		os   sku.OS
		want bool
	}{
		{"on-demand linux", retailItem{ArmSkuName: "Standard_D4s_v5", ProductName: "Virtual Machines Dsv5 Series", MeterName: "D4s v5", UnitPrice: 0.192}, sku.OSLinux, true},
		{"spot excluded", retailItem{ArmSkuName: "Standard_D4s_v5", ProductName: "Virtual Machines Dsv5 Series", MeterName: "D4s v5 Spot", UnitPrice: 0.04}, sku.OSLinux, false},
		{"low priority excluded", retailItem{ArmSkuName: "Standard_D4s_v5", ProductName: "Virtual Machines Dsv5 Series", MeterName: "D4s v5 Low Priority", UnitPrice: 0.04}, sku.OSLinux, false},
		{"windows line under linux", retailItem{ArmSkuName: "Standard_D4s_v5", ProductName: "Virtual Machines Dsv5 Series Windows", MeterName: "D4s v5", UnitPrice: 0.376}, sku.OSLinux, false},
		{"windows line under windows", retailItem{ArmSkuName: "Standard_D4s_v5", ProductName: "Virtual Machines Dsv5 Series Windows", MeterName: "D4s v5", UnitPrice: 0.376}, sku.OSWindows, true},
		{"zero price", retailItem{ArmSkuName: "Standard_D4s_v5", ProductName: "Virtual Machines Dsv5 Series", MeterName: "D4s v5", UnitPrice: 0}, sku.OSLinux, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keepRetailItem(tt.item, tt.os))
		})
	}
}
