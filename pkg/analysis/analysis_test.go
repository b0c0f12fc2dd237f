/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package analysis

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/catalog"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/errors"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/header"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/quota"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/resolver"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/sku"
)

const testRegion = "eastus"

func testSpec(name string, vcpus int, mem float64, price float64) *sku.Spec {
	return &sku.Spec{
		Name:       name,
		Family:     sku.ParseFamily(name),
		Generation: sku.ParseGeneration(name),
		VCPUs:      vcpus,
		MemoryGiB:  mem,
		Zones:      map[string][]string{testRegion: {"1", "2", "3"}},
		Prices: map[string]map[sku.OS]float64{
			testRegion: {sku.OSLinux: price},
		},
	}
}

func testCatalog() *catalog.Catalog {
	return catalog.New(testRegion, time.Now(), "test", []*sku.Spec{
		testSpec("Standard_D4s_v3", 4, 16, 0.229),
		testSpec("Standard_D4s_v5", 4, 16, 0.192),
		testSpec("Standard_E4s_v5", 4, 32, 0.252),
	})
}

func testLedger() *quota.Ledger {
	return quota.NewLedger(testRegion, time.Now(), []quota.Record{
		{Family: "D", Region: testRegion, CurrentUsage: 0, Limit: 1000},
		{Family: "E", Region: testRegion, CurrentUsage: 0, Limit: 1000},
	})
}

func TestRunBatchIsolation(t *testing.T) {
	fleet := make([]Workload, 0, 10)
	for i := range 9 {
		fleet = append(fleet, Workload{
			Name: fmt.Sprintf("vm-%02d", i),
			SKU:  "Standard_D4s_v3",
		})
	}
	// A SKU the catalog does not carry fails its own result only.
	fleet = append(fleet, Workload{Name: "vm-ghost", SKU: "Standard_Z9s_v9"})

	report, err := NewAnalyzer(resolver.Default(), 4).Run(t.Context(), fleet, testCatalog(), testLedger())
	require.NoError(t, err)

	assert.Equal(t, 10, report.Summary.Total)
	assert.Equal(t, 9, report.Summary.Available)
	assert.Equal(t, 1, report.Summary.Failed)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, testRegion, report.Region)
	assert.Equal(t, header.KindAnalysisReport, report.Kind)

	// Failures sort last.
	last := report.Results[len(report.Results)-1]
	assert.Equal(t, "vm-ghost", last.Workload)
	assert.NotEmpty(t, last.Error)
	assert.Nil(t, last.Verdict)
	assert.Contains(t, last.Recommendation, "no recommendation available")
}

func TestRunComputesSavings(t *testing.T) {
	fleet := []Workload{{Name: "vm-a", SKU: "Standard_D4s_v3", InstanceCount: 2}}

	report, err := NewAnalyzer(resolver.Default(), 0).Run(t.Context(), fleet, testCatalog(), testLedger())
	require.NoError(t, err)

	res := report.Results[0]
	require.Empty(t, res.Error)
	require.NotNil(t, res.Verdict)
	assert.True(t, res.Verdict.IsAvailable)
	assert.Equal(t, "Standard_D4s_v5", res.Verdict.SKU)
	assert.Equal(t, "Standard_D4s_v5", res.Recommendation)
	assert.Equal(t, 0.229, res.CurrentPricePerHour)

	// (0.229 - 0.192) * 730 * 2 instances
	assert.Equal(t, "54.02", res.MonthlySavings.StringFixed(2))
	assert.Equal(t, "54.02", report.Summary.TotalMonthlySavings.StringFixed(2))
}

func TestRunSortsBySavings(t *testing.T) {
	fleet := []Workload{
		{Name: "vm-small", SKU: "Standard_D4s_v3"},
		{Name: "vm-big", SKU: "Standard_D4s_v3", InstanceCount: 5},
	}

	report, err := NewAnalyzer(resolver.Default(), 2).Run(t.Context(), fleet, testCatalog(), testLedger())
	require.NoError(t, err)

	require.Len(t, report.Results, 2)
	assert.Equal(t, "vm-big", report.Results[0].Workload)
	assert.Equal(t, "vm-small", report.Results[1].Workload)
}

func TestRunValidation(t *testing.T) {
	a := NewAnalyzer(resolver.Default(), 2)

	_, err := a.Run(t.Context(), nil, testCatalog(), testLedger())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRequest))

	oversized := make([]Workload, a.maxVMs+1)
	_, err = a.Run(t.Context(), oversized, testCatalog(), testLedger())
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRequest))
}

func TestLoadFleet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`workloads:
  - name: vm-a
    sku: Standard_D4s_v3
    instanceCount: 2
  - name: vm-b
    sku: Standard_E4s_v5
    os: windows
`), 0o600))

	fleet, err := LoadFleet(path)
	require.NoError(t, err)
	require.Len(t, fleet, 2)
	assert.Equal(t, "Standard_D4s_v3", fleet[0].SKU)
	assert.Equal(t, 2, fleet[0].InstanceCount)
	assert.Equal(t, sku.OSWindows, fleet[1].OS)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("workloads: []\n"), 0o600))
	_, err = LoadFleet(empty)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRequest))
}
