/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package catalog

import (
	"time"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/sku"
)

// staticSpec is a last-resort sizing entry used when live snapshot data
// is absent or incomplete. Figures mirror the published size sheets.
type staticSpec struct {
	vcpus  int
	memory float64
}

var staticSpecs = map[string]staticSpec{
	"Standard_B2s":      {2, 4},
	"Standard_B2ms":     {2, 8},
	"Standard_B4ms":     {4, 16},
	"Standard_D2s_v3":   {2, 8},
	"Standard_D4s_v3":   {4, 16},
	"Standard_D8s_v3":   {8, 32},
	"Standard_D16s_v3":  {16, 64},
	"Standard_D2s_v4":   {2, 8},
	"Standard_D4s_v4":   {4, 16},
	"Standard_D8s_v4":   {8, 32},
	"Standard_D2s_v5":   {2, 8},
	"Standard_D4s_v5":   {4, 16},
	"Standard_D8s_v5":   {8, 32},
	"Standard_D16s_v5":  {16, 64},
	"Standard_D32s_v5":  {32, 128},
	"Standard_E2s_v3":   {2, 16},
	"Standard_E4s_v3":   {4, 32},
	"Standard_E8s_v3":   {8, 64},
	"Standard_E2s_v5":   {2, 16},
	"Standard_E4s_v5":   {4, 32},
	"Standard_E8s_v5":   {8, 64},
	"Standard_E16s_v5":  {16, 128},
	"Standard_F2s_v2":   {2, 4},
	"Standard_F4s_v2":   {4, 8},
	"Standard_F8s_v2":   {8, 16},
	"Standard_F16s_v2":  {16, 32},
	"Standard_L8s_v3":   {8, 64},
	"Standard_L16s_v3":  {16, 128},
	"Standard_M64s":     {64, 1024},
	"Standard_NC6s_v3":  {6, 112},
	"Standard_NC24s_v3": {24, 448},
	"Standard_DS1_v2":   {1, 3.5},
	"Standard_DS2_v2":   {2, 7},
	"Standard_DS3_v2":   {4, 14},
	"Standard_DS4_v2":   {8, 28},
	"Standard_A2_v2":    {2, 4},
	"Standard_A4_v2":    {4, 8},
}

// FallbackMemoryGiB returns the static memory figure for a SKU name,
// 0 when the name is not in the table.
func FallbackMemoryGiB(name string) float64 {
	if s, ok := staticSpecs[name]; ok {
		return s.memory
	}
	return 0
}

// NewStatic builds a catalog for the region from the static table alone.
// It carries no zone, restriction, or pricing data and exists so the
// engine can still rank sizing fits when live data cannot be fetched.
func NewStatic(region string) *Catalog {
	specs := make([]*sku.Spec, 0, len(staticSpecs))
	for name, st := range staticSpecs {
		specs = append(specs, &sku.Spec{
			Name:       name,
			Family:     sku.ParseFamily(name),
			Generation: sku.ParseGeneration(name),
			VCPUs:      st.vcpus,
			MemoryGiB:  st.memory,
		})
	}
	c := New(region, time.Now().UTC(), "static", specs)
	catalogSKUs.WithLabelValues(c.Region(), c.Source()).Set(float64(c.Len()))
	return c
}
