/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package quota

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/errors"
)

func TestRecordAvailable(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		expected int
	}{
		{"headroom", Record{CurrentUsage: 32, Limit: 100}, 68},
		{"exhausted", Record{CurrentUsage: 100, Limit: 100}, 0},
		{"over quota clamps to zero", Record{CurrentUsage: 120, Limit: 100}, 0},
		{"unused", Record{CurrentUsage: 0, Limit: 64}, 64},
		{"zero limit", Record{CurrentUsage: 0, Limit: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.Available(); got != tt.expected {
				t.Errorf("Available() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestLedgerLookup(t *testing.T) {
	ledger := NewLedger("eastus", time.Now(), []Record{
		{Family: "D", CurrentUsage: 32, Limit: 100},
		{Family: "NC", CurrentUsage: 24, Limit: 24},
	})

	rec, err := ledger.Lookup("D")
	require.NoError(t, err)
	assert.Equal(t, 68, rec.Available())
	assert.Equal(t, "eastus", rec.Region)

	rec, err = ledger.Lookup("nc")
	require.NoError(t, err, "lookup is case-insensitive")
	assert.Equal(t, 0, rec.Available())
}

func TestLedgerLookupMissingFamily(t *testing.T) {
	ledger := NewLedger("eastus", time.Now(), []Record{
		{Family: "D", CurrentUsage: 0, Limit: 10},
	})

	_, err := ledger.Lookup("HB")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeDataUnavailable),
		"missing family is unknown headroom, not unlimited")
}

func TestLedgerSkipsForeignRegions(t *testing.T) {
	ledger := NewLedger("eastus", time.Now(), []Record{
		{Family: "D", Region: "westeurope", CurrentUsage: 0, Limit: 10},
		{Family: "E", Region: "eastus", CurrentUsage: 0, Limit: 20},
	})

	_, err := ledger.Lookup("D")
	assert.Error(t, err)

	_, err = ledger.Lookup("E")
	assert.NoError(t, err)
}

func TestLedgerFamilies(t *testing.T) {
	ledger := NewLedger("eastus", time.Now(), []Record{
		{Family: "NC", Limit: 24},
		{Family: "D", Limit: 100},
		{Family: "E", Limit: 50},
	})

	assert.Equal(t, []string{"D", "E", "NC"}, ledger.Families())
	assert.Len(t, ledger.Records(), 3)
}

func TestLoadLedgerFromFile(t *testing.T) {
	doc := `region: eastus
builtAt: 2026-08-01T12:00:00Z
quotas:
  - family: D
    currentUsage: 32
    limit: 100
  - family: E
    currentUsage: 10
    limit: 50
`
	path := filepath.Join(t.TempDir(), "quota.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0600))

	ledger, err := LoadLedgerFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "eastus", ledger.Region())
	assert.Equal(t, 2026, ledger.BuiltAt().Year())

	rec, err := ledger.Lookup("D")
	require.NoError(t, err)
	assert.Equal(t, 68, rec.Available())
}

func TestLoadLedgerFromFileMissingRegion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quota.yaml")
	require.NoError(t, os.WriteFile(path, []byte("quotas: []\n"), 0600))

	_, err := LoadLedgerFromFile(path)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRequest))
}

func TestLoadLedgerFromFileMissing(t *testing.T) {
	_, err := LoadLedgerFromFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeDataUnavailable))
}
