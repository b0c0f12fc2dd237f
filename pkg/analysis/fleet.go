/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package analysis

import (
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/errors"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/serializer"
)

// Fleet is the on-disk shape of a workload list.
type Fleet struct {
	Workloads []Workload `json:"workloads" yaml:"workloads"`
}

// LoadFleet reads a fleet document from a JSON or YAML file.
func LoadFleet(path string) ([]Workload, error) {
	f, err := serializer.FromFile[Fleet](path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "reading fleet file", err)
	}
	if len(f.Workloads) == 0 {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"fleet file lists no workloads", map[string]any{"path": path})
	}
	return f.Workloads, nil
}
