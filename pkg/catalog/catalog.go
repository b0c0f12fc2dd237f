/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package catalog

import (
	"slices"
	"strings"
	"time"

	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/errors"
	"github.com/jamelachahbar/skaelvox-vm-evolver/pkg/sku"
)

// Catalog is the immutable SKU index for one region.
type Catalog struct {
	region   string
	builtAt  time.Time
	source   string
	specs    []*sku.Spec
	byName   map[string]*sku.Spec
	byFamily map[string][]*sku.Spec
}

// New indexes the given specs for a region. Specs are sorted by name so
// enumeration order is deterministic.
func New(region string, builtAt time.Time, source string, specs []*sku.Spec) *Catalog {
	sorted := make([]*sku.Spec, 0, len(specs))
	sorted = append(sorted, specs...)
	slices.SortFunc(sorted, func(a, b *sku.Spec) int {
		return strings.Compare(a.Name, b.Name)
	})

	c := &Catalog{
		region:   region,
		builtAt:  builtAt,
		source:   source,
		specs:    sorted,
		byName:   make(map[string]*sku.Spec, len(sorted)),
		byFamily: make(map[string][]*sku.Spec),
	}
	for _, s := range sorted {
		c.byName[strings.ToLower(s.Name)] = s
		if s.Family != "" {
			c.byFamily[s.Family] = append(c.byFamily[s.Family], s)
		}
	}
	return c
}

// Region returns the region this catalog was built for.
func (c *Catalog) Region() string {
	return c.region
}

// BuiltAt returns the snapshot freshness timestamp.
func (c *Catalog) BuiltAt() time.Time {
	return c.builtAt
}

// Source identifies where the catalog data came from ("snapshot",
// "static", a file path).
func (c *Catalog) Source() string {
	return c.source
}

// Len returns the number of indexed SKUs.
func (c *Catalog) Len() int {
	return len(c.specs)
}

// All enumerates every spec in name order. The returned slice is shared;
// callers must not modify it.
func (c *Catalog) All() []*sku.Spec {
	return c.specs
}

// Lookup finds a spec by name, case-insensitive. A miss fails with a
// NOT_FOUND error carrying near-miss suggestions.
func (c *Catalog) Lookup(name string) (*sku.Spec, error) {
	if s, ok := c.byName[strings.ToLower(name)]; ok {
		return s, nil
	}
	return nil, errors.NewWithContext(errors.ErrCodeNotFound,
		"sku not found in catalog", map[string]any{
			"sku":         name,
			"region":      c.region,
			"suggestions": c.Suggest(name, 3),
		})
}

// Family returns all specs of a family, name order preserved. Unknown
// families return an empty slice.
func (c *Catalog) Family(family string) []*sku.Spec {
	return c.byFamily[strings.ToUpper(family)]
}

// Families returns the family tokens present in the catalog, sorted.
func (c *Catalog) Families() []string {
	families := make([]string, 0, len(c.byFamily))
	for f := range c.byFamily {
		families = append(families, f)
	}
	slices.Sort(families)
	return families
}
