/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestionDistance bounds how far a catalog name may be from the
// query before it stops being a plausible typo.
const maxSuggestionDistance = 5

// Suggest returns up to max catalog SKU names closest to the query by
// edit distance, nearest first. Comparison is case-insensitive and
// distances beyond maxSuggestionDistance are dropped.
func (c *Catalog) Suggest(query string, max int) []string {
	if max <= 0 || query == "" {
		return nil
	}

	type scored struct {
		name string
		dist int
	}

	lower := strings.ToLower(query)
	candidates := make([]scored, 0, len(c.specs))
	for _, s := range c.specs {
		d := levenshtein.ComputeDistance(lower, strings.ToLower(s.Name))
		if d <= maxSuggestionDistance {
			candidates = append(candidates, scored{name: s.Name, dist: d})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].name < candidates[j].name
	})

	if len(candidates) > max {
		candidates = candidates[:max]
	}
	names := make([]string, len(candidates))
	for i, cand := range candidates {
		names[i] = cand.name
	}
	return names
}
