/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package sku

import (
	"regexp"
	"strconv"
	"strings"
)

// Azure size names encode the hardware generation in a version token.
// Three forms occur in the wild: a trailing "_v3", a mid-name "_v3_" in
// promo or constrained-core names, and an inline "v2" glued to the size
// token in older series like "Standard_DS2v2".
var (
	genSuffixRe = regexp.MustCompile(`_[vV](\d+)$`)
	genInfixRe  = regexp.MustCompile(`_[vV](\d+)_`)
	genInlineRe = regexp.MustCompile(`[0-9a-z][vV](\d+)$`)
)

// twoLetterFamilies are series whose family token is two letters, checked
// before falling back to the single leading letter.
var twoLetterFamilies = []string{
	"DC", "EC", "NC", "ND", "NV", "HB", "HC", "HX", "FX", "EB",
}

// ParseGeneration extracts the hardware generation from a SKU name.
// Returns 0 when the name carries no version token (legacy series).
func ParseGeneration(name string) int {
	for _, re := range []*regexp.Regexp{genSuffixRe, genInfixRe, genInlineRe} {
		if m := re.FindStringSubmatch(name); m != nil {
			n, err := strconv.Atoi(m[1])
			if err == nil && n > 0 {
				return n
			}
		}
	}
	return 0
}

// ParseFamily extracts the series family token from a SKU name.
// The "Standard_" or "Basic_" tier prefix is stripped first. Two-letter
// subfamilies (DC, NC, ND, ...) win over their single-letter parents.
// Returns "" when the name has no recognizable family.
func ParseFamily(name string) string {
	body := strings.TrimPrefix(name, "Standard_")
	body = strings.TrimPrefix(body, "Basic_")
	if body == "" {
		return ""
	}

	upper := strings.ToUpper(body)
	for _, fam := range twoLetterFamilies {
		if strings.HasPrefix(upper, fam) {
			return fam
		}
	}

	c := body[0]
	if c >= 'A' && c <= 'Z' {
		return string(c)
	}
	if c >= 'a' && c <= 'z' {
		return strings.ToUpper(string(c))
	}
	return ""
}

// SameFamily reports whether two SKU names belong to the same series family.
func SameFamily(a, b string) bool {
	fa, fb := ParseFamily(a), ParseFamily(b)
	return fa != "" && fa == fb
}
