/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package sku

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// regionDisplayNames maps the compact API region names to the display
// names the portal uses. Only the commonly used regions are listed;
// anything else is title-cased from the raw name.
var regionDisplayNames = map[string]string{
	"eastus":             "East US",
	"eastus2":            "East US 2",
	"westus":             "West US",
	"westus2":            "West US 2",
	"westus3":            "West US 3",
	"centralus":          "Central US",
	"northcentralus":     "North Central US",
	"southcentralus":     "South Central US",
	"canadacentral":      "Canada Central",
	"canadaeast":         "Canada East",
	"brazilsouth":        "Brazil South",
	"northeurope":        "North Europe",
	"westeurope":         "West Europe",
	"uksouth":            "UK South",
	"ukwest":             "UK West",
	"francecentral":      "France Central",
	"germanywestcentral": "Germany West Central",
	"switzerlandnorth":   "Switzerland North",
	"norwayeast":         "Norway East",
	"swedencentral":      "Sweden Central",
	"polandcentral":      "Poland Central",
	"italynorth":         "Italy North",
	"uaenorth":           "UAE North",
	"qatarcentral":       "Qatar Central",
	"southafricanorth":   "South Africa North",
	"eastasia":           "East Asia",
	"southeastasia":      "Southeast Asia",
	"japaneast":          "Japan East",
	"japanwest":          "Japan West",
	"koreacentral":       "Korea Central",
	"centralindia":       "Central India",
	"southindia":         "South India",
	"australiaeast":      "Australia East",
	"australiasoutheast": "Australia Southeast",
}

var regionTitler = cases.Title(language.English)

// RegionDisplayName returns a human-readable name for an API region
// identifier, e.g. "eastus2" -> "East US 2".
func RegionDisplayName(region string) string {
	key := strings.ToLower(strings.TrimSpace(region))
	if name, ok := regionDisplayNames[key]; ok {
		return name
	}
	return regionTitler.String(key)
}
