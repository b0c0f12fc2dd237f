/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the skaelvox command tree: resolve, rank,
// skus, quota, and analyze. Commands share a common set of data-source
// flags (catalog, quota, and price snapshots) and write results through
// the serializer in any supported output format.
package cli
