/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/

// Package catalog builds and serves the immutable per-region SKU index.
//
// A Catalog is constructed once from a snapshot document (the shape of the
// provider's resource SKU listing) or from the static fallback table, and
// is read-only afterwards. Refreshing means building a new Catalog and
// swapping the reference; in-flight resolutions keep the snapshot they
// started with.
package catalog
