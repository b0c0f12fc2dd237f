/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer provides utilities for serializing data to various formats.
//
// The package supports four output formats:
//   - JSON: Machine-readable structured data with proper indentation
//   - YAML: Human-readable configuration format
//   - Table: Human-readable tabular output with flattened keys
//   - CSV: Row-oriented output for slices of records
//
// Usage:
//
//	writer := serializer.NewWriter(serializer.FormatJSON, os.Stdout)
//	defer writer.Close() // Important: close to release file handles
//	if err := writer.Serialize(ctx, data); err != nil {
//		log.Fatal(err)
//	}
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, data)
//
// Reading is supported for JSON and YAML from local files and HTTP(S) URLs:
//
//	snap, err := serializer.FromFile[CatalogSnapshot]("catalog.yaml")
//
// Table and CSV formats are write-only.
package serializer

import "context"

// Serializer is an interface for serializing snapshot data.
// Implementations of this interface can serialize data to various formats
// such as JSON, YAML, table, or CSV.
//
// The context parameter is used for cancellation and timeouts, for
// implementations that perform I/O beyond a local write.
type Serializer interface {
	Serialize(ctx context.Context, snapshot any) error
}

// Closer is an optional interface that Serializers can implement
// if they need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}
