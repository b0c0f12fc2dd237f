/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/

// Package header provides the common envelope for skaelvox documents.
//
// Reports and snapshot files carry a Header so consumers can identify
// the document type and schema version without inspecting the payload.
// It follows Kubernetes-style resource conventions with Kind,
// APIVersion, and Metadata fields.
package header
