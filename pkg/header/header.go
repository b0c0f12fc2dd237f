/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package header

import (
	"time"
)

// APIVersion is the schema version stamped on all skaelvox documents.
const APIVersion = "skaelvox.io/v1"

// Kind represents the type of a skaelvox document.
type Kind string

// Valid Kind constants for all skaelvox document types.
const (
	KindCatalog        Kind = "Catalog"
	KindQuotaLedger    Kind = "QuotaLedger"
	KindPriceSnapshot  Kind = "PriceSnapshot"
	KindFleet          Kind = "Fleet"
	KindAnalysisReport Kind = "AnalysisReport"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindCatalog, KindQuotaLedger, KindPriceSnapshot, KindFleet, KindAnalysisReport:
		return true
	default:
		return false
	}
}

// Header contains type and versioning information for skaelvox documents.
type Header struct {
	// Kind is the document type.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata contains key-value pairs with metadata about the document.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata returns an Option that adds a metadata key-value pair.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// New creates a Header for the given kind, stamped with the current
// time. Additional metadata is applied through options.
func New(kind Kind, opts ...Option) Header {
	h := Header{
		Kind:       kind,
		APIVersion: APIVersion,
		Metadata: map[string]string{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}
