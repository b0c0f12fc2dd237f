/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "sku not found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "sku not found" {
		t.Errorf("expected message 'sku not found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "operation failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("connection refused")
	ctx := map[string]interface{}{
		"region": "eastus",
		"sku":    "Standard_D4s_v3",
	}

	err := WrapWithContext(ErrCodeDataUnavailable, "sku availability lookup failed", cause, ctx)

	if err.Code != ErrCodeDataUnavailable {
		t.Errorf("expected code %s, got %s", ErrCodeDataUnavailable, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["region"] != "eastus" {
		t.Errorf("expected region to be eastus")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
		{
			name:     "no candidates",
			err:      New(ErrCodeNoCandidates, "no SKU matched"),
			expected: "[NO_CANDIDATES] no SKU matched",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorCode
	}{
		{
			name:     "direct structured error",
			err:      New(ErrCodeInvalidWeights, "weights sum to 0.9"),
			expected: ErrCodeInvalidWeights,
		},
		{
			name:     "wrapped via fmt",
			err:      fmt.Errorf("resolve: %w", New(ErrCodeNoCandidates, "empty set")),
			expected: ErrCodeNoCandidates,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(ErrCodeConfiguration, "leap out of range"))
	if !HasCode(err, ErrCodeConfiguration) {
		t.Error("expected HasCode to find CONFIGURATION in chain")
	}
	if HasCode(err, ErrCodeNoCandidates) {
		t.Error("did not expect NO_CANDIDATES in chain")
	}
	if HasCode(nil, ErrCodeInternal) {
		t.Error("nil error should carry no code")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeConfiguration,
		ErrCodeInvalidWeights,
		ErrCodeNoCandidates,
		ErrCodeDataUnavailable,
		ErrCodeNotFound,
		ErrCodeTimeout,
		ErrCodeInternal,
		ErrCodeInvalidRequest,
		ErrCodeUnavailable,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}
