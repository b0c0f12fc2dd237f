/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/

// Package defaults provides centralized configuration constants for Skaelvox.
//
// This package defines timeout values, worker pool sizes, scoring weights, and
// other configuration defaults used across the codebase. Centralizing these
// values ensures consistency and makes tuning easier.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/jamelachahbar/skaelvox-vm-evolver/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.ProviderTimeout)
//	defer cancel()
package defaults
