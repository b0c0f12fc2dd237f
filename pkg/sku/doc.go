/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/

// Package sku defines the immutable SKU specification type and the naming
// conventions around it: family and generation extraction from provider
// names, capability flags, deployment restrictions, and zone availability.
//
// A Spec is built once by the catalog layer and treated as read-only by
// everything downstream. All parsing helpers are pure functions.
package sku
