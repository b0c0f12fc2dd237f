/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/

// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeDataUnavailable,
//	    "failed to list resource SKUs",
//	    cause,
//	    map[string]interface{}{
//	        "region": region,
//	        "subscription": subID,
//	    },
//	)
package errors
