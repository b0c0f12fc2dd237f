/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/

// Package logging provides structured logging utilities for Skaelvox components.
//
// It wraps the standard library slog package with project defaults: JSON output
// to stderr, environment-based log level configuration via LOG_LEVEL, automatic
// module and version context on every record, and source location tracking when
// the level is DEBUG.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("skaelvox", version)
//
//	    slog.Info("resolving candidates", "region", region)
//	    slog.Debug("catalog state", "skus", count)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("skaelvoxd", "v1.0.0", "debug")
//	logger.Info("server starting", "port", 8080)
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug skaelvox resolve --region eastus
//
// If LOG_LEVEL is not set, defaults to INFO level.
package logging
