/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package logging

import (
	"log"
	"log/slog"
	"os"
	"strings"
)

// logLevelEnvVar is the environment variable controlling logging verbosity.
const logLevelEnvVar = "LOG_LEVEL"

// ParseLevel converts a level name into a slog.Level. Parsing is
// case-insensitive and accepts both WARN and WARNING. Unknown or empty
// values fall back to INFO.
func ParseLevel(s string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO", "":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LevelFromEnv returns the log level configured via LOG_LEVEL,
// defaulting to INFO when unset.
func LevelFromEnv() slog.Level {
	return ParseLevel(os.Getenv(logLevelEnvVar))
}

// NewStructuredLogger creates a JSON logger writing to stderr with the
// given module and version attached to every record. Source location is
// included when the level is DEBUG.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	lvl := ParseLevel(level)
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	})
	return slog.New(handler).With(
		slog.String("module", module),
		slog.String("version", version),
	)
}

// SetDefaultStructuredLogger installs a structured logger as the slog
// default, taking the level from the LOG_LEVEL environment variable.
func SetDefaultStructuredLogger(module, version string) {
	slog.SetDefault(NewStructuredLogger(module, version, os.Getenv(logLevelEnvVar)))
}

// SetDefaultStructuredLoggerWithLevel installs a structured logger as the
// slog default with an explicit level, ignoring LOG_LEVEL.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	slog.SetDefault(NewStructuredLogger(module, version, level))
}

// NewLogLogger returns a standard library *log.Logger that forwards
// records to the default slog handler at the given level.
func NewLogLogger(level slog.Level) *log.Logger {
	return slog.NewLogLogger(slog.Default().Handler(), level)
}
