/*
Copyright © 2025 Skaelvox authors
SPDX-License-Identifier: Apache-2.0
*/
package logging

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"  error  ", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	if got := LevelFromEnv(); got != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", got)
	}

	t.Setenv("LOG_LEVEL", "")
	if got := LevelFromEnv(); got != slog.LevelInfo {
		t.Errorf("expected info level, got %v", got)
	}
}

func TestNewStructuredLogger(t *testing.T) {
	logger := NewStructuredLogger("test-module", "v0.0.1", "warn")
	if logger == nil {
		t.Fatal("expected logger, got nil")
	}
	if logger.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !logger.Enabled(t.Context(), slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}
