package logger

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/phuslu/log"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{"debug level", "debug", "console"},
		{"info level", "info", "console"},
		{"warn level", "warn", "json"},
		{"error level", "error", "json"},
		{"invalid level", "invalid", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.level, tt.format)
			if l == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	l := New("info", "console")

	// These should not panic
	l.Debug(ctx, "debug message")
	l.Info(ctx, "info message")
	l.Warn(ctx, "warn message")
	l.Error(ctx, "error message")

	// Test with formatting
	l.Info(ctx, "formatted message: %s %d", "test", 123)
}

func TestFormatError(t *testing.T) {
	if got := FormatError(nil); got != "" {
		t.Errorf("FormatError(nil) = %q, want empty", got)
	}

	err := fmt.Errorf("fetch url: %w", errors.New("connection refused"))
	if got := FormatError(err); got != "fetch url: connection refused" {
		t.Errorf("FormatError() = %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  log.Level
	}{
		{"debug", "debug", log.DebugLevel},
		{"info", "info", log.InfoLevel},
		{"warn", "warn", log.WarnLevel},
		{"error", "error", log.ErrorLevel},
		{"mixed case", "DEBUG", log.DebugLevel},
		{"unknown defaults to info", "verbose", log.InfoLevel},
		{"empty defaults to info", "", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLevel(tt.level); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}
