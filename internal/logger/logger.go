package logger

import (
	"context"
	"fmt"
	"strings"

	"github.com/phuslu/log"
)

type implLogger struct {
	logger log.Logger
}

// New creates a new Logger instance. Format is either "console" or "json";
// anything else falls back to console output.
func New(level, format string) Logger {
	l := log.Logger{
		Level:      parseLevel(level),
		TimeFormat: "15:04:05",
	}
	if strings.ToLower(format) != "json" {
		l.Writer = &log.ConsoleWriter{
			ColorOutput:    true,
			EndWithMessage: true,
		}
	}
	return &implLogger{logger: l}
}

func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Debug().Msgf(msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Info().Msgf(msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Warn().Msgf(msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.logger.Error().Msgf(msg, args...)
}

// FormatError renders an error for message formatting
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%v", err)
}
