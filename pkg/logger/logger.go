// Package logger provides structured logging on top of zerolog with
// printf-style convenience methods.
package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog with the leveled printf-style API used across the app.
type Logger struct {
	logger zerolog.Logger
}

// New creates a logger writing JSON to stdout at the given level
// (debug, info, warn, error). Unknown levels fall back to info.
func New(level string) *Logger {
	var l zerolog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = zerolog.DebugLevel
	case "info":
		l = zerolog.InfoLevel
	case "warn", "warning":
		l = zerolog.WarnLevel
	case "error":
		l = zerolog.ErrorLevel
	default:
		l = zerolog.InfoLevel
	}

	zl := zerolog.New(os.Stdout).
		Level(l).
		With().
		Timestamp().
		Logger()

	return &Logger{logger: zl}
}

func (l *Logger) Debug(format string, args ...any) {
	l.logger.Debug().Msg(fmt.Sprintf(format, args...))
}

func (l *Logger) Info(format string, args ...any) {
	l.logger.Info().Msg(fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...any) {
	l.logger.Warn().Msg(fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...any) {
	l.logger.Error().Msg(fmt.Sprintf(format, args...))
}

// Fatal logs the error and exits the process.
func (l *Logger) Fatal(err error) {
	l.logger.Fatal().Err(err).Msg("fatal error")
}
