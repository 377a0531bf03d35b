// Package logger provides a configured zerolog logger.
package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// NewWithWriter returns a JSON logger on w tagged with the service name.
func NewWithWriter(w io.Writer, serviceName string) zerolog.Logger {
	if w == nil {
		w = io.Discard
	}
	return zerolog.New(w).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}

// Level parses a level name, defaulting to info for unknown values.
func Level(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
