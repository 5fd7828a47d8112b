// Package logging configures the application-wide zerolog logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when the configured level cannot be parsed.
const DefaultLevel = zerolog.InfoLevel

// New returns a console logger writing to stderr at the given level.
func New(level string) zerolog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter returns a human-readable logger writing to w. Unknown or
// empty levels fall back to DefaultLevel.
func NewWithWriter(w io.Writer, level string) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(console).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// ParseLevel parses level, returning DefaultLevel on error or empty input.
func ParseLevel(level string) zerolog.Level {
	if level == "" {
		return DefaultLevel
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return DefaultLevel
	}
	return lvl
}
