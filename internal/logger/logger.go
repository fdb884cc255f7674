// Package logger configures the process-wide structured logger.
package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New creates a zerolog logger writing to stdout at the given level.
// Unknown level strings fall back to info.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}
