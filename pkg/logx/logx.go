// Package logx builds the process-wide zerolog logger.
package logx

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a timestamped logger writing to stdout at the given level.
// Unknown levels fall back to info.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}
