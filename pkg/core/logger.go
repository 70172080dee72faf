package core

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger builds a timestamped zerolog.Logger at the configured level.
// An empty or unknown level falls back to info.
func NewLogger(config *Config, w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if config != nil && config.LogLevel != "" {
		if l, err := zerolog.ParseLevel(config.LogLevel); err == nil {
			level = l
		}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
