// Package observability holds logging, metrics and the HTTP middleware
// that feeds them.
package observability

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger builds the service logger writing JSON lines to stderr.
// Unknown level strings fall back to info.
func NewLogger(level string) zerolog.Logger {
	return zerolog.New(os.Stderr).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Str("service", "solace").
		Logger()
}

func parseLevel(raw string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
