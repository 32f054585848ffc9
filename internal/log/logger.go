// Package log builds the structured logger used by the almanac CLI.
package log

import (
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/almanac/internal/config"
)

// New returns a logger writing to w in the given format at the given level.
// Unknown levels fall back to INFO; unknown formats to pretty.
func New(w io.Writer, format config.LogFormat, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	switch format {
	case config.LogFormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = newTerminalHandler(w, opts)
	}
	return slog.New(handler)
}

// FromConfig returns a logger for cfg writing to w.
func FromConfig(w io.Writer, cfg config.Config) *slog.Logger {
	return New(w, cfg.LogFormat, cfg.LogLevel)
}

// ParseLevel maps DEBUG, INFO, WARN(ING) and ERROR, case-insensitively.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
