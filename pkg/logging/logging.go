// Package logging configures colored structured logging with tint.
//
// Usage:
//
//	logging.SetupWithLevel(logging.ParseLevel(os.Getenv("LOG_LEVEL")))
//	logging.SetupWithLevel(slog.LevelDebug)  // explicit level
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// SetupWithLevel configures colored logging on stderr at the given level.
func SetupWithLevel(level slog.Level) {
	slog.SetDefault(New(os.Stderr, level))
}

// New returns a tint logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			AddSource:  level == slog.LevelDebug,
		}),
	)
}

// ParseLevel maps a level name to a slog.Level. Unknown names mean INFO.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
