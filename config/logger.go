package config

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger returns a slog.Logger for env and cfg.
// Production uses JSON handler; otherwise text handler, unless cfg.Format says otherwise.
// Level may be: debug, info, warn, error (default: info).
func NewLogger(env string, cfg LogConfig) *slog.Logger {
	return newLogger(os.Stdout, env, cfg)
}

func newLogger(w io.Writer, env string, cfg LogConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: level}

	format := cfg.Format
	if format == "" {
		format = "text"
		if env == "production" {
			format = "json"
		}
	}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
