// Package logging builds the process-wide *slog.Logger for the lyricwalk CLI.
// Library packages never log unless handed a logger via their options.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Config selects level, format and static attributes of a logger.
type Config struct {
	Level  string // debug | info | warn | warning | error
	Format string // text | json
	Attrs  []slog.Attr
}

// ParseLevel maps a case-insensitive level name to a slog.Level.
// Unknown names are an error rather than a silent fallback.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

// New returns a logger writing to w.
func New(w io.Writer, cfg Config) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}
	if len(cfg.Attrs) > 0 {
		handler = handler.WithAttrs(cfg.Attrs)
	}

	return slog.New(handler), nil
}
