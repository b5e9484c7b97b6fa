package logging

import (
	"github.com/myrjola/detectivequest/internal/errors"
	"io"
	"log/slog"
	"strings"
)

var (
	ErrUnknownLevel  = errors.NewSentinel("unknown log level")
	ErrUnknownFormat = errors.NewSentinel("unknown log format")
)

// ParseLevel maps debug, info, warn and error (case-insensitive) to the slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Wrap(ErrUnknownLevel, "parse log level", slog.String("level", level))
	}
}

// NewLogger creates a logger writing to w in the given format ("text" or "json"). Records are enriched with the
// attributes stored in the context with [WithAttrs].
func NewLogger(w io.Writer, level slog.Level, format string) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{
		AddSource:   false,
		Level:       level,
		ReplaceAttr: nil,
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "text", "":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, errors.Wrap(ErrUnknownFormat, "create log handler", slog.String("format", format))
	}

	return slog.New(NewContextHandler(handler)), nil
}
