package testhelpers

import (
	"bytes"
	"github.com/myrjola/detectivequest/internal/logging"
	"io"
	"log/slog"
	"testing"
)

// NewLogger creates a debug level logger with the given log sink such as io.Discard. The logger is enriched with
// context attributes like the production logger.
func NewLogger(logSink io.Writer) *slog.Logger {
	handler := logging.NewContextHandler(slog.NewTextHandler(logSink, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	return slog.New(handler)
}

// NewTestLogger creates a logger that writes through t.Log so that the records only show up for failing tests.
func NewTestLogger(t testing.TB) *slog.Logger {
	return NewLogger(testWriter{t: t})
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(bytes.TrimRight(p, "\n")))
	return len(p), nil
}
