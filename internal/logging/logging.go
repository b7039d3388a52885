// Package logging constructs the slog logger shared by devkit commands. The
// logger is built once at process start and handed to each component rather
// than installed as a process-wide default.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/devkit-labs/devkit/internal/branding"
)

// New returns a text-handler logger writing to w. If verbose is true or the
// DEVKIT_LOG env var is "debug", debug records are emitted.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose || strings.EqualFold(os.Getenv(branding.EnvVar("LOG")), "debug") {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// Discard returns a logger that drops every record. Used by tests and by
// callers that only need the structured-output side effects of a component.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
