// Package logging builds the structured logger used across a run.
package logging

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
)

var levels = map[string]pterm.LogLevel{
	"debug": pterm.LogLevelDebug,
	"info":  pterm.LogLevelInfo,
	"warn":  pterm.LogLevelWarn,
	"error": pterm.LogLevelError,
}

// ParseLevel falls back to info for unknown names.
func ParseLevel(name string) pterm.LogLevel {
	if level, ok := levels[name]; ok {
		return level
	}
	return pterm.LogLevelInfo
}

// New returns a slog logger rendered by pterm onto w (normally stderr).
func New(level string, w io.Writer) *slog.Logger {
	logger := pterm.DefaultLogger.
		WithLevel(ParseLevel(level)).
		WithWriter(w)

	return slog.New(pterm.NewSlogHandler(logger))
}

// Discard is used where a caller has no logger to pass.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func NewRunID() string {
	return uuid.New().String()
}
