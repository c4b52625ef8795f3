// SPDX-License-Identifier: MIT

// Package logging builds the slog loggers used by the lvmat commands.
package logging

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
)

// TimeFormat is the short wall-clock layout used in log lines.
const TimeFormat = "15:04:05"

// New returns a logger writing human-readable lines to w at the given level.
// Color escapes are emitted only when color is true.
func New(w io.Writer, level slog.Leveler, color bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: TimeFormat,
		NoColor:    !color,
	}))
}

// Discard returns a logger that drops everything, for tests and library callers.
func Discard() *slog.Logger {
	return New(io.Discard, slog.LevelError+1, false)
}
