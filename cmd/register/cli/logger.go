// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates a structured logger writing to w.
//
// format is "text", "json", or "auto". With "auto", a terminal gets
// slog.TextHandler for human-readable output and anything else (CI,
// scripts, pipes) gets slog.JSONHandler.
//
// Callers scope the logger with command-specific context via With():
//
//	logger = logger.With("command", "item/hash", "inputs", len(args))
func NewCommandLogger(w io.Writer, level slog.Level, format string) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	if format == "auto" {
		format = "json"
		if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
			format = "text"
		}
	}
	if format == "text" {
		return slog.New(slog.NewTextHandler(w, options))
	}
	return slog.New(slog.NewJSONHandler(w, options))
}
