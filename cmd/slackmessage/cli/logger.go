// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"
	"os"

	"golang.org/x/term"
)

// Verbosity adds --verbose to a parameter struct. With it, the logger
// handed to Run shows the debug records of every API call.
type Verbosity struct {
	Verbose bool `json:"-" flag:"verbose,v" desc:"log API calls and other debug detail"`
}

// LogLevel returns Debug when --verbose is set, Info otherwise.
func (v *Verbosity) LogLevel() slog.Level {
	if v.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// NewCommandLogger logs to stderr at level: text for a terminal, JSON
// lines when stderr is redirected so CI logs stay parseable.
func NewCommandLogger(level slog.Level) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return slog.New(slog.NewTextHandler(os.Stderr, options))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, options))
}
