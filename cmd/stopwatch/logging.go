// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/stopwatch/lib/config"
)

// newLogger opens the configured log file and returns a JSON logger
// writing to it. The UI owns the terminal, so without a file the
// logger discards everything. The returned close function is never
// nil.
func newLogger(cfg config.LogConfig) (*slog.Logger, func() error, error) {
	level, err := config.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	if cfg.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}

	file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	handler := slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level})
	return slog.New(handler), file.Close, nil
}

// newRenderer returns a lipgloss renderer for output with the color
// profile selected by mode. Auto mode honors NO_COLOR and otherwise
// detects the terminal's capabilities.
func newRenderer(output io.Writer, mode config.ColorMode) *lipgloss.Renderer {
	var profile termenv.Profile
	switch {
	case mode == config.ColorNever, mode == config.ColorAuto && termenv.EnvNoColor():
		profile = termenv.Ascii
	case mode == config.ColorAlways:
		profile = termenv.ANSI256
	default:
		return lipgloss.NewRenderer(output)
	}

	// ColorProfile re-detects from the environment unless the profile
	// is set explicitly on the renderer.
	renderer := lipgloss.NewRenderer(output, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)
	return renderer
}
