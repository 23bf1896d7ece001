// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// stopwatch is a terminal UI running up to eight independent
// stopwatches. An optional positional argument labels the first one.
//
// Configuration comes from --config or STOPWATCH_CONFIG (YAML, or JSONC
// for .json/.jsonc files); flags override file values. Logs go to a
// file only, since the UI occupies the terminal.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/bureau-foundation/stopwatch/lib/clock"
	"github.com/bureau-foundation/stopwatch/lib/config"
	"github.com/bureau-foundation/stopwatch/lib/stopwatch"
	"github.com/bureau-foundation/stopwatch/lib/stopwatchui"
	"github.com/bureau-foundation/stopwatch/lib/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			os.Exit(coder.ExitCode())
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, flagSet, err := parseOptions(args)
	if err != nil {
		return err
	}
	if opts.showUsage {
		printUsage(stderr, flagSet)
		return nil
	}
	if opts.showVersion {
		version.Print(stdout, "stopwatch")
		return nil
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stopwatch needs an interactive terminal on stdin and stdout")
	}

	logger, closeLog, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	registry := stopwatch.New(stopwatch.Config{
		Clock:        clock.Real(),
		Logger:       logger,
		InitialLabel: opts.label,
	})
	defer registry.Close()
	logger.Info("stopwatch started",
		"version", version.Info(),
		"refresh_interval", cfg.Display.RefreshInterval,
	)

	model := stopwatchui.NewModel(registry, stopwatchui.Options{
		RefreshInterval: cfg.Display.RefreshInterval,
		HideHelp:        !cfg.Display.ShowHelp,
		Renderer:        newRenderer(os.Stdout, cfg.Display.Color),
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running terminal UI: %w", err)
	}

	logger.Info("stopwatch stopped", "timers", registry.Len())
	return nil
}

// loadConfig reads the config file named by --config, falling back to
// STOPWATCH_CONFIG and then defaults, applies flag overrides, and
// validates the result. Any failure is a usage error.
func loadConfig(opts *options) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, &UsageError{Err: fmt.Errorf("loading config: %w", err)}
	}

	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, &UsageError{Err: err}
	}
	return cfg, nil
}
