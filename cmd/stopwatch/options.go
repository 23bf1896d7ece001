// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/stopwatch/lib/config"
)

// options holds parsed command-line input. Zero values mean "not given
// on the command line" so the config file value applies.
type options struct {
	configPath string
	logFile    string
	logLevel   string
	refresh    time.Duration
	noHelp     bool
	noColor    bool

	showVersion bool
	showUsage   bool

	// label names the first stopwatch. Empty means no label.
	label string
}

func newFlagSet(opts *options) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("stopwatch", pflag.ContinueOnError)
	flagSet.StringVar(&opts.configPath, "config", "", "path to a YAML or JSONC config file (default: $"+config.EnvironmentVariable+")")
	flagSet.StringVar(&opts.logFile, "log-file", "", "write JSON log records to this file")
	flagSet.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flagSet.DurationVar(&opts.refresh, "refresh", 0, "display refresh interval, 10ms to 100ms (default 50ms)")
	flagSet.BoolVar(&opts.noHelp, "no-help", false, "start with the shortcut panel hidden")
	flagSet.BoolVar(&opts.noColor, "no-color", false, "disable color output")
	flagSet.BoolVar(&opts.showVersion, "version", false, "print version information and exit")
	flagSet.BoolVarP(&opts.showUsage, "help", "h", false, "show help")
	flagSet.SortFlags = false
	return flagSet
}

// parseOptions parses args (without the program name). Accepts zero or
// one positional argument; more is a usage error.
func parseOptions(args []string) (*options, *pflag.FlagSet, error) {
	opts := &options{}
	flagSet := newFlagSet(opts)
	flagSet.SetOutput(io.Discard)

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			opts.showUsage = true
			return opts, flagSet, nil
		}
		return nil, nil, &UsageError{Err: err}
	}

	positional := flagSet.Args()
	switch len(positional) {
	case 0:
	case 1:
		opts.label = positional[0]
	default:
		return nil, nil, usageError("expected at most one label argument, got %d", len(positional))
	}
	return opts, flagSet, nil
}

// apply overrides cfg with values given on the command line.
func (opts *options) apply(cfg *config.Config) {
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.refresh != 0 {
		cfg.Display.RefreshInterval = opts.refresh
	}
	if opts.noHelp {
		cfg.Display.ShowHelp = false
	}
	if opts.noColor {
		cfg.Display.Color = config.ColorNever
	}
}

func printUsage(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `stopwatch runs up to eight independent stopwatches in the terminal.

Each stopwatch counts days, hours, minutes, and seconds from the moment
it is created. Stopwatches keep running while others are added,
removed, selected, or labeled.

Usage:
  stopwatch [flags] [LABEL]

LABEL names the first stopwatch.

Examples:
  # One unlabeled stopwatch
  stopwatch

  # Label the first stopwatch and redraw at 20 FPS
  stopwatch --refresh 50ms "deploy window"

  # Keep a debug log while the UI runs
  stopwatch --log-file /tmp/stopwatch.log --log-level debug

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}
