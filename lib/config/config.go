// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the variable consulted by Load.
const EnvironmentVariable = "STOPWATCH_CONFIG"

// Bounds and step for the display refresh interval.
const (
	MinRefreshInterval  = 10 * time.Millisecond
	MaxRefreshInterval  = 100 * time.Millisecond
	RefreshIntervalStep = 5 * time.Millisecond
)

// ColorMode selects how the terminal color profile is chosen.
type ColorMode string

const (
	// ColorAuto detects the profile from the terminal.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces 256-color output.
	ColorAlways ColorMode = "always"
	// ColorNever disables color.
	ColorNever ColorMode = "never"
)

// Config is the complete stopwatch configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// DisplayConfig configures the terminal UI.
type DisplayConfig struct {
	// RefreshInterval is how often the UI takes a snapshot and redraws.
	// Default: 50ms. Must lie within [MinRefreshInterval, MaxRefreshInterval].
	RefreshInterval time.Duration `yaml:"refresh_interval"`

	// ShowHelp shows the shortcut overlay at startup.
	// Default: true
	ShowHelp bool `yaml:"show_help"`

	// Color selects the color profile.
	// Default: auto
	Color ColorMode `yaml:"color"`
}

// LogConfig configures the structured log sink. The UI owns the
// terminal, so logs are only written when File is set.
type LogConfig struct {
	// File receives JSON log records. Empty disables logging.
	File string `yaml:"file"`

	// Level is one of debug, info, warn, error.
	// Default: info
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			RefreshInterval: 50 * time.Millisecond,
			ShowHelp:        true,
			Color:           ColorAuto,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads the file named by STOPWATCH_CONFIG. When the variable is
// unset it returns Default.
func Load() (*Config, error) {
	path := os.Getenv(EnvironmentVariable)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from path on top of Default, expands
// path variables, and validates the result.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := cfg.decode(path, data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// decode merges data into c. JSON is a subset of YAML, so JSONC files
// decode through the same YAML path once comments are stripped.
func (c *Config) decode(path string, data []byte) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}
	return yaml.Unmarshal(data, c)
}

// expandVariables expands ${VAR} and ${VAR:-default} in path fields.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	c.Log.File = expandVars(c.Log.File, vars)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors and reports all of
// them at once.
func (c *Config) Validate() error {
	var errs []error

	interval := c.Display.RefreshInterval
	if interval < MinRefreshInterval || interval > MaxRefreshInterval {
		errs = append(errs, fmt.Errorf("display.refresh_interval %v outside [%v, %v]",
			interval, MinRefreshInterval, MaxRefreshInterval))
	}

	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		errs = append(errs, fmt.Errorf("invalid display.color: %q (want auto, always, or never)", c.Display.Color))
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ParseLevel converts a log.level string into an slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log.level: %q (want debug, info, warn, or error)", level)
	}
}
