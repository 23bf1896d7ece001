// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads stopwatch settings from a single file.
//
// The file is named by the --config flag (via [LoadFile]) or the
// STOPWATCH_CONFIG environment variable (via [Load]). There is no
// discovery: without either, the program runs on [Default].
//
// Files ending in .json or .jsonc may contain // and /* */ comments and
// trailing commas; they are normalized with tidwall/jsonc before
// decoding. Every other file is YAML.
//
// ${HOME} and ${VAR:-default} patterns in log.file are expanded after
// loading. No other environment variables override config values.
package config
