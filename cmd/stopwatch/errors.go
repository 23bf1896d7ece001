// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import "fmt"

// usageExitCode is the conventional exit status for command-line
// misuse.
const usageExitCode = 2

// UsageError reports invalid command-line input: unknown flags, too
// many positional arguments, or an invalid configuration. It is
// detected before any stopwatch starts. main prints it and exits with
// status 2.
type UsageError struct {
	Err error
}

func usageError(format string, args ...any) *UsageError {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

func (e *UsageError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error so errors.Is and errors.As can
// walk the chain.
func (e *UsageError) Unwrap() error { return e.Err }

// ExitCode returns the process exit status. main checks for this
// interface on returned errors.
func (e *UsageError) ExitCode() int { return usageExitCode }
