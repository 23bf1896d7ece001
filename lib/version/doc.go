// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports build version information for the stopwatch
// binary.
//
// [GitCommit], [GitDirty], [BuildTime], and [Version] are injected with
// -ldflags -X. When GitCommit is not injected, the VCS stamping that
// the go command embeds in the binary is used instead.
package version
