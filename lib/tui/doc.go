// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides terminal drawing primitives shared by the
// stopwatch viewer: a color [Theme], bordered boxes with inline titles
// ([Box]), and ANSI-aware overlay splicing ([SpliceOverlay]) for help
// panels and prompts drawn on top of an already-rendered view.
//
// Everything here produces plain strings. Callers pass a
// lipgloss.Renderer so color output follows the profile selected at
// startup.
package tui
