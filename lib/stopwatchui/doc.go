// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package stopwatchui is the bubbletea front end for a stopwatch
// registry.
//
// The model never reads a counter directly. A refresh tick fires every
// refresh interval (50ms by default, adjustable with the arrow keys
// between 10ms and 100ms), takes a registry snapshot, and the view
// renders only from that snapshot. Tickers advance on their own
// one-second schedule, so the redraw rate and tick rate are
// independent.
//
// Up to eight stopwatches are arranged on a two-row grid. The selected
// one has a green border. ctrl+a adds, ctrl+d removes the selected
// stopwatch, tab and shift+tab move the selection, l edits the label,
// h toggles the help panel, and ctrl+q asks for confirmation before
// quitting.
package stopwatchui
