// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package stopwatch runs a bounded set of independent stopwatches.
//
// Each stopwatch is a [Slot]: a [Counter] guarded by its own mutex, an
// optional label, and the [Ticker] that advances the counter once per
// second. The [Registry] owns the ordered slot sequence and a selection
// cursor, and is the only place tickers are started or stopped.
//
// Concurrency model:
//
//   - One ticker goroutine per live slot. A ticker is the only writer
//     of its slot's counter.
//   - There is no registry-wide lock. Tickers for different slots never
//     contend with each other.
//   - [Registry.Snapshot] locks each counter in turn, copies it, and
//     releases it before moving to the next. A snapshot is therefore not
//     a single cross-timer instant; each entry is the latest value of
//     its own counter at the moment it was read.
//   - Registry methods (structure, selection, labels, snapshots) must be
//     called from a single goroutine, typically the UI event loop.
//
// Tickers schedule against a fixed anchor: the n-th tick is due at
// start + n seconds, so time spent handling one tick shortens the next
// wait instead of delaying every later tick. Removing a slot stops its
// ticker and waits for the goroutine to exit before the slot leaves the
// sequence.
//
// Timer identity is positional. Removing the slot at index i shifts
// every later slot down by one.
package stopwatch
