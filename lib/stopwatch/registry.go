// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stopwatch

import (
	"io"
	"log/slog"
	"slices"

	"github.com/bureau-foundation/stopwatch/lib/clock"
)

// Capacity is the maximum number of stopwatches a registry holds.
const Capacity = 8

// Config configures a Registry.
type Config struct {
	// Clock drives every ticker. Nil means clock.Real().
	Clock clock.Clock

	// Logger receives debug records for structural changes and ignored
	// commands. Nil discards them.
	Logger *slog.Logger

	// InitialLabel labels the stopwatch created by New. Empty means no
	// label.
	InitialLabel string
}

// Registry is the ordered, capacity-bounded set of running stopwatches
// plus a selection cursor. It always holds at least one slot until
// Close is called.
//
// Registry is not safe for concurrent use: call its methods from one
// goroutine. Ticker goroutines only touch slot counters.
type Registry struct {
	clock  clock.Clock
	logger *slog.Logger

	slots    []*Slot
	selected int
	closed   bool
}

// New creates a registry holding one running stopwatch.
func New(config Config) *Registry {
	source := config.Clock
	if source == nil {
		source = clock.Real()
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	registry := &Registry{
		clock:  source,
		logger: logger,
	}
	registry.appendSlot(config.InitialLabel)
	return registry
}

// appendSlot adds a slot to the end of the sequence, then starts its
// ticker, so the ticker never runs against a slot the registry does not
// yet hold.
func (r *Registry) appendSlot(label string) {
	slot := newSlot(label)
	r.slots = append(r.slots, slot)
	slot.attach(startTicker(r.clock, TickPeriod, slot.advance))
	r.selected = len(r.slots) - 1
}

// Add appends a new running stopwatch and selects it. At capacity the
// call is ignored and Add returns false.
func (r *Registry) Add(label string) bool {
	if r.closed {
		return false
	}
	if len(r.slots) >= Capacity {
		r.logger.Debug("add ignored: registry at capacity", "capacity", Capacity)
		return false
	}
	r.appendSlot(label)
	r.logger.Debug("stopwatch added", "index", r.selected, "count", len(r.slots))
	return true
}

// RemoveSelected stops the selected stopwatch and removes it from the
// sequence. Later stopwatches shift down one index. The cursor stays at
// the same index unless it now points past the end. Removing the last
// remaining stopwatch is ignored and RemoveSelected returns false.
func (r *Registry) RemoveSelected() bool {
	if r.closed {
		return false
	}
	if len(r.slots) <= 1 {
		r.logger.Debug("remove ignored: last stopwatch")
		return false
	}

	removed := r.selected
	r.slots[removed].destroy()
	r.slots = slices.Delete(r.slots, removed, removed+1)
	r.selected = min(r.selected, len(r.slots)-1)

	r.logger.Debug("stopwatch removed", "index", removed, "count", len(r.slots))
	return true
}

// SelectNext moves the cursor forward, wrapping from the last index to
// the first.
func (r *Registry) SelectNext() {
	if len(r.slots) == 0 {
		return
	}
	r.selected = (r.selected + 1) % len(r.slots)
}

// SelectPrevious moves the cursor backward, wrapping from the first
// index to the last.
func (r *Registry) SelectPrevious() {
	if len(r.slots) == 0 {
		return
	}
	r.selected = (r.selected + len(r.slots) - 1) % len(r.slots)
}

// SetSelectedLabel replaces the selected stopwatch's label. An empty
// string clears it.
func (r *Registry) SetSelectedLabel(label string) {
	if len(r.slots) == 0 {
		return
	}
	r.slots[r.selected].SetLabel(label)
}

// Snapshot copies every counter in registry order. Each counter is
// locked only while it is copied.
func (r *Registry) Snapshot() []Counter {
	counters := make([]Counter, len(r.slots))
	for index, slot := range r.slots {
		counters[index] = slot.read()
	}
	return counters
}

// Selected returns the index of the selected stopwatch.
func (r *Registry) Selected() int {
	return r.selected
}

// Len returns the number of stopwatches.
func (r *Registry) Len() int {
	return len(r.slots)
}

// Label returns the label of the stopwatch at index, or "" when it has
// none or the index is out of range.
func (r *Registry) Label(index int) string {
	if index < 0 || index >= len(r.slots) {
		return ""
	}
	return r.slots[index].Label()
}

// Close stops every ticker and waits for all of them to exit. The
// counters remain readable through Snapshot but no longer advance.
// Structural changes after Close are ignored. Close is idempotent.
func (r *Registry) Close() {
	if r.closed {
		return
	}
	r.closed = true
	for _, slot := range r.slots {
		slot.destroy()
	}
	r.logger.Debug("registry closed", "count", len(r.slots))
}
