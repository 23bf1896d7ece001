// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stopwatch

import "sync"

// Slot is one stopwatch: a counter shared with its ticker goroutine,
// an optional label, and the ticker handle.
//
// The counter is only reachable through read and advance, which hold
// the slot mutex. The label and ticker handle belong to the registry's
// goroutine and are not locked.
type Slot struct {
	mu      sync.Mutex
	counter Counter

	label  string
	ticker *Ticker
}

// newSlot returns a slot with a zeroed counter and no ticker. The
// registry attaches the ticker after the slot is in its sequence.
func newSlot(label string) *Slot {
	return &Slot{label: label}
}

// Label returns the slot label, or "" when none is set.
func (s *Slot) Label() string {
	return s.label
}

// SetLabel replaces the label. An empty string clears it.
func (s *Slot) SetLabel(label string) {
	s.label = label
}

func (s *Slot) read() Counter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counter
}

func (s *Slot) advance() {
	s.mu.Lock()
	s.counter.Advance()
	s.mu.Unlock()
}

func (s *Slot) attach(ticker *Ticker) {
	s.ticker = ticker
}

// destroy stops the ticker and waits for it to exit. After destroy
// returns nothing writes to the counter again.
func (s *Slot) destroy() {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	s.ticker = nil
}
