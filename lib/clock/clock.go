// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts the time operations used by stopwatch tickers.
// Production code injects Real(); tests inject Fake() and drive time
// explicitly with Advance.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// NewTimer returns a Timer that delivers the current time on its C
	// channel once duration d has elapsed. If d <= 0 the timer fires
	// immediately.
	NewTimer(d time.Duration) *Timer
}

// Timer is a one-shot timer. Read the fire time from C. Call Stop to
// release the timer if it is abandoned before firing.
type Timer struct {
	// C delivers the fire time. Buffered with capacity 1.
	C <-chan time.Time

	stopFunc func() bool
}

// Stop prevents the Timer from firing. Returns true if the call stops
// the timer, false if it has already fired or been stopped. Stop does
// not drain C.
func (t *Timer) Stop() bool { return t.stopFunc() }
