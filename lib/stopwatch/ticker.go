// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stopwatch

import (
	"context"
	"time"

	"github.com/bureau-foundation/stopwatch/lib/clock"
)

// TickPeriod is the interval between counter advances.
const TickPeriod = time.Second

// Ticker is the handle to a goroutine that calls an advance function
// once per period. The zero value is not usable; tickers are created
// by startTicker.
type Ticker struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// startTicker launches a goroutine that calls advance at start+period,
// start+2*period, and so on, where start is source.Now() at the time of
// the call. Deadlines are computed from the fixed anchor, so processing
// delay never accumulates. Deadlines already in the past when the
// ticker gets to them fire immediately, one advance per missed period.
func startTicker(source clock.Clock, period time.Duration, advance func()) *Ticker {
	ctx, cancel := context.WithCancel(context.Background())
	ticker := &Ticker{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	anchor := source.Now()

	go func() {
		defer close(ticker.done)
		for n := int64(1); ; n++ {
			deadline := anchor.Add(time.Duration(n) * period)
			timer := source.NewTimer(deadline.Sub(source.Now()))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
			// Both channels may be ready at once; cancellation wins.
			if ctx.Err() != nil {
				return
			}
			advance()
		}
	}()

	return ticker
}

// Stop cancels the ticker and blocks until its goroutine has exited.
// No advance call starts after Stop returns. Stop is safe to call more
// than once.
func (t *Ticker) Stop() {
	t.cancel()
	<-t.done
}

// Done is closed when the ticker goroutine has exited.
func (t *Ticker) Done() <-chan struct{} {
	return t.done
}
