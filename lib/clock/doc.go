// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source for the stopwatch
// engine.
//
// Tickers never call time.Now or time.NewTimer directly. They receive a
// Clock: Real() in production, Fake() in tests. A FakeClock stands
// still until Advance is called, which makes second-by-second tick
// sequences reproducible without sleeping.
//
// # FakeClock Synchronization
//
// A ticker goroutine arms a timer, waits for it, advances its counter,
// and arms the next one. Tests use WaitForTimers to block until every
// ticker has armed its next timer before calling Advance:
//
//	fake := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	// ... start N tickers ...
//	for range 65 {
//	    fake.WaitForTimers(n)
//	    fake.Advance(time.Second)
//	}
//	fake.WaitForTimers(n) // every ticker has processed the last tick
package clock
