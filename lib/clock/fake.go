// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sort"
	"sync"
	"time"
)

// Fake returns a FakeClock initialized to the given time. Time stands
// still until Advance is called.
//
// FakeClock is safe for concurrent use by multiple goroutines.
func Fake(initial time.Time) *FakeClock {
	clock := &FakeClock{
		current: initial,
	}
	clock.timersChanged = sync.NewCond(&clock.mu)
	return clock
}

// FakeClock is a deterministic Clock for testing. Timers created with
// NewTimer fire only when Advance moves the clock to or past their
// deadline.
type FakeClock struct {
	mu            sync.Mutex
	current       time.Time
	pending       []*fakeTimer
	timersChanged *sync.Cond
}

type fakeTimer struct {
	deadline time.Time
	channel  chan time.Time
	stopped  bool
	fired    bool
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// NewTimer returns a Timer that fires once the clock reaches now+d. If
// d <= 0 the channel already holds a value when NewTimer returns and no
// pending timer is registered.
func (c *FakeClock) NewTimer(d time.Duration) *Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	channel := make(chan time.Time, 1)
	timer := &fakeTimer{
		deadline: c.current.Add(d),
		channel:  channel,
	}
	if d <= 0 {
		timer.fired = true
		channel <- c.current
	} else {
		c.pending = append(c.pending, timer)
		c.timersChanged.Broadcast()
	}

	return &Timer{
		C: channel,
		stopFunc: func() bool {
			c.mu.Lock()
			defer c.mu.Unlock()
			if timer.stopped || timer.fired {
				return false
			}
			timer.stopped = true
			c.timersChanged.Broadcast()
			return true
		},
	}
}

// Advance moves the clock forward by d and fires every pending timer
// whose deadline falls at or before the new time, in deadline order.
// Sends are non-blocking; each timer channel has room for its single
// value.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)
	target := c.current

	var expired, remaining []*fakeTimer
	for _, timer := range c.pending {
		switch {
		case timer.stopped:
		case !timer.deadline.After(target):
			timer.fired = true
			expired = append(expired, timer)
		default:
			remaining = append(remaining, timer)
		}
	}
	c.pending = remaining
	c.timersChanged.Broadcast()
	c.mu.Unlock()

	sort.SliceStable(expired, func(i, j int) bool {
		return expired[i].deadline.Before(expired[j].deadline)
	})
	for _, timer := range expired {
		select {
		case timer.channel <- target:
		default:
		}
	}
}

// WaitForTimers blocks until at least n timers are pending (armed, not
// yet fired or stopped). Use it to wait for ticker goroutines to arm
// their next deadline before advancing the clock.
func (c *FakeClock) WaitForTimers(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.pendingCountLocked() < n {
		c.timersChanged.Wait()
	}
}

// PendingCount returns the number of armed timers.
func (c *FakeClock) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingCountLocked()
}

// Must be called with c.mu held.
func (c *FakeClock) pendingCountLocked() int {
	count := 0
	for _, timer := range c.pending {
		if !timer.stopped {
			count++
		}
	}
	return count
}
