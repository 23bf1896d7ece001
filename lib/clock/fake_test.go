// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFakeClockNow(t *testing.T) {
	clock := Fake(epoch)
	if got := clock.Now(); !got.Equal(epoch) {
		t.Fatalf("Now() = %v, want %v", got, epoch)
	}
	clock.Advance(5 * time.Second)
	want := epoch.Add(5 * time.Second)
	if got := clock.Now(); !got.Equal(want) {
		t.Fatalf("Now() after Advance = %v, want %v", got, want)
	}
}

func TestFakeClockTimerFiresAtDeadline(t *testing.T) {
	clock := Fake(epoch)
	timer := clock.NewTimer(3 * time.Second)

	clock.Advance(2 * time.Second)
	select {
	case <-timer.C:
		t.Fatal("timer fired before deadline")
	default:
	}

	clock.Advance(1 * time.Second)
	select {
	case fired := <-timer.C:
		if want := epoch.Add(3 * time.Second); !fired.Equal(want) {
			t.Errorf("fire time = %v, want %v", fired, want)
		}
	default:
		t.Fatal("timer did not fire at exact deadline")
	}
}

func TestFakeClockTimerNonPositiveFiresImmediately(t *testing.T) {
	for _, duration := range []time.Duration{0, -time.Second} {
		clock := Fake(epoch)
		timer := clock.NewTimer(duration)
		select {
		case <-timer.C:
		default:
			t.Fatalf("NewTimer(%v) should fire immediately", duration)
		}
		if count := clock.PendingCount(); count != 0 {
			t.Errorf("NewTimer(%v) registered %d pending timers, want 0", duration, count)
		}
	}
}

func TestFakeClockTimerStop(t *testing.T) {
	clock := Fake(epoch)
	timer := clock.NewTimer(time.Second)

	if !timer.Stop() {
		t.Fatal("Stop() should return true for an armed timer")
	}
	if timer.Stop() {
		t.Fatal("second Stop() should return false")
	}

	clock.Advance(5 * time.Second)
	select {
	case <-timer.C:
		t.Fatal("stopped timer fired")
	default:
	}
}

func TestFakeClockStopAfterFire(t *testing.T) {
	clock := Fake(epoch)
	timer := clock.NewTimer(time.Second)
	clock.Advance(time.Second)

	if timer.Stop() {
		t.Fatal("Stop() should return false for a fired timer")
	}
}

func TestFakeClockOneShotDoesNotRepeat(t *testing.T) {
	clock := Fake(epoch)
	timer := clock.NewTimer(time.Second)

	clock.Advance(time.Second)
	<-timer.C
	clock.Advance(time.Second)

	select {
	case <-timer.C:
		t.Fatal("one-shot timer fired twice")
	default:
	}
}

func TestFakeClockWaitForTimers(t *testing.T) {
	clock := Fake(epoch)
	armed := make(chan struct{})

	go func() {
		timer := clock.NewTimer(time.Second)
		close(armed)
		<-timer.C
	}()

	clock.WaitForTimers(1)
	<-armed
	if count := clock.PendingCount(); count != 1 {
		t.Fatalf("PendingCount() = %d, want 1", count)
	}
	clock.Advance(time.Second)
	if count := clock.PendingCount(); count != 0 {
		t.Fatalf("PendingCount() after fire = %d, want 0", count)
	}
}

func TestFakeClockPendingCountExcludesStopped(t *testing.T) {
	clock := Fake(epoch)
	first := clock.NewTimer(time.Second)
	clock.NewTimer(2 * time.Second)

	first.Stop()
	if count := clock.PendingCount(); count != 1 {
		t.Fatalf("PendingCount() = %d, want 1", count)
	}
}

func TestFakeClockAdvanceFiresOnlyExpired(t *testing.T) {
	clock := Fake(epoch)
	early := clock.NewTimer(1 * time.Second)
	late := clock.NewTimer(10 * time.Second)

	clock.Advance(5 * time.Second)

	select {
	case <-early.C:
	default:
		t.Fatal("early timer did not fire")
	}
	select {
	case <-late.C:
		t.Fatal("late timer fired early")
	default:
	}
	if count := clock.PendingCount(); count != 1 {
		t.Errorf("PendingCount() = %d, want 1", count)
	}
}

func TestFakeClockImplementsClock(t *testing.T) {
	var _ Clock = Fake(epoch)
	var _ Clock = Real()
}

func TestRealClockTimerStop(t *testing.T) {
	timer := Real().NewTimer(time.Hour)
	if !timer.Stop() {
		t.Fatal("Stop() should return true for an armed real timer")
	}
}
