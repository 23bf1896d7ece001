// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stopwatch

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/bureau-foundation/stopwatch/lib/clock"
)

func newTestRegistry(t *testing.T, label string) (*Registry, *clock.FakeClock) {
	t.Helper()
	fake := clock.Fake(epoch)
	registry := New(Config{Clock: fake, InitialLabel: label})
	t.Cleanup(registry.Close)
	return registry, fake
}

func totals(counters []Counter) []uint64 {
	result := make([]uint64, len(counters))
	for index, counter := range counters {
		result[index] = counter.Total()
	}
	return result
}

func equalTotals(got []Counter, want ...uint64) bool {
	values := totals(got)
	if len(values) != len(want) {
		return false
	}
	for index := range values {
		if values[index] != want[index] {
			return false
		}
	}
	return true
}

func TestNewRegistry(t *testing.T) {
	registry, _ := newTestRegistry(t, "build")

	if registry.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", registry.Len())
	}
	if registry.Selected() != 0 {
		t.Errorf("Selected() = %d, want 0", registry.Selected())
	}
	if got := registry.Label(0); got != "build" {
		t.Errorf("Label(0) = %q, want %q", got, "build")
	}
	if snapshot := registry.Snapshot(); len(snapshot) != 1 || snapshot[0] != (Counter{}) {
		t.Errorf("Snapshot() = %v, want one zero counter", snapshot)
	}
}

func TestRegistryIndependentClocks(t *testing.T) {
	registry, fake := newTestRegistry(t, "")

	tickSeconds(fake, 1, 65)
	snapshot := registry.Snapshot()
	if want := (Counter{Minutes: 1, Seconds: 5}); snapshot[0] != want {
		t.Fatalf("after 65s: %v, want %v", snapshot[0], want)
	}

	if !registry.Add("") {
		t.Fatal("Add() returned false below capacity")
	}
	if registry.Selected() != 1 {
		t.Errorf("Selected() after Add = %d, want 1", registry.Selected())
	}

	tickSeconds(fake, 2, 5)
	snapshot = registry.Snapshot()
	if want := (Counter{Minutes: 1, Seconds: 10}); snapshot[0] != want {
		t.Errorf("timer 1: %v, want %v", snapshot[0], want)
	}
	if want := (Counter{Seconds: 5}); snapshot[1] != want {
		t.Errorf("timer 2: %v, want %v", snapshot[1], want)
	}
}

func TestRegistryAddAtCapacity(t *testing.T) {
	registry, fake := newTestRegistry(t, "")
	for registry.Len() < Capacity {
		registry.Add("")
	}
	fake.WaitForTimers(Capacity)

	registry.SelectNext()
	registry.SelectNext()
	registry.SelectNext()
	selected := registry.Selected()

	if registry.Add("overflow") {
		t.Fatal("Add() at capacity returned true")
	}
	if registry.Len() != Capacity {
		t.Errorf("Len() = %d, want %d", registry.Len(), Capacity)
	}
	if registry.Selected() != selected {
		t.Errorf("Selected() = %d, want unchanged %d", registry.Selected(), selected)
	}
	if pending := fake.PendingCount(); pending != Capacity {
		t.Errorf("running tickers = %d, want %d", pending, Capacity)
	}
}

func TestRegistryRemoveLastIsIgnored(t *testing.T) {
	registry, fake := newTestRegistry(t, "only")
	tickSeconds(fake, 1, 3)

	if registry.RemoveSelected() {
		t.Fatal("RemoveSelected() on the last stopwatch returned true")
	}
	if registry.Len() != 1 || registry.Selected() != 0 || registry.Label(0) != "only" {
		t.Fatalf("registry changed: len=%d selected=%d label=%q", registry.Len(), registry.Selected(), registry.Label(0))
	}

	tickSeconds(fake, 1, 2)
	if snapshot := registry.Snapshot(); !equalTotals(snapshot, 5) {
		t.Errorf("Snapshot() = %v, want 5s (ticker kept running)", snapshot)
	}
}

func TestRegistryRemoveMiddlePreservesNeighbors(t *testing.T) {
	registry, fake := newTestRegistry(t, "a")
	tickSeconds(fake, 1, 10)
	registry.Add("b")
	tickSeconds(fake, 2, 5)
	registry.Add("c")
	tickSeconds(fake, 3, 3)

	if snapshot := registry.Snapshot(); !equalTotals(snapshot, 18, 8, 3) {
		t.Fatalf("Snapshot() = %v, want 18s 8s 3s", snapshot)
	}

	registry.SelectPrevious()
	if registry.Selected() != 1 {
		t.Fatalf("Selected() = %d, want 1", registry.Selected())
	}
	if !registry.RemoveSelected() {
		t.Fatal("RemoveSelected() returned false")
	}

	if registry.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", registry.Len())
	}
	if registry.Selected() != 1 {
		t.Errorf("Selected() = %d, want 1", registry.Selected())
	}
	if got := registry.Label(1); got != "c" {
		t.Errorf("Label(1) = %q, want %q (shifted down)", got, "c")
	}
	if snapshot := registry.Snapshot(); !equalTotals(snapshot, 18, 3) {
		t.Fatalf("Snapshot() after remove = %v, want 18s 3s", snapshot)
	}
	if pending := fake.PendingCount(); pending != 2 {
		t.Errorf("running tickers = %d, want 2", pending)
	}

	tickSeconds(fake, 2, 2)
	if snapshot := registry.Snapshot(); !equalTotals(snapshot, 20, 5) {
		t.Errorf("Snapshot() = %v, want 20s 5s", snapshot)
	}
}

func TestRegistryRemoveLastIndexClampsSelection(t *testing.T) {
	registry, _ := newTestRegistry(t, "")
	registry.Add("")
	registry.Add("")

	if registry.Selected() != 2 {
		t.Fatalf("Selected() = %d, want 2", registry.Selected())
	}
	registry.RemoveSelected()
	if registry.Selected() != 1 {
		t.Errorf("Selected() = %d, want 1", registry.Selected())
	}
}

func TestRegistrySelectionWraps(t *testing.T) {
	registry, _ := newTestRegistry(t, "")
	for count := 1; count <= Capacity; count++ {
		if count > 1 {
			registry.Add("")
		}
		registry.SelectNext()
		original := registry.Selected()

		for range count {
			registry.SelectNext()
		}
		if registry.Selected() != original {
			t.Errorf("len %d: %d SelectNext calls moved %d -> %d", count, count, original, registry.Selected())
		}
		for range count {
			registry.SelectPrevious()
		}
		if registry.Selected() != original {
			t.Errorf("len %d: %d SelectPrevious calls moved %d -> %d", count, count, original, registry.Selected())
		}
	}

	if registry.Selected() != 0 {
		t.Fatalf("Selected() = %d, want 0", registry.Selected())
	}
	registry.SelectPrevious()
	if registry.Selected() != Capacity-1 {
		t.Errorf("SelectPrevious from 0 = %d, want %d", registry.Selected(), Capacity-1)
	}
	registry.SelectNext()
	if registry.Selected() != 0 {
		t.Errorf("SelectNext from last index = %d, want 0", registry.Selected())
	}
}

func TestRegistrySetSelectedLabel(t *testing.T) {
	registry, _ := newTestRegistry(t, "")
	registry.Add("")

	registry.SetSelectedLabel("deploy")
	if got := registry.Label(1); got != "deploy" {
		t.Errorf("Label(1) = %q, want %q", got, "deploy")
	}
	if got := registry.Label(0); got != "" {
		t.Errorf("Label(0) = %q, want empty", got)
	}

	registry.SetSelectedLabel("")
	if got := registry.Label(1); got != "" {
		t.Errorf("Label(1) after clear = %q, want empty", got)
	}
	if got := registry.Label(7); got != "" {
		t.Errorf("Label(7) out of range = %q, want empty", got)
	}
}

func TestRegistrySnapshotMatchesCount(t *testing.T) {
	registry, fake := newTestRegistry(t, "")
	for registry.Len() < 5 {
		registry.Add("")
		if got := len(registry.Snapshot()); got != registry.Len() {
			t.Fatalf("len(Snapshot()) = %d, want %d", got, registry.Len())
		}
	}
	tickSeconds(fake, 5, 1)

	registry.RemoveSelected()
	if got := len(registry.Snapshot()); got != registry.Len() {
		t.Fatalf("len(Snapshot()) after remove = %d, want %d", got, registry.Len())
	}
}

func TestRegistryClose(t *testing.T) {
	fake := clock.Fake(epoch)
	registry := New(Config{Clock: fake})
	registry.Add("")
	tickSeconds(fake, 2, 4)

	registry.Close()
	if pending := fake.PendingCount(); pending != 0 {
		t.Fatalf("PendingCount() after Close = %d, want 0", pending)
	}
	fake.Advance(10 * time.Second)
	if snapshot := registry.Snapshot(); !equalTotals(snapshot, 4, 4) {
		t.Errorf("Snapshot() after Close = %v, want 4s 4s", snapshot)
	}

	if registry.Add("") || registry.RemoveSelected() {
		t.Error("structural change accepted after Close")
	}
	registry.Close()
}

func TestRegistryLogsIgnoredCommands(t *testing.T) {
	var buffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buffer, &slog.HandlerOptions{Level: slog.LevelDebug}))
	registry := New(Config{Clock: clock.Fake(epoch), Logger: logger})
	defer registry.Close()

	registry.RemoveSelected()
	if !strings.Contains(buffer.String(), "remove ignored") {
		t.Errorf("log output missing ignored remove: %q", buffer.String())
	}
}
