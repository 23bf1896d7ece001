// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers.
//
// [RequireClosed] and [RequireReceive] wrap the select-with-timeout
// safety valve so a goroutine that never finishes fails the test
// instead of hanging it. They are the only place tests wait on real
// wall-clock timeouts; everything else drives time with a fake clock.
//
// All helpers call t.Fatalf on failure.
package testutil
