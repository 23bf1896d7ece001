// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package stopwatch

import (
	"fmt"
	"math"
)

// Counter is an elapsed-time value in days, hours, minutes, and
// seconds. Seconds and Minutes stay in [0,60), Hours in [0,24). Days
// only increases and saturates at math.MaxUint16.
//
// The zero value is a stopwatch at 0d:0h:0m:0s.
type Counter struct {
	Days    uint16
	Hours   uint8
	Minutes uint8
	Seconds uint8
}

// Advance adds one second, carrying into minutes, hours, and days.
func (c *Counter) Advance() {
	c.Seconds++
	if c.Seconds < 60 {
		return
	}
	c.Seconds = 0
	c.Minutes++
	if c.Minutes < 60 {
		return
	}
	c.Minutes = 0
	c.Hours++
	if c.Hours < 24 {
		return
	}
	c.Hours = 0
	if c.Days < math.MaxUint16 {
		c.Days++
	}
}

// Total returns the elapsed time in whole seconds.
func (c Counter) Total() uint64 {
	return uint64(c.Seconds) +
		60*uint64(c.Minutes) +
		3600*uint64(c.Hours) +
		86400*uint64(c.Days)
}

// String formats the counter as "1d:2h:3m:4s", without zero padding.
func (c Counter) String() string {
	return fmt.Sprintf("%dd:%dh:%dm:%ds", c.Days, c.Hours, c.Minutes, c.Seconds)
}
