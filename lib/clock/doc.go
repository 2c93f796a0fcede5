// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source so that timing
// measurements are testable.
//
// Code that measures elapsed time accepts a Clock instead of calling
// time.Now directly. In production, Real() provides the standard
// library behavior. In tests, Fake() provides a clock that moves only
// when Advance is called, and Stepping() provides one that moves by a
// fixed step on every reading:
//
//	c := clock.Stepping(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), time.Millisecond)
//	start := c.Now()
//	// ... work ...
//	elapsed := clock.Since(c, start) // exactly 1ms
package clock
