// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for huff packages.
//
// [WriteFile] and [ReadFile] wrap file setup and inspection so tests
// read as a sequence of steps rather than error plumbing. [UniqueID]
// generates monotonically increasing identifiers for file names that
// must not collide within a shared temporary directory.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no huff-internal dependencies.
package testutil
