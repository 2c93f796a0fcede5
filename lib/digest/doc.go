// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package digest identifies uncompressed content by its BLAKE3 keyed
// hash.
//
// The huff CLI records the digest of the original bytes in compression
// reports and uses it to confirm that a round trip reproduced the input
// exactly. Hashing is keyed with a fixed domain key so a content digest
// never collides with a BLAKE3 hash computed for some other purpose
// over the same bytes.
//
// The API surface:
//
//   - [Sum] -- hashes an in-memory buffer
//   - [SumReader] and [SumFile] -- stream content through the hasher
//     with constant memory
//   - [Format] and [Parse] -- convert between a [Hash] and its 64
//     character hex form
//   - [Short] -- the 12 character prefix used in log lines and tables
//
// This package has no dependencies on other huff packages.
package digest
