// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package compare measures the static Huffman coder against the
// general-purpose codecs that ship with the artifact tooling: LZ4
// block compression, zstd, and DEFLATE.
//
// Every codec is run over the same input, timed through a
// [clock.Clock], and round-tripped so the result records whether it
// reproduced the input exactly. A codec that cannot shrink the input
// is reported as incompressible rather than as a failure.
package compare
