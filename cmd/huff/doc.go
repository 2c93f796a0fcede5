// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Huff compresses files with a static Huffman code and decompresses the
// self-describing containers it produces. Beyond the two core
// operations it can print the code table of an artifact (inspect),
// draw the code tree (tree), benchmark the coder against LZ4, zstd and
// DEFLATE (compare), and check that a round trip reproduces the input
// (verify).
package main
