// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package huffman implements static Huffman compression of byte
// streams and the self-describing container format that carries the
// code table alongside the packed payload.
//
// The package is organized as a pipeline, each stage usable on its own:
//
//   - Frequencies: [CountFrequencies] scans the input once and returns a
//     sparse [FrequencyTable] keyed by byte value.
//
//   - Tree construction: [BuildTree] merges the two lightest subtrees
//     from a min-heap until one root remains. Equal weights are ordered
//     by the smallest byte value each subtree contains, so the tree (and
//     therefore every compressed artifact) is bit-exact reproducible for
//     a given input.
//
//   - Code extraction: [ExtractCodes] walks the tree depth-first (left
//     = 0, right = 1) and records one [Code] per leaf in a [CodeTable].
//     A single-symbol alphabet receives the one-bit code "0" so the
//     packed stream still records how many symbols it holds.
//
//   - Packing: [Pack] concatenates codes in input order, most
//     significant bit first within each byte, and zero-pads the final
//     byte. [Unpack] walks a tree bit by bit to reverse it.
//
//   - Container: an [Artifact] serializes as a 4-byte big-endian header
//     length, a 1-byte padding count, the header (one entry per symbol:
//     value byte, code length byte, then one ASCII '0' or '1' per code
//     bit), and finally the packed payload. The decoder never sees the
//     tree: [TreeFromCodes] rebuilds it by inserting each code as a
//     root-to-leaf path.
//
// [Compress] and [Decompress] run the whole pipeline over byte slices.
// Both are all-or-nothing: a failure never returns partial output.
// Decode failures are [*FormatError] values wrapping one of the
// sentinel kinds ([ErrMalformedHeader], [ErrConflictingCode],
// [ErrTruncatedPayload], [ErrCorruptPayload]) together with the byte
// offset at which the problem was found.
//
// [NewReport] summarizes a code table for humans: per-symbol frequency
// and code, and the average codeword length in bits per symbol.
package huffman
