// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides huff's CBOR encoding configuration.
//
// Reports and comparison results are emitted in one of three forms:
// plain text for people, JSON for scripts, and CBOR for tools that
// archive reports alongside artifacts. This package holds the shared
// CBOR modes so every command encodes identically. The encoder uses
// Core Deterministic Encoding (RFC 8949 §4.2): sorted map keys,
// smallest integer encoding, no indefinite-length items. The same
// report always produces the same bytes.
//
//	data, err := codec.Marshal(report)
//	err = codec.Unmarshal(data, &report)
//
// Types carry `json` struct tags only. fxamacker/cbor v2 falls back to
// `json` tags when `cbor` tags are absent, so one tag controls field
// naming and omitempty in both formats.
package codec
