// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package wraps exactly one
// of these, so callers classify failures with errors.Is.
var (
	// ErrMalformedHeader indicates the fixed prefix or the code table
	// could not be parsed: the artifact is shorter than its declared
	// header, an entry runs past the header, a code length is zero, a
	// code character is not '0' or '1', or the padding count exceeds 7.
	ErrMalformedHeader = errors.New("malformed header")

	// ErrConflictingCode indicates two header entries claim the same
	// byte value or the same tree position (one code equals or is a
	// prefix of another). Produced by corrupted files or non-compliant
	// writers.
	ErrConflictingCode = errors.New("duplicate or conflicting code")

	// ErrUnknownSymbol indicates a byte had no code during packing.
	// Tables derived from the same input always cover every byte, so
	// this signals a bug in the caller, not bad user data.
	ErrUnknownSymbol = errors.New("unknown symbol during encode")

	// ErrTruncatedPayload indicates the payload ended before the bit
	// walk reached a leaf, or the final byte does not look like the
	// final byte the writer produced.
	ErrTruncatedPayload = errors.New("truncated payload")

	// ErrCorruptPayload indicates a payload bit selected a branch that
	// does not exist in the reconstructed tree. Only possible when the
	// code table is incomplete (the single-symbol case leaves the root's
	// right branch empty).
	ErrCorruptPayload = errors.New("corrupt payload")
)

// FormatError describes a decode failure at a specific position in an
// artifact. Offset is the byte offset from the start of the artifact
// (not of the payload), so it can be matched against a hex dump.
type FormatError struct {
	// Kind is one of the package's sentinel errors.
	Kind error

	// Offset is the byte offset where the problem was detected, or -1
	// when the failure is not tied to a single position.
	Offset int64

	// Detail describes what was expected and what was found.
	Detail string
}

func (e *FormatError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
	}
	return fmt.Sprintf("%v at offset %d: %s", e.Kind, e.Offset, e.Detail)
}

// Unwrap returns the error kind so errors.Is matches the sentinels.
func (e *FormatError) Unwrap() error { return e.Kind }

func formatError(kind error, offset int64, format string, args ...any) *FormatError {
	return &FormatError{Kind: kind, Offset: offset, Detail: fmt.Sprintf(format, args...)}
}
