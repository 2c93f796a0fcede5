// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ErrorCategory classifies command errors so that scripts can tell bad
// input from bad data from bugs without parsing message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input:
	// wrong argument count, unknown flags, unparseable values. The
	// caller should fix the command line and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a named input file does not exist.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryConflict indicates the output already exists and
	// overwriting was not requested.
	CategoryConflict ErrorCategory = "conflict"

	// CategoryCorrupt indicates an input artifact failed to decode:
	// malformed header, conflicting codes, truncated or corrupt payload.
	CategoryCorrupt ErrorCategory = "corrupt"

	// CategoryInternal indicates an unexpected error: bugs, I/O
	// failures, encode failures on data the program produced.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error returned by CLI commands. It wraps
// an inner error, preserving the full chain for errors.Is and errors.As.
// Use the category-specific constructors rather than constructing
// ToolError directly.
type ToolError struct {
	// Category classifies the error for programmatic handling.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error

	// Hint is an optional next step printed after the message.
	Hint string
}

// Error returns the underlying message, followed by the hint when one
// is set.
func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

// Unwrap returns the underlying error.
func (e *ToolError) Unwrap() error { return e.Err }

// WithHint sets the hint and returns the receiver for chaining.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a named input does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Conflict creates a conflict error: the output already exists.
func Conflict(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryConflict, Err: fmt.Errorf(format, args...)}
}

// Corrupt creates a corrupt-input error: an artifact failed to decode.
func Corrupt(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryCorrupt, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}
