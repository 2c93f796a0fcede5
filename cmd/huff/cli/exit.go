// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
)

// ExitError signals a non-zero exit code without printing an extra
// error message. The command is expected to have already written its
// own output. `huff verify` uses it to report a mismatch.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// Exit codes used by the huff binary.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitCodeFor maps an error returned by [Command.Execute] to the process
// exit code and reports whether the error message should be printed.
// [ExitError] is silent; validation errors exit with [ExitUsage];
// everything else exits with [ExitFailure].
func ExitCodeFor(err error) (code int, printMessage bool) {
	if err == nil {
		return 0, false
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, false
	}
	var toolErr *ToolError
	if errors.As(err, &toolErr) && toolErr.Category == CategoryValidation {
		return ExitUsage, true
	}
	return ExitFailure, true
}
