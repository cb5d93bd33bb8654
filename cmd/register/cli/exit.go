// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"io"
)

// ExitError signals a non-zero exit code without printing an extra
// error message. The command is expected to have already written its
// own output.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit code. main checks for this interface on
// returned errors to distinguish a handled non-zero exit from an
// unexpected error to display.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// Fail writes message to w on its own line and returns an ExitError
// with code 1.
func Fail(w io.Writer, message string) error {
	fmt.Fprintln(w, message)
	return &ExitError{Code: 1}
}
