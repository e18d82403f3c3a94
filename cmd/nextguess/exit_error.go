// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"errors"
	"fmt"
)

// Process exit codes.
const (
	// ExitOK means a guess (or an empty line) was printed.
	ExitOK = 0

	// ExitFailure covers a bad current word and every fatal runtime error.
	ExitFailure = 1

	// ExitUsage means cobra rejected the arguments or flags.
	ExitUsage = 2
)

// ExitError carries the process exit code for a failed invocation.
//
// # Description
//
// Returned from the command's RunE so main can pick the exit code
// without inspecting error strings. Implements error and supports
// unwrapping.
//
// # Example
//
//	err := NewExitError(ExitFailure, "load word list", loadErr)
//	fmt.Println(err.Error()) // "load word list: open words.txt: no such file"
//
//	var exitErr *ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Op names the step that failed (may be empty).
	Op string

	// Wrapped is the underlying error.
	Wrapped error
}

// Error returns "op: cause", or just the cause when Op is empty.
func (e *ExitError) Error() string {
	switch {
	case e.Op != "" && e.Wrapped != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Wrapped)
	case e.Wrapped != nil:
		return e.Wrapped.Error()
	case e.Op != "":
		return fmt.Sprintf("%s (exit %d)", e.Op, e.Code)
	default:
		return fmt.Sprintf("exit %d", e.Code)
	}
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Wrapped
}

// NewExitError creates an ExitError.
func NewExitError(code int, op string, wrapped error) *ExitError {
	return &ExitError{
		Code:    code,
		Op:      op,
		Wrapped: wrapped,
	}
}

// ExitCode returns the exit code for err.
//
// nil maps to ExitOK, an *ExitError anywhere in the chain to its Code, and
// any other error (cobra argument and flag errors) to ExitUsage.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}
