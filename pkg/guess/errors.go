// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package guess

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCorpus is returned when there are no letters to weigh.
	ErrEmptyCorpus = errors.New("word corpus is empty")

	// ErrInvalidInputLength is returned when the current word is not
	// exactly WordLength characters long.
	ErrInvalidInputLength = errors.New("current word must be exactly 5 characters")
)

// InputLengthError reports a current word of the wrong length.
//
// # Example
//
//	_, err := NewConstraints(ConstraintInput{CurrentWord: "abcd"})
//	var lenErr *InputLengthError
//	if errors.As(err, &lenErr) {
//	    fmt.Println(lenErr.Got) // 4
//	}
//	errors.Is(err, ErrInvalidInputLength) // true
type InputLengthError struct {
	// Got is the length of the rejected word in characters.
	Got int
}

// Error returns a formatted error message.
func (e *InputLengthError) Error() string {
	return fmt.Sprintf("%v: got %d", ErrInvalidInputLength, e.Got)
}

// Unwrap returns ErrInvalidInputLength.
func (e *InputLengthError) Unwrap() error {
	return ErrInvalidInputLength
}
