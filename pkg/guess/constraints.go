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
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	// WordLength is the number of letters in every puzzle word.
	WordLength = 5

	// Wildcard marks an unknown position in a pattern.
	Wildcard byte = '*'
)

// constraintValidate is the validator instance for constraint input.
var constraintValidate = validator.New()

// Constraints is the knowledge accumulated from prior guesses.
//
// # Fields
//
//   - Pattern: confirmed letters by position, Wildcard where unknown.
//     Only the first WordLength bytes are consulted.
//   - Included: letters known to occur somewhere in the answer.
//   - Excluded: letters known not to occur anywhere in the answer.
//   - ExcludedAt: letters known not to occur at a specific position.
//
// The zero value matches every word. Cross-consistency is not checked:
// a letter that is both Included and Excluded simply filters out every word.
type Constraints struct {
	Pattern    string
	Included   LetterSet
	Excluded   LetterSet
	ExcludedAt [WordLength]LetterSet
}

// ConstraintInput is the raw, string-typed form of Constraints as collected
// from the command line.
type ConstraintInput struct {
	// CurrentWord is the pattern, e.g. "a**le".
	CurrentWord string `validate:"len=5"`

	// LettersInWord are letters that must each occur in the answer.
	LettersInWord string

	// LettersNotInWord are letters that must not occur in the answer.
	LettersNotInWord string

	// LettersNotAt holds, per position, letters that must not occur there.
	LettersNotAt [WordLength]string
}

// NewConstraints validates input and converts it to Constraints.
//
// # Description
//
// The current word must be exactly WordLength characters long. No other
// field is validated: letter strings may be empty, repeat letters, or
// contradict each other.
//
// # Inputs
//
//   - in: Raw constraint strings.
//
// # Outputs
//
//   - Constraints: Ready for Filter.
//   - error: *InputLengthError (wrapping ErrInvalidInputLength) when the
//     current word has the wrong length.
//
// # Examples
//
//	c, err := NewConstraints(ConstraintInput{
//	    CurrentWord:      "a***e",
//	    LettersInWord:    "l",
//	    LettersNotInWord: "st",
//	})
func NewConstraints(in ConstraintInput) (Constraints, error) {
	if err := constraintValidate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return Constraints{}, &InputLengthError{Got: utf8.RuneCountInString(in.CurrentWord)}
		}
		return Constraints{}, fmt.Errorf("validate constraints: %w", err)
	}

	c := Constraints{
		Pattern:  in.CurrentWord,
		Included: NewLetterSet(in.LettersInWord),
		Excluded: NewLetterSet(in.LettersNotInWord),
	}
	for i, letters := range in.LettersNotAt {
		c.ExcludedAt[i] = NewLetterSet(letters)
	}
	return c, nil
}

// String renders the constraints for logs, one clause per known fact.
func (c Constraints) String() string {
	var s strings.Builder
	fmt.Fprintf(&s, "pattern=%q", c.Pattern)
	if !c.Included.Empty() {
		fmt.Fprintf(&s, " in=%s", c.Included)
	}
	if !c.Excluded.Empty() {
		fmt.Fprintf(&s, " out=%s", c.Excluded)
	}
	for i, set := range c.ExcludedAt {
		if !set.Empty() {
			fmt.Fprintf(&s, " not%d=%s", i+1, set)
		}
	}
	return s.String()
}
