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
	"github.com/bits-and-blooms/bitset"
)

// alphabetSize covers every byte value a word may contain.
const alphabetSize = 256

// LetterSet is a set of single-byte letters.
//
// The zero value is an empty set ready to use. A LetterSet is immutable
// once built; Add returns a new set.
type LetterSet struct {
	bits *bitset.BitSet
}

// NewLetterSet returns the set of every byte in letters.
// Duplicates are collapsed; an empty string yields an empty set.
func NewLetterSet(letters string) LetterSet {
	if letters == "" {
		return LetterSet{}
	}
	bits := bitset.New(alphabetSize)
	for i := 0; i < len(letters); i++ {
		bits.Set(uint(letters[i]))
	}
	return LetterSet{bits: bits}
}

// Has reports whether c is in the set.
func (s LetterSet) Has(c byte) bool {
	if s.bits == nil {
		return false
	}
	return s.bits.Test(uint(c))
}

// Add returns a copy of s that also contains c.
func (s LetterSet) Add(c byte) LetterSet {
	var bits *bitset.BitSet
	if s.bits == nil {
		bits = bitset.New(alphabetSize)
	} else {
		bits = s.bits.Clone()
	}
	bits.Set(uint(c))
	return LetterSet{bits: bits}
}

// Len returns the number of distinct letters in the set.
func (s LetterSet) Len() int {
	if s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// Empty reports whether the set has no letters.
func (s LetterSet) Empty() bool {
	return s.bits == nil || s.bits.None()
}

// SubsetOf reports whether every letter of s is also in other.
func (s LetterSet) SubsetOf(other LetterSet) bool {
	if s.Empty() {
		return true
	}
	if other.bits == nil {
		return false
	}
	return other.bits.IsSuperSet(s.bits)
}

// Intersects reports whether s and other share at least one letter.
func (s LetterSet) Intersects(other LetterSet) bool {
	if s.Empty() || other.Empty() {
		return false
	}
	return s.bits.IntersectionCardinality(other.bits) > 0
}

// Letters returns the members in ascending byte order.
func (s LetterSet) Letters() []byte {
	if s.bits == nil {
		return nil
	}
	out := make([]byte, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, byte(i))
	}
	return out
}

// String returns the members as a string in ascending byte order.
func (s LetterSet) String() string {
	return string(s.Letters())
}

// lettersOf returns the distinct letters of word.
func lettersOf(word string) LetterSet {
	return NewLetterSet(word)
}
