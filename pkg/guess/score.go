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
	"cmp"
	"slices"
)

// Scored is a candidate paired with its score.
type Scored struct {
	// Word is the candidate.
	Word string

	// Score is the value returned by Score.
	Score float64

	// Index is the word's position in the candidate list.
	Index int
}

// Score returns the letter-weight score of word.
//
// # Description
//
// Sums the weight of every letter position, then subtracts
// (m·weight − weight) for each distinct letter occurring m times. A word
// of distinct letters scores exactly the sum of its weights; a doubled
// letter costs its weight once.
//
// # Inputs
//
//   - word: Word to score. Every letter must have a weight.
//   - w: Weights computed from the corpus word came from.
//
// # Outputs
//
//   - float64: The score.
func Score(word string, w Weights) float64 {
	var score float64
	freq := make(map[byte]int, len(word))
	order := make([]byte, 0, len(word))
	for i := 0; i < len(word); i++ {
		c := word[i]
		score += w.Of(c)
		if freq[c] == 0 {
			order = append(order, c)
		}
		freq[c]++
	}

	var offset float64
	for _, c := range order {
		wc := w.Of(c)
		offset += float64(freq[c])*wc - wc
	}
	return score - offset
}

// SelectBest returns the highest-scoring candidate.
//
// Candidates are scanned in order and a word replaces the current best only
// when its score is strictly greater, starting from zero, so the earliest of
// tied words wins. Returns false when candidates is empty or no word scores
// above zero.
func SelectBest(candidates []string, w Weights) (Scored, bool) {
	best := Scored{Index: -1}
	for i, word := range candidates {
		if s := Score(word, w); s > best.Score {
			best = Scored{Word: word, Score: s, Index: i}
		}
	}
	if best.Index < 0 {
		return Scored{}, false
	}
	return best, true
}

// Rank returns the n best candidates, highest score first.
//
// Ties keep candidate order, so whenever SelectBest finds a word, Rank's
// first entry is that word. n <= 0 ranks every candidate.
func Rank(candidates []string, w Weights, n int) []Scored {
	ranked := make([]Scored, len(candidates))
	for i, word := range candidates {
		ranked[i] = Scored{Word: word, Score: Score(word, w), Index: i}
	}
	slices.SortStableFunc(ranked, func(a, b Scored) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
