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
	"fmt"
	"slices"
)

// Weights maps a letter to its frequency relative to the most common letter.
//
// Every entry is in (0, 1] and the most common letter is exactly 1.
// Letters that never occur in the corpus have no entry.
type Weights map[byte]float64

// ComputeWeights derives letter weights from a corpus.
//
// # Description
//
// Counts every letter occurrence across every word, repeats included, then
// normalizes each letter's share of the total by the largest share.
//
// # Inputs
//
//   - corpus: Words to count. Must contain at least one letter.
//
// # Outputs
//
//   - Weights: One entry per letter seen.
//   - error: ErrEmptyCorpus when corpus has no letters.
//
// # Examples
//
//	w, _ := ComputeWeights([]string{"apple", "angle", "ankle"})
//	// w['a'] == 1, w['p'] == 2.0/3, w['g'] == 1.0/3
func ComputeWeights(corpus []string) (Weights, error) {
	counts := make(map[byte]int, 26)
	total := 0
	for _, word := range corpus {
		for i := 0; i < len(word); i++ {
			counts[word[i]]++
			total++
		}
	}
	if total == 0 {
		return nil, ErrEmptyCorpus
	}

	maxCount := 0
	for _, n := range counts {
		maxCount = max(maxCount, n)
	}

	highest := float64(maxCount) / float64(total)
	weights := make(Weights, len(counts))
	for c, n := range counts {
		weights[c] = (float64(n) / float64(total)) / highest
	}
	return weights, nil
}

// Of returns the weight of c.
//
// Panics if c never occurred in the corpus: scored words always come from
// the same corpus, so a miss means the caller mixed corpora.
func (w Weights) Of(c byte) float64 {
	v, ok := w[c]
	if !ok {
		panic(fmt.Sprintf("guess: no weight for letter %q", c))
	}
	return v
}

// Letters returns the weighted letters in ascending byte order.
func (w Weights) Letters() []byte {
	out := make([]byte, 0, len(w))
	for c := range w {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}
