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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Score Tests
// =============================================================================

func TestScore_DistinctLettersIsPlainSum(t *testing.T) {
	w, err := ComputeWeights(filterCorpus)
	require.NoError(t, err)

	for _, word := range []string{"crane", "slate", "angle", "alert"} {
		var sum float64
		for i := 0; i < len(word); i++ {
			sum += w[word[i]]
		}
		assert.InDelta(t, sum, Score(word, w), 1e-12, word)
	}
}

func TestScore_DoubledLetterLosesOneWeight(t *testing.T) {
	w, err := ComputeWeights(filterCorpus)
	require.NoError(t, err)

	base := 0.0
	for _, c := range []byte("apple") {
		base += w[c]
	}
	assert.InDelta(t, base-w['p'], Score("apple", w), 1e-12)
}

func TestScore_TripledLetterLosesTwoWeights(t *testing.T) {
	w := Weights{'s': 0.5, 'a': 1, 'y': 0.25}
	// base = 3*0.5 + 1 + 0.25, minus (3*0.5 - 0.5)
	assert.InDelta(t, 1.75, Score("sassy", w), 1e-12)
}

func TestScore_AppleAngleAnkle(t *testing.T) {
	w, err := ComputeWeights([]string{"apple", "angle", "ankle"})
	require.NoError(t, err)

	assert.InDelta(t, 11.0/3, Score("apple", w), 1e-12)
	assert.InDelta(t, 4.0, Score("angle", w), 1e-12)
	assert.InDelta(t, 4.0, Score("ankle", w), 1e-12)
}

// =============================================================================
// SelectBest Tests
// =============================================================================

func TestSelectBest_AppleAngleAnkle(t *testing.T) {
	corpus := []string{"apple", "angle", "ankle"}
	w, err := ComputeWeights(corpus)
	require.NoError(t, err)

	best, ok := SelectBest(corpus, w)
	require.True(t, ok)
	assert.Equal(t, "angle", best.Word)
	assert.Equal(t, 1, best.Index)
	assert.InDelta(t, 4.0, best.Score, 1e-12)
}

func TestSelectBest_TiesKeepEarliest(t *testing.T) {
	w, err := ComputeWeights([]string{"abcde", "edcba"})
	require.NoError(t, err)

	best, ok := SelectBest([]string{"abcde", "edcba"}, w)
	require.True(t, ok)
	assert.Equal(t, "abcde", best.Word)

	best, ok = SelectBest([]string{"edcba", "abcde"}, w)
	require.True(t, ok)
	assert.Equal(t, "edcba", best.Word)
}

func TestSelectBest_Empty(t *testing.T) {
	best, ok := SelectBest(nil, Weights{'a': 1})
	assert.False(t, ok)
	assert.Equal(t, Scored{}, best)
}

func TestSelectBest_WholeCorpus(t *testing.T) {
	corpus := []string{"sassy", "crane", "eerie", "mummy"}
	w, err := ComputeWeights(corpus)
	require.NoError(t, err)

	// e=1, s=m=0.75, a=y=r=0.5, c=n=i=u=0.25
	best, ok := SelectBest(corpus, w)
	require.True(t, ok)
	assert.Equal(t, "crane", best.Word)
	assert.InDelta(t, 2.5, best.Score, 1e-12)
}

// =============================================================================
// Rank Tests
// =============================================================================

func TestRank_OrdersByScoreThenInput(t *testing.T) {
	corpus := []string{"apple", "angle", "ankle"}
	w, err := ComputeWeights(corpus)
	require.NoError(t, err)

	ranked := Rank(corpus, w, 0)
	require.Len(t, ranked, 3)
	assert.Equal(t, "angle", ranked[0].Word)
	assert.Equal(t, "ankle", ranked[1].Word)
	assert.Equal(t, "apple", ranked[2].Word)
	assert.Equal(t, 0, ranked[2].Index)
}

func TestRank_AgreesWithSelectBest(t *testing.T) {
	w, err := ComputeWeights(filterCorpus)
	require.NoError(t, err)

	best, ok := SelectBest(filterCorpus, w)
	require.True(t, ok)

	ranked := Rank(filterCorpus, w, 3)
	require.Len(t, ranked, 3)
	assert.Equal(t, best, ranked[0])
	assert.GreaterOrEqual(t, ranked[0].Score, ranked[1].Score)
	assert.GreaterOrEqual(t, ranked[1].Score, ranked[2].Score)
}
