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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSuggester_AppleAngleAnkle(t *testing.T) {
	corpus := []string{"apple", "angle", "ankle"}
	c := mustConstraints(t, ConstraintInput{CurrentWord: "a****"})

	res, err := NewSuggester().Suggest(context.Background(), corpus, c)
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, "angle", res.Guess)
	assert.InDelta(t, 4.0, res.Score, 1e-12)
	assert.Equal(t, corpus, res.Candidates)
	assert.Equal(t, 3, res.CorpusSize)
	assert.Empty(t, res.Rejected)
	assert.Equal(t, 1.0, res.Weights['a'])
}

func TestSuggester_AllWildcardsPicksCorpusBest(t *testing.T) {
	corpus := []string{"sassy", "crane", "eerie", "mummy"}
	c := mustConstraints(t, ConstraintInput{CurrentWord: "*****"})

	res, err := NewSuggester(WithWorkers(3)).Suggest(context.Background(), corpus, c)
	require.NoError(t, err)
	assert.Equal(t, "crane", res.Guess)
	assert.Equal(t, corpus, res.Candidates)
}

func TestSuggester_ContradictionIsNoGuess(t *testing.T) {
	c := mustConstraints(t, ConstraintInput{
		CurrentWord:      "*****",
		LettersInWord:    "e",
		LettersNotInWord: "e",
	})

	res, err := NewSuggester().Suggest(context.Background(), filterCorpus, c)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, "", res.Guess)
	assert.Empty(t, res.Candidates)
	assert.Equal(t, len(filterCorpus), res.Rejected[RuleIncluded]+res.Rejected[RuleExcluded])
}

func TestSuggester_WeightsUseWholeCorpus(t *testing.T) {
	corpus := []string{"sassy", "crane", "eerie", "mummy"}
	c := mustConstraints(t, ConstraintInput{CurrentWord: "m****"})

	res, err := NewSuggester().Suggest(context.Background(), corpus, c)
	require.NoError(t, err)
	assert.Equal(t, "mummy", res.Guess)
	assert.Len(t, res.Weights, 10)
}

func TestSuggester_EmptyCorpus(t *testing.T) {
	_, err := NewSuggester().Suggest(context.Background(), nil, Constraints{})
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestSuggester_RecordsStageSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	s := NewSuggester(WithTracer(tp.Tracer("test")))
	_, err := s.Suggest(context.Background(), []string{"apple", "angle"}, Constraints{})
	require.NoError(t, err)

	var names []string
	for _, span := range recorder.Ended() {
		names = append(names, span.Name())
	}
	assert.ElementsMatch(t,
		[]string{"guess.weights", "guess.filter", "guess.select", "guess.Suggest"},
		names)
}

func TestSuggester_FailedStageSpanHasErrorStatus(t *testing.T) {
	tests := []struct {
		name      string
		ctx       func() context.Context
		corpus    []string
		wantStage string
		wantErr   error
	}{
		{
			name:      "empty corpus fails weights",
			ctx:       context.Background,
			corpus:    nil,
			wantStage: "guess.weights",
			wantErr:   ErrEmptyCorpus,
		},
		{
			name: "cancelled context fails filter",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			corpus:    []string{"apple", "angle"},
			wantStage: "guess.filter",
			wantErr:   context.Canceled,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := tracetest.NewSpanRecorder()
			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
			t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

			s := NewSuggester(WithTracer(tp.Tracer("test")))
			_, err := s.Suggest(tt.ctx(), tt.corpus, Constraints{})
			require.ErrorIs(t, err, tt.wantErr)

			statuses := map[string]codes.Code{}
			events := map[string]int{}
			for _, span := range recorder.Ended() {
				statuses[span.Name()] = span.Status().Code
				events[span.Name()] = len(span.Events())
			}
			assert.Equal(t, codes.Error, statuses[tt.wantStage])
			assert.Equal(t, 1, events[tt.wantStage], "stage span should carry the recorded error")
			assert.Equal(t, codes.Error, statuses["guess.Suggest"])
			assert.NotContains(t, statuses, "guess.select")
		})
	}
}

func TestSuggester_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSuggester().Suggest(ctx, filterCorpus, Constraints{})
	assert.ErrorIs(t, err, context.Canceled)
}
