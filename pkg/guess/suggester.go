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
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/AleutianAI/nextguess/pkg/guess"

// Suggester runs the weights, filter and select stages for one corpus.
//
// # Description
//
// Suggester holds only options; it keeps no state between calls and
// recomputes weights on every Suggest.
//
// # Thread Safety
//
// Safe for concurrent use.
type Suggester struct {
	workers int
	tracer  trace.Tracer
}

// Option configures a Suggester.
type Option func(*Suggester)

// WithWorkers sets the goroutine count used for filtering.
// Values below 2 filter sequentially.
func WithWorkers(n int) Option {
	return func(s *Suggester) {
		s.workers = n
	}
}

// WithTracer sets the tracer used for stage spans.
// Defaults to the global otel tracer provider.
func WithTracer(t trace.Tracer) Option {
	return func(s *Suggester) {
		if t != nil {
			s.tracer = t
		}
	}
}

// NewSuggester creates a Suggester with the given options.
func NewSuggester(opts ...Option) *Suggester {
	s := &Suggester{
		workers: 1,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result is the outcome of one suggestion.
type Result struct {
	// Guess is the suggested word, empty when Found is false.
	Guess string

	// Found reports whether any candidate qualified.
	Found bool

	// Score is the score of Guess.
	Score float64

	// Candidates are every qualifying word in corpus order.
	Candidates []string

	// CorpusSize is the number of words considered.
	CorpusSize int

	// Rejected counts rejected words by the first rule they failed.
	Rejected map[Rule]int

	// Weights are the letter weights of the corpus.
	Weights Weights
}

// Suggest picks the next guess from corpus under constraints c.
//
// # Description
//
// Computes weights over the full corpus, filters the corpus with c and
// selects the best candidate. Each stage runs inside its own span.
//
// # Inputs
//
//   - ctx: Carries the parent span; cancellation stops filtering.
//   - corpus: Words to choose from.
//   - c: Constraints from prior guesses.
//
// # Outputs
//
//   - Result: Found is false when no word qualifies; that is not an error.
//   - error: ErrEmptyCorpus, or ctx.Err() if cancelled.
//
// # Examples
//
//	res, err := guess.NewSuggester().Suggest(ctx, words, c)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Guess)
func (s *Suggester) Suggest(ctx context.Context, corpus []string, c Constraints) (Result, error) {
	ctx, span := s.tracer.Start(ctx, "guess.Suggest",
		trace.WithAttributes(
			attribute.Int("guess.corpus_size", len(corpus)),
			attribute.String("guess.pattern", c.Pattern),
		),
	)
	defer span.End()

	res, err := s.suggest(ctx, corpus, c)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}
	span.SetAttributes(
		attribute.Int("guess.candidates", len(res.Candidates)),
		attribute.Bool("guess.found", res.Found),
	)
	return res, nil
}

func (s *Suggester) suggest(ctx context.Context, corpus []string, c Constraints) (Result, error) {
	_, wSpan := s.tracer.Start(ctx, "guess.weights")
	weights, err := ComputeWeights(corpus)
	wSpan.SetAttributes(attribute.Int("guess.letters", len(weights)))
	endStage(wSpan, err)
	if err != nil {
		return Result{}, fmt.Errorf("compute weights: %w", err)
	}

	fCtx, fSpan := s.tracer.Start(ctx, "guess.filter",
		trace.WithAttributes(attribute.Int("guess.workers", s.workers)))
	report, err := FilterConcurrent(fCtx, corpus, c, s.workers)
	endStage(fSpan, err)
	if err != nil {
		return Result{}, fmt.Errorf("filter candidates: %w", err)
	}

	_, sSpan := s.tracer.Start(ctx, "guess.select")
	best, found := SelectBest(report.Candidates, weights)
	sSpan.End()

	return Result{
		Guess:      best.Word,
		Found:      found,
		Score:      best.Score,
		Candidates: report.Candidates,
		CorpusSize: len(corpus),
		Rejected:   report.Rejected,
		Weights:    weights,
	}, nil
}

// endStage ends a stage span, marking it failed when err is non-nil.
func endStage(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
