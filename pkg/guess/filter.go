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

	"golang.org/x/sync/errgroup"
)

// Rule identifies the constraint a word failed.
type Rule int

const (
	// RuleNone means the word satisfies every constraint.
	RuleNone Rule = iota

	// RuleLength means the word is not WordLength bytes long.
	RuleLength

	// RuleIncluded means a required letter is missing from the word.
	RuleIncluded

	// RulePattern means a confirmed letter is not at its position.
	RulePattern

	// RuleExcluded means the word contains an excluded letter.
	RuleExcluded

	// RulePosition means a letter sits at a position it is excluded from.
	RulePosition
)

// Rules lists every rejection rule in evaluation order.
var Rules = []Rule{RuleLength, RuleIncluded, RulePattern, RuleExcluded, RulePosition}

// String returns the rule name used in logs and metric labels.
func (r Rule) String() string {
	switch r {
	case RuleNone:
		return "none"
	case RuleLength:
		return "length"
	case RuleIncluded:
		return "included"
	case RulePattern:
		return "pattern"
	case RuleExcluded:
		return "excluded"
	case RulePosition:
		return "position"
	default:
		return "unknown"
	}
}

// Check returns the first rule word fails, or RuleNone.
//
// The four constraint rules are independent; the order only decides which
// rule is reported for a word failing several.
func Check(word string, c Constraints) Rule {
	if len(word) != WordLength {
		return RuleLength
	}

	if !c.Included.Empty() && !c.Included.SubsetOf(lettersOf(word)) {
		return RuleIncluded
	}

	for i := 0; i < WordLength && i < len(c.Pattern); i++ {
		if p := c.Pattern[i]; p != Wildcard && p != word[i] {
			return RulePattern
		}
	}

	for i := 0; i < WordLength; i++ {
		if c.Excluded.Has(word[i]) {
			return RuleExcluded
		}
	}

	for i := 0; i < WordLength; i++ {
		if c.ExcludedAt[i].Has(word[i]) {
			return RulePosition
		}
	}

	return RuleNone
}

// Satisfies reports whether word meets every constraint.
func Satisfies(word string, c Constraints) bool {
	return Check(word, c) == RuleNone
}

// Filter returns the words of corpus that satisfy c, in corpus order.
// The corpus is not modified. The result may be empty.
func Filter(corpus []string, c Constraints) []string {
	return FilterReport(corpus, c).Candidates
}

// Report is the outcome of filtering a corpus.
type Report struct {
	// Candidates are the qualifying words in corpus order.
	Candidates []string

	// Rejected counts rejected words by the first rule they failed.
	Rejected map[Rule]int
}

// FilterReport filters corpus like Filter and also counts rejections.
func FilterReport(corpus []string, c Constraints) Report {
	r := Report{
		Candidates: make([]string, 0),
		Rejected:   make(map[Rule]int),
	}
	for _, word := range corpus {
		if rule := Check(word, c); rule != RuleNone {
			r.Rejected[rule]++
			continue
		}
		r.Candidates = append(r.Candidates, word)
	}
	return r
}

// merge appends other to r, keeping r's words first.
func (r *Report) merge(other Report) {
	r.Candidates = append(r.Candidates, other.Candidates...)
	for rule, n := range other.Rejected {
		r.Rejected[rule] += n
	}
}

// FilterConcurrent filters corpus across workers goroutines.
//
// # Description
//
// Splits corpus into at most workers contiguous chunks, filters each chunk
// in its own goroutine, and joins the chunk results in chunk order. The
// result is identical to FilterReport for any worker count.
//
// # Inputs
//
//   - ctx: Cancelling ctx abandons chunks that have not started.
//   - corpus: Words to filter.
//   - c: Constraints to apply.
//   - workers: Goroutine count. Values below 2 filter on the caller's goroutine.
//
// # Outputs
//
//   - Report: Candidates and rejection counts.
//   - error: ctx.Err() if ctx was cancelled.
func FilterConcurrent(ctx context.Context, corpus []string, c Constraints, workers int) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	if workers < 2 || len(corpus) < 2 {
		return FilterReport(corpus, c), nil
	}

	workers = min(workers, len(corpus))
	chunk := (len(corpus) + workers - 1) / workers
	parts := make([]Report, workers)

	g, gCtx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		lo := i * chunk
		if lo >= len(corpus) {
			break
		}
		hi := min(lo+chunk, len(corpus))
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			parts[i] = FilterReport(corpus[lo:hi], c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	out := Report{
		Candidates: make([]string, 0),
		Rejected:   make(map[Rule]int),
	}
	for _, part := range parts {
		out.merge(part)
	}
	return out, nil
}
