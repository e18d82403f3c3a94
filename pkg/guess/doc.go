// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package guess picks the next guess for a five-letter word puzzle.
//
// # Pipeline
//
// A suggestion is computed in three pure stages:
//
//	corpus ──► ComputeWeights ──► Weights
//	corpus + Constraints ──► Filter ──► candidates
//	candidates + Weights ──► SelectBest ──► guess
//
// Weights are derived from the whole corpus, not from the filtered
// candidates, so the same letter keeps the same value no matter how far the
// constraints have narrowed the list.
//
// # Scoring
//
// A word scores the sum of its letter weights, minus (m-1)·weight for every
// letter that occurs m times. Words that test more distinct letters are
// preferred. SelectBest keeps the first word whose score strictly exceeds the
// best seen so far, so ties resolve to the earliest word in corpus order.
//
// # Thread Safety
//
// Every function in this package is free of shared state. A Suggester may be
// used from multiple goroutines.
package guess
