// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

/*
Package metrics records Prometheus metrics for one nextguess run.

A run is a short-lived process, so nothing is served over HTTP. The
registry is written once, at exit, in the node_exporter textfile format
for collection by a textfile collector.

# Metrics Exported

  - nextguess_corpus_words: Gauge of words in the word list
  - nextguess_candidates: Gauge of words that satisfied the constraints
  - nextguess_rejected_words_total: Counter by rule (pattern, excluded, ...)
  - nextguess_guess_found: Gauge, 1 when a guess was produced
  - nextguess_guess_score: Gauge of the chosen word's score
  - nextguess_run_duration_seconds: Histogram of end-to-end run time
*/
package metrics

import (
	"fmt"
	"time"

	"github.com/AleutianAI/nextguess/pkg/guess"
	"github.com/prometheus/client_golang/prometheus"
)

// metricsNamespace is the namespace for all nextguess metrics.
const metricsNamespace = "nextguess"

// Recorder holds the metrics of one run in a private registry.
//
// # Thread Safety
//
// Safe for concurrent use; the Prometheus collectors are.
type Recorder struct {
	registry *prometheus.Registry

	corpusWords prometheus.Gauge
	candidates  prometheus.Gauge
	rejected    *prometheus.CounterVec
	found       prometheus.Gauge
	score       prometheus.Gauge
	duration    prometheus.Histogram
}

// New creates a Recorder with every collector registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		corpusWords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "corpus_words",
			Help:      "Number of words in the word list.",
		}),
		candidates: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "candidates",
			Help:      "Number of words that satisfied every constraint.",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "rejected_words_total",
			Help:      "Words rejected, by the first constraint rule they failed.",
		}, []string{"rule"}),
		found: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "guess_found",
			Help:      "1 if a guess was produced, 0 otherwise.",
		}),
		score: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "guess_score",
			Help:      "Letter-weight score of the suggested word.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "run_duration_seconds",
			Help:      "Time from word list load to suggestion.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}

	r.registry.MustRegister(r.corpusWords, r.candidates, r.rejected, r.found, r.score, r.duration)

	// Pre-create every rule label so absent rules export as zero.
	for _, rule := range guess.Rules {
		r.rejected.WithLabelValues(rule.String())
	}
	return r
}

// Observe records the outcome of one suggestion.
func (r *Recorder) Observe(res guess.Result, elapsed time.Duration) {
	r.corpusWords.Set(float64(res.CorpusSize))
	r.candidates.Set(float64(len(res.Candidates)))
	for rule, n := range res.Rejected {
		r.rejected.WithLabelValues(rule.String()).Add(float64(n))
	}
	if res.Found {
		r.found.Set(1)
	} else {
		r.found.Set(0)
	}
	r.score.Set(res.Score)
	r.duration.Observe(elapsed.Seconds())
}

// Registry returns the registry holding the run's collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes every metric to path in the Prometheus text format.
// The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
