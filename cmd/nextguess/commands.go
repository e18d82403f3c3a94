// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AleutianAI/nextguess/cmd/nextguess/config"
	"github.com/AleutianAI/nextguess/cmd/nextguess/internal/metrics"
	"github.com/AleutianAI/nextguess/cmd/nextguess/internal/telemetry"
	"github.com/AleutianAI/nextguess/pkg/guess"
	"github.com/AleutianAI/nextguess/pkg/logging"
	"github.com/AleutianAI/nextguess/pkg/ux"
	"github.com/AleutianAI/nextguess/pkg/wordlist"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// suggestOptions holds the root command's flag values.
type suggestOptions struct {
	lettersInWord    string
	lettersNotInWord string
	lettersNotAt     [guess.WordLength]string

	configPath    string
	wordsFile     string
	explain       int
	workers       int
	logLevel      string
	logJSON       bool
	logQuiet      bool
	metricsFile   string
	traceExporter string
}

// positionNames name the per-position exclusion flags, first to fifth.
var positionNames = [guess.WordLength]string{"first", "second", "third", "fourth", "fifth"}

// underscoreFlags lets --letters-in-word and --letters_in_word name the same flag.
func underscoreFlags(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "-", "_"))
}

// newRootCmd builds the nextguess command tree.
func newRootCmd() *cobra.Command {
	opts := &suggestOptions{}

	rootCmd := &cobra.Command{
		Use:   "nextguess CURRENT_WORD",
		Short: "Suggest the next guess for a five-letter word puzzle",
		Long: `Suggest the next guess for a five-letter word puzzle.

CURRENT_WORD is the pattern of confirmed letters, with * for every
unknown position (quote it in the shell). The remaining flags describe
what earlier guesses revealed. The suggested word is printed on stdout,
or an empty line when no word fits.`,
		Example: `  nextguess '*****'
  nextguess 'a**le' --letters_in_word p --letters_not_in_word strc
  nextguess '**a**' --letters_not_first e --explain 5`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,

		// Keep this command leaf-only: a subcommand makes cobra add "help",
		// and "completion" must stay off, or those words shadow patterns.
		Version:           version,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},

		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(cmd, args[0], opts)
		},
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")

	flags := rootCmd.Flags()
	flags.SetNormalizeFunc(underscoreFlags)
	flags.StringVar(&opts.lettersInWord, "letters_in_word", "", "All of the known letters in the word")
	flags.StringVar(&opts.lettersNotInWord, "letters_not_in_word", "", "All of the letters that are not in the word")
	for i, pos := range positionNames {
		flags.StringVar(&opts.lettersNotAt[i], "letters_not_"+pos, "",
			fmt.Sprintf("All of the letters that are not in the %s position", pos))
	}

	flags.StringVar(&opts.configPath, "config", "", "Config file (default ~/.nextguess/config.yaml if present)")
	flags.StringVar(&opts.wordsFile, "words", "", "Word list, one word per line (default: built-in list)")
	flags.IntVar(&opts.explain, "explain", 0, "Print the top N ranked candidates to stderr")
	flags.IntVar(&opts.workers, "workers", 1, "Goroutines used to filter the word list")
	flags.StringVar(&opts.logLevel, "log_level", "", "Log level: debug, info, warn, error")
	flags.BoolVar(&opts.logJSON, "log_json", false, "Write logs as JSON")
	flags.BoolVar(&opts.logQuiet, "log_quiet", false, "Suppress console logs (the log directory still receives them)")
	flags.StringVar(&opts.metricsFile, "metrics_file", "", "Write Prometheus metrics to this textfile")
	flags.StringVar(&opts.traceExporter, "trace_exporter", "", "Trace exporter: none, stdout, otlp")

	return rootCmd
}

// resolveConfig loads the config file and applies explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts *suggestOptions) (config.NextGuessConfig, error) {
	flags := cmd.Flags()
	cfg, err := config.Load(opts.configPath, flags.Changed("config"))
	if err != nil {
		return cfg, err
	}

	if flags.Changed("words") {
		cfg.WordsFile = opts.wordsFile
	}
	if flags.Changed("explain") {
		cfg.Explain = opts.explain
	}
	if flags.Changed("workers") {
		cfg.Workers = opts.workers
	}
	if flags.Changed("log_level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("log_json") {
		cfg.Log.JSON = opts.logJSON
	}
	if flags.Changed("log_quiet") {
		cfg.Log.Quiet = opts.logQuiet
	}
	if flags.Changed("metrics_file") {
		cfg.MetricsFile = opts.metricsFile
	}
	if flags.Changed("trace_exporter") {
		cfg.Telemetry.TraceExporter = opts.traceExporter
	}
	return cfg, cfg.Validate()
}

// runSuggest prints the best guess for currentWord and the flag constraints.
func runSuggest(cmd *cobra.Command, currentWord string, opts *suggestOptions) error {
	// The pattern is checked before anything else is loaded.
	constraints, err := guess.NewConstraints(guess.ConstraintInput{
		CurrentWord:      currentWord,
		LettersInWord:    opts.lettersInWord,
		LettersNotInWord: opts.lettersNotInWord,
		LettersNotAt:     opts.lettersNotAt,
	})
	if err != nil {
		return NewExitError(ExitFailure, "", err)
	}

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return NewExitError(ExitFailure, "load config", err)
	}

	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return NewExitError(ExitFailure, "load config", err)
	}
	logger := logging.New(logging.Config{
		Level:   level,
		LogDir:  cfg.Log.Dir,
		Service: "nextguess",
		JSON:    cfg.Log.JSON,
		Quiet:   cfg.Log.Quiet,
		Output:  cmd.ErrOrStderr(),
	})
	defer logger.Close()
	logger = logger.With("run_id", uuid.NewString())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	shutdown, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    "nextguess",
		ServiceVersion: version,
		TraceExporter:  cfg.Telemetry.TraceExporter,
		OTLPEndpoint:   cfg.Telemetry.OTLPEndpoint,
		OTLPInsecure:   cfg.Telemetry.OTLPInsecure,
		Writer:         cmd.ErrOrStderr(),
	})
	if err != nil {
		return NewExitError(ExitFailure, "init telemetry", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("telemetry shutdown failed", "error", err)
		}
	}()

	start := time.Now()
	words, err := loadWords(cfg.WordsFile)
	if err != nil {
		logger.Error("failed to load word list", "path", cfg.WordsFile, "error", err)
		return NewExitError(ExitFailure, "load word list", err)
	}
	logger.Debug("word list loaded", "words", len(words), "path", cfg.WordsFile)
	logger.Debug("constraints", "constraints", constraints.String())

	suggester := guess.NewSuggester(guess.WithWorkers(cfg.Workers))
	res, err := suggester.Suggest(ctx, words, constraints)
	if err != nil {
		if errors.Is(err, guess.ErrEmptyCorpus) {
			logger.Error("word list has no words", "path", cfg.WordsFile)
		}
		return NewExitError(ExitFailure, "suggest", err)
	}
	elapsed := time.Since(start)

	for _, rule := range guess.Rules {
		if n := res.Rejected[rule]; n > 0 {
			logger.Debug("words rejected", "rule", rule.String(), "count", n)
		}
	}
	logger.Info("suggestion computed",
		"guess", res.Guess,
		"found", res.Found,
		"candidates", len(res.Candidates),
		"duration_ms", elapsed.Milliseconds(),
	)

	if cfg.Explain > 0 {
		errOut := cmd.ErrOrStderr()
		ranked := guess.Rank(res.Candidates, res.Weights, cfg.Explain)
		if err := ux.RenderRanking(errOut, ranked, len(res.Candidates), ux.DetectMode(errOut)); err != nil {
			logger.Warn("failed to render ranking", "error", err)
		}
	}

	if cfg.MetricsFile != "" {
		rec := metrics.New()
		rec.Observe(res, elapsed)
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn("failed to write metrics", "path", cfg.MetricsFile, "error", err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Guess)
	return nil
}

// loadWords reads path, or returns the built-in list when path is empty.
func loadWords(path string) ([]string, error) {
	if path == "" {
		return wordlist.Default(), nil
	}
	return wordlist.LoadFile(path)
}
