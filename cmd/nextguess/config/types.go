// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// configValidate is the validator instance for config files.
var configValidate = validator.New()

type NextGuessConfig struct {
	// WordsFile: word list to read instead of the built-in one
	WordsFile string `yaml:"words_file,omitempty"`

	// Workers: goroutines used to filter the word list (0 or 1 = sequential)
	Workers int `yaml:"workers" validate:"gte=0,lte=256"`

	// Explain: how many ranked candidates to print to stderr (0 = none)
	Explain int `yaml:"explain" validate:"gte=0"`

	// MetricsFile: Prometheus textfile written after each run
	MetricsFile string `yaml:"metrics_file,omitempty"`

	Log LogConfig `yaml:"log"`

	Telemetry TelemetryConfig `yaml:"telemetry"`
}

type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	JSON  bool   `yaml:"json"`
	Quiet bool   `yaml:"quiet"`         // no console logs; Dir still receives them
	Dir   string `yaml:"dir,omitempty"` // e.g. ~/.nextguess/logs
}

type TelemetryConfig struct {
	// TraceExporter is "none", "stdout" (spans on stderr) or "otlp"
	TraceExporter string `yaml:"trace_exporter" validate:"omitempty,oneof=none stdout otlp"`
	OTLPEndpoint  string `yaml:"otlp_endpoint,omitempty" validate:"omitempty,hostname_port"`
	OTLPInsecure  bool   `yaml:"otlp_insecure"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() NextGuessConfig {
	return NextGuessConfig{
		Workers: 1,
		Log: LogConfig{
			Level: "warn",
		},
		Telemetry: TelemetryConfig{
			TraceExporter: "none",
			OTLPEndpoint:  "localhost:4317",
			OTLPInsecure:  true,
		},
	}
}

// Validate checks field ranges and enumerations.
func (c NextGuessConfig) Validate() error {
	err := configValidate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
