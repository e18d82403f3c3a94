// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package wordlist reads puzzle word lists.
//
// A word list is plain text with one word per line. Only the first five
// bytes of each line are used, so lists carrying extra columns (such as a
// frequency after the word) load unchanged.
package wordlist

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

// wordLength is the number of bytes kept from each line.
const wordLength = 5

//go:embed words.txt
var defaultWordsData string

// Default returns the word list compiled into the binary.
func Default() []string {
	words, err := Load(strings.NewReader(defaultWordsData))
	if err != nil {
		// strings.Reader never fails
		panic(err)
	}
	return words
}

// Load reads a word list from r.
//
// # Description
//
// Each line contributes its first five bytes. Trailing carriage returns
// are dropped first; lines shorter than five bytes are skipped.
//
// # Inputs
//
//   - r: Source of newline-separated words.
//
// # Outputs
//
//   - []string: Words in file order. Empty (not nil) when nothing qualified.
//   - error: Non-nil if reading r failed.
func Load(r io.Reader) ([]string, error) {
	words := make([]string, 0, 4096)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(line) < wordLength {
			continue
		}
		words = append(words, line[:wordLength])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading word list: %w", err)
	}
	return words, nil
}

// LoadFile reads the word list at path.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	words, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return words, nil
}
