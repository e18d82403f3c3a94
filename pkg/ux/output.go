// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux renders human-facing nextguess output.
package ux

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AleutianAI/nextguess/pkg/guess"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color palette - deep ocean teals
var (
	ColorTealBright  = lipgloss.Color("#2CD7C7") // highlights, the chosen word
	ColorTealPrimary = lipgloss.Color("#20B9B4") // headings
	ColorTealDeep    = lipgloss.Color("#16858E") // borders
	ColorSlate       = lipgloss.Color("#2C4A54") // muted text
	ColorWarning     = lipgloss.Color("#F4D03F") // no-guess notice
)

// Mode selects how output is rendered.
type Mode int

const (
	// ModeMachine writes tab-separated plain text.
	ModeMachine Mode = iota

	// ModeStyled writes colored, aligned text for terminals.
	ModeStyled
)

// DetectMode returns ModeStyled when w is a terminal, ModeMachine otherwise.
func DetectMode(w io.Writer) Mode {
	f, ok := w.(*os.File)
	if !ok {
		return ModeMachine
	}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return ModeStyled
	}
	return ModeMachine
}

// styles are bound to one writer's renderer so color detection follows
// that writer rather than stdout.
type styles struct {
	title     lipgloss.Style
	muted     lipgloss.Style
	highlight lipgloss.Style
	warning   lipgloss.Style
	box       lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:     r.NewStyle().Bold(true).Foreground(ColorTealPrimary),
		muted:     r.NewStyle().Foreground(ColorSlate),
		highlight: r.NewStyle().Bold(true).Foreground(ColorTealBright),
		warning:   r.NewStyle().Foreground(ColorWarning),
		box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorTealDeep).
			Padding(0, 1),
	}
}

// RenderRanking writes ranked candidates followed by the candidate count.
//
// # Description
//
// In ModeMachine each entry is "rank<TAB>word<TAB>score" and the last line
// is "candidates<TAB>N". In ModeStyled the same data is drawn in a box with
// the first entry highlighted.
//
// # Inputs
//
//   - w: Destination, normally stderr.
//   - ranked: Output of guess.Rank, best first.
//   - total: Number of candidates before truncation to len(ranked).
//   - mode: Rendering mode, usually DetectMode(w).
func RenderRanking(w io.Writer, ranked []guess.Scored, total int, mode Mode) error {
	if mode == ModeMachine {
		for i, s := range ranked {
			if _, err := fmt.Fprintf(w, "%d\t%s\t%.4f\n", i+1, s.Word, s.Score); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "candidates\t%d\n", total)
		return err
	}

	st := newStyles(w)
	if len(ranked) == 0 {
		_, err := fmt.Fprintln(w, st.warning.Render("no candidate satisfies the constraints"))
		return err
	}

	var b strings.Builder
	b.WriteString(st.title.Render("Top candidates"))
	for i, s := range ranked {
		word := s.Word
		if i == 0 {
			word = st.highlight.Render(word)
		}
		fmt.Fprintf(&b, "\n%2d  %s  %s", i+1, word, st.muted.Render(fmt.Sprintf("%.4f", s.Score)))
	}
	fmt.Fprintf(&b, "\n%s", st.muted.Render(fmt.Sprintf("%d candidates", total)))

	_, err := fmt.Fprintln(w, st.box.Render(b.String()))
	return err
}
