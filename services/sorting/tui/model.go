// Copyright (C) 2025 Algoscope Authors (maintainers@algoscope.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package tui implements the interactive sorting visualizer.
//
// # Description
//
// The model holds one run result at a time and a step cursor into its
// log. Every frame replays the cursor's prefix of the step log against
// the run's input and draws the reconstructed sequence as a bar chart, so
// scrubbing backward and forward never re-runs the algorithm.
//
// # Thread Safety
//
// The model is driven solely by the bubbletea event loop. Do not touch
// its state from other goroutines.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/algoscope/algoscope/services/sorting"
)

const (
	headerHeight = 2
	footerHeight = 3
	minGraphSize = 4
	jumpStride   = 10
)

// Config seeds the visualizer.
type Config struct {
	// Algorithm is the display name of the initially selected sort.
	Algorithm string

	// InputLen is the generated sequence length.
	InputLen int

	// Seed drives the input shuffle.
	Seed uint64
}

// Model is the bubbletea model for the visualizer.
type Model struct {
	algs     []sorting.Algorithm[uint32]
	algIndex int
	inputLen int
	seed     uint64

	input  []uint32
	result sorting.RunResult[uint32]

	// cursor is the replay prefix length: 0 shows the input,
	// len(result.Steps) shows the sorted output. The model clamps it
	// before it ever reaches Replay.
	cursor int

	scrub  progress.Model
	width  int
	height int
	ready  bool

	quitting bool
}

// NewModel builds a visualizer for the given configuration. An unknown
// algorithm name falls back to the first algorithm in the set.
func NewModel(cfg Config) Model {
	algs := sorting.Algorithms[uint32]()
	algIndex := 0
	for i, alg := range algs {
		if alg.Name == cfg.Algorithm {
			algIndex = i
			break
		}
	}

	m := Model{
		algs:     algs,
		algIndex: algIndex,
		inputLen: cfg.InputLen,
		seed:     cfg.Seed,
		scrub:    progress.New(progress.WithDefaultGradient()),
	}
	m.reshuffle()
	return m
}

// reshuffle regenerates the input from the current seed and re-sorts.
func (m *Model) reshuffle() {
	m.input = sorting.KnuthShuffle(sorting.GenSequence(m.inputLen), sorting.NewRand(m.seed))
	m.resort()
}

// resort re-runs the selected algorithm over the current input and moves
// the cursor to the sorted end of the new log.
func (m *Model) resort() {
	m.result = sorting.Run(context.Background(), m.algs[m.algIndex], m.input)
	m.cursor = len(m.result.Steps)
}

func (m *Model) clampCursor() {
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > len(m.result.Steps) {
		m.cursor = len(m.result.Steps)
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.scrub.Width = max(msg.Width-4, minGraphSize)
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "Q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "left", "h":
			m.cursor--
		case "right", "l":
			m.cursor++
		case "pgup", "ctrl+u":
			m.cursor -= jumpStride
		case "pgdown", "ctrl+d":
			m.cursor += jumpStride
		case "g", "home":
			m.cursor = 0
		case "G", "end":
			m.cursor = len(m.result.Steps)

		case "a", "tab":
			m.algIndex = (m.algIndex + 1) % len(m.algs)
			m.resort()
		case "A", "shift+tab":
			m.algIndex = (m.algIndex + len(m.algs) - 1) % len(m.algs)
			m.resort()

		case "r":
			m.seed++
			m.reshuffle()
		}
		m.clampCursor()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading...\n"
	}

	state, err := sorting.Replay(m.result.Input, m.result.Steps, m.cursor)
	if err != nil {
		// Unreachable with a clamped cursor over a log we recorded.
		return errorStyle.Render(fmt.Sprintf("replay failed: %v", err)) + "\n"
	}

	graphHeight := max(m.height-headerHeight-footerHeight, minGraphSize)
	graphWidth := max(m.width, minGraphSize)

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(renderBars(state, graphWidth, graphHeight, m.hotPositions()))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.algs[m.algIndex].Name))

	duration := "untimed"
	if m.result.Duration != nil {
		duration = m.result.Duration.String()
	}
	b.WriteString(statsStyle.Render(fmt.Sprintf(
		"  %d elements  step %d/%d  %s",
		len(m.result.Input), m.cursor, len(m.result.Steps), duration,
	)))
	return b.String()
}

func (m Model) renderFooter() string {
	var ratio float64
	if n := len(m.result.Steps); n > 0 {
		ratio = float64(m.cursor) / float64(n)
	}

	keys := []string{
		"[←→] Step", "[PgUp/PgDn] Jump", "[g/G] Ends",
		"[A/Tab] Algorithm", "[R] Reshuffle", "[Q] Quit",
	}
	return m.scrub.ViewAs(ratio) + "\n" + footerStyle.Render(strings.Join(keys, "  "))
}

// hotPositions returns the indices mutated or observed by the step the
// cursor most recently applied, for highlighting.
func (m Model) hotPositions() map[int]bool {
	if m.cursor == 0 || m.cursor > len(m.result.Steps) {
		return nil
	}
	hot := make(map[int]bool)
	for _, c := range m.result.Steps[m.cursor-1] {
		hot[c.I] = true
		if c.Kind != sorting.CommandWrite {
			hot[c.J] = true
		}
	}
	return hot
}

// Run starts the visualizer in the alternate screen and blocks until the
// user quits.
func Run(cfg Config) error {
	_, err := tea.NewProgram(NewModel(cfg), tea.WithAltScreen()).Run()
	return err
}
