// Copyright (C) 2025 Algoscope Authors (maintainers@algoscope.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/algoscope/algoscope/services/sorting"
)

func testModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(Config{Algorithm: sorting.NameBubbleSort, InputLen: 16, Seed: 3})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	return updated.(Model)
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestNewModel_StartsAtSortedEnd(t *testing.T) {
	m := NewModel(Config{Algorithm: sorting.NameInsertionSort, InputLen: 8, Seed: 1})

	if m.algs[m.algIndex].Name != sorting.NameInsertionSort {
		t.Errorf("expected insertion sort selected, got %q", m.algs[m.algIndex].Name)
	}
	if m.cursor != len(m.result.Steps) {
		t.Errorf("expected cursor at %d, got %d", len(m.result.Steps), m.cursor)
	}
}

func TestNewModel_UnknownAlgorithmFallsBack(t *testing.T) {
	m := NewModel(Config{Algorithm: "Bogo sort", InputLen: 4, Seed: 1})
	if m.algIndex != 0 {
		t.Errorf("expected fallback to first algorithm, got index %d", m.algIndex)
	}
}

func TestUpdate_CursorMovesAndClamps(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(keyMsg("home"))
	m = updated.(Model)
	if m.cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", m.cursor)
	}

	// Stepping below zero clamps.
	updated, _ = m.Update(keyMsg("left"))
	m = updated.(Model)
	if m.cursor != 0 {
		t.Errorf("expected cursor clamped at 0, got %d", m.cursor)
	}

	updated, _ = m.Update(keyMsg("right"))
	m = updated.(Model)
	if m.cursor != 1 {
		t.Errorf("expected cursor 1, got %d", m.cursor)
	}

	updated, _ = m.Update(keyMsg("end"))
	m = updated.(Model)
	if m.cursor != len(m.result.Steps) {
		t.Errorf("expected cursor at end, got %d", m.cursor)
	}

	// Stepping past the end clamps.
	updated, _ = m.Update(keyMsg("right"))
	m = updated.(Model)
	if m.cursor != len(m.result.Steps) {
		t.Errorf("expected cursor clamped at end, got %d", m.cursor)
	}
}

func TestUpdate_AlgorithmCycleResorts(t *testing.T) {
	m := testModel(t)
	before := m.algIndex

	updated, _ := m.Update(keyMsg("a"))
	m = updated.(Model)
	if m.algIndex == before {
		t.Error("expected algorithm to change")
	}
	if m.cursor != len(m.result.Steps) {
		t.Errorf("expected cursor reset to end of new log, got %d", m.cursor)
	}
}

func TestUpdate_ReshuffleChangesInput(t *testing.T) {
	m := testModel(t)
	before := make([]uint32, len(m.input))
	copy(before, m.input)

	updated, _ := m.Update(keyMsg("r"))
	m = updated.(Model)

	same := len(before) == len(m.input)
	if same {
		for i := range before {
			if before[i] != m.input[i] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("expected reshuffle to produce a different input")
	}
}

func TestUpdate_QuitKeys(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestView_RendersHeaderAndFooter(t *testing.T) {
	m := testModel(t)
	view := m.View()

	if !strings.Contains(view, sorting.NameBubbleSort) {
		t.Error("view should name the selected algorithm")
	}
	if !strings.Contains(view, "Reshuffle") {
		t.Error("view should include the key hints")
	}
}

func TestView_BeforeFirstResizeShowsLoading(t *testing.T) {
	m := NewModel(Config{Algorithm: sorting.NameBubbleSort, InputLen: 4, Seed: 1})
	if !strings.Contains(m.View(), "Loading") {
		t.Error("expected loading placeholder before first WindowSizeMsg")
	}
}
