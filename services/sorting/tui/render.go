// Copyright (C) 2025 Algoscope Authors (maintainers@algoscope.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package tui

import "strings"

// barColumns downsamples values to at most width columns. When several
// values share a column the tallest wins, so spikes stay visible.
func barColumns(values []uint32, width int) []uint32 {
	if width <= 0 || len(values) == 0 {
		return nil
	}
	if len(values) <= width {
		cols := make([]uint32, len(values))
		copy(cols, values)
		return cols
	}
	cols := make([]uint32, width)
	for i, v := range values {
		c := i * width / len(values)
		if v > cols[c] {
			cols[c] = v
		}
	}
	return cols
}

// renderBars draws values as a column chart of the given height. hot marks
// value indices touched by the most recently applied step; their columns
// render in the highlight style.
func renderBars(values []uint32, width, height int, hot map[int]bool) string {
	cols := barColumns(values, width)
	if len(cols) == 0 || height <= 0 {
		return ""
	}

	var maxVal uint32
	for _, v := range cols {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	hotCols := make(map[int]bool, len(hot))
	for i := range hot {
		if i >= 0 && i < len(values) {
			hotCols[i*len(cols)/len(values)] = true
		}
	}

	// Scale each column to full rows; any non-zero value keeps at least
	// one row so small elements do not vanish.
	rows := make([]int, len(cols))
	for i, v := range cols {
		r := int(uint64(v) * uint64(height) / uint64(maxVal))
		if r == 0 && v > 0 {
			r = 1
		}
		rows[i] = r
	}

	var b strings.Builder
	for row := height; row >= 1; row-- {
		var plain, line strings.Builder
		flush := func(style int) {
			if plain.Len() == 0 {
				return
			}
			switch style {
			case 1:
				line.WriteString(barHotStyle.Render(plain.String()))
			default:
				line.WriteString(barStyle.Render(plain.String()))
			}
			plain.Reset()
		}

		prevHot := false
		for i := range cols {
			ch := " "
			if rows[i] >= row {
				ch = "█"
			}
			if hotCols[i] != prevHot {
				if prevHot {
					flush(1)
				} else {
					flush(0)
				}
				prevHot = hotCols[i]
			}
			plain.WriteString(ch)
		}
		if prevHot {
			flush(1)
		} else {
			flush(0)
		}

		b.WriteString(line.String())
		if row > 1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
