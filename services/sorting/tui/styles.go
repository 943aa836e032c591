// Copyright (C) 2025 Algoscope Authors (maintainers@algoscope.dev)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2CD7C7"))

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1D9EA3"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#20B9B4"))

	// barHotStyle marks positions touched by the step just applied.
	barHotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F4D03F"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E74C3C"))
)
