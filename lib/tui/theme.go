// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the stopwatch viewer. Colors are
// ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text color.
	NormalText lipgloss.Color

	// Box borders.
	BorderColor    lipgloss.Color
	SelectedBorder lipgloss.Color

	// Help overlay.
	HelpText   lipgloss.Color
	HelpBorder lipgloss.Color

	// Confirmation prompt answers.
	Affirmative lipgloss.Color
	Negative    lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("250"), // gray

	BorderColor:    lipgloss.Color("250"),
	SelectedBorder: lipgloss.Color("2"), // green

	HelpText:   lipgloss.Color("240"), // dark gray
	HelpBorder: lipgloss.Color("240"),

	Affirmative: lipgloss.Color("2"), // green
	Negative:    lipgloss.Color("1"), // red
}
