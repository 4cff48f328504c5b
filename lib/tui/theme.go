// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/toolbelt/toolbelt/lib/variable"
)

// Theme defines the color palette for tb's terminal output. All colors
// use lipgloss ANSI 256-color codes for broad terminal compatibility;
// the renderer degrades them (or drops them) to match the output.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	TitleForeground  lipgloss.Color

	// Variable sources.
	SourceConfig lipgloss.Color
	SourceEnv    lipgloss.Color

	// Templated marks values that came from a ${...} template, as
	// opposed to literals.
	Templated lipgloss.Color
}

// SourceColor returns the color for a variable source. Unknown
// sources return FaintText.
func (theme Theme) SourceColor(source variable.Source) lipgloss.Color {
	switch source {
	case variable.SourceConfig:
		return theme.SourceConfig
	case variable.SourceEnv:
		return theme.SourceEnv
	default:
		return theme.FaintText
	}
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	TitleForeground:  lipgloss.Color("75"), // blue

	SourceConfig: lipgloss.Color("114"), // green
	SourceEnv:    lipgloss.Color("220"), // yellow/amber: overrides stand out

	Templated: lipgloss.Color("141"), // light purple
}
