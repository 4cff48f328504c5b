// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/toolbelt/toolbelt/lib/variable"
)

// Width bounds for the value and raw value cells.
const (
	maxCellWidth = 60
	minCellWidth = 12
	ellipsis     = "…"
)

// Column indexes of the variable table.
const (
	columnName = iota
	columnValue
	columnRaw
	columnSource
)

// VariableHeaders are the column titles of the variable table.
var VariableHeaders = []string{"Variable", "Value", "Raw Value", "Source"}

// VariableTable renders entries as a bordered table with the columns
// Variable, Value, Raw Value and Source. Literal entries show an empty
// raw value. width is the available terminal width; values are
// truncated so the table fits, or to a fixed maximum when width is 0.
func VariableTable(renderer *lipgloss.Renderer, theme Theme, entries []variable.Variable, width int) string {
	cellWidth := valueCellWidth(entries, width)

	rows := make([][]string, len(entries))
	for i, entry := range entries {
		rows[i] = []string{
			entry.Name,
			Truncate(entry.Value, cellWidth),
			Truncate(entry.Raw, cellWidth),
			entry.Source.String(),
		}
	}

	base := renderer.NewStyle().Padding(0, 1)
	header := base.Bold(true).Foreground(theme.HeaderForeground)

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(renderer.NewStyle().Foreground(theme.BorderColor)).
		Headers(VariableHeaders...).
		Rows(rows...).
		StyleFunc(func(row, column int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if row < 0 || row >= len(entries) {
				return base
			}
			return variableCellStyle(base, theme, entries[row], column)
		}).
		String()
}

// variableCellStyle colors one body cell: raw values of templated
// entries stand out, sources take their provenance color.
func variableCellStyle(base lipgloss.Style, theme Theme, entry variable.Variable, column int) lipgloss.Style {
	switch column {
	case columnRaw:
		if !entry.Templated() {
			return base.Foreground(theme.FaintText)
		}
		return base.Foreground(theme.Templated)
	case columnSource:
		return base.Foreground(theme.SourceColor(entry.Source))
	default:
		return base.Foreground(theme.NormalText)
	}
}

// valueCellWidth splits what width leaves after the name and source
// columns between the value and raw value columns.
func valueCellWidth(entries []variable.Variable, width int) int {
	if width <= 0 {
		return maxCellWidth
	}
	nameWidth := ansi.StringWidth(VariableHeaders[columnName])
	sourceWidth := ansi.StringWidth(VariableHeaders[columnSource])
	for _, entry := range entries {
		nameWidth = max(nameWidth, ansi.StringWidth(entry.Name))
		sourceWidth = max(sourceWidth, ansi.StringWidth(entry.Source.String()))
	}
	// Four columns: two padding cells each, plus five border cells.
	remaining := width - nameWidth - sourceWidth - 4*2 - 5
	return min(max(remaining/2, minCellWidth), maxCellWidth)
}

// Truncate shortens s to at most width terminal cells, ending in an
// ellipsis when anything was cut. ANSI sequences in s are preserved.
func Truncate(s string, width int) string {
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, ellipsis)
}

// Title renders a section heading.
func Title(renderer *lipgloss.Renderer, theme Theme, text string) string {
	return renderer.NewStyle().Bold(true).Foreground(theme.TitleForeground).Render(text)
}

// Faint renders secondary text.
func Faint(renderer *lipgloss.Renderer, theme Theme, text string) string {
	return renderer.NewStyle().Foreground(theme.FaintText).Render(text)
}
