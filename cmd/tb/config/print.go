// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/toolbelt/toolbelt/lib/tui"
)

// printReport writes the human-readable form of result. width is the
// terminal width, or 0 when unknown.
func printReport(w io.Writer, result *report, params *configParams, width int) error {
	renderer := tui.NewRenderer(w, !params.NoColor)
	theme := tui.DefaultTheme

	var out strings.Builder

	out.WriteString(tui.Title(renderer, theme, "Configuration sources") + "\n")
	for i, source := range result.Sources {
		fmt.Fprintf(&out, "  %d. %s\n", i+1, source)
	}

	out.WriteString("\n" + tui.Title(renderer, theme, "Profiles") + "\n")
	if len(result.Profiles) == 0 {
		out.WriteString("  " + tui.Faint(renderer, theme, "(none)") + "\n")
	} else {
		tw := tabwriter.NewWriter(&out, 2, 0, 3, ' ', 0)
		for _, profile := range result.Profiles {
			fmt.Fprintf(tw, "  %s\t%s\tcheck: %s\tformat: %s\n",
				profile.Name,
				listOrDash(profile.Extensions),
				listOrDash(profile.CheckTools),
				listOrDash(profile.FormatTools),
			)
		}
		tw.Flush()
	}

	if result.Profile != nil {
		writeProfile(&out, renderer, theme, result.Profile)
	}

	if params.ShowVariables {
		writeVariables(&out, renderer, theme, result, width)
	}

	_, err := io.WriteString(w, out.String())
	return err
}

func writeProfile(out *strings.Builder, renderer *lipgloss.Renderer, theme tui.Theme, profile *profileDetail) {
	heading := fmt.Sprintf("Profile %s", profile.Name)
	if len(profile.Extensions) > 0 {
		heading += " (" + strings.Join(profile.Extensions, ", ") + ")"
	}
	out.WriteString("\n" + tui.Title(renderer, theme, heading) + "\n")
	if len(profile.ExcludePatterns) > 0 {
		out.WriteString("  " + tui.Faint(renderer, theme, "excludes: "+strings.Join(profile.ExcludePatterns, ", ")) + "\n")
	}
	if len(profile.Tools) == 0 {
		out.WriteString("  " + tui.Faint(renderer, theme, "(no tools)") + "\n")
		return
	}
	for _, tool := range profile.Tools {
		fmt.Fprintf(out, "  %s %s [%s]\n", tool.Kind, tool.Name, tool.FileHandlingMode)
		if tool.Description != "" {
			out.WriteString("    " + tui.Faint(renderer, theme, tool.Description) + "\n")
		}
		fmt.Fprintf(out, "    raw:      %s\n", displayCommand(tool.Raw))
		fmt.Fprintf(out, "    expanded: %s\n", displayCommand(tool.Expanded))
		if tool.WorkingDir != "" {
			fmt.Fprintf(out, "    in:       %s\n", tool.WorkingDir)
		}
		if len(tool.Variables) > 0 {
			out.WriteString("    " + tui.Faint(renderer, theme, "uses:     "+strings.Join(tool.Variables, ", ")) + "\n")
		}
	}
}

func writeVariables(out *strings.Builder, renderer *lipgloss.Renderer, theme tui.Theme, result *report, width int) {
	var parts []string
	for _, source := range sortedKeys(result.Counts) {
		parts = append(parts, fmt.Sprintf("%d %s", result.Counts[source], source))
	}
	heading := fmt.Sprintf("Variables (%d", len(result.Variables))
	if len(parts) > 0 {
		heading += ": " + strings.Join(parts, ", ")
	}
	heading += ")"

	out.WriteString("\n" + tui.Title(renderer, theme, heading) + "\n")
	out.WriteString(tui.VariableTable(renderer, theme, result.Variables, width) + "\n")
	out.WriteString(tui.Faint(renderer, theme, "fingerprint: "+result.Fingerprint) + "\n")
}

func listOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}
