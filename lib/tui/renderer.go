// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// NewRenderer returns a lipgloss renderer for w. With color false,
// output is plain ASCII. Otherwise the profile is detected from w and
// the environment, so NO_COLOR and non-terminal writers also get plain
// output.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	profile := termenv.Ascii
	if color {
		profile = termenv.NewOutput(w).EnvColorProfile()
	}
	// SetColorProfile is required: without it the renderer re-detects
	// from the environment.
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)
	return renderer
}
