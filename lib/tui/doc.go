// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui renders tb's terminal output: the variable audit table,
// section titles, and the shared color [Theme].
//
// Rendering goes through a lipgloss renderer bound to the destination
// writer ([NewRenderer]), so --no-color, NO_COLOR and piped output all
// produce plain text from the same code path.
package tui
