// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/toolbelt/toolbelt/lib/variable"
)

// Command is a tool invocation ready to run.
type Command struct {
	// Full is the complete argv: Base followed by files or targets.
	Full []string `json:"full"`

	// Base is the expanded command and arguments.
	Base []string `json:"base"`

	// RawBase is the command and arguments as written in the config.
	RawBase []string `json:"raw_base"`

	// WorkingDir is the expanded working directory, empty for the
	// current one.
	WorkingDir string `json:"working_dir,omitempty"`

	// Variables names the variables the tool's templates reference, in
	// order of first appearance.
	Variables []string `json:"variables,omitempty"`
}

// ExpandTool returns a copy of tool with Command, Args, DefaultTarget
// and WorkingDir expanded against table. Errors are
// *variable.ExpansionError values naming the tool and field.
func ExpandTool(tool Tool, table *variable.Table) (Tool, error) {
	context := fmt.Sprintf("tool %q", tool.Name)
	expanded := tool

	var err error
	if expanded.Command, err = variable.ExpandIn(tool.Command, table, context+" command"); err != nil {
		return Tool{}, err
	}
	if expanded.Args, err = variable.ExpandAll(tool.Args, table, context+" args"); err != nil {
		return Tool{}, err
	}
	if expanded.DefaultTarget, err = variable.ExpandIn(tool.DefaultTarget, table, context+" default_target"); err != nil {
		return Tool{}, err
	}
	if expanded.WorkingDir, err = variable.ExpandIn(tool.WorkingDir, table, context+" working_dir"); err != nil {
		return Tool{}, err
	}
	return expanded, nil
}

// BuildCommand expands tool against table and appends its targets:
// files in per_file mode; targets, or DefaultTarget when there are
// none, in batch mode; nothing in no_target mode. Files and targets are
// paths, not templates, and are appended verbatim.
func BuildCommand(tool Tool, files, targets []string, table *variable.Table) (*Command, error) {
	expanded, err := ExpandTool(tool, table)
	if err != nil {
		return nil, err
	}

	raw := append([]string{tool.Command}, tool.Args...)
	base := append([]string{expanded.Command}, expanded.Args...)

	full := append([]string(nil), base...)
	switch tool.FileHandlingMode {
	case PerFile, "":
		full = append(full, files...)
	case Batch:
		if len(targets) > 0 {
			full = append(full, targets...)
		} else if expanded.DefaultTarget != "" {
			full = append(full, expanded.DefaultTarget)
		}
	case NoTarget:
	default:
		return nil, fmt.Errorf("tool %q: unknown file_handling_mode %q", tool.Name, tool.FileHandlingMode)
	}

	return &Command{
		Full:       full,
		Base:       base,
		RawBase:    raw,
		WorkingDir: expanded.WorkingDir,
		Variables:  referencedNames(raw, tool.DefaultTarget, tool.WorkingDir),
	}, nil
}

// referencedNames returns the distinct names referenced by argv and
// extra.
func referencedNames(argv []string, extra ...string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, template := range append(append([]string(nil), argv...), extra...) {
		for _, reference := range variable.References(template) {
			if !seen[reference.Name] {
				seen[reference.Name] = true
				names = append(names, reference.Name)
			}
		}
	}
	return names
}
