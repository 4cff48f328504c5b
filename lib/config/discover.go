// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// standaloneNames are the configuration files looked for in the working
// directory, in order.
var standaloneNames = []string{"toolbelt.yaml", "toolbelt.yml", "toolbelt.json"}

// pyproject is the part of pyproject.toml that toolbelt reads.
type pyproject struct {
	Tool struct {
		Toolbelt *pyprojectToolbelt `toml:"toolbelt"`
	} `toml:"tool"`
}

type pyprojectToolbelt struct {
	Include []string `toml:"include"`
}

// FindSources returns the configuration sources in load order.
//
// An explicit path, relative to cwd unless absolute, must exist. Otherwise the include list of
// [tool.toolbelt] in cwd/pyproject.toml is used, skipping references
// that cannot be resolved or do not exist; if that yields nothing, the
// first standalone file found in cwd is used. An empty result means
// the default preset applies.
func (l *Loader) FindSources(explicit, cwd string) ([]string, error) {
	if explicit != "" {
		if !filepath.IsAbs(explicit) {
			explicit = filepath.Join(cwd, explicit)
		}
		if _, err := os.Stat(explicit); err != nil {
			return nil, fmt.Errorf("configuration file %s: %w", explicit, err)
		}
		return []string{explicit}, nil
	}

	if sources := l.pyprojectSources(cwd); len(sources) > 0 {
		return sources, nil
	}

	for _, name := range standaloneNames {
		candidate := filepath.Join(cwd, name)
		if _, err := os.Stat(candidate); err == nil {
			return []string{candidate}, nil
		}
	}
	return nil, nil
}

// pyprojectSources reads the include list from cwd/pyproject.toml. A
// missing or malformed pyproject.toml contributes nothing.
func (l *Loader) pyprojectSources(cwd string) []string {
	path := filepath.Join(cwd, "pyproject.toml")
	includes, err := LoadPyproject(path)
	if err != nil {
		l.logger.Debug("ignoring pyproject.toml", "path", path, "error", err)
		return nil
	}

	var sources []string
	for _, reference := range includes {
		resolved, err := ResolveReference(reference, cwd)
		if err != nil {
			l.logger.Warn("skipping pyproject include", "include", reference, "error", err)
			continue
		}
		if !existsLocation(l.presets, resolved) {
			l.logger.Warn("skipping pyproject include: file not found", "include", reference, "path", resolved)
			continue
		}
		sources = append(sources, resolved)
	}
	return sources
}

// LoadPyproject returns the [tool.toolbelt] include list of the
// pyproject.toml at path. It returns (nil, nil) when the file has no
// [tool.toolbelt] table, and an error when the file is unreadable or
// not valid TOML.
func LoadPyproject(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var project pyproject
	if err := toml.Unmarshal(data, &project); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if project.Tool.Toolbelt == nil {
		return nil, nil
	}
	return project.Tool.Toolbelt.Include, nil
}
