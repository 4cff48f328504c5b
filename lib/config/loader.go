// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/toolbelt/toolbelt/lib/variable"
)

// Loader reads configuration sources. Warnings about skipped includes
// go to its logger.
type Loader struct {
	logger  *slog.Logger
	presets fs.FS
}

// NewLoader returns a Loader that resolves @toolbelt: references
// against the embedded presets.
func NewLoader(logger *slog.Logger) *Loader {
	return NewLoaderWithPresets(logger, Presets())
}

// NewLoaderWithPresets returns a Loader that resolves @toolbelt:
// references against presets instead of the embedded tree.
func NewLoaderWithPresets(logger *slog.Logger, presets fs.FS) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{logger: logger, presets: presets}
}

// Load loads and merges sources in order, each later source overriding
// the earlier ones (see [Merge]). With no sources, the default preset
// is loaded.
func (l *Loader) Load(sources []string) (*Config, error) {
	if len(sources) == 0 {
		l.logger.Debug("no configuration sources found, using default preset", "preset", DefaultPreset)
		sources = []string{DefaultPreset}
	}

	var merged *Config
	for _, source := range sources {
		cfg, err := l.LoadFile(source)
		if err != nil {
			return nil, err
		}
		if merged == nil {
			merged = cfg
			continue
		}
		merged = Merge(merged, cfg)
	}

	if err := merged.Validate(); err != nil {
		return nil, &InvalidError{Err: err}
	}
	return merged, nil
}

// LoadFile loads a single source and everything it includes.
func (l *Loader) LoadFile(location string) (*Config, error) {
	doc, sources, err := l.loadDocument(location, map[string]bool{fileIdentity(location): true})
	if err != nil {
		return nil, err
	}

	cfg := New()
	cfg.Sources = sources
	for name, profile := range doc.Profiles {
		cfg.Profiles[name] = profile
	}
	cfg.GlobalExcludePatterns = doc.GlobalExcludePatterns
	cfg.Variables = variable.Declarations(doc.Variables)
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, &InvalidError{Location: location, Err: err}
	}
	return cfg, nil
}

// loadDocument parses location and folds in its includes. visiting
// holds the identities (see [fileIdentity]) of the chain of files
// currently being loaded; a reference back
// into the chain is a cycle and is skipped, as is a reference that
// cannot be resolved or does not exist. Each branch gets its own
// copy, so the same file may be included from two different branches.
func (l *Loader) loadDocument(location string, visiting map[string]bool) (*document, []string, error) {
	syntax, err := formatOf(location)
	if err != nil {
		return nil, nil, &InvalidError{Location: location, Err: err}
	}
	data, err := readLocation(l.presets, location)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", location, err)
	}
	doc, err := parseDocument(data, syntax)
	if err != nil {
		return nil, nil, &InvalidError{Location: location, Err: err}
	}

	if len(doc.Include) == 0 {
		return doc, []string{location}, nil
	}

	base := &document{}
	var sources []string
	for _, reference := range doc.Include {
		included, err := ResolveReference(reference, directoryOf(location))
		if err != nil {
			l.logger.Warn("skipping include: unresolvable reference",
				"file", location, "include", reference, "error", err)
			continue
		}
		identity := fileIdentity(included)
		if visiting[identity] {
			l.logger.Warn("skipping include: circular reference",
				"file", location, "include", reference)
			continue
		}
		if !existsLocation(l.presets, included) {
			l.logger.Warn("skipping include: file not found",
				"file", location, "include", reference, "path", included)
			continue
		}

		branch := make(map[string]bool, len(visiting)+1)
		for visited := range visiting {
			branch[visited] = true
		}
		branch[identity] = true

		// Unlike missing files, an include that exists but fails to
		// load is fatal.
		includedDoc, includedSources, err := l.loadDocument(included, branch)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: include %q: %w", location, reference, err)
		}
		base = overlay(base, includedDoc)
		sources = append(sources, includedSources...)
	}

	// The including file overrides everything it includes.
	merged := overlay(base, doc)
	return merged, append(sources, location), nil
}
