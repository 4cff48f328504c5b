// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/toolbelt/toolbelt/lib/variable"
)

// FileHandlingMode controls how a tool receives its targets.
type FileHandlingMode string

const (
	// PerFile passes every discovered file on the command line.
	PerFile FileHandlingMode = "per_file"

	// Batch passes the requested targets (or DefaultTarget) and lets the
	// tool discover files itself.
	Batch FileHandlingMode = "batch"

	// NoTarget passes no targets at all.
	NoTarget FileHandlingMode = "no_target"
)

// Valid reports whether m is one of the known modes.
func (m FileHandlingMode) Valid() bool {
	switch m {
	case PerFile, Batch, NoTarget:
		return true
	}
	return false
}

// Config is a loaded toolbelt configuration.
type Config struct {
	// Sources lists the files the configuration was assembled from, in
	// load order (includes before the files that include them).
	Sources []string `json:"sources"`

	// Profiles maps profile name to profile.
	Profiles map[string]*Profile `json:"profiles"`

	// GlobalExcludePatterns apply to every profile.
	GlobalExcludePatterns []string `json:"global_exclude_patterns"`

	// Variables is the unresolved variables section in declaration
	// order.
	Variables variable.Declarations `json:"-"`
}

// Profile groups the tools that apply to one kind of file.
type Profile struct {
	Name            string   `yaml:"name"             json:"name"`
	Extensions      []string `yaml:"extensions"       json:"extensions"`
	CheckTools      []Tool   `yaml:"check_tools"      json:"check_tools"`
	FormatTools     []Tool   `yaml:"format_tools"     json:"format_tools"`
	ExcludePatterns []string `yaml:"exclude_patterns" json:"exclude_patterns,omitempty"`
	IgnoreFiles     []string `yaml:"ignore_files"     json:"ignore_files,omitempty"`
}

// Tool is one external tool invocation. Command, Args, DefaultTarget
// and WorkingDir are templates expanded against the variable table.
type Tool struct {
	Name             string           `yaml:"name"               json:"name"`
	Command          string           `yaml:"command"            json:"command"`
	Args             []string         `yaml:"args"               json:"args"`
	Description      string           `yaml:"description"        json:"description,omitempty"`
	FileHandlingMode FileHandlingMode `yaml:"file_handling_mode" json:"file_handling_mode"`
	DefaultTarget    string           `yaml:"default_target"     json:"default_target,omitempty"`
	WorkingDir       string           `yaml:"working_dir"        json:"working_dir,omitempty"`
	OutputToFile     bool             `yaml:"output_to_file"     json:"output_to_file,omitempty"`
}

// CanDiscoverFiles reports whether the tool finds files on its own
// instead of receiving an explicit file list.
func (t Tool) CanDiscoverFiles() bool {
	return t.FileHandlingMode == Batch || t.FileHandlingMode == NoTarget
}

// New returns an empty configuration.
func New() *Config {
	return &Config{Profiles: make(map[string]*Profile)}
}

// Profile returns the named profile, or nil.
func (c *Config) Profile(name string) *Profile {
	return c.Profiles[name]
}

// ProfileNames returns the profile names sorted alphabetically.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveVariables resolves the variables section against environ and
// layers the approved-prefix runtime overrides on top.
func (c *Config) ResolveVariables(environ variable.Environ) (*variable.Table, error) {
	return variable.Resolve(c.Variables, environ)
}

// normalize fills defaults: profile names from their map keys, leading
// dots on extensions, and the per_file handling mode.
func (c *Config) normalize() {
	for name, profile := range c.Profiles {
		if profile == nil {
			profile = &Profile{}
			c.Profiles[name] = profile
		}
		if profile.Name == "" {
			profile.Name = name
		}
		profile.Extensions = NormalizeExtensions(profile.Extensions)
		for i := range profile.CheckTools {
			profile.CheckTools[i].normalize()
		}
		for i := range profile.FormatTools {
			profile.FormatTools[i].normalize()
		}
	}
}

func (t *Tool) normalize() {
	if t.FileHandlingMode == "" {
		t.FileHandlingMode = PerFile
	}
}

// NormalizeExtensions prefixes every extension with a dot if it lacks
// one.
func NormalizeExtensions(extensions []string) []string {
	if extensions == nil {
		return nil
	}
	normalized := make([]string, len(extensions))
	for i, extension := range extensions {
		if extension != "" && !strings.HasPrefix(extension, ".") {
			extension = "." + extension
		}
		normalized[i] = extension
	}
	return normalized
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	for _, name := range c.ProfileNames() {
		profile := c.Profiles[name]
		errs = append(errs, validateTools(name, "check_tools", profile.CheckTools)...)
		errs = append(errs, validateTools(name, "format_tools", profile.FormatTools)...)
	}

	seen := make(map[string]struct{}, len(c.Variables))
	for _, declaration := range c.Variables {
		if err := variable.ValidateName(declaration.Name); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, duplicate := seen[declaration.Name]; duplicate {
			errs = append(errs, &variable.DuplicateNameError{Name: declaration.Name})
		}
		seen[declaration.Name] = struct{}{}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func validateTools(profile, field string, tools []Tool) []error {
	var errs []error
	for i, tool := range tools {
		location := fmt.Sprintf("profiles.%s.%s[%d]", profile, field, i)
		if tool.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", location))
		}
		if tool.Command == "" {
			errs = append(errs, fmt.Errorf("%s: command is required", location))
		}
		if !tool.FileHandlingMode.Valid() {
			errs = append(errs, fmt.Errorf("%s: file_handling_mode must be one of: per_file, batch, no_target (got %q)", location, tool.FileHandlingMode))
		}
	}
	return errs
}
