// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
)

// PresetPackage is the package name of the presets embedded in the tb
// binary, referenced as @toolbelt:<path>.
const PresetPackage = "toolbelt"

const presetScheme = "@" + PresetPackage + ":"

// ResolveReference turns a configuration reference into a location
// that [Loader] can read. Supported forms:
//
//   - @toolbelt:presets/python.yaml: an embedded preset
//   - ~/config.yaml: relative to the user's home directory
//   - /abs/config.yaml: absolute
//   - config.yaml: relative to base, the directory of the including
//     file (which may itself be an embedded preset directory)
//
// The referenced file is not required to exist.
func ResolveReference(reference, base string) (string, error) {
	if reference == "" {
		return "", fmt.Errorf("empty configuration reference")
	}

	if strings.HasPrefix(reference, "@") {
		pkg, resource, ok := strings.Cut(reference[1:], ":")
		if !ok || pkg == "" || resource == "" {
			return "", fmt.Errorf("invalid package reference %q (want @package:path)", reference)
		}
		if pkg != PresetPackage {
			return "", fmt.Errorf("unknown package %q in reference %q (only @%s: presets are built in)", pkg, reference, PresetPackage)
		}
		cleaned := path.Clean(resource)
		if !fs.ValidPath(cleaned) {
			return "", fmt.Errorf("invalid preset path in reference %q", reference)
		}
		return presetScheme + cleaned, nil
	}

	if strings.HasPrefix(reference, "~/") {
		expanded, err := homedir.Expand(reference)
		if err != nil {
			return "", fmt.Errorf("expanding %q: %w", reference, err)
		}
		return expanded, nil
	}

	if filepath.IsAbs(reference) {
		return filepath.Clean(reference), nil
	}

	if directory, ok := strings.CutPrefix(base, presetScheme); ok {
		joined := path.Join(directory, reference)
		if !fs.ValidPath(joined) {
			return "", fmt.Errorf("reference %q escapes the preset directory", reference)
		}
		return presetScheme + joined, nil
	}

	return filepath.Join(base, reference), nil
}

// isPreset reports whether location names an embedded preset.
func isPreset(location string) bool {
	return strings.HasPrefix(location, presetScheme)
}

// fileIdentity names the file behind location for cycle detection.
// Symlinks are followed so that two paths reaching the same file
// compare equal. A location that cannot be evaluated keeps its cleaned
// form; it will fail the existence check anyway.
func fileIdentity(location string) string {
	if isPreset(location) {
		return location
	}
	resolved, err := filepath.EvalSymlinks(location)
	if err != nil {
		return filepath.Clean(location)
	}
	if absolute, err := filepath.Abs(resolved); err == nil {
		return absolute
	}
	return resolved
}

// directoryOf returns the base for references inside location.
func directoryOf(location string) string {
	if resource, ok := strings.CutPrefix(location, presetScheme); ok {
		return presetScheme + path.Dir(resource)
	}
	return filepath.Dir(location)
}

// readLocation reads a file or an embedded preset.
func readLocation(presets fs.FS, location string) ([]byte, error) {
	if resource, ok := strings.CutPrefix(location, presetScheme); ok {
		return fs.ReadFile(presets, resource)
	}
	return os.ReadFile(location)
}

// existsLocation reports whether a file or preset exists.
func existsLocation(presets fs.FS, location string) bool {
	if resource, ok := strings.CutPrefix(location, presetScheme); ok {
		_, err := fs.Stat(presets, resource)
		return err == nil
	}
	_, err := os.Stat(location)
	return err == nil
}
