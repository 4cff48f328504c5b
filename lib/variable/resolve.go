// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package variable

import "sort"

// ExpandEnviron is the phase-1 expansion: it substitutes ${NAME}
// references in template with values from the unfiltered environ.
// templated reports whether template contained any reference. When a
// reference without a default names an unset variable, the first such
// name is returned in a *MissingEnvReferenceError whose Variable field
// is left for the caller to fill in.
func ExpandEnviron(template string, environ Environ) (value string, templated bool, err error) {
	result, templated, unresolved := substitute(template, environ.Lookup)
	if len(unresolved) > 0 {
		return "", templated, &MissingEnvReferenceError{Reference: unresolved[0]}
	}
	return result, templated, nil
}

// ResolveConfig resolves the config variables section against environ,
// in declaration order. Every result has Source == SourceConfig; Raw
// holds the declared template when the value contained at least one
// reference and is empty for literals, whose Value is the declared text
// unchanged.
//
// Fails on the first malformed or duplicate name and on the first
// reference to an unset environment variable. Calling ResolveConfig
// twice with the same inputs yields identical output.
func ResolveConfig(declarations Declarations, environ Environ) ([]Variable, error) {
	resolved := make([]Variable, 0, len(declarations))
	seen := make(map[string]struct{}, len(declarations))

	for _, declaration := range declarations {
		if err := ValidateName(declaration.Name); err != nil {
			return nil, err
		}
		if _, duplicate := seen[declaration.Name]; duplicate {
			return nil, &DuplicateNameError{Name: declaration.Name}
		}
		seen[declaration.Name] = struct{}{}

		value, templated, err := ExpandEnviron(declaration.Value, environ)
		if err != nil {
			if missing, ok := err.(*MissingEnvReferenceError); ok {
				missing.Variable = declaration.Name
			}
			return nil, err
		}

		variable := Variable{
			Name:   declaration.Name,
			Value:  value,
			Source: SourceConfig,
		}
		if templated {
			variable.Raw = declaration.Value
		}
		resolved = append(resolved, variable)
	}

	return resolved, nil
}

// ResolveRuntime returns a Variable with Source == SourceEnv for every
// environ entry whose name passes [IsAccessible], whether or not it
// collides with a config name. Values are used verbatim: no template
// processing applies to runtime values. Names that are not valid
// identifiers could never be referenced by a template and are skipped.
//
// The result is sorted by name so that a given snapshot always
// produces the same order.
func ResolveRuntime(environ Environ) []Variable {
	var overrides []Variable
	for name, value := range environ {
		if !IsAccessible(name) || !ValidName(name) {
			continue
		}
		overrides = append(overrides, Variable{
			Name:   name,
			Value:  value,
			Source: SourceEnv,
		})
	}
	sort.Slice(overrides, func(i, j int) bool {
		return overrides[i].Name < overrides[j].Name
	})
	return overrides
}

// Resolve runs the whole pipeline: phase-1 resolution of declarations,
// runtime override selection, and merge.
func Resolve(declarations Declarations, environ Environ) (*Table, error) {
	configured, err := ResolveConfig(declarations, environ)
	if err != nil {
		return nil, err
	}
	return Merge(configured, ResolveRuntime(environ)), nil
}
