// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads toolbelt configuration.
//
// A configuration is assembled from one or more sources, found by
// [Loader.FindSources] in this order of preference:
//
//   - an explicit path passed with --config;
//   - the include list of the [tool.toolbelt] table in pyproject.toml;
//   - the first of toolbelt.yaml, toolbelt.yml, toolbelt.json in the
//     working directory.
//
// When nothing is found, the built-in default preset is used.
//
// Each source may itself list other files under an include key. Paths
// are resolved by [ResolveReference]: relative to the including file,
// absolute, home-relative (~/), or @toolbelt:<path> for the presets
// embedded in the binary. Included files are loaded first and the
// including file overrides them. Circular and missing includes are
// skipped with a warning.
//
// YAML files are decoded with gopkg.in/yaml.v3. JSON files may carry
// comments and trailing commas (JSONC). The variables section keeps its
// declaration order, which is observable in the variable audit table.
//
// Loading never expands templates. The variables section is resolved
// against the process environment by [Config.ResolveVariables], and tool
// commands are expanded against the resulting table by [BuildCommand].
package config
