// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

// Package variable resolves the variables that toolbelt templates may
// reference and decides which environment variables are allowed to
// influence a run.
//
// Resolution happens in two phases with deliberately different inputs:
//
//   - Phase 1, [ResolveConfig] and [ExpandEnviron]: the values of the
//     config file's variables section are expanded against the full,
//     unfiltered process environment ([Environ]). This is the only code
//     that may read environment variables without an approved prefix.
//
//   - Phase 2, [Expand]: every other template (tool commands, arguments,
//     targets) is expanded against the merged [Table]. A function that
//     takes a *Table cannot reach unfiltered environment values.
//
// Between the phases, [ResolveRuntime] selects the environment variables
// whose names carry an approved prefix (see [IsAccessible]) and [Merge]
// layers them over the config-defined values. A runtime override always
// wins over a config value of the same name, and the merged [Table]
// records the provenance of every final value as a [Source].
//
// Templates use the braced form only: ${NAME} or ${NAME:default}. Bare
// $NAME is left untouched. Substituted values are inserted verbatim and
// never re-expanded.
//
// [Resolve] runs the whole pipeline. Nothing in this package logs,
// mutates the process environment, or keeps state between calls; a
// [Table] is immutable once built and safe to share between goroutines.
package variable
