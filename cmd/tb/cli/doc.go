// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for tb.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. Commands are assembled into a tree in cmd/tb/commands
// and dispatched via [Command.Execute], which handles flag parsing,
// subcommand routing, structured help output with examples, and the
// per-command logger (--verbose raises it to debug level).
//
// Parameter structs declare their flags with struct tags and are bound
// by [FlagsFromParams]. Embedding [JSONOutput] adds --json.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3). This is implemented in
// suggest.go.
//
// Errors returned from commands may be categorized with [ToolError]
// (validation problems in the user's configuration, missing files or
// profiles, internal failures) and carry a remediation hint.
package cli
