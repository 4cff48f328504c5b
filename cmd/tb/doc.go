// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

// Command tb runs a project's linters and formatters from a single
// configuration.
//
// See cmd/tb/commands for the command tree and lib/variable for how
// ${NAME} templates in tool commands are resolved.
package main
