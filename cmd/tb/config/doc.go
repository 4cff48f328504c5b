// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

// Package config implements "tb config": it loads the configuration the
// way every tb command does and prints what was found.
//
// The default output lists the configuration sources in load order and
// a summary of each profile. --profile shows one profile with every
// tool's command both as written and expanded against the variable
// table. --show-variables prints the variable table itself: every
// variable visible to templates, its expanded value, the raw template
// it came from, and whether it was declared in the configuration or
// taken from an approved-prefix environment variable. The table's
// fingerprint identifies the exact set of values, so two runs can be
// compared without printing them side by side.
//
// Environment variables outside the approved prefixes never appear in
// the table: they are readable only through the configuration's
// variables section.
package config
