// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for toolbelt packages.
//
// [WriteFile] and [WriteTree] lay out configuration files in a
// temporary directory. [CaptureLogger] returns a logger whose output
// tests can inspect, for asserting on warnings such as skipped
// includes.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no toolbelt-internal dependencies.
package testutil
