// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package config

// InvalidError reports a configuration file whose content is wrong:
// unsupported file type, syntax errors, unknown keys, malformed or
// duplicate variable names, or failed validation. I/O failures are not
// InvalidErrors.
type InvalidError struct {
	// Location is the file or preset, or empty for the merged result
	// of several sources.
	Location string
	Err      error
}

func (e *InvalidError) Error() string {
	if e.Location == "" {
		return "invalid configuration: " + e.Err.Error()
	}
	return "invalid configuration in " + e.Location + ": " + e.Err.Error()
}

func (e *InvalidError) Unwrap() error { return e.Err }
