// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"embed"
	"io/fs"
)

//go:embed presets/*.yaml
var presetFiles embed.FS

// DefaultPreset is loaded when no configuration source is found.
const DefaultPreset = presetScheme + "presets/default.yaml"

// Presets returns the embedded preset tree, rooted so that preset
// references read as @toolbelt:presets/<name>.yaml.
func Presets() fs.FS {
	return presetFiles
}
