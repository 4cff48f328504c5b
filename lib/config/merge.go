// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package config

// Merge combines two loaded configurations, override taking
// precedence. Neither input is modified.
//
//   - Profiles present in both are merged field by field: each of
//     extensions, check_tools, format_tools, exclude_patterns and
//     ignore_files comes from override when non-empty, else from base.
//   - Global exclude patterns are concatenated.
//   - Variables take the override value; a name keeps the position of
//     its first declaration.
//   - Sources are concatenated.
func Merge(base, override *Config) *Config {
	merged := New()
	merged.Sources = append(append([]string(nil), base.Sources...), override.Sources...)
	merged.GlobalExcludePatterns = append(append([]string(nil), base.GlobalExcludePatterns...), override.GlobalExcludePatterns...)
	merged.Variables = mergeDeclarations(base.Variables, override.Variables)

	for name, profile := range base.Profiles {
		merged.Profiles[name] = profile
	}
	for name, overrideProfile := range override.Profiles {
		baseProfile, exists := merged.Profiles[name]
		if !exists {
			merged.Profiles[name] = overrideProfile
			continue
		}
		merged.Profiles[name] = &Profile{
			Name:            baseProfile.Name,
			Extensions:      firstNonEmpty(overrideProfile.Extensions, baseProfile.Extensions),
			CheckTools:      firstNonEmpty(overrideProfile.CheckTools, baseProfile.CheckTools),
			FormatTools:     firstNonEmpty(overrideProfile.FormatTools, baseProfile.FormatTools),
			ExcludePatterns: firstNonEmpty(overrideProfile.ExcludePatterns, baseProfile.ExcludePatterns),
			IgnoreFiles:     firstNonEmpty(overrideProfile.IgnoreFiles, baseProfile.IgnoreFiles),
		}
	}

	return merged
}

func firstNonEmpty[T any](preferred, fallback []T) []T {
	if len(preferred) > 0 {
		return preferred
	}
	return fallback
}
