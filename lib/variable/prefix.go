// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package variable

import "strings"

// approvedPrefixes is fixed at build time. There is no API to extend it:
// the set of environment variables that can reach templates must be
// auditable from source.
var approvedPrefixes = [...]string{
	"TOOLBELT_",
	"TB_",
	"TBELT_",
	"CI_",
	"BUILD_",
}

// IsAccessible reports whether an environment variable named name may be
// used as a runtime override. The match is an exact, case-sensitive
// prefix comparison against the approved prefixes.
func IsAccessible(name string) bool {
	for _, prefix := range approvedPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// ApprovedPrefixes returns a copy of the approved prefix list in
// declaration order.
func ApprovedPrefixes() []string {
	prefixes := make([]string, len(approvedPrefixes))
	copy(prefixes, approvedPrefixes[:])
	return prefixes
}
