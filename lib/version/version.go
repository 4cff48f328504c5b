// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are set via -ldflags at build time, for example:
//
//	go build -ldflags "-X github.com/toolbelt/toolbelt/lib/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// GitDirty indicates whether there were uncommitted changes.
	GitDirty = "false"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"

	// Version is the semantic version. This is set manually for releases.
	Version = "0.1.0-dev"
)

// BuildInfo is the machine-readable form of the version, as printed by
// tb version --json.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Dirty     bool   `json:"dirty"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Current returns the build information of the running binary.
func Current() BuildInfo {
	return BuildInfo{
		Version:   Version,
		Commit:    Commit(),
		Dirty:     dirty(),
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Info returns a formatted version string suitable for --version output.
func Info() string {
	suffix := ""
	if dirty() {
		suffix = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", Version, Commit(), suffix, BuildTime)
}

// Full returns detailed version information including Go version.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Short returns just the version number.
func Short() string {
	return Version
}

// Commit returns the git commit SHA: the injected one, else the VCS
// revision stamped by the toolchain, else "unknown".
func Commit() string {
	if GitCommit != "unknown" {
		return GitCommit
	}
	if revision, ok := vcsSetting("vcs.revision"); ok {
		if len(revision) > 12 {
			revision = revision[:12]
		}
		return revision
	}
	return GitCommit
}

func dirty() bool {
	if GitDirty == "true" {
		return true
	}
	if GitCommit != "unknown" {
		return false
	}
	modified, _ := vcsSetting("vcs.modified")
	return modified == "true"
}

func vcsSetting(key string) (string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, setting := range info.Settings {
		if setting.Key == key && setting.Value != "" {
			return setting.Value, true
		}
	}
	return "", false
}
