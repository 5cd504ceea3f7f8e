// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports build information for the slackmessage binary.
// Release builds set the variables with -ldflags, for example:
//
//	go build -ldflags "-X github.com/bureau-foundation/slackmessage/lib/version.GitCommit=$(git rev-parse --short HEAD)"
//
// Builds without ldflags (go install) fall back to the VCS stamp the Go
// toolchain embeds.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	GitCommit = "unknown"
	BuildTime = "unknown"
	Version   = "0.1.0-dev"
)

// Info returns "<version> (<commit>, <build time>)".
func Info() string {
	commit, built := GitCommit, BuildTime
	if commit == "unknown" {
		commit, built = buildInfo(built)
	}
	return fmt.Sprintf("%s (%s, %s)", Version, commit, built)
}

// Full adds the Go toolchain and platform to Info.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s", Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// buildInfo reads the commit and commit time from the embedded VCS
// settings. Missing values stay "unknown".
func buildInfo(built string) (commit, buildTime string) {
	commit, buildTime = "unknown", built
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return commit, buildTime
	}
	modified := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			commit = setting.Value
			if len(commit) > 12 {
				commit = commit[:12]
			}
		case "vcs.time":
			buildTime = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if modified && commit != "unknown" {
		commit += "-dirty"
	}
	return commit, buildTime
}
