// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are set via -ldflags at build time, for example:
//
//	go build -ldflags "-X github.com/bureau-foundation/register/lib/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// BuildTime is the UTC timestamp of the build.
	BuildTime = "unknown"

	// Version is the semantic version.
	Version = "0.1.0-dev"
)

// Build describes the running binary.
type Build struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Dirty     bool   `json:"dirty,omitempty"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Current returns the build information of the running binary.
func Current() Build {
	build := Build{
		Version:   Version,
		Commit:    GitCommit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return build
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if build.Commit == "unknown" && len(setting.Value) >= 7 {
				build.Commit = setting.Value[:7]
			}
		case "vcs.time":
			if build.BuildTime == "unknown" {
				build.BuildTime = setting.Value
			}
		case "vcs.modified":
			build.Dirty = setting.Value == "true"
		}
	}
	return build
}

// Info returns a formatted version string suitable for --version output.
func (b Build) Info() string {
	dirty := ""
	if b.Dirty {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", b.Version, b.Commit, dirty, b.BuildTime)
}

// Full returns Info plus the Go version and platform.
func (b Build) Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s", b.Info(), b.GoVersion, b.Platform)
}
