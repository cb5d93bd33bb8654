// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestBuildInfo(t *testing.T) {
	tests := []struct {
		name  string
		build Build
		want  string
	}{
		{
			name:  "clean",
			build: Build{Version: "1.2.0", Commit: "abc1234", BuildTime: "2026-10-01T00:00:00Z"},
			want:  "1.2.0 (abc1234, 2026-10-01T00:00:00Z)",
		},
		{
			name:  "dirty",
			build: Build{Version: "1.2.0", Commit: "abc1234", Dirty: true, BuildTime: "unknown"},
			want:  "1.2.0 (abc1234-dirty, unknown)",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := test.build.Info(); got != test.want {
				t.Errorf("Info() = %q, want %q", got, test.want)
			}
		})
	}
}

func TestCurrent(t *testing.T) {
	build := Current()
	if build.Version != Version {
		t.Errorf("Version = %q, want %q", build.Version, Version)
	}
	if build.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", build.GoVersion, runtime.Version())
	}
	full := build.Full()
	if !strings.Contains(full, "Platform: "+runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("Full() missing platform: %q", full)
	}
	if !strings.HasPrefix(full, build.Info()) {
		t.Errorf("Full() does not start with Info(): %q", full)
	}
}
