// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version reports build information for the register binary.
//
// Three variables are injected at build time via -ldflags -X:
//
//   - [GitCommit] -- short git SHA of the build
//   - [BuildTime] -- UTC timestamp of the build
//   - [Version] -- semantic version string (set manually for releases)
//
// When they are not injected, [Current] falls back to the VCS stamp the
// Go toolchain embeds in the binary, so "go install" builds still
// report their commit.
package version
