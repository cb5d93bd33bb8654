// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the register
// command.
//
// Configuration comes from a single file named by the --config flag or
// the REGISTER_CONFIG environment variable, in that order. There is no
// ~/.config discovery and no automatic file search: without either,
// [Default] is used as is.
//
// The file may contain environment-specific sections (development,
// production) that override base values when [Config].Environment
// matches. Production defaults to JSON logs.
//
// Variable expansion is performed on path fields after loading:
// ${HOME} and ${VAR:-default} patterns are expanded. No environment
// variable overrides a config value directly.
//
// Key exports:
//
//   - [Config] -- master struct with Log, Hash, Schema
//   - [Default] -- returns a Config with development defaults
//   - [Resolve], [Load] and [LoadFile] -- the entry points for loading
//
// This package depends on no other register packages.
package config
