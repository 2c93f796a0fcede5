// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the huff CLI.
//
// Configuration comes from a single file named by the --config flag
// (via [LoadFile]) or the HUFF_CONFIG environment variable (via
// [Load]). When neither is given the CLI runs on [Default]. There is no
// ~/.config discovery and no automatic file search.
//
// Values in the file are merged over the defaults, so a file only needs
// the keys it changes. Variable expansion is performed on path fields
// after loading: ${HOME} and ${VAR:-default} patterns are expanded. No
// environment variable overrides a config value directly.
//
// Key exports:
//
//   - [Config] -- master struct with Output, Report, Log, Compare
//   - [Default] -- returns a Config with the built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//
// This package depends on no other huff packages.
package config
