// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-line framework for the huff CLI.
//
// The central type is [Command], which represents a named subcommand with
// optional nested [Command.Subcommands], a [pflag.FlagSet] factory, and a
// Run function. Commands are assembled into a tree in cmd/huff/commands
// and dispatched via [Command.Execute], which handles flag parsing,
// subcommand routing, and structured help output with examples.
//
// Flag sets are usually generated from a tagged params struct with
// [FlagsFromParams]. Embedding [JSONOutput] in a params struct adds a
// --json flag and the [JSONOutput.EmitJSON] helper.
//
// When a user types an unknown subcommand or flag, the framework computes
// Levenshtein edit distance against all known names and suggests the
// closest match (threshold: distance <= 3).
//
// Errors returned by commands are classified with [ToolError] categories,
// which select the process exit code. [ExitError] requests a specific
// exit code for commands that have already written their own output.
package cli
