// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the huff CLI command tree.
//
// Every command reads and writes through an [Environment] rather than
// the process globals, so tests run the full tree against in-memory
// buffers and a fake clock.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/huff/cmd/huff/cli"
	"github.com/bureau-foundation/huff/lib/clock"
	"github.com/bureau-foundation/huff/lib/version"
)

// Environment holds the process resources commands use.
type Environment struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Clock  clock.Clock
}

// ProcessEnvironment returns an Environment bound to the process's
// standard streams and the wall clock.
func ProcessEnvironment() *Environment {
	return &Environment{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Clock:  clock.Real(),
	}
}

// Root builds the command tree bound to the process environment.
func Root() *cli.Command {
	return NewRoot(ProcessEnvironment())
}

// NewRoot builds the command tree bound to env.
func NewRoot(env *Environment) *cli.Command {
	var params struct {
		Version bool `flag:"version" desc:"print version information and exit"`
	}

	root := &cli.Command{
		Name: "huff",
		Description: `Huff: static Huffman compression.

Compresses a file with a Huffman code built from its own byte
frequencies and writes a self-describing container: the code table
travels in the header, so decompression needs nothing but the file.`,
		Subcommands: []*cli.Command{
			compressCommand(env),
			decompressCommand(env),
			inspectCommand(env),
			treeCommand(env),
			compareCommand(env),
			verifyCommand(env),
			versionCommand(env),
		},
		Examples: []cli.Example{
			{
				Description: "Compress a file (writes notes.txt.huff)",
				Command:     "huff compress notes.txt",
			},
			{
				Description: "Restore the original",
				Command:     "huff decompress notes.txt.huff",
			},
			{
				Description: "Show the code table of an artifact",
				Command:     "huff inspect notes.txt.huff",
			},
			{
				Description: "Compare against LZ4, zstd and DEFLATE",
				Command:     "huff compare notes.txt",
			},
		},
		HelpOutput: env.Stderr,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("huff", &params)
		},
	}

	root.Run = func(_ context.Context, args []string) error {
		if params.Version {
			_, err := fmt.Fprintf(env.Stdout, "huff %s\n", version.Full())
			return err
		}
		root.PrintHelp(env.Stderr)
		if len(args) > 0 {
			return cli.Validation("unknown command %q", args[0]).
				WithHint("Run 'huff --help' for usage.")
		}
		return cli.Validation("subcommand required")
	}
	return root
}
