// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/huff/cmd/huff/cli"
	"github.com/bureau-foundation/huff/lib/digest"
	"github.com/bureau-foundation/huff/lib/huffman"
)

type verifyParams struct {
	commonParams
}

func verifyCommand(env *Environment) *cli.Command {
	var params verifyParams

	return &cli.Command{
		Name:    "verify",
		Summary: "Check that decompression reproduces the input",
		Description: `Compare the BLAKE3 digest of INPUT with the digest of its decoded
Huffman form.

With one argument, INPUT is compressed and decompressed in memory.
With an ARTIFACT argument, that artifact is decoded instead, which
checks a file produced earlier against its source.

Prints one line per check and exits 1 on a mismatch.`,
		Usage: "huff verify INPUT [ARTIFACT] [flags]",
		Examples: []cli.Example{
			{
				Description: "Round-trip a file in memory",
				Command:     "huff verify notes.txt",
			},
			{
				Description: "Check an existing artifact against its source",
				Command:     "huff verify notes.txt notes.txt.huff",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("verify", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if err := requireArgs("verify", args, 1, 2); err != nil {
				return err
			}
			artifactPath := ""
			if len(args) == 2 {
				artifactPath = args[1]
			}
			return runVerify(env, args[0], artifactPath, &params)
		},
	}
}

func runVerify(env *Environment, inputPath, artifactPath string, params *verifyParams) error {
	_, logger, err := params.setup(env, "verify")
	if err != nil {
		return err
	}

	original, err := readInput(env, inputPath)
	if err != nil {
		return err
	}

	var encoded []byte
	if artifactPath != "" {
		encoded, err = readInput(env, artifactPath)
		if err != nil {
			return err
		}
	} else {
		encoded, err = huffman.Compress(original)
		if err != nil {
			return cli.Internal("compressing %s: %w", inputPath, err)
		}
	}

	decoded, err := huffman.Decompress(encoded)
	if err != nil {
		return cli.Corrupt("decompressing: %w", err)
	}

	want := digest.Sum(original)
	got := digest.Sum(decoded)
	logger.Debug("verified",
		"input", inputPath,
		"artifact", artifactPath,
		"want", digest.Format(want),
		"got", digest.Format(got),
	)

	if got != want {
		fmt.Fprintf(env.Stdout, "MISMATCH  %s  input %s, decoded %s (%d bytes, want %d)\n",
			inputPath, digest.Short(want), digest.Short(got), len(decoded), len(original))
		return &cli.ExitError{Code: cli.ExitFailure}
	}
	_, err = fmt.Fprintf(env.Stdout, "ok  %s  %s  %d -> %d bytes\n",
		inputPath, digest.Short(want), len(original), len(encoded))
	return err
}
