// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/huff/cmd/huff/cli"
	"github.com/bureau-foundation/huff/lib/fileio"
	"github.com/bureau-foundation/huff/lib/huffman"
)

type decompressParams struct {
	commonParams
	Output string `flag:"output,o" desc:"output path (default: INPUT without the configured suffix, - for stdout)"`
	Force  bool   `flag:"force,f" desc:"overwrite an existing output file"`
}

func decompressCommand(env *Environment) *cli.Command {
	var params decompressParams

	return &cli.Command{
		Name:    "decompress",
		Summary: "Restore the original bytes from a Huffman artifact",
		Description: `Decode a container written by "huff compress".

The output name defaults to INPUT with the configured suffix (".huff")
removed. Artifacts with a malformed header, conflicting codes, or a
damaged payload are rejected without writing any output.`,
		Usage: "huff decompress INPUT [flags]",
		Examples: []cli.Example{
			{
				Description: "Restore notes.txt",
				Command:     "huff decompress notes.txt.huff",
			},
			{
				Description: "Decode to standard output",
				Command:     "huff decompress notes.txt.huff -o -",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("decompress", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if err := requireArgs("decompress", args, 1, 1); err != nil {
				return err
			}
			return runDecompress(env, args[0], &params)
		},
	}
}

func runDecompress(env *Environment, inputPath string, params *decompressParams) error {
	cfg, logger, err := params.setup(env, "decompress")
	if err != nil {
		return err
	}

	outputPath := params.Output
	if outputPath == "" {
		switch {
		case inputPath == fileio.StdioPath:
			outputPath = fileio.StdioPath
		case strings.HasSuffix(inputPath, cfg.Output.Suffix) && len(inputPath) > len(cfg.Output.Suffix):
			outputPath = strings.TrimSuffix(inputPath, cfg.Output.Suffix)
		default:
			return cli.Validation("cannot derive an output name: %s does not end in %q", inputPath, cfg.Output.Suffix).
				WithHint("Pass -o to name the output.")
		}
	}

	data, err := readInput(env, inputPath)
	if err != nil {
		return err
	}
	output, err := huffman.Decompress(data)
	if err != nil {
		return cli.Corrupt("decompressing %s: %w", inputPath, err)
	}

	if err := writeOutput(env, outputPath, output, writeOptions(cfg, params.Force)); err != nil {
		return err
	}

	logger.Info("decompressed",
		"input", inputPath,
		"output", outputPath,
		"compressed_size", len(data),
		"output_size", len(output),
	)
	return nil
}
