// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/huff/cmd/huff/cli"
	"github.com/bureau-foundation/huff/lib/compare"
)

type compareParams struct {
	commonParams
	cli.JSONOutput
	Codecs []string `flag:"codecs" desc:"comma-separated codecs to run (default from config)"`
}

func compareCommand(env *Environment) *cli.Command {
	var params compareParams

	return &cli.Command{
		Name:    "compare",
		Summary: "Compare Huffman against LZ4, zstd and DEFLATE",
		Description: fmt.Sprintf(`Compress INPUT with each codec, decompress it again, and print the
compressed size, ratio, and timings. Every codec is round-tripped, and
the LOSSLESS column reports whether it reproduced the input.

A codec that cannot shrink the input is shown as incompressible.
Available codecs: %s.`, strings.Join(compare.Names(), ", ")),
		Usage: "huff compare INPUT [flags]",
		Examples: []cli.Example{
			{
				Description: "Compare all configured codecs",
				Command:     "huff compare notes.txt",
			},
			{
				Description: "Compare two codecs, as JSON",
				Command:     "huff compare notes.txt --codecs huffman,zstd --json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("compare", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if err := requireArgs("compare", args, 1, 1); err != nil {
				return err
			}
			return runCompare(ctx, env, args[0], &params)
		},
	}
}

func runCompare(ctx context.Context, env *Environment, path string, params *compareParams) error {
	cfg, logger, err := params.setup(env, "compare")
	if err != nil {
		return err
	}

	names := params.Codecs
	if len(names) == 0 {
		names = cfg.Compare.Codecs
	}
	codecs, err := compare.LookupAll(names)
	if err != nil {
		return cli.Validation("%w", err)
	}

	data, err := readInput(env, path)
	if err != nil {
		return err
	}

	results, err := compare.Run(ctx, data, codecs, env.Clock)
	if err != nil {
		return cli.Internal("comparing codecs on %s: %w", path, err)
	}
	logger.Debug("compared codecs", "input", path, "codecs", len(results))

	if done, err := params.EmitJSON(env.Stdout, results); done {
		return err
	}

	writer := tabwriter.NewWriter(env.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "CODEC\tSIZE\tRATIO\tCOMPRESS\tDECOMPRESS\tLOSSLESS\n")
	for _, result := range results {
		if result.Incompressible {
			fmt.Fprintf(writer, "%s\tincompressible\t-\t%s\t-\t-\n",
				result.Codec, formatDuration(result.CompressTime))
			continue
		}
		lossless := "yes"
		if !result.Lossless {
			lossless = "NO"
		}
		fmt.Fprintf(writer, "%s\t%d\t%.3f\t%s\t%s\t%s\n",
			result.Codec,
			result.CompressedSize,
			result.Ratio,
			formatDuration(result.CompressTime),
			formatDuration(result.DecompressTime),
			lossless,
		)
	}
	return writer.Flush()
}

// formatDuration rounds to microseconds for display.
func formatDuration(duration time.Duration) string {
	return duration.Round(time.Microsecond).String()
}
