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

type inspectParams struct {
	commonParams
	Format string `flag:"format" desc:"output format: text, json, cbor (default from config)"`
	Raw    bool   `flag:"raw" desc:"treat FILE as uncompressed input and report the code it would get"`
}

func inspectCommand(env *Environment) *cli.Command {
	var params inspectParams

	return &cli.Command{
		Name:    "inspect",
		Summary: "Print the code table of an artifact",
		Description: `Print the code report for a Huffman artifact: every coded byte with
its frequency and code, most frequent first, under the average code
length in bits per symbol.

The artifact is fully decoded to recover the frequencies, so inspect
also validates it. With --raw, FILE is treated as uncompressed input
and the report shows the code compress would assign.`,
		Usage: "huff inspect FILE [flags]",
		Examples: []cli.Example{
			{
				Description: "Show the code table of an artifact",
				Command:     "huff inspect notes.txt.huff",
			},
			{
				Description: "Preview the code for a file as CBOR",
				Command:     "huff inspect --raw --format cbor notes.txt > report.cbor",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("inspect", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if err := requireArgs("inspect", args, 1, 1); err != nil {
				return err
			}
			return runInspect(env, args[0], &params)
		},
	}
}

func runInspect(env *Environment, path string, params *inspectParams) error {
	cfg, logger, err := params.setup(env, "inspect")
	if err != nil {
		return err
	}
	format := params.Format
	if format == "" {
		format = cfg.Report.Format
	}

	data, err := readInput(env, path)
	if err != nil {
		return err
	}

	report, err := buildReport(data, params.Raw)
	if err != nil {
		return cli.Corrupt("inspecting %s: %w", path, err)
	}
	if err := emitReport(env.Stdout, report, format); err != nil {
		return err
	}

	logger.Debug("inspected",
		"input", path,
		"raw", params.Raw,
		"symbols", len(report.Symbols),
	)
	return nil
}

// buildReport produces the code report for raw input, or for an
// artifact by decoding it and counting the recovered bytes.
func buildReport(data []byte, raw bool) (*huffman.Report, error) {
	if raw {
		artifact, frequencies, err := huffman.Encode(data)
		if err != nil {
			return nil, err
		}
		report := huffman.NewReport(frequencies, artifact)
		report.Digest = digest.Format(digest.Sum(data))
		return report, nil
	}

	artifact, err := huffman.ParseArtifact(data)
	if err != nil {
		return nil, err
	}
	original, err := artifact.Decode()
	if err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}
	report := huffman.NewReport(huffman.CountFrequencies(original), artifact)
	report.Digest = digest.Format(digest.Sum(original))
	return report, nil
}
