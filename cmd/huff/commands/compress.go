// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/huff/cmd/huff/cli"
	"github.com/bureau-foundation/huff/lib/digest"
	"github.com/bureau-foundation/huff/lib/fileio"
	"github.com/bureau-foundation/huff/lib/huffman"
)

type compressParams struct {
	commonParams
	Output       string `flag:"output,o" desc:"output path (default: INPUT plus the configured suffix, - for stdout)"`
	Report       string `flag:"report" desc:"write the code report to this path (- for stdout)"`
	ReportFormat string `flag:"report-format" desc:"report format: text, json, cbor (default from config)"`
	Force        bool   `flag:"force,f" desc:"overwrite existing output files"`
}

func compressCommand(env *Environment) *cli.Command {
	var params compressParams

	return &cli.Command{
		Name:    "compress",
		Summary: "Compress a file with a static Huffman code",
		Description: `Compress INPUT with a Huffman code built from its byte frequencies.

The container written holds the code table followed by the packed
bits, so it decodes without any side information. INPUT may be "-" to
read standard input, in which case the artifact goes to standard
output unless -o is given.

With --report, the code table is also written as a report listing each
byte's frequency and code, the average code length, and the BLAKE3
digest of the input.`,
		Usage: "huff compress INPUT [flags]",
		Examples: []cli.Example{
			{
				Description: "Compress to notes.txt.huff",
				Command:     "huff compress notes.txt",
			},
			{
				Description: "Compress a stream and print the code report as JSON",
				Command:     "cat notes.txt | huff compress - -o notes.huff --report - --report-format json",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("compress", &params)
		},
		Run: func(ctx context.Context, args []string) error {
			if err := requireArgs("compress", args, 1, 1); err != nil {
				return err
			}
			return runCompress(env, args[0], &params)
		},
	}
}

func runCompress(env *Environment, inputPath string, params *compressParams) error {
	cfg, logger, err := params.setup(env, "compress")
	if err != nil {
		return err
	}

	outputPath := params.Output
	if outputPath == "" {
		if inputPath == fileio.StdioPath {
			outputPath = fileio.StdioPath
		} else {
			outputPath = inputPath + cfg.Output.Suffix
		}
	}
	reportPath := params.Report
	if reportPath == "" {
		reportPath = cfg.Report.Path
	}
	reportFormat := params.ReportFormat
	if reportFormat == "" {
		reportFormat = cfg.Report.Format
	}
	if outputPath == fileio.StdioPath && reportPath == fileio.StdioPath {
		return cli.Validation("the artifact and the report cannot both go to standard output")
	}

	data, err := readInput(env, inputPath)
	if err != nil {
		return err
	}

	artifact, frequencies, err := huffman.Encode(data)
	if err != nil {
		return cli.Internal("encoding %s: %w", inputPath, err)
	}
	encoded, err := artifact.MarshalBinary()
	if err != nil {
		return cli.Internal("serializing artifact: %w", err)
	}

	// The report is rendered before anything is written so that a bad
	// format leaves no partial output behind.
	var reportData []byte
	if reportPath != "" {
		report := huffman.NewReport(frequencies, artifact)
		report.Digest = digest.Format(digest.Sum(data))
		reportData, err = renderReport(report, reportFormat)
		if err != nil {
			return err
		}
	}

	options := writeOptions(cfg, params.Force)
	if err := writeOutput(env, outputPath, encoded, options); err != nil {
		return err
	}
	if reportData != nil {
		if err := writeOutput(env, reportPath, reportData, options); err != nil {
			return err
		}
	}

	logger.Info("compressed",
		"input", inputPath,
		"output", outputPath,
		"input_size", len(data),
		"compressed_size", len(encoded),
		"symbols", artifact.Table.Len(),
	)
	return nil
}
