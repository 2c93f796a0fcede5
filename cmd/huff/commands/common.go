// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bureau-foundation/huff/cmd/huff/cli"
	"github.com/bureau-foundation/huff/lib/codec"
	"github.com/bureau-foundation/huff/lib/config"
	"github.com/bureau-foundation/huff/lib/fileio"
	"github.com/bureau-foundation/huff/lib/huffman"
)

// commonParams are the flags every file-processing command accepts.
type commonParams struct {
	ConfigPath string `flag:"config" desc:"YAML config file (default: $HUFF_CONFIG, then built-in defaults)"`
	LogLevel   string `flag:"log-level" desc:"log level: debug, info, warn, error (overrides config)"`
}

// setup loads the configuration and builds the command logger. Flag
// values override the config file.
func (p *commonParams) setup(env *Environment, command string) (*config.Config, *slog.Logger, error) {
	var cfg *config.Config
	var err error
	if p.ConfigPath != "" {
		cfg, err = config.LoadFile(p.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, nil, cli.Validation("%w", err)
	}

	if p.LogLevel != "" {
		cfg.Log.Level = p.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, cli.Validation("invalid configuration: %w", err)
	}

	level, _ := cfg.LogLevel()
	logger := cli.NewCommandLogger(env.Stderr, level).With("command", command)
	return cfg, logger, nil
}

// writeOptions derives file write options from the config and --force.
func writeOptions(cfg *config.Config, force bool) fileio.WriteOptions {
	// Validate has already checked the mode.
	mode, _ := cfg.FileMode()
	return fileio.WriteOptions{Mode: mode, Overwrite: force || cfg.Output.Overwrite}
}

// requireArgs checks the positional argument count.
func requireArgs(command string, args []string, minimum, maximum int) error {
	if len(args) >= minimum && len(args) <= maximum {
		return nil
	}
	var expected string
	switch {
	case minimum == maximum:
		expected = fmt.Sprintf("%d argument(s)", minimum)
	default:
		expected = fmt.Sprintf("%d to %d arguments", minimum, maximum)
	}
	return cli.Validation("expected %s, got %d", expected, len(args)).
		WithHint(fmt.Sprintf("Run 'huff %s --help' for usage.", command))
}

// readInput reads a named file or standard input.
func readInput(env *Environment, path string) ([]byte, error) {
	data, err := fileio.ReadAll(path, env.Stdin)
	if err != nil {
		return nil, classify(err)
	}
	return data, nil
}

// writeOutput writes data to a named file, or to standard output when
// path is "-".
func writeOutput(env *Environment, path string, data []byte, options fileio.WriteOptions) error {
	if path == fileio.StdioPath {
		if _, err := env.Stdout.Write(data); err != nil {
			return cli.Internal("writing standard output: %w", err)
		}
		return nil
	}
	if err := fileio.WriteAll(path, data, options); err != nil {
		return classify(err)
	}
	return nil
}

// classify maps library errors onto CLI error categories.
func classify(err error) error {
	var toolErr *cli.ToolError
	switch {
	case errors.As(err, &toolErr):
		return err
	case errors.Is(err, os.ErrNotExist):
		return cli.NotFound("%w", err)
	case errors.Is(err, fileio.ErrExists):
		return cli.Conflict("%w", err).WithHint("Pass --force to overwrite it.")
	case errors.Is(err, huffman.ErrMalformedHeader),
		errors.Is(err, huffman.ErrConflictingCode),
		errors.Is(err, huffman.ErrTruncatedPayload),
		errors.Is(err, huffman.ErrCorruptPayload):
		return cli.Corrupt("%w", err)
	default:
		return cli.Internal("%w", err)
	}
}

// emitReport renders report in the named format.
func emitReport(w io.Writer, report *huffman.Report, format string) error {
	switch format {
	case config.FormatText:
		return report.WriteText(w)
	case config.FormatJSON:
		return cli.WriteJSON(w, report)
	case config.FormatCBOR:
		data, err := codec.Marshal(report)
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return cli.Validation("unknown report format %q (want one of %s)",
			format, strings.Join(config.ReportFormats, ", "))
	}
}

// renderReport returns the report rendered in the named format.
func renderReport(report *huffman.Report, format string) ([]byte, error) {
	var buffer bytes.Buffer
	if err := emitReport(&buffer, report, format); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
