// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the variable [Load] reads the config path
// from.
const EnvironmentVariable = "HUFF_CONFIG"

// Report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCBOR = "cbor"
)

// ReportFormats lists the accepted values of report.format.
var ReportFormats = []string{FormatText, FormatJSON, FormatCBOR}

// Config is the master configuration for the huff CLI.
type Config struct {
	// Output controls where and how compressed and decompressed files
	// are written.
	Output OutputConfig `yaml:"output"`

	// Report controls the code report written alongside compression.
	Report ReportConfig `yaml:"report"`

	// Log configures the command logger.
	Log LogConfig `yaml:"log"`

	// Compare configures `huff compare`.
	Compare CompareConfig `yaml:"compare"`
}

// OutputConfig controls output file naming and permissions.
type OutputConfig struct {
	// Suffix is appended to the input name by compress and stripped by
	// decompress when no explicit output path is given.
	Suffix string `yaml:"suffix"`

	// Overwrite allows replacing existing output files without --force.
	Overwrite bool `yaml:"overwrite"`

	// FileMode is the octal permission string for new output files.
	FileMode string `yaml:"file_mode"`
}

// ReportConfig controls the code report.
type ReportConfig struct {
	// Format is one of text, json, cbor.
	Format string `yaml:"format"`

	// Path, when set, makes compress write the report to this file.
	// Supports ${VAR} expansion.
	Path string `yaml:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
}

// CompareConfig configures codec comparison.
type CompareConfig struct {
	// Codecs lists the codecs to run, in output order.
	Codecs []string `yaml:"codecs"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Suffix:   ".huff",
			FileMode: "0644",
		},
		Report: ReportConfig{
			Format: FormatText,
		},
		Log: LogConfig{
			Level: "info",
		},
		Compare: CompareConfig{
			Codecs: []string{"huffman", "lz4", "zstd", "flate"},
		},
	}
}

// Load loads configuration from the file named by HUFF_CONFIG, or
// returns [Default] when the variable is unset.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merging the
// file's values over [Default].
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.expandVariables()
	return cfg, nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}
	c.Report.Path = expandVars(c.Report.Path, vars)
}

// varPattern matches ${VAR} and ${VAR:-default}.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Output.Suffix == "" {
		errs = append(errs, fmt.Errorf("output.suffix is required"))
	}
	if _, err := c.FileMode(); err != nil {
		errs = append(errs, err)
	}

	if !slices.Contains(ReportFormats, c.Report.Format) {
		errs = append(errs, fmt.Errorf("report.format must be one of: %v", ReportFormats))
	}

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	if len(c.Compare.Codecs) == 0 {
		errs = append(errs, fmt.Errorf("compare.codecs must name at least one codec"))
	}
	for index, name := range c.Compare.Codecs {
		if name == "" {
			errs = append(errs, fmt.Errorf("compare.codecs[%d] is empty", index))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// FileMode parses output.file_mode as an octal permission.
func (c *Config) FileMode() (os.FileMode, error) {
	mode, err := strconv.ParseUint(c.Output.FileMode, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("output.file_mode %q is not an octal mode: %w", c.Output.FileMode, err)
	}
	if mode&^0o777 != 0 {
		return 0, fmt.Errorf("output.file_mode %q has bits outside 0777", c.Output.FileMode)
	}
	return os.FileMode(mode), nil
}

// LogLevel parses log.level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level %q: %w", c.Log.Level, err)
	}
	return level, nil
}
