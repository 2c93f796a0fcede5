// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package fileio reads command inputs and writes command outputs
// atomically.
//
// An output file is either absent or complete: data is written to a
// temporary file in the destination directory and renamed into place,
// so an interrupted compress never leaves a truncated artifact behind.
package fileio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// StdioPath is the path that names standard input or standard output.
const StdioPath = "-"

// ErrExists is returned by [WriteAll] when the destination exists and
// overwriting was not requested.
var ErrExists = errors.New("output file already exists")

// ReadAll returns the contents of path, or of stdin when path is "-".
func ReadAll(path string, stdin io.Reader) ([]byte, error) {
	if path == StdioPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// WriteOptions controls [WriteAll].
type WriteOptions struct {
	// Mode is the permission of the created file.
	Mode os.FileMode

	// Overwrite allows replacing an existing file.
	Overwrite bool
}

// WriteAll writes data to path atomically. The existence check and the
// rename are not a single operation: a file created at path between
// them is replaced.
func WriteAll(path string, data []byte, options WriteOptions) error {
	if !options.Overwrite {
		if _, err := os.Lstat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrExists, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", path, err)
		}
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmpFile.Chmod(options.Mode); err != nil {
		tmpFile.Close()
		return fmt.Errorf("setting mode on %s: %w", path, err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file for %s: %w", path, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", path, err)
	}

	success = true
	return nil
}
