// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zeebo/blake3"
)

func TestSumIsKeyed(t *testing.T) {
	content := []byte("abracadabra")
	if Sum(content) == Hash(blake3.Sum256(content)) {
		t.Error("Sum matches unkeyed BLAKE3, domain key not applied")
	}
}

func TestSumDeterministic(t *testing.T) {
	content := []byte("determinism check")
	if Sum(content) != Sum(content) {
		t.Error("Sum returned different digests for the same content")
	}
	if Sum(content) == Sum([]byte("determinism check!")) {
		t.Error("Sum returned the same digest for different content")
	}
}

func TestSumReaderMatchesSum(t *testing.T) {
	content := make([]byte, 256*1024)
	for i := range content {
		content[i] = byte(i % 251)
	}

	got, err := SumReader(bytes.NewReader(content))
	if err != nil {
		t.Fatalf("SumReader: %v", err)
	}
	if want := Sum(content); got != want {
		t.Errorf("SumReader = %x, want %x", got, want)
	}
}

func TestSumFile(t *testing.T) {
	content := []byte("hello, huff")
	path := filepath.Join(t.TempDir(), "input")
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := SumFile(path)
	if err != nil {
		t.Fatalf("SumFile: %v", err)
	}
	if want := Sum(content); got != want {
		t.Errorf("SumFile = %x, want %x", got, want)
	}
}

func TestSumFileNonexistent(t *testing.T) {
	if _, err := SumFile(filepath.Join(t.TempDir(), "does-not-exist")); err == nil {
		t.Fatal("SumFile should fail for nonexistent file")
	}
}

func TestFormatParseRoundtrip(t *testing.T) {
	original := Sum([]byte("roundtrip"))
	formatted := Format(original)
	if len(formatted) != 64 {
		t.Fatalf("Format length = %d, want 64", len(formatted))
	}

	parsed, err := Parse(formatted)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if parsed != original {
		t.Errorf("Parse(Format(x)) = %x, want %x", parsed, original)
	}

	if short := Short(original); !strings.HasPrefix(formatted, short) || len(short) != 12 {
		t.Errorf("Short = %q, want 12-character prefix of %q", short, formatted)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"not hex", "zzzz"},
		{"odd length", "abc"},
		{"too short", "abcdef"},
		{"too long", strings.Repeat("ab", 33)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.input); err == nil {
				t.Errorf("Parse(%q) should fail", tt.input)
			}
		})
	}
}
