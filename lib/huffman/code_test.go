// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

import (
	"errors"
	"strings"
	"testing"
)

func TestParseCode(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"single zero", "0", false},
		{"single one", "1", false},
		{"mixed", "1101", false},
		{"crosses word boundary", strings.Repeat("10", 40), false},
		{"maximum length", strings.Repeat("1", MaxCodeLength), false},
		{"empty", "", true},
		{"too long", strings.Repeat("0", MaxCodeLength+1), true},
		{"digit two", "012", true},
		{"space", "0 1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := ParseCode(tt.text)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseCode(%q) succeeded, want error", tt.text)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseCode(%q) failed: %v", tt.text, err)
			}
			if code.Len() != len(tt.text) {
				t.Errorf("Len = %d, want %d", code.Len(), len(tt.text))
			}
			if code.String() != tt.text {
				t.Errorf("String = %q, want %q", code.String(), tt.text)
			}
		})
	}
}

func TestCodeBit(t *testing.T) {
	code := mustParseCode(t, "1011")
	want := []byte{1, 0, 1, 1}
	for i, bit := range want {
		if got := code.Bit(i); got != bit {
			t.Errorf("Bit(%d) = %d, want %d", i, got, bit)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("Bit past the end did not panic")
		}
	}()
	code.Bit(4)
}

func TestCodePrefix(t *testing.T) {
	code := mustParseCode(t, "110100")

	if got := code.Prefix(3).String(); got != "110" {
		t.Errorf("Prefix(3) = %s, want 110", got)
	}
	if got := code.Prefix(10); got != code {
		t.Errorf("Prefix beyond length = %s, want %s", got, code)
	}

	// Truncation clears dropped bits, so equal bit strings compare equal.
	if code.Prefix(2) != mustParseCode(t, "11") {
		t.Error("Prefix(2) of 110100 does not equal parsed 11")
	}
}

func TestCodeHasPrefix(t *testing.T) {
	tests := []struct {
		code   string
		prefix string
		want   bool
	}{
		{"1101", "1", true},
		{"1101", "110", true},
		{"1101", "1101", true},
		{"1101", "0", false},
		{"1101", "111", false},
		{"11", "110", false},
	}

	for _, tt := range tests {
		code := mustParseCode(t, tt.code)
		prefix := mustParseCode(t, tt.prefix)
		if got := code.HasPrefix(prefix); got != tt.want {
			t.Errorf("%s.HasPrefix(%s) = %v, want %v", tt.code, tt.prefix, got, tt.want)
		}
	}
}

func TestCodeTableAdd(t *testing.T) {
	table := NewCodeTable()
	if err := table.Add('x', mustParseCode(t, "01")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	err := table.Add('x', mustParseCode(t, "1"))
	if !errors.Is(err, ErrConflictingCode) {
		t.Errorf("duplicate Add error = %v, want ErrConflictingCode", err)
	}
	var formatErr *FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("duplicate Add error %v is not a *FormatError", err)
	}
	if formatErr.Offset != -1 {
		t.Errorf("Offset = %d, want -1", formatErr.Offset)
	}
	if formatErr.Detail != "byte 0x78 has codes 01 and 1" {
		t.Errorf("Detail = %q", formatErr.Detail)
	}

	err = table.Add('y', Code{})
	if !errors.Is(err, ErrMalformedHeader) {
		t.Errorf("empty code Add error = %v, want ErrMalformedHeader", err)
	}

	if table.Len() != 1 {
		t.Errorf("Len = %d after rejected adds, want 1", table.Len())
	}
	if _, ok := table.Lookup('y'); ok {
		t.Error("Lookup found a rejected entry")
	}
	if table.HeaderSize() != 4 {
		t.Errorf("HeaderSize = %d, want 4", table.HeaderSize())
	}
}

func TestExtractCodesPanicsOnDuplicateLeaf(t *testing.T) {
	tree := &Tree{}
	left := tree.addLeaf('q')
	right := tree.addLeaf('q')
	tree.root = tree.addInternal(left, right)

	defer func() {
		recovered := recover()
		if recovered == nil {
			t.Fatal("ExtractCodes returned a table for a tree with two 'q' leaves")
		}
		message, ok := recovered.(string)
		if !ok || !strings.Contains(message, "byte 0x71 has codes 0 and 1") {
			t.Errorf("panic value = %v", recovered)
		}
	}()
	ExtractCodes(tree)
}

func TestCodeTableLookupZeroValue(t *testing.T) {
	// Byte 0x00 is a value like any other.
	table := NewCodeTable()
	if _, ok := table.Lookup(0); ok {
		t.Fatal("Lookup(0) found an entry in an empty table")
	}
	if err := table.Add(0, mustParseCode(t, "1")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	code, ok := table.Lookup(0)
	if !ok || code.String() != "1" {
		t.Errorf("Lookup(0) = (%s, %v), want (1, true)", code, ok)
	}
}
