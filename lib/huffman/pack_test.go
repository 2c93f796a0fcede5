// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

import (
	"bytes"
	"errors"
	"testing"
)

func twoSymbolTable(t *testing.T) *CodeTable {
	t.Helper()
	table := NewCodeTable()
	if err := table.Add('a', mustParseCode(t, "0")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := table.Add('b', mustParseCode(t, "1")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	return table
}

func TestPack(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantPayload []byte
		wantPadding uint8
	}{
		{"two bits", "ab", []byte{0x40}, 6},
		{"exact byte", "abababab", []byte{0x55}, 0},
		{"spills into second byte", "bbbbbbbbb", []byte{0xFF, 0x80}, 7},
		{"empty", "", []byte{}, 0},
	}

	table := twoSymbolTable(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, padding, err := Pack([]byte(tt.input), table)
			if err != nil {
				t.Fatalf("Pack failed: %v", err)
			}
			if !bytes.Equal(payload, tt.wantPayload) {
				t.Errorf("payload = %x, want %x", payload, tt.wantPayload)
			}
			if padding != tt.wantPadding {
				t.Errorf("padding = %d, want %d", padding, tt.wantPadding)
			}
		})
	}
}

func TestPackUnknownSymbol(t *testing.T) {
	_, _, err := Pack([]byte("abc"), twoSymbolTable(t))
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("Pack error = %v, want ErrUnknownSymbol", err)
	}
}

func TestUnpack(t *testing.T) {
	table := twoSymbolTable(t)
	tree, err := TreeFromCodes(table)
	if err != nil {
		t.Fatalf("TreeFromCodes failed: %v", err)
	}

	output, err := Unpack([]byte{0x40}, 6, tree)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if string(output) != "ab" {
		t.Errorf("Unpack = %q, want \"ab\"", output)
	}
}

func TestUnpackBuiltSingleLeafTree(t *testing.T) {
	tree := BuildTree(FrequencyTable{'z': 3})

	output, err := Unpack([]byte{0x00}, 5, tree)
	if err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}
	if string(output) != "zzz" {
		t.Errorf("Unpack = %q, want \"zzz\"", output)
	}

	_, err = Unpack([]byte{0x80}, 7, tree)
	if !errors.Is(err, ErrCorruptPayload) {
		t.Errorf("Unpack of a 1 bit error = %v, want ErrCorruptPayload", err)
	}
}

func TestUnpackErrors(t *testing.T) {
	// a=0 b=10 c=11
	table := NewCodeTable()
	for _, entry := range []struct {
		value byte
		code  string
	}{{'a', "0"}, {'b', "10"}, {'c', "11"}} {
		if err := table.Add(entry.value, mustParseCode(t, entry.code)); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}
	tree, err := TreeFromCodes(table)
	if err != nil {
		t.Fatalf("TreeFromCodes failed: %v", err)
	}

	tests := []struct {
		name    string
		payload []byte
		padding uint8
		want    error
	}{
		{"padding out of range", []byte{0x00}, 8, ErrMalformedHeader},
		{"empty payload with padding", []byte{}, 3, ErrTruncatedPayload},
		{"empty payload with codes", []byte{}, 0, ErrTruncatedPayload},
		{"nil payload with codes", nil, 0, ErrTruncatedPayload},
		{"ends mid-code", []byte{0x80}, 7, ErrTruncatedPayload},
		{"padding bits set", []byte{0x01}, 1, ErrTruncatedPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := Unpack(tt.payload, tt.padding, tree)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Unpack error = %v, want %v", err, tt.want)
			}
			if output != nil {
				t.Errorf("Unpack returned %d bytes alongside an error", len(output))
			}
		})
	}
}

func TestUnpackEmptyTree(t *testing.T) {
	tree := BuildTree(FrequencyTable{})

	output, err := Unpack(nil, 0, tree)
	if err != nil {
		t.Fatalf("Unpack of empty payload failed: %v", err)
	}
	if len(output) != 0 {
		t.Errorf("Unpack returned %d bytes, want 0", len(output))
	}

	if _, err := Unpack([]byte{0x00}, 0, tree); !errors.Is(err, ErrMalformedHeader) {
		t.Errorf("Unpack of data with empty tree error = %v, want ErrMalformedHeader", err)
	}
}
