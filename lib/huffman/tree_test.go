// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

import (
	"errors"
	"testing"
)

func TestCountFrequencies(t *testing.T) {
	frequencies := CountFrequencies([]byte("hello"))

	want := map[byte]uint64{'h': 1, 'e': 1, 'l': 2, 'o': 1}
	if len(frequencies) != len(want) {
		t.Fatalf("got %d entries, want %d", len(frequencies), len(want))
	}
	for value, count := range want {
		if frequencies[value] != count {
			t.Errorf("count of %q = %d, want %d", value, frequencies[value], count)
		}
	}
	if frequencies.Total() != 5 {
		t.Errorf("Total = %d, want 5", frequencies.Total())
	}

	values := frequencies.Values()
	wantValues := []byte{'e', 'h', 'l', 'o'}
	if string(values) != string(wantValues) {
		t.Errorf("Values = %q, want %q", values, wantValues)
	}
}

func TestCountFrequenciesEmpty(t *testing.T) {
	frequencies := CountFrequencies(nil)
	if len(frequencies) != 0 {
		t.Errorf("got %d entries for empty input, want 0", len(frequencies))
	}
	if frequencies.Total() != 0 {
		t.Errorf("Total = %d, want 0", frequencies.Total())
	}
}

func TestBuildTreeEmpty(t *testing.T) {
	tree := BuildTree(FrequencyTable{})
	if tree.Root() != NoNode {
		t.Errorf("Root = %d, want NoNode", tree.Root())
	}
	if tree.Len() != 0 {
		t.Errorf("Len = %d, want 0", tree.Len())
	}
	if tree.Depth() != -1 {
		t.Errorf("Depth = %d, want -1", tree.Depth())
	}
	if table := ExtractCodes(tree); table.Len() != 0 {
		t.Errorf("ExtractCodes on empty tree returned %d entries", table.Len())
	}
}

func TestBuildTreeSingleLeaf(t *testing.T) {
	tree := BuildTree(FrequencyTable{'x': 7})
	root := tree.Root()
	value, ok := tree.Value(root)
	if !ok || value != 'x' {
		t.Fatalf("root Value = (%q, %v), want ('x', true)", value, ok)
	}
	if tree.Child(root, 0) != NoNode || tree.Child(root, 1) != NoNode {
		t.Error("leaf root reports children")
	}
	if tree.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", tree.Depth())
	}
}

func TestBuildTreeShape(t *testing.T) {
	tree := BuildTree(CountFrequencies([]byte("abracadabra")))

	if tree.LeafCount() != 5 {
		t.Errorf("LeafCount = %d, want 5", tree.LeafCount())
	}
	if tree.Len() != 9 {
		t.Errorf("Len = %d, want 9 (5 leaves + 4 internal)", tree.Len())
	}
	if tree.Depth() != 4 {
		t.Errorf("Depth = %d, want 4", tree.Depth())
	}

	// Every internal node of a built tree has both children.
	for id := NodeID(0); int(id) < tree.Len(); id++ {
		if tree.IsLeaf(id) {
			continue
		}
		if tree.Child(id, 0) == NoNode || tree.Child(id, 1) == NoNode {
			t.Errorf("internal node %d is missing a child", id)
		}
	}

	want := map[byte]string{'a': "0", 'r': "10", 'b': "110", 'c': "1110", 'd': "1111"}
	table := ExtractCodes(tree)
	for value, code := range want {
		got, ok := table.Lookup(value)
		if !ok {
			t.Errorf("no code for %q", value)
			continue
		}
		if got.String() != code {
			t.Errorf("code for %q = %s, want %s", value, got, code)
		}
	}

	// Extraction visits left before right, so header order is a r b c d.
	var order []byte
	for _, entry := range table.Entries() {
		order = append(order, entry.Value)
	}
	if string(order) != "arbcd" {
		t.Errorf("entry order = %q, want \"arbcd\"", order)
	}
}

func TestBuildTreeTieBreak(t *testing.T) {
	// All weights equal: merges pair subtrees by smallest byte value,
	// giving a balanced tree with codes assigned in value order.
	tree := BuildTree(FrequencyTable{'d': 1, 'c': 1, 'b': 1, 'a': 1})
	table := ExtractCodes(tree)

	want := map[byte]string{'a': "00", 'b': "01", 'c': "10", 'd': "11"}
	for value, code := range want {
		got, _ := table.Lookup(value)
		if got.String() != code {
			t.Errorf("code for %q = %s, want %s", value, got, code)
		}
	}
}

func TestBuildTreeDeep(t *testing.T) {
	// Power-of-two weights produce a maximally skewed tree: each merge
	// combines the accumulated subtree with the next single leaf.
	frequencies := FrequencyTable{0: 1}
	for value := 1; value < 64; value++ {
		frequencies[byte(value)] = 1 << (value - 1)
	}

	tree := BuildTree(frequencies)
	if tree.Depth() != 63 {
		t.Errorf("Depth = %d, want 63", tree.Depth())
	}

	table := ExtractCodes(tree)
	if err := table.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	longest, _ := table.Lookup(0)
	if longest.Len() != 63 {
		t.Errorf("code length for byte 0 = %d, want 63", longest.Len())
	}
	heaviest, _ := table.Lookup(63)
	if heaviest.Len() != 1 {
		t.Errorf("code length for byte 63 = %d, want 1", heaviest.Len())
	}

	rebuilt, err := TreeFromCodes(table)
	if err != nil {
		t.Fatalf("TreeFromCodes: %v", err)
	}
	if rebuilt.Depth() != 63 || rebuilt.LeafCount() != 64 {
		t.Errorf("rebuilt tree depth %d with %d leaves, want 63 and 64", rebuilt.Depth(), rebuilt.LeafCount())
	}
}

func TestTreeFromCodesMatchesTable(t *testing.T) {
	table := ExtractCodes(BuildTree(CountFrequencies([]byte("mississippi river"))))
	tree, err := TreeFromCodes(table)
	if err != nil {
		t.Fatalf("TreeFromCodes: %v", err)
	}

	for _, entry := range table.Entries() {
		current := tree.Root()
		for i := 0; i < entry.Code.Len(); i++ {
			current = tree.Child(current, entry.Code.Bit(i))
			if current == NoNode {
				t.Fatalf("path %s for %q leaves the tree at bit %d", entry.Code, entry.Value, i)
			}
		}
		value, ok := tree.Value(current)
		if !ok || value != entry.Value {
			t.Errorf("path %s ends at (%q, %v), want (%q, true)", entry.Code, value, ok, entry.Value)
		}
	}
}

func TestTreeFromCodesSingleSymbol(t *testing.T) {
	table := NewCodeTable()
	if err := table.Add('A', mustParseCode(t, "0")); err != nil {
		t.Fatalf("Add: %v", err)
	}

	tree, err := TreeFromCodes(table)
	if err != nil {
		t.Fatalf("TreeFromCodes: %v", err)
	}
	root := tree.Root()
	if tree.IsLeaf(root) {
		t.Fatal("root of a rebuilt tree should be internal")
	}
	if value, ok := tree.Value(tree.Child(root, 0)); !ok || value != 'A' {
		t.Errorf("left child = (%q, %v), want ('A', true)", value, ok)
	}
	if tree.Child(root, 1) != NoNode {
		t.Error("right branch should be absent for a single-symbol table")
	}
}

func TestTreeFromCodesConflicts(t *testing.T) {
	tests := []struct {
		name  string
		codes []string
	}{
		{"same code", []string{"0", "0"}},
		{"earlier code is prefix", []string{"0", "01"}},
		{"later code is prefix", []string{"01", "0"}},
		{"deep prefix", []string{"110", "1101", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewCodeTable()
			for i, text := range tt.codes {
				if err := table.Add(byte('a'+i), mustParseCode(t, text)); err != nil {
					t.Fatalf("Add: %v", err)
				}
			}

			_, err := TreeFromCodes(table)
			if !errors.Is(err, ErrConflictingCode) {
				t.Fatalf("TreeFromCodes error = %v, want ErrConflictingCode", err)
			}
			if table.Validate() == nil {
				t.Error("Validate accepted a table TreeFromCodes rejected")
			}
		})
	}
}

func mustParseCode(t *testing.T, text string) Code {
	t.Helper()
	code, err := ParseCode(text)
	if err != nil {
		t.Fatalf("ParseCode(%q): %v", text, err)
	}
	return code
}
