// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

import "fmt"

// CodeEntry pairs a byte value with its code.
type CodeEntry struct {
	Value byte
	Code  Code
}

// CodeTable maps byte values to codes. Entries keep their insertion
// order, which is the order the container header lists them in.
type CodeTable struct {
	entries []CodeEntry

	// index[v] is 1 + the position of v in entries, or 0 if absent.
	index [256]uint16
}

// NewCodeTable returns an empty table.
func NewCodeTable() *CodeTable {
	return &CodeTable{}
}

// Add appends an entry. Fails with ErrConflictingCode if value already
// has a code. Prefix conflicts between codes are not checked here; see
// [CodeTable.Validate] and [TreeFromCodes]. Errors are *FormatError with
// no offset; callers reading a header fill in the position.
func (t *CodeTable) Add(value byte, code Code) error {
	if t.index[value] != 0 {
		existing := t.entries[t.index[value]-1].Code
		return formatError(ErrConflictingCode, -1,
			"byte 0x%02x has codes %s and %s", value, existing, code)
	}
	if code.Len() == 0 {
		return formatError(ErrMalformedHeader, -1, "byte 0x%02x has an empty code", value)
	}
	t.entries = append(t.entries, CodeEntry{Value: value, Code: code})
	t.index[value] = uint16(len(t.entries))
	return nil
}

func mustAdd(table *CodeTable, value byte, code Code) {
	if err := table.Add(value, code); err != nil {
		panic(fmt.Sprintf("huffman: extracting codes: %v", err))
	}
}

// Lookup returns the code for value.
func (t *CodeTable) Lookup(value byte) (Code, bool) {
	position := t.index[value]
	if position == 0 {
		return Code{}, false
	}
	return t.entries[position-1].Code, true
}

// Len returns the number of entries.
func (t *CodeTable) Len() int { return len(t.entries) }

// Entries returns the entries in insertion order. The returned slice
// must not be modified.
func (t *CodeTable) Entries() []CodeEntry { return t.entries }

// HeaderSize returns the number of bytes the table occupies in a
// container header: two bytes per entry plus one per code bit.
func (t *CodeTable) HeaderSize() int {
	size := 0
	for _, entry := range t.entries {
		size += 2 + entry.Code.Len()
	}
	return size
}

// Validate checks that no code is a prefix of (or equal to) another.
// Tables produced by [ExtractCodes] always pass.
func (t *CodeTable) Validate() error {
	for i, first := range t.entries {
		for _, second := range t.entries[i+1:] {
			if first.Code.HasPrefix(second.Code) || second.Code.HasPrefix(first.Code) {
				return fmt.Errorf("%w: code %s (byte 0x%02x) and code %s (byte 0x%02x) are not prefix-free",
					ErrConflictingCode, first.Code, first.Value, second.Code, second.Value)
			}
		}
	}
	return nil
}

// ExtractCodes walks tree depth-first, left (0) before right (1), and
// returns one code per leaf in visit order. A tree consisting of a
// single leaf yields the one-bit code "0" for that leaf; an empty tree
// yields an empty table. Panics if two leaves hold the same byte, which
// no tree built by this package can contain.
func ExtractCodes(tree *Tree) *CodeTable {
	table := NewCodeTable()
	root := tree.Root()
	if root == NoNode {
		return table
	}
	if value, ok := tree.Value(root); ok {
		var code Code
		code.push(0)
		mustAdd(table, value, code)
		return table
	}

	// Each frame records the node to visit, its depth, and the bit on
	// the edge leading to it. The single path buffer is cut back to the
	// parent's depth before the edge bit is appended.
	type frame struct {
		id    NodeID
		depth int
		bit   byte
	}
	var path Code
	stack := []frame{{id: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.depth > 0 {
			path.truncate(top.depth - 1)
			path.push(top.bit)
		}

		if value, ok := tree.Value(top.id); ok {
			mustAdd(table, value, path)
			continue
		}
		if right := tree.Child(top.id, 1); right != NoNode {
			stack = append(stack, frame{id: right, depth: top.depth + 1, bit: 1})
		}
		if left := tree.Child(top.id, 0); left != NoNode {
			stack = append(stack, frame{id: left, depth: top.depth + 1, bit: 0})
		}
	}
	return table
}

// TreeFromCodes rebuilds the prefix tree described by table by
// inserting each code as a root-to-leaf path. The result may be
// incomplete (an internal node with one missing branch) when the table
// does not describe a full binary tree, as in the single-symbol case.
// An empty table yields an empty tree.
func TreeFromCodes(table *CodeTable) (*Tree, error) {
	tree := &Tree{root: NoNode}
	if table.Len() == 0 {
		return tree, nil
	}

	tree.nodes = make([]node, 0, 2*table.Len())
	tree.root = tree.addInternal(NoNode, NoNode)
	for _, entry := range table.Entries() {
		if err := tree.insert(entry.Code, entry.Value); err != nil {
			return nil, err
		}
	}
	return tree, nil
}
