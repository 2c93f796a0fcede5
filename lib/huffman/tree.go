// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

import "container/heap"

// NodeID is a handle to a node in a [Tree]'s arena.
type NodeID int32

// NoNode is the handle of an absent node: the root of an empty tree,
// or a missing branch in a tree rebuilt from an incomplete code table.
const NoNode NodeID = -1

type nodeKind uint8

const (
	internalNode nodeKind = iota
	leafNode
)

// node is either a leaf (value set, children unused) or an internal
// node (children set, value unused). The kind tag is the only thing
// that distinguishes them; a zero value byte is a valid leaf value.
type node struct {
	kind     nodeKind
	value    byte
	children [2]NodeID
}

// Tree is a binary prefix tree stored as an arena of nodes. Subtrees
// are referenced by handle, each owned by exactly one parent slot.
// Trees are immutable once [BuildTree] or [TreeFromCodes] returns.
type Tree struct {
	nodes []node
	root  NodeID
}

// BuildTree builds a Huffman tree for the given frequencies. The
// returned tree is empty (Root() == NoNode) when frequencies is empty,
// and a single leaf when it has exactly one entry.
//
// The two lightest subtrees are merged repeatedly; the first one
// removed from the heap becomes the left child. Equal weights are
// ordered by the smallest byte value in each subtree, which is a strict
// total order because subtrees never share leaves.
func BuildTree(frequencies FrequencyTable) *Tree {
	tree := &Tree{root: NoNode}
	if len(frequencies) == 0 {
		return tree
	}

	tree.nodes = make([]node, 0, 2*len(frequencies)-1)
	queue := make(mergeQueue, 0, len(frequencies))
	for _, value := range frequencies.Values() {
		queue = append(queue, mergeItem{
			id:       tree.addLeaf(value),
			weight:   frequencies[value],
			smallest: value,
		})
	}
	heap.Init(&queue)

	for queue.Len() > 1 {
		first := heap.Pop(&queue).(mergeItem)
		second := heap.Pop(&queue).(mergeItem)
		heap.Push(&queue, mergeItem{
			id:       tree.addInternal(first.id, second.id),
			weight:   first.weight + second.weight,
			smallest: min(first.smallest, second.smallest),
		})
	}

	tree.root = queue[0].id
	return tree
}

// Root returns the root handle, or NoNode for an empty tree.
func (t *Tree) Root() NodeID { return t.root }

// Len returns the number of nodes (leaves and internal) in the tree.
func (t *Tree) Len() int { return len(t.nodes) }

// IsLeaf reports whether id refers to a leaf.
func (t *Tree) IsLeaf(id NodeID) bool {
	return id != NoNode && t.nodes[id].kind == leafNode
}

// Value returns the byte value held by a leaf. ok is false for
// internal nodes and NoNode.
func (t *Tree) Value(id NodeID) (value byte, ok bool) {
	if !t.IsLeaf(id) {
		return 0, false
	}
	return t.nodes[id].value, true
}

// Child returns the left (bit 0) or right (bit 1) child of an internal
// node. Returns NoNode for leaves, NoNode, and missing branches.
func (t *Tree) Child(id NodeID, bit byte) NodeID {
	if id == NoNode || t.nodes[id].kind == leafNode {
		return NoNode
	}
	return t.nodes[id].children[bit&1]
}

// LeafCount returns the number of leaves, which equals the number of
// distinct symbols the tree encodes.
func (t *Tree) LeafCount() int {
	var count int
	for _, n := range t.nodes {
		if n.kind == leafNode {
			count++
		}
	}
	return count
}

// Depth returns the length of the longest root-to-leaf path. A
// single-leaf tree has depth 0; an empty tree has depth -1.
func (t *Tree) Depth() int {
	if t.root == NoNode {
		return -1
	}
	type frame struct {
		id    NodeID
		depth int
	}
	deepest := 0
	stack := []frame{{t.root, 0}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.nodes[top.id]
		if n.kind == leafNode {
			deepest = max(deepest, top.depth)
			continue
		}
		for _, child := range n.children {
			if child != NoNode {
				stack = append(stack, frame{child, top.depth + 1})
			}
		}
	}
	return deepest
}

func (t *Tree) addLeaf(value byte) NodeID {
	t.nodes = append(t.nodes, node{kind: leafNode, value: value, children: [2]NodeID{NoNode, NoNode}})
	return NodeID(len(t.nodes) - 1)
}

func (t *Tree) addInternal(left, right NodeID) NodeID {
	t.nodes = append(t.nodes, node{kind: internalNode, children: [2]NodeID{left, right}})
	return NodeID(len(t.nodes) - 1)
}

// insert adds value as a leaf at the end of code's path, creating
// internal nodes along the way. The root must already exist and be
// internal. Fails with ErrConflictingCode if the path runs through an
// existing leaf or ends on an occupied position.
func (t *Tree) insert(code Code, value byte) error {
	current := t.root
	for i := 0; i < code.Len(); i++ {
		bit := code.Bit(i)
		next := t.nodes[current].children[bit]
		last := i == code.Len()-1

		switch {
		case last && next != NoNode:
			if t.nodes[next].kind == leafNode {
				return formatError(ErrConflictingCode, -1, "code %s for byte 0x%02x is already assigned to byte 0x%02x",
					code, value, t.nodes[next].value)
			}
			return formatError(ErrConflictingCode, -1, "code %s for byte 0x%02x is a prefix of another code",
				code, value)

		case last:
			leaf := t.addLeaf(value)
			t.nodes[current].children[bit] = leaf

		case next == NoNode:
			internal := t.addInternal(NoNode, NoNode)
			t.nodes[current].children[bit] = internal
			current = internal

		case t.nodes[next].kind == leafNode:
			return formatError(ErrConflictingCode, -1, "code %s for byte 0x%02x extends code %s of byte 0x%02x",
				code, value, code.Prefix(i+1), t.nodes[next].value)

		default:
			current = next
		}
	}
	return nil
}

// mergeItem is a heap entry for tree construction: a subtree handle,
// its total weight, and the smallest byte value among its leaves (the
// tie-break key).
type mergeItem struct {
	id       NodeID
	weight   uint64
	smallest byte
}

// mergeQueue implements heap.Interface as a min-heap ordered by
// weight, then by smallest contained byte value.
type mergeQueue []mergeItem

func (q mergeQueue) Len() int { return len(q) }

func (q mergeQueue) Less(i, j int) bool {
	if q[i].weight != q[j].weight {
		return q[i].weight < q[j].weight
	}
	return q[i].smallest < q[j].smallest
}

func (q mergeQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *mergeQueue) Push(x any) { *q = append(*q, x.(mergeItem)) }

func (q *mergeQueue) Pop() any {
	old := *q
	item := old[len(old)-1]
	*q = old[:len(old)-1]
	return item
}
