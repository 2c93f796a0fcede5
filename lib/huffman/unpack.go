// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

// Unpack decodes a packed payload by walking tree one bit at a time,
// most significant bit first, emitting a byte at every leaf and
// restarting from the root. Only 8-padding bits of the final byte are
// consumed. Error offsets are relative to the start of payload.
//
// tree is normally the result of [TreeFromCodes]. A single-leaf tree
// from [BuildTree] is also accepted and decodes each 0 bit as one
// symbol, matching the code "0" that [ExtractCodes] assigns it.
func Unpack(payload []byte, padding uint8, tree *Tree) ([]byte, error) {
	return unpack(payload, padding, tree, 0)
}

// unpack is Unpack with error offsets shifted by base, so failures
// inside a container point at the artifact byte rather than the
// payload byte.
func unpack(payload []byte, padding uint8, tree *Tree, base int64) ([]byte, error) {
	if padding > 7 {
		return nil, formatError(ErrMalformedHeader, -1, "padding count %d exceeds 7", padding)
	}
	if len(payload) == 0 {
		if padding != 0 {
			return nil, formatError(ErrTruncatedPayload, base,
				"payload is empty but %d padding bits are declared", padding)
		}
		if tree.Root() != NoNode {
			return nil, formatError(ErrTruncatedPayload, base,
				"payload is empty but the code tree has %d leaves", tree.LeafCount())
		}
		return []byte{}, nil
	}

	root := tree.Root()
	if root == NoNode {
		return nil, formatError(ErrMalformedHeader, -1,
			"payload holds %d bytes but the code table is empty", len(payload))
	}
	singleLeaf := tree.IsLeaf(root)

	last := len(payload) - 1
	if mask := byte(1)<<padding - 1; payload[last]&mask != 0 {
		return nil, formatError(ErrTruncatedPayload, base+int64(last),
			"final byte 0x%02x has non-zero bits in its %d padding positions", payload[last], padding)
	}

	output := make([]byte, 0, 2*len(payload))
	current := root
	pathLength := 0
	for index, packed := range payload {
		bitCount := 8
		if index == last {
			bitCount = 8 - int(padding)
		}
		for i := 0; i < bitCount; i++ {
			bit := (packed >> (7 - uint(i))) & 1

			var next NodeID
			switch {
			case !singleLeaf:
				next = tree.Child(current, bit)
			case bit == 0:
				next = root
			default:
				next = NoNode
			}
			if next == NoNode {
				return nil, formatError(ErrCorruptPayload, base+int64(index),
					"bit %d of byte 0x%02x selects a branch absent from the code tree", i, packed)
			}

			if value, ok := tree.Value(next); ok {
				output = append(output, value)
				current = root
				pathLength = 0
				continue
			}
			current = next
			pathLength++
		}
	}

	if current != root {
		return nil, formatError(ErrTruncatedPayload, base+int64(last),
			"payload ends %d bits into a code without reaching a symbol", pathLength)
	}
	return output, nil
}
