// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

import (
	"fmt"
	"strings"
)

// MaxCodeLength is the longest code the container can describe: the
// header stores each code length in one byte. A Huffman tree over at
// most 256 symbols never exceeds depth 255, so every extracted code
// fits.
const MaxCodeLength = 255

// Code is a sequence of up to [MaxCodeLength] bits. Bit 0 is the first
// bit on the path from the root. Bits beyond Len() are always zero, so
// two Codes with the same bits compare equal with ==.
type Code struct {
	words  [4]uint64
	length uint16
}

// ParseCode parses a code written as ASCII '0' and '1' characters.
func ParseCode(text string) (Code, error) {
	var code Code
	if len(text) == 0 {
		return code, fmt.Errorf("empty code")
	}
	if len(text) > MaxCodeLength {
		return code, fmt.Errorf("code length %d exceeds maximum %d", len(text), MaxCodeLength)
	}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '0':
			code.push(0)
		case '1':
			code.push(1)
		default:
			return Code{}, fmt.Errorf("invalid code character %q at position %d", text[i], i)
		}
	}
	return code, nil
}

// Len returns the number of bits in the code.
func (c Code) Len() int { return int(c.length) }

// Bit returns bit i (0 or 1). Panics if i is out of range.
func (c Code) Bit(i int) byte {
	if i < 0 || i >= int(c.length) {
		panic(fmt.Sprintf("huffman: bit index %d out of range [0, %d)", i, c.length))
	}
	return byte(c.words[i/64]>>(63-uint(i%64))) & 1
}

// Prefix returns the first n bits of the code.
func (c Code) Prefix(n int) Code {
	prefix := c
	prefix.truncate(n)
	return prefix
}

// HasPrefix reports whether prefix is a prefix of c (including c
// itself).
func (c Code) HasPrefix(prefix Code) bool {
	if prefix.length > c.length {
		return false
	}
	return c.Prefix(prefix.Len()) == prefix
}

// String returns the code as ASCII '0' and '1' characters, the same
// representation the container header uses.
func (c Code) String() string {
	var builder strings.Builder
	builder.Grow(int(c.length))
	for i := 0; i < int(c.length); i++ {
		builder.WriteByte('0' + c.Bit(i))
	}
	return builder.String()
}

// push appends one bit. Overflowing MaxCodeLength is a programming
// error: tree depth is bounded by the alphabet size.
func (c *Code) push(bit byte) {
	if c.length >= MaxCodeLength {
		panic("huffman: code exceeds maximum length")
	}
	if bit&1 == 1 {
		c.words[c.length/64] |= 1 << (63 - c.length%64)
	}
	c.length++
}

// truncate shortens the code to n bits, clearing the dropped bits.
func (c *Code) truncate(n int) {
	if n >= int(c.length) {
		return
	}
	for i := n; i < int(c.length); i++ {
		c.words[i/64] &^= 1 << (63 - uint(i%64))
	}
	c.length = uint16(n)
}
