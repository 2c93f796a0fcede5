// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

import "fmt"

// Pack encodes data with table. Codes are concatenated in input order,
// most significant bit first within each output byte. The final byte
// is padded with zero bits; padding is the number of padding bits
// (0-7).
//
// Every byte of data must have a code. A missing code fails with
// ErrUnknownSymbol and indicates table was not derived from data.
func Pack(data []byte, table *CodeTable) (payload []byte, padding uint8, err error) {
	var codes [256]Code
	var present [256]bool
	for _, entry := range table.Entries() {
		codes[entry.Value] = entry.Code
		present[entry.Value] = true
	}

	var totalBits uint64
	for offset, value := range data {
		if !present[value] {
			return nil, 0, fmt.Errorf("%w: byte 0x%02x at input offset %d has no code",
				ErrUnknownSymbol, value, offset)
		}
		totalBits += uint64(codes[value].Len())
	}

	writer := bitWriter{buffer: make([]byte, 0, (totalBits+7)/8)}
	for _, value := range data {
		writer.writeCode(codes[value])
	}
	padding = writer.flush()
	return writer.buffer, padding, nil
}

// bitWriter accumulates bits MSB-first into whole bytes.
type bitWriter struct {
	buffer  []byte
	current byte
	filled  uint8
}

func (w *bitWriter) writeCode(code Code) {
	for i := 0; i < code.Len(); i++ {
		w.current = w.current<<1 | code.Bit(i)
		w.filled++
		if w.filled == 8 {
			w.buffer = append(w.buffer, w.current)
			w.current = 0
			w.filled = 0
		}
	}
}

// flush emits a partially filled byte, shifting its bits to the high
// end, and returns the number of zero padding bits added.
func (w *bitWriter) flush() uint8 {
	if w.filled == 0 {
		return 0
	}
	padding := 8 - w.filled
	w.buffer = append(w.buffer, w.current<<padding)
	w.current = 0
	w.filled = 0
	return padding
}
