// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

// FrequencyTable maps each byte value present in an input to its
// occurrence count. Absent values are absent keys, never zero counts.
type FrequencyTable map[byte]uint64

// CountFrequencies counts occurrences of every byte value in data.
// Empty input yields an empty table.
func CountFrequencies(data []byte) FrequencyTable {
	var counts [256]uint64
	for _, value := range data {
		counts[value]++
	}

	table := make(FrequencyTable)
	for value, count := range counts {
		if count > 0 {
			table[byte(value)] = count
		}
	}
	return table
}

// Total returns the sum of all counts, which equals the length of the
// input the table was counted from.
func (f FrequencyTable) Total() uint64 {
	var total uint64
	for _, count := range f {
		total += count
	}
	return total
}

// Values returns the byte values present in the table in ascending
// order.
func (f FrequencyTable) Values() []byte {
	values := make([]byte, 0, len(f))
	for value := 0; value < 256; value++ {
		if _, ok := f[byte(value)]; ok {
			values = append(values, byte(value))
		}
	}
	return values
}
