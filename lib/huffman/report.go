// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

import (
	"fmt"
	"io"
	"sort"
)

// Report summarizes a code table for human inspection. It is a
// diagnostic: nothing in it is needed to decode an artifact.
//
// Types use json struct tags so the same struct serializes as both
// JSON and CBOR.
type Report struct {
	// Symbols lists every coded byte, most frequent first. Equal
	// frequencies are ordered by byte value.
	Symbols []SymbolReport `json:"symbols"`

	// AverageCodeLength is the frequency-weighted mean code length in
	// bits per symbol. Zero for empty input.
	AverageCodeLength float64 `json:"average_code_length"`

	// InputSize is the number of uncompressed bytes.
	InputSize uint64 `json:"input_size"`

	// CompressedSize is the serialized artifact size in bytes.
	CompressedSize int `json:"compressed_size"`

	// Digest identifies the uncompressed content. Filled in by callers
	// that hash the input; empty otherwise.
	Digest string `json:"digest,omitempty"`
}

// SymbolReport describes one coded byte value.
type SymbolReport struct {
	Value     byte   `json:"value"`
	Frequency uint64 `json:"frequency"`
	Code      string `json:"code"`
}

// NewReport builds a report from the frequencies an artifact was
// encoded from and the artifact itself. Values present in the table
// but absent from frequencies are reported with frequency zero.
func NewReport(frequencies FrequencyTable, artifact *Artifact) *Report {
	report := &Report{
		Symbols:        make([]SymbolReport, 0, artifact.Table.Len()),
		InputSize:      frequencies.Total(),
		CompressedSize: artifact.Size(),
	}

	var weightedBits uint64
	for _, entry := range artifact.Table.Entries() {
		frequency := frequencies[entry.Value]
		weightedBits += frequency * uint64(entry.Code.Len())
		report.Symbols = append(report.Symbols, SymbolReport{
			Value:     entry.Value,
			Frequency: frequency,
			Code:      entry.Code.String(),
		})
	}
	if report.InputSize > 0 {
		report.AverageCodeLength = float64(weightedBits) / float64(report.InputSize)
	}

	sort.Slice(report.Symbols, func(i, j int) bool {
		if report.Symbols[i].Frequency != report.Symbols[j].Frequency {
			return report.Symbols[i].Frequency > report.Symbols[j].Frequency
		}
		return report.Symbols[i].Value < report.Symbols[j].Value
	})
	return report
}

// Ratio returns InputSize / CompressedSize, or 0 when either is zero.
func (r *Report) Ratio() float64 {
	if r.InputSize == 0 || r.CompressedSize == 0 {
		return 0
	}
	return float64(r.InputSize) / float64(r.CompressedSize)
}

// WriteText writes the report in its plain-text form:
//
//	Average Codeword Length = 2.091 bits/symbol
//	'a' (5) : 0
//	10 (1) : 1110
//
// Printable ASCII values are quoted characters; everything else is
// the decimal byte value.
func (r *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Average Codeword Length = %.3f bits/symbol\n", r.AverageCodeLength); err != nil {
		return err
	}
	for _, symbol := range r.Symbols {
		if _, err := fmt.Fprintf(w, "%s (%d) : %s\n", SymbolLabel(symbol.Value), symbol.Frequency, symbol.Code); err != nil {
			return err
		}
	}
	return nil
}

// SymbolLabel renders a byte value for display: a quoted character for
// printable ASCII (32-126), the decimal value otherwise.
func SymbolLabel(value byte) string {
	if value >= 32 && value <= 126 {
		return fmt.Sprintf("'%c'", value)
	}
	return fmt.Sprintf("%d", value)
}
