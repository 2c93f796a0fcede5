// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package compare

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bureau-foundation/huff/lib/clock"
)

// Result is the outcome of running one codec over an input.
type Result struct {
	Codec          string `json:"codec"`
	OriginalSize   int    `json:"original_size"`
	CompressedSize int    `json:"compressed_size"`

	// Ratio is OriginalSize / CompressedSize. Zero when the codec
	// declined the input or the input was empty.
	Ratio float64 `json:"ratio"`

	CompressTime   time.Duration `json:"compress_time_ns"`
	DecompressTime time.Duration `json:"decompress_time_ns"`

	// Lossless is true when decompression reproduced the input byte
	// for byte.
	Lossless bool `json:"lossless"`

	// Incompressible is true when the codec could not shrink the input.
	// No round trip is attempted and CompressedSize is zero.
	Incompressible bool `json:"incompressible,omitempty"`
}

// Run compresses data with each codec in order. A codec that reports
// [ErrIncompressible] produces a Result with Incompressible set; any
// other codec failure aborts the run. Cancellation of ctx is checked
// between codecs.
func Run(ctx context.Context, data []byte, codecs []Codec, c clock.Clock) ([]Result, error) {
	results := make([]Result, 0, len(codecs))
	for _, codec := range codecs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := runOne(data, codec, c)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", codec.Name(), err)
		}
		results = append(results, result)
	}
	return results, nil
}

func runOne(data []byte, codec Codec, c clock.Clock) (Result, error) {
	result := Result{Codec: codec.Name(), OriginalSize: len(data)}

	start := c.Now()
	compressed, err := codec.Compress(data)
	result.CompressTime = clock.Since(c, start)
	if errors.Is(err, ErrIncompressible) {
		result.Incompressible = true
		return result, nil
	}
	if err != nil {
		return result, err
	}
	result.CompressedSize = len(compressed)
	if result.CompressedSize > 0 {
		result.Ratio = float64(result.OriginalSize) / float64(result.CompressedSize)
	}

	start = c.Now()
	decompressed, err := codec.Decompress(compressed, len(data))
	result.DecompressTime = clock.Since(c, start)
	if err != nil {
		return result, err
	}
	result.Lossless = bytes.Equal(decompressed, data)
	return result, nil
}
