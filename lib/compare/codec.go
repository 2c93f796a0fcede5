// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package compare

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/bureau-foundation/huff/lib/huffman"
)

// ErrIncompressible is returned by [Codec.Compress] when the codec
// cannot represent the input in fewer bytes than it started with.
var ErrIncompressible = errors.New("data is incompressible")

// Codec compresses and decompresses whole buffers.
type Codec interface {
	// Name is the identifier used on the command line and in results.
	Name() string

	// Compress returns the compressed form of data.
	Compress(data []byte) ([]byte, error)

	// Decompress reverses Compress. originalSize is the length of the
	// uncompressed input, which block formats need to size their
	// output buffer.
	Decompress(compressed []byte, originalSize int) ([]byte, error)
}

// Codec names accepted by [Lookup].
const (
	NameHuffman = "huffman"
	NameLZ4     = "lz4"
	NameZstd    = "zstd"
	NameFlate   = "flate"
)

var registry = map[string]Codec{
	NameHuffman: huffmanCodec{},
	NameLZ4:     lz4Codec{},
	NameZstd:    zstdCodec{},
	NameFlate:   flateCodec{},
}

// Names returns the registered codec names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the codec registered under name.
func Lookup(name string) (Codec, error) {
	codec, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown codec %q (known: %v)", name, Names())
	}
	return codec, nil
}

// LookupAll resolves a list of names, preserving order.
func LookupAll(names []string) ([]Codec, error) {
	codecs := make([]Codec, 0, len(names))
	for _, name := range names {
		codec, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		codecs = append(codecs, codec)
	}
	return codecs, nil
}

type huffmanCodec struct{}

func (huffmanCodec) Name() string { return NameHuffman }

// Compress never reports ErrIncompressible: the container is always
// produced, and its header overhead shows up in the ratio.
func (huffmanCodec) Compress(data []byte) ([]byte, error) {
	return huffman.Compress(data)
}

func (huffmanCodec) Decompress(compressed []byte, originalSize int) ([]byte, error) {
	output, err := huffman.Decompress(compressed)
	if err != nil {
		return nil, err
	}
	if len(output) != originalSize {
		return nil, fmt.Errorf("huffman decompress: got %d bytes, expected %d", len(output), originalSize)
	}
	return output, nil
}

type lz4Codec struct{}

func (lz4Codec) Name() string { return NameLZ4 }

func (lz4Codec) Compress(data []byte) ([]byte, error) {
	destination := make([]byte, lz4.CompressBlockBound(len(data)))

	written, err := lz4.CompressBlock(data, destination, nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	// CompressBlock returns 0 when the block would not shrink.
	if written == 0 || written >= len(data) {
		return nil, ErrIncompressible
	}
	return destination[:written], nil
}

func (lz4Codec) Decompress(compressed []byte, originalSize int) ([]byte, error) {
	destination := make([]byte, originalSize)
	read, err := lz4.UncompressBlock(compressed, destination)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}
	if read != originalSize {
		return nil, fmt.Errorf("lz4 decompress: got %d bytes, expected %d", read, originalSize)
	}
	return destination, nil
}

// zstd.Encoder and zstd.Decoder are safe for concurrent use and
// expensive to construct, so one of each is shared.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("compare: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("compare: zstd decoder initialization failed: " + err.Error())
	}
}

type zstdCodec struct{}

func (zstdCodec) Name() string { return NameZstd }

func (zstdCodec) Compress(data []byte) ([]byte, error) {
	compressed := zstdEncoder.EncodeAll(data, nil)
	if len(compressed) >= len(data) {
		return nil, ErrIncompressible
	}
	return compressed, nil
}

func (zstdCodec) Decompress(compressed []byte, originalSize int) ([]byte, error) {
	result, err := zstdDecoder.DecodeAll(compressed, make([]byte, 0, originalSize))
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	if len(result) != originalSize {
		return nil, fmt.Errorf("zstd decompress: got %d bytes, expected %d", len(result), originalSize)
	}
	return result, nil
}

type flateCodec struct{}

func (flateCodec) Name() string { return NameFlate }

func (flateCodec) Compress(data []byte) ([]byte, error) {
	var buffer bytes.Buffer
	writer, err := flate.NewWriter(&buffer, flate.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("flate compress: %w", err)
	}
	if _, err := writer.Write(data); err != nil {
		return nil, fmt.Errorf("flate compress: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("flate compress: %w", err)
	}
	if buffer.Len() >= len(data) {
		return nil, ErrIncompressible
	}
	return buffer.Bytes(), nil
}

func (flateCodec) Decompress(compressed []byte, originalSize int) ([]byte, error) {
	reader := flate.NewReader(bytes.NewReader(compressed))
	defer reader.Close()

	result := make([]byte, 0, originalSize)
	buffer := bytes.NewBuffer(result)
	if _, err := io.Copy(buffer, reader); err != nil {
		return nil, fmt.Errorf("flate decompress: %w", err)
	}
	if buffer.Len() != originalSize {
		return nil, fmt.Errorf("flate decompress: got %d bytes, expected %d", buffer.Len(), originalSize)
	}
	return buffer.Bytes(), nil
}
