// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Container layout constants.
const (
	// prefixSize is the fixed prefix: 4-byte big-endian header length
	// followed by the 1-byte padding count. The header length does not
	// include these 5 bytes.
	prefixSize = 5

	// entryOverhead is the per-entry header cost before the code
	// characters: one value byte and one length byte.
	entryOverhead = 2
)

// Artifact is a decoded container: the code table, the packed payload,
// and the number of padding bits in the payload's final byte.
//
// Wire format (all integers big-endian, unsigned):
//
//	headerLen = uint32  bytes of header that follow the padding byte
//	padding   = uint8   0-7
//	header    = repeated { value uint8, codeLen uint8, codeLen x ('0'|'1') }
//	payload   = remaining bytes
type Artifact struct {
	Padding uint8
	Table   *CodeTable
	Payload []byte
}

// Size returns the serialized size of the artifact in bytes.
func (a *Artifact) Size() int {
	return prefixSize + a.Table.HeaderSize() + len(a.Payload)
}

// MarshalBinary serializes the artifact in the container format.
func (a *Artifact) MarshalBinary() ([]byte, error) {
	if a.Padding > 7 {
		return nil, fmt.Errorf("padding count %d exceeds 7", a.Padding)
	}
	headerSize := a.Table.HeaderSize()
	if uint64(headerSize) > math.MaxUint32 {
		return nil, fmt.Errorf("header of %d bytes does not fit a 32-bit length", headerSize)
	}

	output := make([]byte, prefixSize, prefixSize+headerSize+len(a.Payload))
	binary.BigEndian.PutUint32(output[0:4], uint32(headerSize))
	output[4] = a.Padding

	for _, entry := range a.Table.Entries() {
		length := entry.Code.Len()
		if length == 0 || length > MaxCodeLength {
			return nil, fmt.Errorf("code for byte 0x%02x has unencodable length %d", entry.Value, length)
		}
		output = append(output, entry.Value, byte(length))
		for i := 0; i < length; i++ {
			output = append(output, '0'+entry.Code.Bit(i))
		}
	}

	return append(output, a.Payload...), nil
}

// WriteTo writes the serialized artifact to w.
func (a *Artifact) WriteTo(w io.Writer) (int64, error) {
	data, err := a.MarshalBinary()
	if err != nil {
		return 0, err
	}
	written, err := w.Write(data)
	if err != nil {
		return int64(written), fmt.Errorf("writing artifact: %w", err)
	}
	if written != len(data) {
		return int64(written), io.ErrShortWrite
	}
	return int64(written), nil
}

// ParseArtifact parses a serialized container. It validates the fixed
// prefix and every header entry, and rejects duplicate byte values. The
// payload aliases data.
//
// Prefix conflicts between codes are detected when the tree is rebuilt
// by [Artifact.Decode] or [TreeFromCodes].
func ParseArtifact(data []byte) (*Artifact, error) {
	if len(data) < prefixSize {
		return nil, formatError(ErrMalformedHeader, int64(len(data)),
			"artifact is %d bytes, need at least %d for the fixed prefix", len(data), prefixSize)
	}

	headerSize := binary.BigEndian.Uint32(data[0:4])
	padding := data[4]
	if padding > 7 {
		return nil, formatError(ErrMalformedHeader, 4, "padding count %d exceeds 7", padding)
	}
	available := uint64(len(data) - prefixSize)
	if uint64(headerSize) > available {
		return nil, formatError(ErrMalformedHeader, 0,
			"header length %d exceeds the %d bytes following the prefix", headerSize, available)
	}

	headerEnd := prefixSize + int(headerSize)
	table := NewCodeTable()
	offset := prefixSize
	for offset < headerEnd {
		if headerEnd-offset < entryOverhead {
			return nil, formatError(ErrMalformedHeader, int64(offset),
				"entry needs %d bytes for value and length, %d remain in header", entryOverhead, headerEnd-offset)
		}
		value := data[offset]
		length := int(data[offset+1])
		if length == 0 {
			return nil, formatError(ErrMalformedHeader, int64(offset+1),
				"byte 0x%02x has code length 0", value)
		}
		codeStart := offset + entryOverhead
		if headerEnd-codeStart < length {
			return nil, formatError(ErrMalformedHeader, int64(codeStart),
				"byte 0x%02x declares a %d-bit code, %d header bytes remain", value, length, headerEnd-codeStart)
		}

		var code Code
		for i := 0; i < length; i++ {
			switch character := data[codeStart+i]; character {
			case '0':
				code.push(0)
			case '1':
				code.push(1)
			default:
				return nil, formatError(ErrMalformedHeader, int64(codeStart+i),
					"code character for byte 0x%02x is 0x%02x, expected '0' or '1'", value, character)
			}
		}

		if err := table.Add(value, code); err != nil {
			var formatErr *FormatError
			if errors.As(err, &formatErr) {
				formatErr.Offset = int64(offset)
			}
			return nil, err
		}
		offset = codeStart + length
	}

	return &Artifact{
		Padding: padding,
		Table:   table,
		Payload: data[headerEnd:],
	}, nil
}

// ReadArtifact reads r to EOF and parses the result as a container.
func ReadArtifact(r io.Reader) (*Artifact, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading artifact: %w", err)
	}
	return ParseArtifact(data)
}

// Decode rebuilds the code tree from the artifact's table and unpacks
// the payload.
func (a *Artifact) Decode() ([]byte, error) {
	tree, err := TreeFromCodes(a.Table)
	if err != nil {
		return nil, err
	}
	return unpack(a.Payload, a.Padding, tree, int64(prefixSize+a.Table.HeaderSize()))
}
