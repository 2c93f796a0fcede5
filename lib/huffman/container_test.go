// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestParseArtifactMalformed(t *testing.T) {
	tests := []struct {
		name       string
		data       []byte
		wantKind   error
		wantOffset int64
	}{
		{
			name:       "shorter than prefix",
			data:       []byte{0, 0, 0},
			wantKind:   ErrMalformedHeader,
			wantOffset: 3,
		},
		{
			name:       "padding out of range",
			data:       []byte{0, 0, 0, 0, 8},
			wantKind:   ErrMalformedHeader,
			wantOffset: 4,
		},
		{
			name:       "header length exceeds data",
			data:       []byte{0, 0, 0, 10, 0, 'a', 1, '0'},
			wantKind:   ErrMalformedHeader,
			wantOffset: 0,
		},
		{
			name:       "entry missing length byte",
			data:       []byte{0, 0, 0, 1, 0, 'a'},
			wantKind:   ErrMalformedHeader,
			wantOffset: 5,
		},
		{
			name:       "zero code length",
			data:       []byte{0, 0, 0, 2, 0, 'a', 0},
			wantKind:   ErrMalformedHeader,
			wantOffset: 6,
		},
		{
			name:       "code runs past header",
			data:       []byte{0, 0, 0, 3, 0, 'a', 2, '0', '1'},
			wantKind:   ErrMalformedHeader,
			wantOffset: 7,
		},
		{
			name:       "invalid code character",
			data:       []byte{0, 0, 0, 3, 0, 'a', 1, '2'},
			wantKind:   ErrMalformedHeader,
			wantOffset: 7,
		},
		{
			name:       "duplicate byte value",
			data:       []byte{0, 0, 0, 6, 0, 'a', 1, '0', 'a', 1, '1'},
			wantKind:   ErrConflictingCode,
			wantOffset: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			artifact, err := ParseArtifact(tt.data)
			if err == nil {
				t.Fatalf("ParseArtifact succeeded with %d entries, want error", artifact.Table.Len())
			}
			if !errors.Is(err, tt.wantKind) {
				t.Fatalf("error = %v, want %v", err, tt.wantKind)
			}
			var formatErr *FormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("error %v is not a *FormatError", err)
			}
			if formatErr.Offset != tt.wantOffset {
				t.Errorf("Offset = %d, want %d", formatErr.Offset, tt.wantOffset)
			}

			// Decompress reports the same failure.
			if _, err := Decompress(tt.data); !errors.Is(err, tt.wantKind) {
				t.Errorf("Decompress error = %v, want %v", err, tt.wantKind)
			}
		})
	}
}

func TestDecompressRejectsBadPayload(t *testing.T) {
	nonZeroPadding := bytes.Clone(abracadabraArtifact)
	nonZeroPadding[len(nonZeroPadding)-1] = 0x69

	tests := []struct {
		name       string
		data       []byte
		wantKind   error
		wantOffset int64
	}{
		{
			name:       "prefix conflict",
			data:       []byte{0, 0, 0, 7, 0, 'a', 1, '0', 'b', 2, '0', '1', 0x00},
			wantKind:   ErrConflictingCode,
			wantOffset: -1,
		},
		{
			name:       "identical codes",
			data:       []byte{0, 0, 0, 6, 0, 'a', 1, '1', 'b', 1, '1', 0x00},
			wantKind:   ErrConflictingCode,
			wantOffset: -1,
		},
		{
			name:       "payload without code table",
			data:       []byte{0, 0, 0, 0, 0, 0xFF},
			wantKind:   ErrMalformedHeader,
			wantOffset: -1,
		},
		{
			name:       "bit selects absent branch",
			data:       []byte{0, 0, 0, 3, 0, 'A', 1, '0', 0x80},
			wantKind:   ErrCorruptPayload,
			wantOffset: 8,
		},
		{
			name:       "padding bits set",
			data:       nonZeroPadding,
			wantKind:   ErrTruncatedPayload,
			wantOffset: 31,
		},
		{
			name:       "padding declared with no payload",
			data:       []byte{0, 0, 0, 3, 3, 'A', 1, '0'},
			wantKind:   ErrTruncatedPayload,
			wantOffset: 8,
		},
		{
			name:       "payload ends inside a code",
			data:       []byte{0, 0, 0, 7, 7, 'a', 1, '0', 'b', 2, '1', '0', 0x80},
			wantKind:   ErrTruncatedPayload,
			wantOffset: 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := Decompress(tt.data)
			if !errors.Is(err, tt.wantKind) {
				t.Fatalf("Decompress error = %v, want %v", err, tt.wantKind)
			}
			if output != nil {
				t.Errorf("Decompress returned %d bytes alongside an error", len(output))
			}
			var formatErr *FormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("error %v is not a *FormatError", err)
			}
			if formatErr.Offset != tt.wantOffset {
				t.Errorf("Offset = %d, want %d", formatErr.Offset, tt.wantOffset)
			}
		})
	}
}

func TestFormatErrorMessage(t *testing.T) {
	_, err := ParseArtifact([]byte{0, 0, 0, 3, 0, 'a', 1, '2'})
	if err == nil {
		t.Fatal("ParseArtifact succeeded, want error")
	}
	message := err.Error()
	if !strings.HasPrefix(message, "malformed header at offset 7: ") {
		t.Errorf("message = %q, want prefix \"malformed header at offset 7: \"", message)
	}

	// Duplicate entries carry the entry's offset exactly once.
	_, err = ParseArtifact([]byte{0, 0, 0, 6, 0, 'a', 1, '0', 'a', 1, '1'})
	want := "duplicate or conflicting code at offset 8: byte 0x61 has codes 0 and 1"
	if err == nil || err.Error() != want {
		t.Errorf("message = %v, want %q", err, want)
	}

	withoutOffset := &FormatError{Kind: ErrConflictingCode, Offset: -1, Detail: "x"}
	if got := withoutOffset.Error(); got != "duplicate or conflicting code: x" {
		t.Errorf("message = %q", got)
	}
}

func TestParseArtifactAbracadabra(t *testing.T) {
	artifact, err := ParseArtifact(abracadabraArtifact)
	if err != nil {
		t.Fatalf("ParseArtifact failed: %v", err)
	}
	if artifact.Padding != 1 {
		t.Errorf("Padding = %d, want 1", artifact.Padding)
	}
	if artifact.Table.Len() != 5 {
		t.Errorf("table has %d entries, want 5", artifact.Table.Len())
	}
	if !bytes.Equal(artifact.Payload, []byte{0x69, 0xCF, 0x68}) {
		t.Errorf("Payload = %x, want 69cf68", artifact.Payload)
	}
	if artifact.Size() != len(abracadabraArtifact) {
		t.Errorf("Size = %d, want %d", artifact.Size(), len(abracadabraArtifact))
	}

	remarshaled, err := artifact.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary failed: %v", err)
	}
	if !bytes.Equal(remarshaled, abracadabraArtifact) {
		t.Errorf("re-marshaled artifact differs:\n got %x\nwant %x", remarshaled, abracadabraArtifact)
	}
}

func TestReadArtifactAndWriteTo(t *testing.T) {
	artifact, err := ReadArtifact(bytes.NewReader(abracadabraArtifact))
	if err != nil {
		t.Fatalf("ReadArtifact failed: %v", err)
	}

	var buffer bytes.Buffer
	written, err := artifact.WriteTo(&buffer)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if written != int64(len(abracadabraArtifact)) {
		t.Errorf("WriteTo reported %d bytes, want %d", written, len(abracadabraArtifact))
	}
	if !bytes.Equal(buffer.Bytes(), abracadabraArtifact) {
		t.Errorf("WriteTo output differs:\n got %x\nwant %x", buffer.Bytes(), abracadabraArtifact)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestWriteToPropagatesErrors(t *testing.T) {
	artifact, err := ParseArtifact(abracadabraArtifact)
	if err != nil {
		t.Fatalf("ParseArtifact failed: %v", err)
	}
	if _, err := artifact.WriteTo(failingWriter{}); !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("WriteTo error = %v, want io.ErrClosedPipe", err)
	}
}

func TestMarshalBinaryRejectsPadding(t *testing.T) {
	artifact := &Artifact{Padding: 8, Table: NewCodeTable(), Payload: []byte{0}}
	if _, err := artifact.MarshalBinary(); err == nil {
		t.Error("MarshalBinary accepted padding 8")
	}
}
