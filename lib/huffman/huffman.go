// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package huffman

// Encode runs the compression pipeline over data and returns the
// resulting artifact along with the frequency table it was built from.
// Empty input produces an artifact with an empty table and an empty
// payload.
func Encode(data []byte) (*Artifact, FrequencyTable, error) {
	frequencies := CountFrequencies(data)
	if len(frequencies) == 0 {
		return &Artifact{Table: NewCodeTable(), Payload: []byte{}}, frequencies, nil
	}

	table := ExtractCodes(BuildTree(frequencies))
	payload, padding, err := Pack(data, table)
	if err != nil {
		return nil, nil, err
	}
	return &Artifact{Padding: padding, Table: table, Payload: payload}, frequencies, nil
}

// Compress returns the serialized container for data.
func Compress(data []byte) ([]byte, error) {
	artifact, _, err := Encode(data)
	if err != nil {
		return nil, err
	}
	return artifact.MarshalBinary()
}

// Decompress parses a serialized container and returns the original
// bytes. It never returns partial output alongside an error.
func Decompress(data []byte) ([]byte, error) {
	artifact, err := ParseArtifact(data)
	if err != nil {
		return nil, err
	}
	return artifact.Decode()
}
