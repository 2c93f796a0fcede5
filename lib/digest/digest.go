// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package digest

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// Hash is a 32-byte BLAKE3 digest.
type Hash [32]byte

// contentDomainKey is the ASCII domain name zero-padded to the 32 bytes
// BLAKE3 keyed mode requires. Changing it changes every digest.
var contentDomainKey = [32]byte{
	'h', 'u', 'f', 'f', '.', 'c', 'o', 'n', 't', 'e', 'n', 't',
}

// Sum returns the content digest of data.
func Sum(data []byte) Hash {
	hasher := newHasher()
	hasher.Write(data)
	return finish(hasher)
}

// SumReader streams r through the hasher until EOF.
func SumReader(r io.Reader) (Hash, error) {
	hasher := newHasher()
	if _, err := io.Copy(hasher, r); err != nil {
		return Hash{}, fmt.Errorf("hashing content: %w", err)
	}
	return finish(hasher), nil
}

// SumFile returns the content digest of the file at path.
func SumFile(path string) (Hash, error) {
	file, err := os.Open(path)
	if err != nil {
		return Hash{}, fmt.Errorf("opening %s for hashing: %w", path, err)
	}
	defer file.Close()

	hasher := newHasher()
	if _, err := io.Copy(hasher, file); err != nil {
		return Hash{}, fmt.Errorf("hashing %s: %w", path, err)
	}
	return finish(hasher), nil
}

// Format returns the hex encoding of a digest. This is the form used in
// reports and log output.
func Format(digest Hash) string {
	return hex.EncodeToString(digest[:])
}

// Short returns the first 12 hex characters of a digest.
func Short(digest Hash) string {
	return hex.EncodeToString(digest[:6])
}

// Parse parses a 64-character hex string into a Hash.
func Parse(hexString string) (Hash, error) {
	var digest Hash
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return digest, fmt.Errorf("parsing content digest: %w", err)
	}
	if len(decoded) != len(digest) {
		return digest, fmt.Errorf("content digest is %d bytes, want %d", len(decoded), len(digest))
	}
	copy(digest[:], decoded)
	return digest, nil
}

func newHasher() hash.Hash {
	// NewKeyed only fails for keys that are not 32 bytes.
	hasher, err := blake3.NewKeyed(contentDomainKey[:])
	if err != nil {
		panic("digest: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	return hasher
}

func finish(hasher hash.Hash) Hash {
	var digest Hash
	copy(digest[:], hasher.Sum(nil))
	return digest
}
