// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package variable

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Fingerprint is a BLAKE3 digest of a table's (name, value, raw,
// source) tuples in display order. Two invocations that resolve to the
// same table produce the same fingerprint, which lets an operator
// compare runs without printing values.
type Fingerprint [32]byte

// String returns the lowercase hex encoding.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// Short returns the first 12 hex characters.
func (f Fingerprint) Short() string {
	return f.String()[:12]
}

// fingerprintDomainKey separates table fingerprints from any other
// BLAKE3 use. The bytes are the ASCII domain name, zero-padded.
var fingerprintDomainKey = [32]byte{
	't', 'o', 'o', 'l', 'b', 'e', 'l', 't', '.', 'v', 'a', 'r', 'i', 'a', 'b', 'l',
	'e', '.', 't', 'a', 'b', 'l', 'e', 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Fingerprint hashes the table. Every field is length-prefixed so that
// shifting bytes between adjacent fields changes the digest.
func (t *Table) Fingerprint() Fingerprint {
	hasher, err := blake3.NewKeyed(fingerprintDomainKey[:])
	if err != nil {
		panic("variable: BLAKE3 keyed hash initialization failed: " + err.Error())
	}

	var length [8]byte
	writeField := func(field string) {
		binary.BigEndian.PutUint64(length[:], uint64(len(field)))
		hasher.Write(length[:])
		hasher.Write([]byte(field))
	}

	for _, entry := range t.All() {
		writeField(entry.Name)
		writeField(entry.Value)
		writeField(entry.Raw)
		writeField(entry.Source.String())
	}

	var fingerprint Fingerprint
	copy(fingerprint[:], hasher.Sum(nil))
	return fingerprint
}
