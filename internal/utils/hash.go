// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/hex"
	"hash"
	"sync"

	"golang.org/x/crypto/blake2b"
)

// digestPool holds reusable unkeyed BLAKE2b-256 instances.
var digestPool = sync.Pool{
	New: func() any {
		// blake2b.New256 only fails for keys longer than 64 bytes.
		h, _ := blake2b.New256(nil)
		return h
	},
}

// Digest computes the BLAKE2b-256 digest of data using a pooled hasher.
func Digest(data []byte) []byte {
	h := digestPool.Get().(hash.Hash)
	h.Reset()

	h.Write(data)
	sum := h.Sum(nil)

	h.Reset()
	digestPool.Put(h)

	return sum
}

// DigestStrings hashes the given parts in order and returns the hex-encoded
// digest. Each part is followed by a zero byte so that ("ab","c") and
// ("a","bc") produce different digests.
func DigestStrings(parts ...string) string {
	n := 0
	for _, p := range parts {
		n += len(p) + 1
	}
	buf := make([]byte, 0, n)
	for _, p := range parts {
		buf = append(buf, p...)
		buf = append(buf, 0)
	}
	return hex.EncodeToString(Digest(buf))
}
