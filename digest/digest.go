// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digest provides the hash compositions used by the encodings and by
// message signing: hash256 (double SHA-256) and hash160 (RIPEMD-160 of
// SHA-256).
package digest

import (
	"crypto/sha256"
	"math/big"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160"
)

// Size is the size in bytes of a hash256 digest.
const Size = chainhash.HashSize

// Hash256 returns SHA256(SHA256(b)).
func Hash256(b []byte) []byte {
	h := DoubleHashH(b)
	return h[:]
}

// DoubleHashH returns SHA256(SHA256(b)) as a chainhash.Hash.
//
// Note that chainhash.Hash.String reverses the byte order for display.  Use
// hex encoding of the slice when the natural byte order is wanted.
func DoubleHashH(b []byte) chainhash.Hash {
	first := sha256.Sum256(b)
	return chainhash.Hash(sha256.Sum256(first[:]))
}

// Hash160 returns RIPEMD160(SHA256(b)).
func Hash160(b []byte) []byte {
	a := sha256.Sum256(b)
	rmd := ripemd160.New()
	rmd.Write(a[:])
	return rmd.Sum(nil)
}

// BigInt interprets h as a big-endian unsigned integer, the form message
// digests take when they are signed.
func BigInt(h *chainhash.Hash) *big.Int {
	return new(big.Int).SetBytes(h[:])
}
