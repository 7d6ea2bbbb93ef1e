// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"math/big"

	"github.com/cockroachdb/errors"
)

// maxNonceIterations bounds the candidate loop of DeterministicK.  Each
// iteration is rejected with probability about 2^-128.
const maxNonceIterations = 1000

func hmacSHA256(key []byte, data ...[]byte) []byte {
	h := hmac.New(sha256.New, key)
	for _, d := range data {
		h.Write(d)
	}
	return h.Sum(nil)
}

// DeterministicK derives the signing nonce for the given secret and message
// digest from an HMAC-SHA256 ratchet seeded with both.  The same (secret, z)
// pair always yields the same nonce, which lies in (1, N).
//
// A digest not less than N is reduced by a single subtraction of N, which is
// enough for any 256-bit digest.  Wider digests are an invariant violation.
func DeterministicK(secret, z *big.Int) *big.Int {
	if z.Sign() < 0 || z.BitLen() > 256 {
		panic(errors.AssertionFailedf("digest %x is not a 256-bit value", z))
	}
	k := make([]byte, 32)
	v := bytes.Repeat([]byte{0x01}, 32)

	zz := new(big.Int).Set(z)
	if zz.Cmp(curveParams.n) >= 0 {
		zz.Sub(zz, curveParams.n)
	}
	secretBytes := make([]byte, 32)
	secret.FillBytes(secretBytes)
	zBytes := make([]byte, 32)
	zz.FillBytes(zBytes)

	k = hmacSHA256(k, v, []byte{0x00}, secretBytes, zBytes)
	v = hmacSHA256(k, v)
	k = hmacSHA256(k, v, []byte{0x01}, secretBytes, zBytes)
	v = hmacSHA256(k, v)

	one := big.NewInt(1)
	candidate := new(big.Int)
	for i := 0; i < maxNonceIterations; i++ {
		v = hmacSHA256(k, v)
		candidate.SetBytes(v)
		if candidate.Cmp(one) > 0 && candidate.Cmp(curveParams.n) < 0 {
			return candidate
		}
		k = hmacSHA256(k, v, []byte{0x00})
		v = hmacSHA256(k, v)
	}
	panic(errors.AssertionFailedf("no nonce found after %d iterations", maxNonceIterations))
}
