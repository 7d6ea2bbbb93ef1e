// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"math/big"

	"github.com/cockroachdb/errors"
)

// Sign produces a low-s ECDSA signature of the 256-bit digest z.  z is used
// as given; Sign does not hash it.  The nonce comes from DeterministicK, so
// signing the same digest with the same key always yields the same
// signature.
func Sign(key *PrivateKey, z *big.Int) *Signature {
	k := DeterministicK(key.secret, z)

	// r is the x coordinate of k*G taken as is, without a further reduction
	// modulo N.
	r := ScalarBaseMult(k).X()
	if r == nil {
		panic(errors.AssertionFailedf("nonce produced the point at infinity"))
	}

	kInv := ScalarElement(k).Inverse()
	s := ScalarElement(z).Add(ScalarElement(r).Mul(ScalarElement(key.secret))).Mul(kInv)

	sv := s.Value()
	if sv.Cmp(curveParams.halfN) > 0 {
		sv.Sub(curveParams.n, sv)
	}
	return &Signature{r: r, s: sv}
}

// hashToInt reads a message hash as a big-endian integer.  A hash longer than
// 32 bytes is truncated to its leftmost 256 bits.
func hashToInt(hash []byte) *big.Int {
	if len(hash) > coordLen {
		hash = hash[:coordLen]
	}
	return new(big.Int).SetBytes(hash)
}

// SignHash signs a message hash, read as a big-endian integer.  Hashes longer
// than 32 bytes are truncated to their leftmost 256 bits.
func SignHash(key *PrivateKey, hash []byte) *Signature {
	return Sign(key, hashToInt(hash))
}

// Verify reports whether sig is a valid signature of z by pub.  r and s are
// reduced modulo N before use; a combination landing on the identity fails
// verification.
func Verify(pub Point, z *big.Int, sig *Signature) bool {
	s := ScalarElement(sig.s)
	if s.IsZero() {
		return false
	}
	// s^(N-2) is s^-1 by Fermat.
	sInv := s.Pow(new(big.Int).Sub(curveParams.n, big.NewInt(2)))

	u := ScalarElement(z).Mul(sInv)
	v := ScalarElement(sig.r).Mul(sInv)
	total := ScalarBaseMult(u.Value()).Add(pub.ScalarMult(v.Value()))

	x := total.X()
	if x == nil {
		return false
	}
	return x.Cmp(sig.r) == 0
}

// Verify reports whether the signature is valid for z under pub.
func (sig *Signature) Verify(z *big.Int, pub Point) bool {
	return Verify(pub, z, sig)
}

// VerifyHash verifies a signature of a message hash, truncated the way
// SignHash truncates it.
func (sig *Signature) VerifyHash(hash []byte, pub Point) bool {
	return Verify(pub, hashToInt(hash), sig)
}
