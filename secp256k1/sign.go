// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"crypto"
	"io"
)

var _ crypto.Signer = (*PrivateKey)(nil)

type SignOptions struct {
	Hash crypto.Hash
}

func (s *SignOptions) HashFunc() crypto.Hash {
	return s.Hash
}

// Public returns the public key as a Point.
func (privkey *PrivateKey) Public() crypto.PublicKey {
	return privkey.pub
}

// Sign will sign the provided digest, returning the DER encoded signature.
// The nonce is deterministic, so rand is ignored. [SignOptions] can be used
// to pass options.  Digests wider than 256 bits, such as SHA-512 output, are
// truncated to their leftmost 256 bits.
func (privkey *PrivateKey) Sign(rand io.Reader, digest []byte, opts crypto.SignerOpts) ([]byte, error) {
	sign := SignHash(privkey, digest)
	return sign.Serialize(), nil // DER
}
