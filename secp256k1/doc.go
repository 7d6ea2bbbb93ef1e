// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256k1 implements the secp256k1 elliptic curve group and ECDSA
over it, on top of the generic field and curve packages.  See
https://www.secg.org/sec2-v2.pdf for details on the standard.

An overview of the features provided by this package are as follows:

  - Immutable curve parameters via S256
  - Point addition, negation and scalar multiplication
  - Square roots in the base field and point decompression
  - Public key serialization and parsing in the SEC compressed and
    uncompressed formats
  - Pay-to-pubkey-hash addresses for mainnet and testnet
  - Private keys with Wallet Import Format (WIF) encoding and parsing
  - Deterministic nonce generation via an HMAC-SHA256 ratchet
  - Low-s ECDSA signing and verification
  - Signature serialization and strict parsing with the Distinguished
    Encoding Rules (DER) of ISO/IEC 8825-1
  - ECDH shared secrets and a crypto.Signer implementation

Scalar multiplication uses a plain double-and-add loop that branches on the
bits of the scalar.  It is not constant time.

Errors returned when parsing keys and signatures are of type Error and can
be matched against an ErrorKind with errors.Is.  Violated invariants, such as
constructing a point that is not on the curve, panic instead.
*/
package secp256k1
