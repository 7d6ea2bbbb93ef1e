// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2023 The Decred developers
// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
	"math/big"

	"github.com/ModChain/ecmath/base58"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
)

const (
	// PrivKeyBytesLen defines the length in bytes of a serialized private key.
	PrivKeyBytesLen = 32

	// WIFMainnetPrefix and WIFTestnetPrefix are the network bytes leading a
	// WIF payload.
	WIFMainnetPrefix byte = 0x80
	WIFTestnetPrefix byte = 0xef

	// wifCompressedFlag marks a WIF payload whose public key is to be
	// serialized compressed.
	wifCompressedFlag byte = 0x01
)

// PrivateKey provides facilities for working with secp256k1 private keys
// within this package and includes functionality such as serializing and
// parsing them as well as computing their associated public key.
//
// Formatting a PrivateKey never reveals the secret.
type PrivateKey struct {
	secret *big.Int
	pub    Point
}

var _ redact.SafeFormatter = (*PrivateKey)(nil)

// NewPrivateKey returns the private key for the given secret, which must be
// in [1, N-1].
func NewPrivateKey(secret *big.Int) (*PrivateKey, error) {
	if secret.Sign() <= 0 || secret.Cmp(curveParams.n) >= 0 {
		return nil, makeError(ErrPrivKeyOutOfRange, "private key out of range [1, N-1]")
	}
	s := new(big.Int).Set(secret)
	return &PrivateKey{secret: s, pub: ScalarBaseMult(s)}, nil
}

// PrivKeyFromBytes returns a private key for the big-endian secret in b.
func PrivKeyFromBytes(b []byte) (*PrivateKey, error) {
	if len(b) > PrivKeyBytesLen {
		str := fmt.Sprintf("malformed private key: invalid length: %d", len(b))
		return nil, makeError(ErrPrivKeyOutOfRange, str)
	}
	return NewPrivateKey(new(big.Int).SetBytes(b))
}

// PubKey returns secret*G.
func (privkey *PrivateKey) PubKey() Point {
	return privkey.pub
}

// Secret returns a copy of the secret scalar.
func (privkey *PrivateKey) Secret() *big.Int {
	return new(big.Int).Set(privkey.secret)
}

// Serialize returns the private key as a 256-bit big-endian binary-encoded
// number, padded to a length of 32 bytes.
func (privkey *PrivateKey) Serialize() []byte {
	b := make([]byte, PrivKeyBytesLen)
	return privkey.secret.FillBytes(b)
}

// WIF returns the Wallet Import Format encoding of the key.  compressed
// records that the matching public key is serialized compressed.
func (privkey *PrivateKey) WIF(compressed, testnet bool) string {
	prefix := WIFMainnetPrefix
	if testnet {
		prefix = WIFTestnetPrefix
	}
	payload := make([]byte, 0, 1+PrivKeyBytesLen+1)
	payload = append(payload, prefix)
	payload = append(payload, privkey.Serialize()...)
	if compressed {
		payload = append(payload, wifCompressedFlag)
	}
	return base58.CheckEncode(payload)
}

// ParseWIF decodes a Wallet Import Format string and reports the compression
// flag and network it carries.  A Base58Check failure keeps the base58 error
// in the chain and is marked with ErrPrivKeyInvalidWIF for errors.Is from
// github.com/cockroachdb/errors.
func ParseWIF(s string) (key *PrivateKey, compressed, testnet bool, err error) {
	payload, err := base58.CheckDecode(s)
	if err != nil {
		return nil, false, false, errors.Mark(errors.Wrap(err, "malformed WIF"), ErrPrivKeyInvalidWIF)
	}

	switch len(payload) {
	case 1 + PrivKeyBytesLen:
	case 1 + PrivKeyBytesLen + 1:
		if payload[len(payload)-1] != wifCompressedFlag {
			str := fmt.Sprintf("malformed WIF: bad compression flag %#x",
				payload[len(payload)-1])
			return nil, false, false, makeError(ErrPrivKeyInvalidWIF, str)
		}
		compressed = true
	default:
		str := fmt.Sprintf("malformed WIF: invalid payload length: %d", len(payload))
		return nil, false, false, makeError(ErrPrivKeyInvalidWIF, str)
	}

	switch payload[0] {
	case WIFMainnetPrefix:
	case WIFTestnetPrefix:
		testnet = true
	default:
		str := fmt.Sprintf("malformed WIF: unknown network prefix %#x", payload[0])
		return nil, false, false, makeError(ErrPrivKeyUnknownNet, str)
	}

	key, err = PrivKeyFromBytes(payload[1 : 1+PrivKeyBytesLen])
	if err != nil {
		return nil, false, false, err
	}
	return key, compressed, testnet, nil
}

// SafeFormat implements redact.SafeFormatter.  The public key is safe; the
// secret is always emitted as a redactable value.
func (privkey *PrivateKey) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("PrivateKey(pub=%s, secret=%s)",
		redact.Safe(privkey.pub.String()), fmt.Sprintf("%064x", privkey.secret))
}

// String returns the redacted form of the key.
func (privkey *PrivateKey) String() string {
	return redact.Sprint(privkey).Redact().StripMarkers()
}
