// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"fmt"
	"math/big"

	"github.com/ModChain/ecmath/base58"
	"github.com/ModChain/ecmath/curve"
	"github.com/ModChain/ecmath/digest"
	"github.com/ModChain/ecmath/field"
	"github.com/cockroachdb/errors"
)

const (
	// PubKeyBytesLenCompressed is the number of bytes of a serialized
	// compressed public key.
	PubKeyBytesLenCompressed = 33

	// PubKeyBytesLenUncompressed is the number of bytes of a serialized
	// uncompressed public key.
	PubKeyBytesLenUncompressed = 65

	// PubKeyFormatCompressedEven is the identifier prefix byte for a public key
	// whose Y coordinate is even when serialized in the compressed format per
	// section 2.3.4 of [SEC1](https://secg.org/sec1-v2.pdf#subsubsection.2.3.4).
	PubKeyFormatCompressedEven byte = 0x02

	// PubKeyFormatCompressedOdd is the identifier prefix byte for a public key
	// whose Y coordinate is odd when serialized in the compressed format per
	// section 2.3.4 of [SEC1](https://secg.org/sec1-v2.pdf#subsubsection.2.3.4).
	PubKeyFormatCompressedOdd byte = 0x03

	// PubKeyFormatUncompressed is the identifier prefix byte for a public key
	// when serialized according in the uncompressed format per section 2.3.3
	// of [SEC1](https://secg.org/sec1-v2.pdf#subsubsection.2.3.3).
	PubKeyFormatUncompressed byte = 0x04

	// AddressPrefixMainnet and AddressPrefixTestnet are the version bytes of
	// pay-to-pubkey-hash addresses.
	AddressPrefixMainnet byte = 0x00
	AddressPrefixTestnet byte = 0x6f

	coordLen = 32
)

// Point is a point of the secp256k1 group.  It is also used as the public key
// type.  Points are immutable values.
type Point struct {
	p curve.Point
}

// NewPoint returns the point with affine coordinates (x, y).  It panics when
// either coordinate is outside [0, P) or the point is not on the curve.
func NewPoint(x, y *big.Int) Point {
	return Point{p: curve.NewPoint(FieldElement(x), FieldElement(y), curveParams.a, curveParams.b)}
}

// Infinity returns the identity of the secp256k1 group.
func Infinity() Point {
	return Point{p: curve.Infinity(curveParams.a, curveParams.b)}
}

// Generator returns the base point G.
func Generator() Point {
	return generator
}

var generator = NewPoint(curveParams.gx, curveParams.gy)

// ScalarBaseMult returns k*G.
func ScalarBaseMult(k *big.Int) Point {
	return generator.ScalarMult(k)
}

// ScalarMult returns k*p.  The scalar is reduced modulo N first, which does
// not change the result since N*p is the identity for every point p.
func (p Point) ScalarMult(k *big.Int) Point {
	if k.Sign() < 0 {
		panic(errors.AssertionFailedf("negative scalar"))
	}
	reduced := new(big.Int).Mod(k, curveParams.n)
	return Point{p: p.p.ScalarMult(reduced)}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p: p.p.Add(q.p)}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{p: p.p.Neg()}
}

// Equal returns whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	return p.p.Equal(q.p)
}

// IsInfinity returns whether p is the identity.
func (p Point) IsInfinity() bool {
	return p.p.IsInfinity()
}

// X returns the x coordinate of p, or nil for the identity.
func (p Point) X() *big.Int {
	c, ok := p.p.Affine()
	if !ok {
		return nil
	}
	return c.X.Value()
}

// Y returns the y coordinate of p, or nil for the identity.
func (p Point) Y() *big.Int {
	c, ok := p.p.Affine()
	if !ok {
		return nil
	}
	return c.Y.Value()
}

// Curve returns the underlying generic curve point.
func (p Point) Curve() curve.Point {
	return p.p
}

func (p Point) mustAffine() curve.Affine {
	c, ok := p.p.Affine()
	if !ok {
		panic(errors.AssertionFailedf("the point at infinity has no SEC encoding"))
	}
	return c
}

// SerializeUncompressed serializes p in the 65-byte uncompressed format
// 0x04 || x || y.  It panics for the identity.
func (p Point) SerializeUncompressed() []byte {
	c := p.mustAffine()
	b := make([]byte, 0, PubKeyBytesLenUncompressed)
	b = append(b, PubKeyFormatUncompressed)
	b = append(b, c.X.Bytes(coordLen)...)
	return append(b, c.Y.Bytes(coordLen)...)
}

// SerializeCompressed serializes p in the 33-byte compressed format
// 0x02/0x03 || x, where the prefix records the parity of y.  It panics for
// the identity.
func (p Point) SerializeCompressed() []byte {
	c := p.mustAffine()
	format := PubKeyFormatCompressedEven
	if c.Y.IsOdd() {
		format = PubKeyFormatCompressedOdd
	}
	b := make([]byte, 0, PubKeyBytesLenCompressed)
	b = append(b, format)
	return append(b, c.X.Bytes(coordLen)...)
}

// Serialize returns the compressed or uncompressed SEC encoding of p.
func (p Point) Serialize(compressed bool) []byte {
	if compressed {
		return p.SerializeCompressed()
	}
	return p.SerializeUncompressed()
}

// Hash160 returns hash160 of the SEC encoding of p.
func (p Point) Hash160(compressed bool) []byte {
	return digest.Hash160(p.Serialize(compressed))
}

// Address returns the Base58Check pay-to-pubkey-hash address of p.
func (p Point) Address(compressed, testnet bool) string {
	prefix := AddressPrefixMainnet
	if testnet {
		prefix = AddressPrefixTestnet
	}
	return base58.CheckEncode(append([]byte{prefix}, p.Hash160(compressed)...))
}

// String returns the affine coordinates of p in hex, or "Infinity".
func (p Point) String() string {
	c, ok := p.p.Affine()
	if !ok {
		return "Infinity"
	}
	return fmt.Sprintf("(%064x, %064x)", c.X.Value(), c.Y.Value())
}

// ParsePubKey parses a secp256k1 public key encoded according to the format
// specified by ANSI X9.62-1998, which means it is also compatible with the
// SEC (Standards for Efficient Cryptography) specification which is a subset
// of the former.  In other words, it supports the uncompressed and compressed
// formats as follows:
//
// Compressed:
//
//	<format byte = 0x02/0x03><32-byte X coordinate>
//
// Uncompressed:
//
//	<format byte = 0x04><32-byte X coordinate><32-byte Y coordinate>
//
// It does NOT support the hybrid format.
func ParsePubKey(serialized []byte) (Point, error) {
	switch len(serialized) {
	case PubKeyBytesLenUncompressed:
		if serialized[0] != PubKeyFormatUncompressed {
			str := fmt.Sprintf("invalid public key: unsupported format: %x",
				serialized[0])
			return Point{}, makeError(ErrPubKeyInvalidFormat, str)
		}

		x := new(big.Int).SetBytes(serialized[1 : coordLen+1])
		y := new(big.Int).SetBytes(serialized[coordLen+1:])
		if x.Cmp(curveParams.p) >= 0 {
			str := "invalid public key: x >= field prime"
			return Point{}, makeError(ErrPubKeyXTooBig, str)
		}
		if y.Cmp(curveParams.p) >= 0 {
			str := "invalid public key: y >= field prime"
			return Point{}, makeError(ErrPubKeyYTooBig, str)
		}
		fx, fy := FieldElement(x), FieldElement(y)
		if !curveOnCurve(fx, fy) {
			str := fmt.Sprintf("invalid public key: [%x,%x] not on secp256k1 "+
				"curve", x, y)
			return Point{}, makeError(ErrPubKeyNotOnCurve, str)
		}
		return NewPoint(x, y), nil

	case PubKeyBytesLenCompressed:
		format := serialized[0]
		if format != PubKeyFormatCompressedEven && format != PubKeyFormatCompressedOdd {
			str := fmt.Sprintf("invalid public key: unsupported format: %x",
				format)
			return Point{}, makeError(ErrPubKeyInvalidFormat, str)
		}

		x := new(big.Int).SetBytes(serialized[1:])
		if x.Cmp(curveParams.p) >= 0 {
			str := "invalid public key: x >= field prime"
			return Point{}, makeError(ErrPubKeyXTooBig, str)
		}

		// y^2 = x^3 + 7, so y is a square root of the right hand side.
		fx := FieldElement(x)
		y := Sqrt(fx.PowUint64(3).Add(curveParams.b))
		if !curveOnCurve(fx, y) {
			str := fmt.Sprintf("invalid public key: x coordinate %x is not on "+
				"the secp256k1 curve", x)
			return Point{}, makeError(ErrPubKeyNotOnCurve, str)
		}
		wantOdd := format == PubKeyFormatCompressedOdd
		if y.IsOdd() != wantOdd {
			y = y.Neg()
		}
		return NewPoint(x, y.Value()), nil
	}

	str := fmt.Sprintf("malformed public key: invalid length: %d",
		len(serialized))
	return Point{}, makeError(ErrPubKeyInvalidLen, str)
}

// curveOnCurve reports whether (x, y) lies on secp256k1.
func curveOnCurve(x, y field.Element) bool {
	return curve.OnCurve(x, y, curveParams.a, curveParams.b)
}
