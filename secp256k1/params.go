// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"math/big"

	"github.com/ModChain/ecmath/field"
)

// CurveParams holds the domain parameters of the secp256k1 curve.  The value
// returned by S256 is shared and never modified; every accessor hands out a
// copy.
type CurveParams struct {
	p, n, gx, gy, halfN *big.Int
	a, b                field.Element

	// BitSize is the size of the underlying field in bits.
	BitSize int

	// Name is the canonical name of the curve.
	Name string
}

// hexToBig converts the passed hex string into a big integer and panics if
// there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected.  It will only (and must only) be
// called for initialization purposes.
func hexToBig(s string) *big.Int {
	r, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	return r
}

var curveParams = func() *CurveParams {
	p := hexToBig("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")
	n := hexToBig("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")
	return &CurveParams{
		p:       p,
		n:       n,
		gx:      hexToBig("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"),
		gy:      hexToBig("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"),
		halfN:   new(big.Int).Rsh(n, 1),
		a:       field.New(big.NewInt(0), p),
		b:       field.New(big.NewInt(7), p),
		BitSize: 256,
		Name:    "secp256k1",
	}
}()

// S256 returns the secp256k1 domain parameters.
func S256() *CurveParams {
	return curveParams
}

// P returns the prime of the underlying field.
func (c *CurveParams) P() *big.Int { return new(big.Int).Set(c.p) }

// N returns the order of the generator.
func (c *CurveParams) N() *big.Int { return new(big.Int).Set(c.n) }

// Gx returns the x coordinate of the generator.
func (c *CurveParams) Gx() *big.Int { return new(big.Int).Set(c.gx) }

// Gy returns the y coordinate of the generator.
func (c *CurveParams) Gy() *big.Int { return new(big.Int).Set(c.gy) }

// A returns the curve coefficient a (zero).
func (c *CurveParams) A() field.Element { return c.a }

// B returns the curve coefficient b (seven).
func (c *CurveParams) B() field.Element { return c.b }

// HalfOrder returns floor(N/2), the bound used for low-s normalization.
func (c *CurveParams) HalfOrder() *big.Int { return new(big.Int).Set(c.halfN) }

// Order returns the order of the generator.
func Order() *big.Int {
	return curveParams.N()
}

// FieldElement returns v as an element of the secp256k1 base field.  It
// panics when v is not in [0, P).
func FieldElement(v *big.Int) field.Element {
	return field.New(v, curveParams.p)
}

// ScalarElement returns v reduced into the scalar field modulo N.
func ScalarElement(v *big.Int) field.Element {
	return field.Reduce(v, curveParams.n)
}

// sqrtExp is (P+1)/4, precomputed for Sqrt.
var sqrtExp = func() *big.Int {
	e := new(big.Int).Add(curveParams.p, big.NewInt(1))
	return e.Rsh(e, 2)
}()

// Sqrt returns a square root of v computed as v^((P+1)/4), which is valid
// because P = 3 mod 4.  The result is one of the two roots; the other is its
// negation.  When v is not a quadratic residue the result squares to -v
// instead, so callers that cannot rule that out must check the result.
func Sqrt(v field.Element) field.Element {
	return v.Pow(sqrtExp)
}
