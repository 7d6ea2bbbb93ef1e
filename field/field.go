// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package field

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/errors"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// Element is an integer representative modulo a prime.  It is an immutable
// value type: every operation returns a new Element sharing the receiver's
// modulus and never modifies its operands.
//
// The zero value is not a valid Element.
type Element struct {
	value   *big.Int
	modulus *big.Int
}

// New returns the element with the given value in the field of modulus.  It
// panics when value is negative or not less than modulus.
//
// The modulus is assumed to be prime.  This is not checked, but Div and
// Inverse rely on it.
func New(value, modulus *big.Int) Element {
	if modulus == nil || modulus.Cmp(one) <= 0 {
		panic(errors.AssertionFailedf("invalid field modulus %v", modulus))
	}
	if value == nil || value.Sign() < 0 || value.Cmp(modulus) >= 0 {
		panic(errors.AssertionFailedf("value %v not in field range 0 to %v",
			value, new(big.Int).Sub(modulus, one)))
	}
	return Element{
		value:   new(big.Int).Set(value),
		modulus: new(big.Int).Set(modulus),
	}
}

// NewFromUint64 is a convenience wrapper around New for small values.
func NewFromUint64(value, modulus uint64) Element {
	return New(new(big.Int).SetUint64(value), new(big.Int).SetUint64(modulus))
}

// Reduce returns the element value mod modulus for an arbitrary non-negative
// value, performing the reduction New refuses to do implicitly.
func Reduce(value, modulus *big.Int) Element {
	if value == nil || value.Sign() < 0 {
		panic(errors.AssertionFailedf("cannot reduce negative value %v", value))
	}
	return New(new(big.Int).Mod(value, modulus), modulus)
}

// fromTrusted wraps an already reduced value without copying it.
func (e Element) fromTrusted(v *big.Int) Element {
	return Element{value: v, modulus: e.modulus}
}

// Value returns a copy of the element's integer representative.
func (e Element) Value() *big.Int {
	return new(big.Int).Set(e.value)
}

// Modulus returns a copy of the field modulus.
func (e Element) Modulus() *big.Int {
	return new(big.Int).Set(e.modulus)
}

// Zero returns the additive identity in the field of e.
func (e Element) Zero() Element {
	return e.fromTrusted(new(big.Int))
}

// One returns the multiplicative identity in the field of e.
func (e Element) One() Element {
	return e.fromTrusted(big.NewInt(1))
}

// IsZero returns whether the element is the additive identity.
func (e Element) IsZero() bool {
	return e.value.Sign() == 0
}

// IsOdd returns whether the integer representative is odd.
func (e Element) IsOdd() bool {
	return e.value.Bit(0) == 1
}

// Equal returns whether both the value and the modulus of e and o match.
func (e Element) Equal(o Element) bool {
	return e.value.Cmp(o.value) == 0 && e.modulus.Cmp(o.modulus) == 0
}

// SameField returns whether e and o share a modulus.
func (e Element) SameField(o Element) bool {
	return e.modulus.Cmp(o.modulus) == 0
}

func (e Element) mustSameField(o Element, op string) {
	if e.modulus == nil || o.modulus == nil {
		panic(errors.AssertionFailedf("%s on uninitialized field element", op))
	}
	if !e.SameField(o) {
		panic(errors.AssertionFailedf("cannot %s elements of different fields: %v and %v",
			op, e.modulus, o.modulus))
	}
}

// Add returns e + o.
//
// The sum is formed without ever exceeding the modulus: when o does not fit
// in the room left above e, the result wraps as o - (modulus - e).
func (e Element) Add(o Element) Element {
	e.mustSameField(o, "add")
	room := new(big.Int).Sub(e.modulus, e.value)
	if room.Cmp(o.value) <= 0 {
		return e.fromTrusted(room.Sub(o.value, room))
	}
	return e.fromTrusted(new(big.Int).Add(e.value, o.value))
}

// Sub returns e - o.  The modulus is added before subtracting when e < o so
// the intermediate is never negative.
func (e Element) Sub(o Element) Element {
	e.mustSameField(o, "subtract")
	if e.value.Cmp(o.value) >= 0 {
		return e.fromTrusted(new(big.Int).Sub(e.value, o.value))
	}
	v := new(big.Int).Sub(e.modulus, o.value)
	return e.fromTrusted(v.Add(v, e.value))
}

// Neg returns -e.
func (e Element) Neg() Element {
	return e.Zero().Sub(e)
}

// Mul returns e * o.  The double-width product is formed before reduction.
func (e Element) Mul(o Element) Element {
	e.mustSameField(o, "multiply")
	v := new(big.Int).Mul(e.value, o.value)
	return e.fromTrusted(v.Mod(v, e.modulus))
}

// MulInt returns e * k where k is first reduced into the field.
func (e Element) MulInt(k *big.Int) Element {
	return e.Mul(Reduce(k, e.modulus))
}

// Square returns e * e.
func (e Element) Square() Element {
	return e.Mul(e)
}

// Pow returns e raised to exponent using square-and-multiply over the bits of
// exponent from least to most significant.  Pow of a zero exponent is one.
func (e Element) Pow(exponent *big.Int) Element {
	if exponent == nil || exponent.Sign() < 0 {
		panic(errors.AssertionFailedf("negative exponent %v", exponent))
	}
	result := e.One()
	base := e
	for i := 0; i < exponent.BitLen(); i++ {
		if exponent.Bit(i) == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
	}
	return result
}

// PowUint64 is Pow for small exponents.
func (e Element) PowUint64(exponent uint64) Element {
	return e.Pow(new(big.Int).SetUint64(exponent))
}

// Inverse returns the multiplicative inverse e^(modulus-2).  The inverse of
// zero is zero.
func (e Element) Inverse() Element {
	return e.Pow(new(big.Int).Sub(e.modulus, two))
}

// Div returns e * o^-1.
func (e Element) Div(o Element) Element {
	e.mustSameField(o, "divide")
	return e.Mul(o.Inverse())
}

// String returns the element as "value mod modulus".
func (e Element) String() string {
	if e.value == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s mod %s", e.value, e.modulus)
}

// Bytes returns the big-endian encoding of the value left padded with zeros
// to size bytes.  It panics when the value does not fit.
func (e Element) Bytes(size int) []byte {
	if (e.value.BitLen()+7)/8 > size {
		panic(errors.AssertionFailedf("value %v does not fit in %d bytes", e.value, size))
	}
	return e.value.FillBytes(make([]byte, size))
}
