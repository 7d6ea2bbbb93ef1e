// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package curve

import (
	"fmt"
	"math/big"

	"github.com/ModChain/ecmath/field"
	"github.com/cockroachdb/errors"
)

// Affine is a finite point given by its affine coordinates.  Both coordinates
// share one field.
type Affine struct {
	X, Y field.Element
}

// Point is an element of the group of points on the short Weierstrass curve
// y^2 = x^3 + a*x + b.  A Point without affine coordinates is the point at
// infinity of its curve.  Points are immutable values.
type Point struct {
	affine *Affine
	a, b   field.Element
}

// OnCurve returns whether (x, y) satisfies y^2 = x^3 + a*x + b.  All four
// elements must belong to the same field.
func OnCurve(x, y, a, b field.Element) bool {
	lhs := y.Square()
	rhs := x.PowUint64(3).Add(a.Mul(x)).Add(b)
	return lhs.Equal(rhs)
}

// NewPoint returns the finite point (x, y) on the curve (a, b).  It panics
// when the coordinate does not satisfy the curve equation.
func NewPoint(x, y, a, b field.Element) Point {
	if !OnCurve(x, y, a, b) {
		panic(errors.AssertionFailedf("(%s, %s) is not on the curve y^2 = x^3 + %s*x + %s",
			x.Value(), y.Value(), a.Value(), b.Value()))
	}
	return Point{affine: &Affine{X: x, Y: y}, a: a, b: b}
}

// Infinity returns the identity element of the curve (a, b).
func Infinity(a, b field.Element) Point {
	if !a.SameField(b) {
		panic(errors.AssertionFailedf("curve coefficients from different fields"))
	}
	return Point{a: a, b: b}
}

// IsInfinity returns whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.affine == nil
}

// Affine returns the affine coordinates of p and true, or false when p is the
// point at infinity.
func (p Point) Affine() (Affine, bool) {
	if p.affine == nil {
		return Affine{}, false
	}
	return *p.affine, true
}

// A returns the a coefficient of the curve p lies on.
func (p Point) A() field.Element { return p.a }

// B returns the b coefficient of the curve p lies on.
func (p Point) B() field.Element { return p.b }

// SameCurve returns whether p and q lie on the same curve.
func (p Point) SameCurve(q Point) bool {
	return p.a.Equal(q.a) && p.b.Equal(q.b)
}

// Equal returns whether p and q are the same point of the same curve.
func (p Point) Equal(q Point) bool {
	if !p.SameCurve(q) {
		return false
	}
	if p.affine == nil || q.affine == nil {
		return p.affine == nil && q.affine == nil
	}
	return p.affine.X.Equal(q.affine.X) && p.affine.Y.Equal(q.affine.Y)
}

func (p Point) infinity() Point {
	return Point{a: p.a, b: p.b}
}

// Neg returns the additive inverse (x, -y) of p.
func (p Point) Neg() Point {
	if p.affine == nil {
		return p
	}
	return Point{
		affine: &Affine{X: p.affine.X, Y: p.affine.Y.Neg()},
		a:      p.a,
		b:      p.b,
	}
}

// Add returns p + q.  It panics when p and q lie on different curves.
func (p Point) Add(q Point) Point {
	if !p.SameCurve(q) {
		panic(errors.AssertionFailedf("points %s and %s are not on the same curve", p, q))
	}

	// The identity absorbs.
	if p.affine == nil {
		return q
	}
	if q.affine == nil {
		return p
	}

	p1, p2 := p.affine, q.affine
	if p1.X.Equal(p2.X) {
		// Either the inverse of p, or p itself with a vertical tangent.
		if !p1.Y.Equal(p2.Y) || p1.Y.IsZero() {
			return p.infinity()
		}
		return p.double()
	}

	// s = (y2 - y1) / (x2 - x1)
	// x3 = s^2 - x1 - x2
	// y3 = s(x1 - x3) - y1
	s := p2.Y.Sub(p1.Y).Div(p2.X.Sub(p1.X))
	x3 := s.Square().Sub(p1.X).Sub(p2.X)
	y3 := s.Mul(p1.X.Sub(x3)).Sub(p1.Y)
	return Point{affine: &Affine{X: x3, Y: y3}, a: p.a, b: p.b}
}

// Double returns p + p.
func (p Point) Double() Point {
	if p.affine == nil || p.affine.Y.IsZero() {
		return p.infinity()
	}
	return p.double()
}

// double handles the tangent case for a finite point with y != 0.
func (p Point) double() Point {
	// s = (3x^2 + a) / 2y
	// x3 = s^2 - 2x
	// y3 = s(x - x3) - y
	x, y := p.affine.X, p.affine.Y
	s := x.Square().MulInt(big.NewInt(3)).Add(p.a).Div(y.MulInt(big.NewInt(2)))
	x3 := s.Square().Sub(x.MulInt(big.NewInt(2)))
	y3 := s.Mul(x.Sub(x3)).Sub(y)
	return Point{affine: &Affine{X: x3, Y: y3}, a: p.a, b: p.b}
}

// ScalarMult returns k*p using double-and-add over the bits of k from least
// to most significant.  0*p is the point at infinity.
//
// The loop branches on the bits of k and is therefore not constant time.
func (p Point) ScalarMult(k *big.Int) Point {
	if k == nil || k.Sign() < 0 {
		panic(errors.AssertionFailedf("negative scalar %v", k))
	}
	result := p.infinity()
	addend := p
	for i := 0; i < k.BitLen(); i++ {
		if k.Bit(i) == 1 {
			result = result.Add(addend)
		}
		addend = addend.Add(addend)
	}
	return result
}

// String returns "(x, y)" or "Infinity".
func (p Point) String() string {
	if p.affine == nil {
		return "Infinity"
	}
	return fmt.Sprintf("(%s, %s)", p.affine.X.Value(), p.affine.Y.Value())
}
