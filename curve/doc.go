// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package curve implements the group law for short Weierstrass curves
// y^2 = x^3 + a*x + b over a prime field, in affine coordinates.
//
// The point at infinity carries no coordinates but keeps the curve
// coefficients, so it can only be combined with points of the same curve.
package curve
