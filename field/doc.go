// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package field implements arithmetic modulo an arbitrary prime.

Elements are immutable values.  Every operation allocates a new element that
shares the modulus of its operands.  Combining elements of different fields,
or constructing an element outside [0, modulus), is a programming error and
panics with an assertion failure created by github.com/cockroachdb/errors.

Division and inversion use Fermat's little theorem (a^(p-2) = a^-1 mod p) and
are only meaningful when the modulus is prime.
*/
package field
