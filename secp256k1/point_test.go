// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"bytes"
	"encoding/hex"
	"errors"
	"math/big"
	"testing"

	crdberrors "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

// hexToBytes converts the passed hex string into bytes and will panic if
// there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

func requireAssertion(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.True(t, crdberrors.HasAssertionFailure(err), "got %v", err)
	}()
	f()
}

func TestGroupOrder(t *testing.T) {
	g := Generator()
	require.False(t, g.IsInfinity())
	require.Equal(t, 0, g.X().Cmp(S256().Gx()))
	require.Equal(t, 0, g.Y().Cmp(S256().Gy()))

	// N*G computed on the generic curve without the scalar reduction.
	require.True(t, g.Curve().ScalarMult(Order()).IsInfinity())

	minusG := ScalarBaseMult(new(big.Int).Sub(Order(), big.NewInt(1)))
	require.True(t, minusG.Equal(g.Neg()))
	require.True(t, minusG.Add(g).IsInfinity())

	require.True(t, ScalarBaseMult(big.NewInt(0)).IsInfinity())
	require.True(t, ScalarBaseMult(Order()).IsInfinity())
	require.True(t, ScalarBaseMult(big.NewInt(2)).Equal(g.Add(g)))
}

func TestCurveParamsCopies(t *testing.T) {
	n := S256().N()
	n.SetInt64(1)
	require.NotEqual(t, 0, S256().N().Cmp(n))
	require.Equal(t, "secp256k1", S256().Name)
	require.Equal(t, 256, S256().BitSize)
	require.True(t, S256().A().IsZero())
}

func TestInfinityAccessors(t *testing.T) {
	inf := Infinity()
	require.Nil(t, inf.X())
	require.Nil(t, inf.Y())
	require.Equal(t, "Infinity", inf.String())
	requireAssertion(t, func() { inf.SerializeCompressed() })
	requireAssertion(t, func() { inf.SerializeUncompressed() })
}

func TestNewPointOffCurve(t *testing.T) {
	y := new(big.Int).Add(S256().Gy(), big.NewInt(1))
	requireAssertion(t, func() { NewPoint(S256().Gx(), y) })
	requireAssertion(t, func() { ScalarBaseMult(big.NewInt(-1)) })
}

func TestSqrt(t *testing.T) {
	for i := int64(1); i < 20; i++ {
		v := FieldElement(big.NewInt(i))
		sq := v.Square()
		root := Sqrt(sq)
		require.True(t, root.Equal(v) || root.Equal(v.Neg()), "#%d: got %s", i, root)
	}
	// Gy is a root of Gx^3 + 7.
	gx := FieldElement(S256().Gx())
	root := Sqrt(gx.PowUint64(3).Add(S256().B()))
	require.True(t, root.Square().Equal(gx.PowUint64(3).Add(S256().B())))
}

func TestParsePubKeyErrors(t *testing.T) {
	gx := hex.EncodeToString(S256().Gx().Bytes())
	gy := hex.EncodeToString(S256().Gy().Bytes())
	gyPlusOne := hex.EncodeToString(new(big.Int).Add(S256().Gy(), big.NewInt(1)).Bytes())
	ff := "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"

	tests := []struct {
		name string
		key  string
		err  error
	}{{
		name: "empty",
		key:  "",
		err:  ErrPubKeyInvalidLen,
	}, {
		name: "truncated compressed",
		key:  "02" + gx[:62],
		err:  ErrPubKeyInvalidLen,
	}, {
		name: "uncompressed with bad prefix",
		key:  "05" + gx + gy,
		err:  ErrPubKeyInvalidFormat,
	}, {
		name: "hybrid prefix",
		key:  "06" + gx + gy,
		err:  ErrPubKeyInvalidFormat,
	}, {
		name: "compressed with uncompressed prefix",
		key:  "04" + gx,
		err:  ErrPubKeyInvalidFormat,
	}, {
		name: "uncompressed x >= p",
		key:  "04" + ff + gy,
		err:  ErrPubKeyXTooBig,
	}, {
		name: "uncompressed y >= p",
		key:  "04" + gx + ff,
		err:  ErrPubKeyYTooBig,
	}, {
		name: "compressed x >= p",
		key:  "02" + ff,
		err:  ErrPubKeyXTooBig,
	}, {
		name: "uncompressed not on curve",
		key:  "04" + gx + gyPlusOne,
		err:  ErrPubKeyNotOnCurve,
	}, {
		name: "compressed x with no y",
		key:  "02" + "0000000000000000000000000000000000000000000000000000000000000005",
		err:  ErrPubKeyNotOnCurve,
	}}

	for _, test := range tests {
		_, err := ParsePubKey(hexToBytes(test.key))
		if !errors.Is(err, test.err) {
			t.Errorf("%s: mismatched err -- got %v, want %v", test.name, err,
				test.err)
		}
	}
}

func TestParsePubKeyRoundTrip(t *testing.T) {
	for i := int64(1); i <= 16; i++ {
		p := ScalarBaseMult(big.NewInt(i * 7919))
		for _, compressed := range []bool{true, false} {
			b := p.Serialize(compressed)
			got, err := ParsePubKey(b)
			require.NoError(t, err)
			require.True(t, got.Equal(p), "#%d: got %s want %s", i, got, p)
			require.True(t, bytes.Equal(got.Serialize(compressed), b))
		}
	}

	// The parity byte selects the root.
	odd := hexToBytes("03d90cd625ee87dd38656dd95cf79f65f60f7273b67d3096e68bd81e4f5342691f")
	p, err := ParsePubKey(odd)
	require.NoError(t, err)
	require.Equal(t, uint(1), p.Y().Bit(0))
	odd[0] = PubKeyFormatCompressedEven
	q, err := ParsePubKey(odd)
	require.NoError(t, err)
	require.True(t, q.Equal(p.Neg()))
}

func TestAddressLengths(t *testing.T) {
	p := ScalarBaseMult(big.NewInt(5000))
	require.Len(t, p.Hash160(true), 20)
	require.Equal(t, byte('1'), p.Address(true, false)[0])
	require.Contains(t, "mn", string(p.Address(false, true)[0]))
}
