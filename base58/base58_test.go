// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package base58

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

var encodeTests = []struct {
	in  string
	out string
}{
	{"", ""},
	{"00", "1"},
	{"0000", "11"},
	{"00010203", "1Ldp"},
	{"ff", "5Q"},
	{"0000287fb4cd", "11233QC4"},
	{"7c076ff316692a3d7eb3c3bb0f8b1488cf72e1afcd929e29307032997a838a3d", "9MA8fRQrT4u8Zj8ZRd6MAiiyaxb2Y1CMpvVkHQu5hVM6"},
	{"eff69ef2b1bd93a66ed5219add4fb51e11a840f404876325a1e8ffe0529a2c", "4fE3H2E6XMp4SsxtwinF7w9a34ooUrwWe4WsW1458Pd"},
	{"c7207fee197d27c618aea621406f6bf5ef6fca38681d82b2f06fddbdce6feab6", "EQJsjkd6JaGwxrjEhfeqPenqHwrBmPQZjJGNSCHBkcF7"},
}

func TestEncode(t *testing.T) {
	for i, test := range encodeTests {
		in, err := hex.DecodeString(test.in)
		require.NoError(t, err)
		require.Equal(t, test.out, Encode(in), "#%d", i)
	}
}

func TestDecode(t *testing.T) {
	for i, test := range encodeTests {
		got, err := Decode(test.out)
		require.NoError(t, err, "#%d", i)
		require.Equal(t, test.in, hex.EncodeToString(got), "#%d", i)
	}

	for _, bad := range []string{"0", "O", "I", "l", "3mJr0", "abc def", "é"} {
		_, err := Decode(bad)
		require.True(t, errors.Is(err, ErrInvalidFormat), "%q: %v", bad, err)
	}
}

func TestCheckEncode(t *testing.T) {
	payload := make([]byte, 21)
	require.Equal(t, "1111111111111111111114oLvT2", CheckEncode(payload))
	require.Equal(t, "2L5B5yqsVG8Vt", CheckEncode([]byte("hello")))

	got, err := CheckDecode("2L5B5yqsVG8Vt")
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), got)
}

func TestCheckDecodeErrors(t *testing.T) {
	_, err := CheckDecode("2L5B5yqsVG8Vu")
	require.True(t, errors.Is(err, ErrChecksum), "got %v", err)

	_, err = CheckDecode("111")
	require.True(t, errors.Is(err, ErrInvalidFormat), "got %v", err)

	_, err = CheckDecode("2L5B5yqsVG0Vt")
	require.True(t, errors.Is(err, ErrInvalidFormat), "got %v", err)
}

func TestRoundTrip(t *testing.T) {
	properties := gopter.NewProperties(nil)
	properties.Property("decode inverts encode", prop.ForAll(
		func(b []byte) bool {
			got, err := Decode(Encode(b))
			return err == nil && bytes.Equal(got, b)
		},
		gen.SliceOf(gen.UInt8()),
	))
	properties.Property("check decode inverts check encode", prop.ForAll(
		func(b []byte) bool {
			got, err := CheckDecode(CheckEncode(b))
			return err == nil && bytes.Equal(got, b)
		},
		gen.SliceOf(gen.UInt8()),
	))
	properties.Property("leading zeros map to ones", prop.ForAll(
		func(zeros uint8, b []byte) bool {
			in := append(make([]byte, zeros%8), b...)
			out := Encode(in)
			n := 0
			for n < len(out) && out[n] == '1' {
				n++
			}
			lead := 0
			for lead < len(in) && in[lead] == 0 {
				lead++
			}
			return n == lead
		},
		gen.UInt8(), gen.SliceOf(gen.UInt8()),
	))
	properties.TestingRun(t)
}
