// Copyright (c) 2024 The ModChain developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package base58 implements the Base58 and Base58Check text encodings used
// for keys and addresses.
package base58

import (
	"bytes"
	"math/big"

	"github.com/ModChain/ecmath/digest"
	"github.com/cockroachdb/errors"
)

// Alphabet is the Bitcoin Base58 alphabet.  It omits 0, O, I and l.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// ChecksumLen is the number of hash256 bytes appended by CheckEncode.
const ChecksumLen = 4

var (
	ErrInvalidFormat = errors.New("invalid base58 string")
	ErrChecksum      = errors.New("bad base58 checksum")
)

var (
	radix     = big.NewInt(58)
	decodeMap [256]int8
)

func init() {
	for i := range decodeMap {
		decodeMap[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		decodeMap[Alphabet[i]] = int8(i)
	}
}

// Encode returns the Base58 encoding of b.  Every leading zero byte becomes
// a leading '1'.
func Encode(b []byte) string {
	zeros := 0
	for zeros < len(b) && b[zeros] == 0 {
		zeros++
	}

	num := new(big.Int).SetBytes(b[zeros:])
	rem := new(big.Int)
	// log(256)/log(58) < 1.37
	out := make([]byte, 0, len(b)*137/100+1)
	for num.Sign() > 0 {
		num.DivMod(num, radix, rem)
		out = append(out, Alphabet[rem.Int64()])
	}
	for i := 0; i < zeros; i++ {
		out = append(out, Alphabet[0])
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// Decode returns the bytes encoded by s.  Every leading '1' becomes a leading
// zero byte.
func Decode(s string) ([]byte, error) {
	ones := 0
	for ones < len(s) && s[ones] == Alphabet[0] {
		ones++
	}

	num := new(big.Int)
	digit := new(big.Int)
	for i := ones; i < len(s); i++ {
		d := decodeMap[s[i]]
		if d < 0 {
			return nil, errors.Wrapf(ErrInvalidFormat, "character %q at offset %d", s[i], i)
		}
		num.Mul(num, radix)
		num.Add(num, digit.SetInt64(int64(d)))
	}

	body := num.Bytes()
	out := make([]byte, ones+len(body))
	copy(out[ones:], body)
	return out, nil
}

// Checksum returns the first four bytes of hash256(payload).
func Checksum(payload []byte) []byte {
	return digest.Hash256(payload)[:ChecksumLen]
}

// CheckEncode returns the Base58 encoding of payload followed by its
// checksum.
func CheckEncode(payload []byte) string {
	buf := make([]byte, 0, len(payload)+ChecksumLen)
	buf = append(buf, payload...)
	buf = append(buf, Checksum(payload)...)
	return Encode(buf)
}

// CheckDecode decodes a string produced by CheckEncode, verifies the
// checksum and returns the payload.
func CheckDecode(s string) ([]byte, error) {
	raw, err := Decode(s)
	if err != nil {
		return nil, err
	}
	if len(raw) < ChecksumLen {
		return nil, errors.Wrapf(ErrInvalidFormat, "decoded length %d shorter than checksum", len(raw))
	}
	payload, sum := raw[:len(raw)-ChecksumLen], raw[len(raw)-ChecksumLen:]
	if !bytes.Equal(sum, Checksum(payload)) {
		return nil, ErrChecksum
	}
	return payload, nil
}
