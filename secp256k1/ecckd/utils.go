package ecckd

import (
	"math/big"

	"github.com/ModChain/ecmath/secp256k1"
)

// ser256 returns v as 32 big-endian bytes.
func ser256(v *big.Int) []byte {
	return v.FillBytes(make([]byte, 32))
}

// parse256 reads a 32-byte big-endian integer.
func parse256(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// addScalars returns (a + b) mod N.
func addScalars(a, b *big.Int) *big.Int {
	sum := new(big.Int).Add(a, b)
	return sum.Mod(sum, secp256k1.Order())
}
