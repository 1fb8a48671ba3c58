package subtle

import (
	"math/big"
)

// numradix interprets digits (most significant first) as a base-radix number.
// This is NUM_radix from NIST SP 800-38G.
func numradix(digits []uint16, radix *big.Int) *big.Int {
	result := new(big.Int)
	var digit big.Int

	for _, d := range digits {
		result.Mul(result, radix)
		result.Add(result, digit.SetUint64(uint64(d)))
	}

	return result
}

// strradix writes val as exactly m base-radix digits, most significant first.
// This is STR^m_radix from NIST SP 800-38G; val must be below radix^m.
func strradix(val *big.Int, radix *big.Int, m int) []uint16 {
	result := make([]uint16, m)
	temp := new(big.Int).Set(val)
	var rem big.Int

	for i := m - 1; i >= 0; i-- {
		temp.DivMod(temp, radix, &rem)
		result[i] = uint16(rem.Uint64())
	}

	return result
}

// putBytes writes val big-endian into dst, left-padded with zeros.
// val must fit in len(dst) bytes.
func putBytes(dst []byte, val *big.Int) {
	b := val.Bytes()
	clear(dst[:len(dst)-len(b)])
	copy(dst[len(dst)-len(b):], b)
}

// byteLength returns ceil(ceil(v*log2(radix))/8): the number of bytes needed to
// hold any v-digit base-radix number.
func byteLength(radix *big.Int, v int) int {
	limit := new(big.Int).Exp(radix, big.NewInt(int64(v)), nil)
	limit.Sub(limit, big.NewInt(1))
	return (limit.BitLen() + 7) / 8
}
