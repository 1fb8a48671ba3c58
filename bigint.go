package based

import (
	"math/big"
)

// EncodeBig returns the representation of v, which may exceed 64 bits.
// The error wraps ErrNegative if v is nil or negative.
func (ns *NumeralSystem) EncodeBig(v *big.Int) (string, error) {
	if v == nil || v.Sign() < 0 {
		return "", ErrNegative
	}
	if v.Sign() == 0 {
		return string(ns.digits[0]), nil
	}

	radix := big.NewInt(int64(len(ns.digits)))
	temp := new(big.Int).Set(v)
	var rem big.Int

	var stack []rune
	for temp.Sign() > 0 {
		temp.DivMod(temp, radix, &rem)
		stack = append(stack, ns.digits[rem.Int64()])
	}

	for i, j := 0, len(stack)-1; i < j; i, j = i+1, j-1 {
		stack[i], stack[j] = stack[j], stack[i]
	}
	return string(stack), nil
}

// DecodeBig returns the value represented by s as an arbitrary-precision integer.
// It fails like Decode, except that it never overflows.
func (ns *NumeralSystem) DecodeBig(s string) (*big.Int, error) {
	if s == "" {
		return nil, ErrEmptyNumeral
	}

	result := new(big.Int)
	radix := big.NewInt(int64(len(ns.digits)))
	var digit big.Int

	err := ns.scan(s, func(d int) error {
		result.Mul(result, radix)
		result.Add(result, digit.SetInt64(int64(d)))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
