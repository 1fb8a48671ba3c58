package based

import (
	"fmt"
	"math"
	"math/bits"
	"strings"

	"golang.org/x/exp/constraints"
)

// Encode returns the representation of v in the numeral system.
// Zero is represented by the single digit with value 0.
//
// Encode never fails: every unsigned value is representable in any base.
func Encode[T constraints.Unsigned](ns *NumeralSystem, v T) string {
	base := uint64(len(ns.digits))
	val := uint64(v)

	if val == 0 {
		return string(ns.digits[0])
	}

	// Least significant digit first.
	stack := make([]rune, 0, 64)
	for val > 0 {
		stack = append(stack, ns.digits[val%base])
		val /= base
	}

	for i, j := 0, len(stack)-1; i < j; i, j = i+1, j-1 {
		stack[i], stack[j] = stack[j], stack[i]
	}
	return string(stack)
}

// EncodeWidth is like Encode but left-pads the result with the zero digit until
// it is at least width digits long. Longer representations are not truncated.
func EncodeWidth[T constraints.Unsigned](ns *NumeralSystem, v T, width int) string {
	s := Encode(ns, v)
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return strings.Repeat(string(ns.digits[0]), width-n) + s
}

// Decode returns the value represented by s in the numeral system.
//
// The returned error wraps ErrEmptyNumeral when s is empty, is an
// *UnknownDigitError when s contains a character outside the alphabet, and
// wraps ErrOverflow when the value does not fit in T. Overflow is detected
// before it happens, so no wrapped value is ever produced.
func Decode[T constraints.Unsigned](ns *NumeralSystem, s string) (T, error) {
	if s == "" {
		return 0, ErrEmptyNumeral
	}

	limit := uint64(^T(0))
	base := uint64(len(ns.digits))

	var acc uint64
	err := ns.scan(s, func(d int) error {
		v := uint64(d)
		if v > limit || acc > (limit-v)/base {
			return fmt.Errorf("%w: %q exceeds %d-bit range", ErrOverflow, s, bits.Len64(limit))
		}
		acc = acc*base + v
		return nil
	})
	if err != nil {
		return 0, err
	}
	return T(acc), nil
}

// DigitValues returns the value of each digit of s, most significant first.
// The base must not exceed 65536. An empty s yields an empty slice.
func (ns *NumeralSystem) DigitValues(s string) ([]uint16, error) {
	if len(ns.digits) > math.MaxUint16+1 {
		return nil, fmt.Errorf("%w: base %d does not fit digit values in uint16", ErrBaseTooLarge, len(ns.digits))
	}

	result := make([]uint16, 0, len(s))
	err := ns.scan(s, func(d int) error {
		result = append(result, uint16(d))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// FromDigitValues is the inverse of DigitValues.
func (ns *NumeralSystem) FromDigitValues(values []uint16) (string, error) {
	result := make([]rune, len(values))
	for i, v := range values {
		if int(v) >= len(ns.digits) {
			return "", fmt.Errorf("%w: value %d at position %d, base %d", ErrDigitOutOfRange, v, i, len(ns.digits))
		}
		result[i] = ns.digits[v]
	}
	return string(result), nil
}
