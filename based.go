// Package based implements custom numeral systems with single-character digits.
// A numeral system is an ordered alphabet: the first character is the digit for
// zero, the second the digit for one, and so on. The base is the number of digits.
//
// The package converts unsigned integers of any width to and from their
// representation in such a system, and can tokenize numerals with format-preserving
// encryption (FF1) so a token is itself a valid numeral of the same length.
// For Tink integration, see the tinkbased package.
//
// Example usage:
//
//	base16, err := based.New("0123456789abcdef")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	s := based.Encode(base16, uint16(255)) // "ff"
//
//	v, err := based.Decode[uint8](base16, "ff")
//	if err != nil {
//		log.Fatal(err)
//	}
//	// v == 255
//
//	// "100" is 256 and does not fit in a uint8
//	_, err = based.Decode[uint8](base16, "100")
//	// errors.Is(err, based.ErrOverflow) == true
//
// Multi-character digits are not supported.
package based

import (
	"fmt"
	"unicode/utf8"
)

// NumeralSystem is a positional numeral system defined by an ordered alphabet of
// unique characters. The value of each digit is its index in the alphabet.
//
// A NumeralSystem is immutable and safe for concurrent use by multiple goroutines.
type NumeralSystem struct {
	digits []rune
	values map[rune]int
}

// New creates a numeral system from the given alphabet.
//
// The alphabet must be valid UTF-8, contain at least two characters and must not
// repeat a character. Otherwise the returned error wraps ErrInvalidAlphabet.
func New(alphabet string) (*NumeralSystem, error) {
	if !utf8.ValidString(alphabet) {
		return nil, fmt.Errorf("%w: not valid UTF-8", ErrInvalidAlphabet)
	}
	return NewFromRunes([]rune(alphabet))
}

// NewFromRunes creates a numeral system from a sequence of single characters.
// The same rules as for New apply.
func NewFromRunes(digits []rune) (*NumeralSystem, error) {
	if len(digits) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 digits, got %d", ErrInvalidAlphabet, len(digits))
	}

	values := make(map[rune]int, len(digits))
	for i, r := range digits {
		if j, ok := values[r]; ok {
			return nil, fmt.Errorf("%w: digit %q repeated at positions %d and %d", ErrInvalidAlphabet, r, j, i)
		}
		values[r] = i
	}

	owned := make([]rune, len(digits))
	copy(owned, digits)

	return &NumeralSystem{
		digits: owned,
		values: values,
	}, nil
}

// MustNew is like New but panics if the alphabet is invalid.
// It is intended for package-level variables.
func MustNew(alphabet string) *NumeralSystem {
	ns, err := New(alphabet)
	if err != nil {
		panic(fmt.Sprintf("based: MustNew(%q): %v", alphabet, err))
	}
	return ns
}

// Base returns the number of digits in the system.
func (ns *NumeralSystem) Base() int {
	return len(ns.digits)
}

// Digit returns the character for the digit value v.
func (ns *NumeralSystem) Digit(v int) (rune, bool) {
	if v < 0 || v >= len(ns.digits) {
		return 0, false
	}
	return ns.digits[v], true
}

// Value returns the digit value of r.
func (ns *NumeralSystem) Value(r rune) (int, bool) {
	v, ok := ns.values[r]
	return v, ok
}

// String returns the alphabet.
func (ns *NumeralSystem) String() string {
	return string(ns.digits)
}

// Format returns the representation of v. It is shorthand for Encode(ns, v).
func (ns *NumeralSystem) Format(v uint64) string {
	return Encode(ns, v)
}

// Parse returns the value represented by s. It is shorthand for Decode[uint64](ns, s).
func (ns *NumeralSystem) Parse(s string) (uint64, error) {
	return Decode[uint64](ns, s)
}

// scan walks s digit by digit, calling fn with each digit value.
// It stops at the first character that is not part of the system.
func (ns *NumeralSystem) scan(s string, fn func(v int) error) error {
	pos := 0
	for offset := 0; offset < len(s); {
		r, size := utf8.DecodeRuneInString(s[offset:])
		v, ok := ns.values[r]
		if !ok || (r == utf8.RuneError && size == 1) {
			return &UnknownDigitError{Digit: r, Pos: pos, Offset: offset}
		}
		if err := fn(v); err != nil {
			return err
		}
		offset += size
		pos++
	}
	return nil
}
