package based

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAlphabet is returned when an alphabet has fewer than two digits,
	// repeats a digit, or is not valid UTF-8.
	ErrInvalidAlphabet = errors.New("invalid alphabet")

	// ErrUnknownDigit is matched by every *UnknownDigitError.
	ErrUnknownDigit = errors.New("unknown digit")

	// ErrOverflow is returned when a numeral does not fit the target integer type.
	ErrOverflow = errors.New("value overflows target type")

	// ErrEmptyNumeral is returned when decoding an empty string.
	ErrEmptyNumeral = errors.New("empty numeral")

	// ErrNegative is returned when encoding a negative (or nil) big integer.
	ErrNegative = errors.New("negative value")

	// ErrBaseTooLarge is returned by digit-value operations when the base
	// exceeds 65536 and values no longer fit in a uint16.
	ErrBaseTooLarge = errors.New("base too large")

	// ErrDigitOutOfRange is returned when a digit value is not below the base.
	ErrDigitOutOfRange = errors.New("digit value out of range")
)

// UnknownDigitError reports a character that is not part of the numeral system.
type UnknownDigitError struct {
	Digit  rune // the offending character
	Pos    int  // digit index within the input
	Offset int  // byte offset within the input
}

func (e *UnknownDigitError) Error() string {
	return fmt.Sprintf("unknown digit %q at position %d (byte %d)", e.Digit, e.Pos, e.Offset)
}

// Unwrap lets errors.Is(err, ErrUnknownDigit) match.
func (e *UnknownDigitError) Unwrap() error {
	return ErrUnknownDigit
}
