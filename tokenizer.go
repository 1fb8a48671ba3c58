package based

import (
	"fmt"

	"github.com/vdparikh/based/subtle"
	"go.uber.org/zap"
)

// Tokenizer maps numerals to tokens and back.
// Tokens are numerals of the same numeral system and the same length.
// Tokenization is deterministic: the same numeral and key always give the same token.
type Tokenizer interface {
	// Tokenize encrypts a numeral. Every character must be a digit of the system.
	Tokenize(numeral string) (string, error)

	// Detokenize is the inverse of Tokenize.
	Detokenize(token string) (string, error)
}

// FF1Tokenizer tokenizes numerals with the FF1 format-preserving encryption
// algorithm, using the numeral system's base as radix.
//
// Leading zero digits are significant: "0042" and "42" give different tokens of
// different lengths.
type FF1Tokenizer struct {
	ns  *NumeralSystem
	ff1 *subtle.FF1
}

// NewFF1Tokenizer creates a tokenizer for ns.
// The key must be 16, 24 or 32 bytes. The tweak is public and may be empty;
// use it to separate domains (for example "tenant-1234|order.id").
func NewFF1Tokenizer(ns *NumeralSystem, key, tweak []byte) (*FF1Tokenizer, error) {
	if ns == nil {
		return nil, fmt.Errorf("numeral system cannot be nil")
	}
	if ns.Base() > subtle.MaxRadix {
		return nil, fmt.Errorf("%w: base %d exceeds maximum radix %d", ErrBaseTooLarge, ns.Base(), subtle.MaxRadix)
	}

	ff1, err := subtle.NewFF1(key, tweak, ns.Base())
	if err != nil {
		return nil, fmt.Errorf("failed to create FF1: %w", err)
	}

	Logger().Debug("created FF1 tokenizer",
		zap.Int("base", ns.Base()),
		zap.Int("key_bytes", len(key)),
		zap.Int("tweak_bytes", len(tweak)))

	return &FF1Tokenizer{ns: ns, ff1: ff1}, nil
}

// NumeralSystem returns the system the tokenizer works in.
func (t *FF1Tokenizer) NumeralSystem() *NumeralSystem {
	return t.ns
}

// Tokenize encrypts numeral. The numeral must have at least two digits and
// base^len(numeral) must be at least 1000.
func (t *FF1Tokenizer) Tokenize(numeral string) (string, error) {
	values, err := t.ns.DigitValues(numeral)
	if err != nil {
		return "", fmt.Errorf("failed to tokenize: %w", err)
	}

	encrypted, err := t.ff1.Encrypt(values)
	if err != nil {
		return "", fmt.Errorf("failed to tokenize: %w", err)
	}

	return t.ns.FromDigitValues(encrypted)
}

// Detokenize decrypts a token produced by Tokenize.
func (t *FF1Tokenizer) Detokenize(token string) (string, error) {
	values, err := t.ns.DigitValues(token)
	if err != nil {
		return "", fmt.Errorf("failed to detokenize: %w", err)
	}

	decrypted, err := t.ff1.Decrypt(values)
	if err != nil {
		return "", fmt.Errorf("failed to detokenize: %w", err)
	}

	return t.ns.FromDigitValues(decrypted)
}

// TokenizeFormatted tokenizes the digits of s and keeps every other character
// (separators such as '-' or ' ') at its position.
//
//	TokenizeFormatted("123-45-6789") // e.g. "830-19-2247"
func (t *FF1Tokenizer) TokenizeFormatted(s string) (string, error) {
	mask, digits, err := t.ns.separateFormat(s)
	if err != nil {
		return "", err
	}
	token, err := t.Tokenize(digits)
	if err != nil {
		return "", err
	}
	return reconstructWithFormat(token, mask, s), nil
}

// DetokenizeFormatted is the inverse of TokenizeFormatted.
func (t *FF1Tokenizer) DetokenizeFormatted(s string) (string, error) {
	mask, digits, err := t.ns.separateFormat(s)
	if err != nil {
		return "", err
	}
	numeral, err := t.Detokenize(digits)
	if err != nil {
		return "", err
	}
	return reconstructWithFormat(numeral, mask, s), nil
}

var _ Tokenizer = (*FF1Tokenizer)(nil)
