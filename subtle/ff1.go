// Package subtle provides low-level primitives for format-preserving tokenization.
// This package contains the NIST SP 800-38G FF1 algorithm working on raw keys and
// digit values. Most users should use the Tokenizer in the parent package instead.
package subtle

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"fmt"
	"math/big"
)

const (
	// MinRadix and MaxRadix bound the radix accepted by NewFF1.
	MinRadix = 2
	MaxRadix = 1 << 16

	// MinDomainSize is the smallest radix^n accepted for encryption.
	// Smaller domains can be enumerated and are not worth protecting.
	MinDomainSize = 1000

	// MaxInputLength limits the number of digits per call.
	MaxInputLength = 100000

	rounds = 10
)

// FF1 implements the NIST SP 800-38G FF1 algorithm for a fixed key, tweak and radix.
//
// Thread safety: FF1 is safe for concurrent use by multiple goroutines,
// as Encrypt and Decrypt do not modify the FF1 instance state.
type FF1 struct {
	block    cipher.Block
	tweak    []byte
	radix    int
	radixBig *big.Int
}

// NewFF1 creates a new FF1 instance.
// The key must be 16, 24 or 32 bytes (AES-128, AES-192 or AES-256).
// The tweak is a public, non-secret value; different tweaks yield unrelated
// ciphertexts for the same plaintext.
func NewFF1(key, tweak []byte, radix int) (*FF1, error) {
	keyLen := len(key)
	if keyLen != 16 && keyLen != 24 && keyLen != 32 {
		return nil, fmt.Errorf("invalid key size: %d bytes (must be 16, 24, or 32)", keyLen)
	}
	if radix < MinRadix || radix > MaxRadix {
		return nil, fmt.Errorf("radix %d out of range [%d, %d]", radix, MinRadix, MaxRadix)
	}
	if uint64(len(tweak)) > 1<<32-1 {
		return nil, fmt.Errorf("tweak too long: %d bytes", len(tweak))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	t := make([]byte, len(tweak))
	copy(t, tweak)

	return &FF1{
		block:    block,
		tweak:    t,
		radix:    radix,
		radixBig: big.NewInt(int64(radix)),
	}, nil
}

// Radix returns the radix the instance was created for.
func (f *FF1) Radix() int {
	return f.radix
}

// Encrypt performs FF1 encryption of the digit values in plaintext.
// The result has the same length and every value stays below the radix.
func (f *FF1) Encrypt(plaintext []uint16) ([]uint16, error) {
	if err := f.validate(plaintext); err != nil {
		return nil, err
	}

	n := len(plaintext)
	u := n / 2
	v := n - u

	A := append([]uint16(nil), plaintext[:u]...)
	B := append([]uint16(nil), plaintext[u:]...)

	b := byteLength(f.radixBig, v)
	d := 4*((b+3)/4) + 4
	P := f.header(u, n)
	modU := new(big.Int).Exp(f.radixBig, big.NewInt(int64(u)), nil)
	modV := new(big.Int).Exp(f.radixBig, big.NewInt(int64(v)), nil)

	for i := 0; i < rounds; i++ {
		y := f.round(P, i, B, b, d)

		m, mod := u, modU
		if i%2 == 1 {
			m, mod = v, modV
		}

		// c = (NUM(A) + y) mod radix^m
		c := numradix(A, f.radixBig)
		c.Add(c, y)
		c.Mod(c, mod)

		A, B = B, strradix(c, f.radixBig, m)
	}

	return append(A, B...), nil
}

// Decrypt reverses Encrypt.
func (f *FF1) Decrypt(ciphertext []uint16) ([]uint16, error) {
	if err := f.validate(ciphertext); err != nil {
		return nil, err
	}

	n := len(ciphertext)
	u := n / 2
	v := n - u

	A := append([]uint16(nil), ciphertext[:u]...)
	B := append([]uint16(nil), ciphertext[u:]...)

	b := byteLength(f.radixBig, v)
	d := 4*((b+3)/4) + 4
	P := f.header(u, n)
	modU := new(big.Int).Exp(f.radixBig, big.NewInt(int64(u)), nil)
	modV := new(big.Int).Exp(f.radixBig, big.NewInt(int64(v)), nil)

	for i := rounds - 1; i >= 0; i-- {
		y := f.round(P, i, A, b, d)

		m, mod := u, modU
		if i%2 == 1 {
			m, mod = v, modV
		}

		// c = (NUM(B) - y) mod radix^m; big.Int.Mod is Euclidean.
		c := numradix(B, f.radixBig)
		c.Sub(c, y)
		c.Mod(c, mod)

		A, B = strradix(c, f.radixBig, m), A
	}

	return append(A, B...), nil
}

func (f *FF1) validate(digits []uint16) error {
	n := len(digits)
	if n < 2 {
		return fmt.Errorf("input too short: %d digits (minimum 2)", n)
	}
	if n > MaxInputLength {
		return fmt.Errorf("input too long: %d digits (maximum %d)", n, MaxInputLength)
	}

	domainSize := new(big.Int).Exp(f.radixBig, big.NewInt(int64(n)), nil)
	if domainSize.Cmp(big.NewInt(MinDomainSize)) < 0 {
		return fmt.Errorf("domain size too small: radix=%d, length=%d, domain_size=%s (minimum %d)", f.radix, n, domainSize, MinDomainSize)
	}

	for i, d := range digits {
		if int(d) >= f.radix {
			return fmt.Errorf("digit %d at position %d out of range for radix %d", d, i, f.radix)
		}
	}
	return nil
}

// header builds the fixed block P for an input of n digits split at u.
func (f *FF1) header(u, n int) []byte {
	P := make([]byte, aes.BlockSize)
	P[0] = 1
	P[1] = 2
	P[2] = 1
	P[3] = byte(f.radix >> 16)
	P[4] = byte(f.radix >> 8)
	P[5] = byte(f.radix)
	P[6] = rounds
	P[7] = byte(u % 256)
	binary.BigEndian.PutUint32(P[8:], uint32(n))
	binary.BigEndian.PutUint32(P[12:], uint32(len(f.tweak)))
	return P
}

// round computes y for round i from the half x: the first d bytes of the
// PRF output, extended with further AES blocks when d exceeds one block.
func (f *FF1) round(P []byte, i int, x []uint16, b, d int) *big.Int {
	t := len(f.tweak)
	pad := ((-t-b-1)%aes.BlockSize + aes.BlockSize) % aes.BlockSize

	Q := make([]byte, t+pad+1+b)
	copy(Q, f.tweak)
	Q[t+pad] = byte(i)
	putBytes(Q[t+pad+1:], numradix(x, f.radixBig))

	R := f.prf(append(append([]byte(nil), P...), Q...))

	S := make([]byte, 0, d+aes.BlockSize)
	S = append(S, R...)
	for j := uint64(1); len(S) < d; j++ {
		var blk [aes.BlockSize]byte
		binary.BigEndian.PutUint64(blk[8:], j)
		for k := range blk {
			blk[k] ^= R[k]
		}
		f.block.Encrypt(blk[:], blk[:])
		S = append(S, blk[:]...)
	}

	return new(big.Int).SetBytes(S[:d])
}

// prf is AES CBC-MAC with a zero IV; data must be a multiple of the block size.
func (f *FF1) prf(data []byte) []byte {
	out := make([]byte, len(data))
	iv := make([]byte, aes.BlockSize)
	cipher.NewCBCEncrypter(f.block, iv).CryptBlocks(out, data)
	return out[len(out)-aes.BlockSize:]
}
