package based

import (
	"errors"
	"math/big"
	"strings"
	"testing"
)

func TestBigRoundTrip(t *testing.T) {
	hex := MustNew(HexLower)

	// 2^128 - 1: the widest value the original crate handled.
	maxU128 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

	s, err := hex.EncodeBig(maxU128)
	if err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}
	if want := strings.Repeat("f", 32); s != want {
		t.Errorf("EncodeBig(2^128-1) = %q, want %q", s, want)
	}

	got, err := hex.DecodeBig(s)
	if err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if got.Cmp(maxU128) != 0 {
		t.Errorf("DecodeBig(%q) = %s, want %s", s, got, maxU128)
	}

	// Beyond 128 bits.
	huge, _ := new(big.Int).SetString("123456789012345678901234567890123456789012345678901234567890", 10)
	for _, ns := range []*NumeralSystem{MustNew(Binary), Base57System, Base62System, MustNew("αβγ")} {
		s, err := ns.EncodeBig(huge)
		if err != nil {
			t.Fatalf("%s: Failed to encode: %v", ns, err)
		}
		back, err := ns.DecodeBig(s)
		if err != nil {
			t.Fatalf("%s: Failed to decode: %v", ns, err)
		}
		if back.Cmp(huge) != 0 {
			t.Errorf("%s: round trip = %s, want %s", ns, back, huge)
		}
	}
}

func TestBigAgreesWithFixedWidth(t *testing.T) {
	for _, v := range []uint64{0, 1, 56, 57, 60, 1 << 32, 1<<64 - 1} {
		s, err := Base57System.EncodeBig(new(big.Int).SetUint64(v))
		if err != nil {
			t.Fatalf("Failed to encode %d: %v", v, err)
		}
		if want := Encode(Base57System, v); s != want {
			t.Errorf("EncodeBig(%d) = %q, Encode = %q", v, s, want)
		}
	}
}

func TestBigErrors(t *testing.T) {
	if _, err := Base62System.EncodeBig(nil); !errors.Is(err, ErrNegative) {
		t.Errorf("EncodeBig(nil) error = %v, want ErrNegative", err)
	}
	if _, err := Base62System.EncodeBig(big.NewInt(-1)); !errors.Is(err, ErrNegative) {
		t.Errorf("EncodeBig(-1) error = %v, want ErrNegative", err)
	}
	if _, err := Base62System.DecodeBig(""); !errors.Is(err, ErrEmptyNumeral) {
		t.Errorf("DecodeBig(\"\") error = %v, want ErrEmptyNumeral", err)
	}

	_, err := Base62System.DecodeBig("abc-def")
	var ude *UnknownDigitError
	if !errors.As(err, &ude) {
		t.Fatalf("DecodeBig with '-' error = %v, want *UnknownDigitError", err)
	}
	if ude.Digit != '-' || ude.Pos != 3 {
		t.Errorf("got digit %q at %d, want '-' at 3", ude.Digit, ude.Pos)
	}
}
