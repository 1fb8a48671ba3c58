package based

import (
	"errors"
	"testing"
)

func TestNewRejectsInvalidAlphabets(t *testing.T) {
	testCases := []struct {
		name     string
		alphabet string
	}{
		{"Empty", ""},
		{"SingleDigit", "a"},
		{"LeadingDuplicate", "aabc"},
		{"DistantDuplicate", "abca"},
		{"MultiByteDuplicate", "αβγα"},
		{"InvalidUTF8", "01\xff"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ns, err := New(tc.alphabet)
			if !errors.Is(err, ErrInvalidAlphabet) {
				t.Fatalf("New(%q) error = %v, want ErrInvalidAlphabet", tc.alphabet, err)
			}
			if ns != nil {
				t.Errorf("New(%q) returned a system on error", tc.alphabet)
			}
		})
	}
}

func TestNewFromRunes(t *testing.T) {
	digits := []rune{'x', 'y', 'z'}
	ns, err := NewFromRunes(digits)
	if err != nil {
		t.Fatalf("Failed to create numeral system: %v", err)
	}

	// The system owns its digits.
	digits[0] = 'q'
	if got := ns.String(); got != "xyz" {
		t.Errorf("String() = %q after mutating input, want %q", got, "xyz")
	}

	if _, err := NewFromRunes([]rune{'x', 'x'}); !errors.Is(err, ErrInvalidAlphabet) {
		t.Errorf("NewFromRunes with duplicate: error = %v, want ErrInvalidAlphabet", err)
	}
}

func TestAccessors(t *testing.T) {
	ns, err := New("αβγδ")
	if err != nil {
		t.Fatalf("Failed to create numeral system: %v", err)
	}

	if ns.Base() != 4 {
		t.Errorf("Base() = %d, want 4 (runes, not bytes)", ns.Base())
	}
	if ns.String() != "αβγδ" {
		t.Errorf("String() = %q", ns.String())
	}

	if r, ok := ns.Digit(2); !ok || r != 'γ' {
		t.Errorf("Digit(2) = %q, %v", r, ok)
	}
	if _, ok := ns.Digit(4); ok {
		t.Error("Digit(4) should not exist in base 4")
	}
	if _, ok := ns.Digit(-1); ok {
		t.Error("Digit(-1) should not exist")
	}

	if v, ok := ns.Value('δ'); !ok || v != 3 {
		t.Errorf("Value('δ') = %d, %v", v, ok)
	}
	if _, ok := ns.Value('a'); ok {
		t.Error("Value('a') should not exist")
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew with duplicate digits did not panic")
		}
	}()
	MustNew("00")
}

func TestPredefinedAlphabets(t *testing.T) {
	testCases := []struct {
		name     string
		alphabet string
		base     int
	}{
		{"Binary", Binary, 2},
		{"Octal", Octal, 8},
		{"Decimal", Decimal, 10},
		{"HexLower", HexLower, 16},
		{"Base32Crockford", Base32Crockford, 32},
		{"Base36", Base36, 36},
		{"Base57", Base57, 57},
		{"Base58", Base58, 58},
		{"Base62", Base62, 62},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ns, err := New(tc.alphabet)
			if err != nil {
				t.Fatalf("Failed to create numeral system: %v", err)
			}
			if ns.Base() != tc.base {
				t.Errorf("Base() = %d, want %d", ns.Base(), tc.base)
			}
		})
	}
}

func TestReadyMadeSystems(t *testing.T) {
	testCases := []struct {
		name     string
		ns       *NumeralSystem
		alphabet string
		value    uint64
		want     string
	}{
		{"Base16", Base16System, HexLower, 255, "ff"},
		{"Base57", Base57System, Base57, 57, "32"},
		{"Base58_LastDigit", Base58System, Base58, 57, "z"},
		{"Base58_Carry", Base58System, Base58, 58, "21"},
		{"Base62", Base62System, Base62, 62, "10"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.ns.String() != tc.alphabet {
				t.Errorf("String() = %q, want %q", tc.ns.String(), tc.alphabet)
			}
			if got := Encode(tc.ns, tc.value); got != tc.want {
				t.Errorf("Encode(%d) = %q, want %q", tc.value, got, tc.want)
			}
			got, err := Decode[uint64](tc.ns, tc.want)
			if err != nil {
				t.Fatalf("Failed to decode %q: %v", tc.want, err)
			}
			if got != tc.value {
				t.Errorf("Decode(%q) = %d, want %d", tc.want, got, tc.value)
			}
		})
	}
}
