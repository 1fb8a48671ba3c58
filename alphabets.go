package based

// Common alphabets.
const (
	Binary  = "01"
	Octal   = "01234567"
	Decimal = "0123456789"

	HexLower = "0123456789abcdef"

	// Base32Crockford omits I, L, O and U.
	Base32Crockford = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

	Base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

	// Base57 drops 0, 1, l, o and O.
	Base57 = "23456789abcdefghijkmnpqrstuvwxyzABCDEFGHIJKLMNPQRSTUVWXYZ"

	// Base58 is the Bitcoin alphabet.
	Base58 = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

	Base62 = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Ready-made numeral systems.
var (
	Base16System = MustNew(HexLower)
	Base57System = MustNew(Base57)
	Base58System = MustNew(Base58)
	Base62System = MustNew(Base62)
)
