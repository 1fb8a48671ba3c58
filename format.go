package based

import "unicode/utf8"

// separateFormat splits s into format characters and digits of the system.
// It returns a mask over the runes of s (true = format character) and the
// digits alone, in order. Bytes that are not valid UTF-8 are reported as an
// *UnknownDigitError.
func (ns *NumeralSystem) separateFormat(s string) ([]bool, string, error) {
	mask := make([]bool, 0, len(s))
	digits := make([]rune, 0, len(s))

	pos := 0
	for offset := 0; offset < len(s); {
		r, size := utf8.DecodeRuneInString(s[offset:])
		if r == utf8.RuneError && size == 1 {
			return nil, "", &UnknownDigitError{Digit: r, Pos: pos, Offset: offset}
		}
		if _, ok := ns.values[r]; ok {
			digits = append(digits, r)
			mask = append(mask, false)
		} else {
			mask = append(mask, true)
		}
		offset += size
		pos++
	}

	return mask, string(digits), nil
}

// reconstructWithFormat puts digits back between the format characters of original.
// digits must hold exactly as many runes as mask has false entries.
func reconstructWithFormat(digits string, mask []bool, original string) string {
	orig := []rune(original)
	data := []rune(digits)
	result := make([]rune, len(mask))

	next := 0
	for i, isFormat := range mask {
		if isFormat {
			result[i] = orig[i]
			continue
		}
		result[i] = data[next]
		next++
	}

	return string(result)
}
