package scanfmt

import "unicode/utf8"

// Code point helpers shared by the cursor and the value scanners. These are
// deliberately stricter than unicode/utf8's decoding: a malformed or
// truncated sequence is reported as such, never smoothed over with U+FFFD.

const (
	surrogateMin = 0xd800
	surrogateMax = 0xdfff
)

// ValidRune reports whether r is a valid Unicode code point: within range
// and not a UTF-16 surrogate half.
func ValidRune(r rune) bool {
	return r >= 0 && r <= utf8.MaxRune && !IsSurrogate(r)
}

// IsSurrogate reports whether r falls in the UTF-16 surrogate range.
// Surrogate halves are not valid code points on their own.
func IsSurrogate(r rune) bool {
	return r >= surrogateMin && r <= surrogateMax
}

// IsASCII reports whether r is in the 7-bit ASCII range.
func IsASCII(r rune) bool {
	return r >= 0 && r < utf8.RuneSelf
}

// decodeRune decodes the first code point in p. Unlike utf8.DecodeRune it
// distinguishes "no input" from "bad input": an empty p yields EndOfRange,
// while a malformed or truncated sequence yields InvalidEncoding.
func decodeRune(p []byte) (rune, int, error) {
	if len(p) == 0 {
		return 0, 0, errEndOfRange
	}
	if c := p[0]; c < utf8.RuneSelf {
		return rune(c), 1, nil
	}
	r, size := utf8.DecodeRune(p)
	if r == utf8.RuneError && size <= 1 {
		return 0, 0, errorf(InvalidEncoding, "invalid UTF-8 sequence %#x", p[0])
	}
	return r, size, nil
}
