package scanfmt

import (
	"errors"
	"math"
	"strconv"
	"unicode/utf8"
	"unsafe"
)

// Type sets for the freestanding parsers and list scanning.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Float interface {
	~float32 | ~float64
}

var (
	errExplicitPlus = &Error{Kind: InvalidScannedValue, Msg: "explicit plus sign not allowed"}
	errUnsignedNeg  = &Error{Kind: InvalidScannedValue, Msg: "minus sign on unsigned value"}
	errExpectDigits = &Error{Kind: InvalidScannedValue, Msg: "expected digits"}
	errIntOverflow  = &Error{Kind: ValueOutOfRange, Msg: "scanned integer out of range: overflow"}
	errIntUnderflow = &Error{Kind: ValueOutOfRange, Msg: "scanned integer out of range: underflow"}
	errFltOverflow  = &Error{Kind: ValueOutOfRange, Msg: "scanned float out of range: overflow"}
	errFltUnderflow = &Error{Kind: ValueOutOfRange, Msg: "scanned float out of range: underflow"}
)

// ParseInt parses a signed integer of type T from the start of text in the
// given base (2 to 36; 0 detects 0x/0o/0b/leading-0 prefixes). The input
// may not carry leading whitespace, an explicit plus sign, or a base
// prefix unless base is 0. Returns the value, the number of bytes
// consumed, and any error; overflow reports ValueOutOfRange with the
// consumed count covering the longest in-range prefix.
func ParseInt[T Signed](text []byte, base int) (T, int, error) {
	if len(text) == 0 {
		return 0, 0, errorf(InvalidOperation, "cannot parse an empty span")
	}
	var z T
	bits := int(unsafe.Sizeof(z)) * 8
	u, neg, n, err := parseIntCore(text, base, true, bits, nil, false)
	if err != nil {
		return 0, n, err
	}
	v := int64(u)
	if neg {
		v = -int64(u)
	}
	return T(v), n, nil
}

// ParseUint is ParseInt for unsigned integer types; a minus sign is
// rejected as InvalidScannedValue.
func ParseUint[T Unsigned](text []byte, base int) (T, int, error) {
	if len(text) == 0 {
		return 0, 0, errorf(InvalidOperation, "cannot parse an empty span")
	}
	var z T
	bits := int(unsafe.Sizeof(z)) * 8
	u, _, n, err := parseIntCore(text, base, false, bits, nil, false)
	if err != nil {
		return 0, n, err
	}
	return T(u), n, nil
}

// ParseFloat parses a floating point number of type T from the start of
// text: sign, digits, optional fraction and exponent, or the spellings
// inf, infinity and nan (case-insensitive). Behavior does not depend on
// any host locale.
func ParseFloat[T Float](text []byte) (T, int, error) {
	if len(text) == 0 {
		return 0, 0, errorf(InvalidOperation, "cannot parse an empty span")
	}
	var z T
	bits := int(unsafe.Sizeof(z)) * 8
	f, n, err := parseFloatCore(text, bits, nil, false)
	return T(f), n, err
}

func digitVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return 0xff
}

// parseIntCore accumulates an integer from the start of text with
// per-digit overflow checking against the destination width. It is the
// single implementation behind the freestanding parsers, the cursor-based
// integer scanner, and the localized path (localized=true honors loc's
// digit grouping). The returned count is the number of bytes consumed; on
// overflow it covers the longest prefix that still fit.
func parseIntCore(text []byte, base int, signed bool, bits int, loc *Locale, localized bool) (u uint64, neg bool, n int, err error) {
	if len(text) == 0 {
		return 0, false, 0, errEndOfRange
	}
	if base != 0 && (base < 2 || base > 36) {
		return 0, false, 0, errorf(InvalidOperation, "invalid integer base %d", base)
	}

	switch text[0] {
	case '-':
		if !signed {
			return 0, false, 0, errUnsignedNeg
		}
		neg = true
		n = 1
	case '+':
		return 0, false, 0, errExplicitPlus
	}

	if base == 0 {
		base = 10
		if n < len(text) && text[n] == '0' {
			if n+1 < len(text) {
				switch text[n+1] {
				case 'x', 'X':
					base, n = 16, n+2
				case 'o', 'O':
					base, n = 8, n+2
				case 'b', 'B':
					base, n = 2, n+2
				default:
					if text[n+1] >= '0' && text[n+1] <= '7' {
						base = 8
					}
				}
			}
		}
	}

	var limit uint64
	if !signed {
		limit = maxUintN(bits)
	} else if neg {
		limit = 1 << (bits - 1)
	} else {
		limit = 1<<(bits-1) - 1
	}
	cutoff := limit / uint64(base)

	var groupSep rune
	if localized && loc != nil {
		groupSep = loc.group
	}

	digits := 0
	for n < len(text) {
		if dv := digitVal(text[n]); dv < base {
			if u > cutoff || u*uint64(base) > limit-uint64(dv) {
				if neg && signed {
					return u, neg, n, errIntUnderflow
				}
				return u, neg, n, errIntOverflow
			}
			u = u*uint64(base) + uint64(dv)
			n++
			digits++
			continue
		}
		// a group separator counts only between digits
		if groupSep != 0 && digits > 0 {
			r, size := utf8.DecodeRune(text[n:])
			if r == groupSep && n+size < len(text) && digitVal(text[n+size]) < base {
				n += size
				continue
			}
		}
		break
	}

	if digits == 0 {
		return 0, neg, 0, errExpectDigits
	}
	return u, neg, n, nil
}

func maxUintN(bits int) uint64 {
	if bits >= 64 {
		return math.MaxUint64
	}
	return 1<<bits - 1
}

// matchFold reports whether text starts with the ASCII word, ignoring
// case.
func matchFold(text []byte, word string) bool {
	if len(text) < len(word) {
		return false
	}
	for i := 0; i < len(word); i++ {
		c := text[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != word[i] {
			return false
		}
	}
	return true
}

// parseFloatCore recognizes one floating point number at the start of
// text. The digit text is gathered locale-free (or with loc's decimal
// point and grouping when localized) and converted with strconv, which is
// itself independent of any host locale.
func parseFloatCore(text []byte, bits int, loc *Locale, localized bool) (float64, int, error) {
	if len(text) == 0 {
		return 0, 0, errEndOfRange
	}

	decimal, groupSep := rune('.'), rune(0)
	if localized && loc != nil {
		decimal, groupSep = loc.decimal, loc.group
	}

	n := 0
	norm := make([]byte, 0, 32)
	switch text[0] {
	case '-', '+':
		norm = append(norm, text[0])
		n = 1
	}

	// special spellings
	switch {
	case matchFold(text[n:], "infinity"):
		return infFor(len(norm) == 1 && norm[0] == '-'), n + 8, nil
	case matchFold(text[n:], "inf"):
		return infFor(len(norm) == 1 && norm[0] == '-'), n + 3, nil
	case matchFold(text[n:], "nan"):
		return math.NaN(), n + 3, nil
	}

	digits := 0
	for n < len(text) {
		c := text[n]
		if c >= '0' && c <= '9' {
			norm = append(norm, c)
			n++
			digits++
			continue
		}
		if groupSep != 0 && digits > 0 {
			r, size := utf8.DecodeRune(text[n:])
			if r == groupSep && n+size < len(text) && text[n+size] >= '0' && text[n+size] <= '9' {
				n += size
				continue
			}
		}
		break
	}

	if r, size := utf8.DecodeRune(text[n:]); n < len(text) && r == decimal {
		// only consume the decimal point if digits surround or precede it
		if digits > 0 || (n+size < len(text) && text[n+size] >= '0' && text[n+size] <= '9') {
			norm = append(norm, '.')
			n += size
			for n < len(text) && text[n] >= '0' && text[n] <= '9' {
				norm = append(norm, text[n])
				n++
				digits++
			}
		}
	}

	if digits == 0 {
		return 0, 0, errExpectDigits
	}

	if n < len(text) && (text[n] == 'e' || text[n] == 'E') {
		j := n + 1
		if j < len(text) && (text[j] == '+' || text[j] == '-') {
			j++
		}
		if j < len(text) && text[j] >= '0' && text[j] <= '9' {
			norm = append(norm, text[n:j]...)
			n = j
			for n < len(text) && text[n] >= '0' && text[n] <= '9' {
				norm = append(norm, text[n])
				n++
			}
		}
	}

	f, err := strconv.ParseFloat(string(norm), bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			if math.IsInf(f, 0) {
				return f, n, errFltOverflow
			}
			return f, n, errFltUnderflow
		}
		return 0, n, wrapErr(InvalidScannedValue, "malformed floating point value", err)
	}
	return f, n, nil
}

func infFor(neg bool) float64 {
	if neg {
		return math.Inf(-1)
	}
	return math.Inf(1)
}
