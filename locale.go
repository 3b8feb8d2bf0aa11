package scanfmt

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// Class identifies a character classification queried through a Locale.
type Class uint16

const (
	Space Class = 1 << iota
	Digit
	Xdigit
	Alpha
	Upper
	Lower
	Punct
	Cntrl
	Blank
	Graph
	Print
	Alnum = Alpha | Digit
)

// Locale decides what counts as whitespace, digits and so on during a
// scan, and supplies the spellings and separators used by localized
// directives. It is immutable after construction and may be shared
// read-only across concurrent scans.
//
// The zero Locale is not constructed: classification falls back to ASCII
// semantics but localized numeric parsing fails with Unsupported.
type Locale struct {
	tag       language.Tag
	unicode   bool // classify by Unicode tables instead of ASCII
	ok        bool // constructed via C, ForTag or Custom
	trueName  string
	falseName string
	decimal   rune
	group     rune
}

// cLocale is the shared default: ASCII classification, '.' decimal point,
// no digit grouping, "true"/"false" spellings. Zero lookup cost.
var cLocale = Locale{
	ok:        true,
	trueName:  "true",
	falseName: "false",
	decimal:   '.',
}

// C returns the default locale-free classifier with ASCII semantics.
func C() *Locale { return &cLocale }

// ForTag returns a classifier for the given BCP 47 tag, with Unicode
// character classes and the decimal point, digit grouping and boolean
// spellings of the closest supported locale.
func ForTag(tag language.Tag) *Locale {
	_, i, _ := localeMatcher.Match(tag)
	d := localeData[i]
	return &Locale{
		tag:       tag,
		unicode:   true,
		ok:        true,
		trueName:  d.trueName,
		falseName: d.falseName,
		decimal:   d.decimal,
		group:     d.group,
	}
}

// Custom returns a classifier with caller-supplied numeric punctuation and
// boolean spellings, classifying by Unicode tables.
func Custom(decimal, group rune, trueName, falseName string) *Locale {
	return &Locale{
		unicode:   true,
		ok:        true,
		trueName:  trueName,
		falseName: falseName,
		decimal:   decimal,
		group:     group,
	}
}

// Tag returns the tag the locale was built from; the zero tag for C and
// Custom locales.
func (l *Locale) Tag() language.Tag { return l.tag }

// DecimalPoint returns the rune separating integer and fraction parts.
func (l *Locale) DecimalPoint() rune { return l.decimal }

// GroupSeparator returns the digit grouping rune, or 0 when ungrouped.
func (l *Locale) GroupSeparator() rune { return l.group }

// TrueName returns the spelling accepted for boolean true.
func (l *Locale) TrueName() string { return l.trueName }

// FalseName returns the spelling accepted for boolean false.
func (l *Locale) FalseName() string { return l.falseName }

// Is reports whether r belongs to any class set in c, so compound
// queries like Alnum read as is-alpha-or-digit. A single code unit
// classifies by widening it to a rune.
func (l *Locale) Is(c Class, r rune) bool {
	if r < utf8.RuneSelf || !l.unicode {
		if r < 0 || r >= 0x80 {
			return false
		}
		return asciiClass[r]&c != 0
	}
	for mask := Class(1); mask <= Print; mask <<= 1 {
		if c&mask != 0 && unicodeIs(mask, r) {
			return true
		}
	}
	return false
}

// IsRun decodes the leading code point of p and classifies it. An
// undecodable run classifies as false: "not a valid character of this
// class" is a legitimate answer, not a failure.
func (l *Locale) IsRun(c Class, p []byte) bool {
	r, _, err := decodeRune(p)
	if err != nil {
		return false
	}
	return l.Is(c, r)
}

func (l *Locale) IsSpace(r rune) bool  { return l.Is(Space, r) }
func (l *Locale) IsDigit(r rune) bool  { return l.Is(Digit, r) }
func (l *Locale) IsXdigit(r rune) bool { return l.Is(Xdigit, r) }
func (l *Locale) IsAlpha(r rune) bool  { return l.Is(Alpha, r) }
func (l *Locale) IsAlnum(r rune) bool  { return l.Is(Alnum, r) }
func (l *Locale) IsUpper(r rune) bool  { return l.Is(Upper, r) }
func (l *Locale) IsLower(r rune) bool  { return l.Is(Lower, r) }
func (l *Locale) IsPunct(r rune) bool  { return l.Is(Punct, r) }
func (l *Locale) IsCntrl(r rune) bool  { return l.Is(Cntrl, r) }
func (l *Locale) IsBlank(r rune) bool  { return l.Is(Blank, r) }
func (l *Locale) IsGraph(r rune) bool  { return l.Is(Graph, r) }
func (l *Locale) IsPrint(r rune) bool  { return l.Is(Print, r) }

func unicodeIs(c Class, r rune) bool {
	switch c {
	case Space:
		return unicode.IsSpace(r)
	case Digit:
		return unicode.IsDigit(r)
	case Xdigit:
		return r < 0x80 && asciiClass[r]&Xdigit != 0
	case Alpha:
		return unicode.IsLetter(r)
	case Upper:
		return unicode.IsUpper(r)
	case Lower:
		return unicode.IsLower(r)
	case Punct:
		return unicode.IsPunct(r) || unicode.IsSymbol(r)
	case Cntrl:
		return unicode.IsControl(r)
	case Blank:
		return r == '\t' || unicode.Is(unicode.Zs, r)
	case Graph:
		return unicode.IsGraphic(r) && !unicode.IsSpace(r)
	case Print:
		return unicode.IsGraphic(r)
	}
	return false
}

// asciiClass is a C-ctype style classification table for the 7-bit range.
var asciiClass = func() (t [128]Class) {
	for i := range t {
		r := rune(i)
		var c Class
		switch r {
		case ' ', '\t', '\n', '\v', '\f', '\r':
			c |= Space
		}
		if r == ' ' || r == '\t' {
			c |= Blank
		}
		if r < 0x20 || r == 0x7f {
			c |= Cntrl
		}
		if r >= '0' && r <= '9' {
			c |= Digit | Xdigit
		}
		if (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F') {
			c |= Xdigit
		}
		if r >= 'A' && r <= 'Z' {
			c |= Upper | Alpha
		}
		if r >= 'a' && r <= 'z' {
			c |= Lower | Alpha
		}
		if r > 0x20 && r < 0x7f && c&(Digit|Alpha) == 0 {
			c |= Punct
		}
		if r > 0x20 && r < 0x7f {
			c |= Graph
		}
		if r >= 0x20 && r < 0x7f {
			c |= Print
		}
		t[i] = c
	}
	return t
}()

// ReadInt parses one localized signed integer from the start of text,
// honoring the locale's digit grouping. It returns the value, the number
// of bytes consumed, and any error: overflow and underflow map to
// ValueOutOfRange, any other parse failure to InvalidScannedValue. A zero
// (unconstructed) Locale fails with Unsupported.
func (l *Locale) ReadInt(text []byte, base int) (int64, int, error) {
	if !l.ok {
		return 0, 0, errLocaleUnsupported
	}
	u, neg, n, err := parseIntCore(text, base, true, 64, l, true)
	if err != nil {
		return 0, n, err
	}
	v := int64(u)
	if neg {
		v = -v
	}
	return v, n, nil
}

// ReadUint is ReadInt for unsigned values; a leading minus sign is
// rejected as InvalidScannedValue.
func (l *Locale) ReadUint(text []byte, base int) (uint64, int, error) {
	if !l.ok {
		return 0, 0, errLocaleUnsupported
	}
	u, _, n, err := parseIntCore(text, base, false, 64, l, true)
	if err != nil {
		return 0, n, err
	}
	return u, n, nil
}

// ReadFloat parses one localized floating point number from the start of
// text, honoring the locale's decimal point and digit grouping.
func (l *Locale) ReadFloat(text []byte) (float64, int, error) {
	if !l.ok {
		return 0, 0, errLocaleUnsupported
	}
	return parseFloatCore(text, 64, l, true)
}

var errLocaleUnsupported = &Error{
	Kind: Unsupported,
	Msg:  "localized numeric parsing requires a constructed Locale",
}
