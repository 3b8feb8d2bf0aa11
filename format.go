package scanfmt

// Directive describes how to scan one argument: the scanner itself is
// picked by the argument's static type, the directive refines it.
type Directive struct {
	// Verb is the format letter that produced the directive, 0 for a bare
	// placeholder. 'c' scans a *rune/*int32 target as a character instead
	// of an integer.
	Verb byte

	// Base is the integer base, 2 to 36; 0 detects a 0x/0o/0b/leading-0
	// prefix. Explicit bases never accept a redundant prefix.
	Base int

	// Localized routes numeric parsing and boolean spellings through the
	// scan's Locale.
	Localized bool

	// BoolAlpha and BoolDigit select which boolean forms are accepted:
	// the locale's true/false spellings and the digits 0/1. A bare
	// placeholder accepts both.
	BoolAlpha bool
	BoolDigit bool

	// KeepPrefix opts into partial success: on numeric overflow the
	// longest in-range prefix stays consumed instead of rolling back.
	KeepPrefix bool
}

func defaultDirective() Directive {
	return Directive{Base: 10, BoolAlpha: true, BoolDigit: true}
}

type itemKind int

const (
	itemEOF itemKind = iota
	itemLiteral
	itemSpace
	itemDirective
)

type formatItem struct {
	kind itemKind
	lit  byte
	dir  Directive
}

// formatCursor walks a format string, yielding literal bytes, whitespace
// runs and directives one at a time. The synthesized "default" variant
// yields n blank-separated placeholders without reading any format text.
type formatCursor struct {
	format string
	pos    int
	scanf  bool

	synth      int // remaining synthesized placeholders; <0 when parsing format text
	synthSpace bool
}

func newFormatCursor(format string, scanf bool) *formatCursor {
	return &formatCursor{format: format, scanf: scanf, synth: -1}
}

func newDefaultFormat(n int) *formatCursor {
	return &formatCursor{synth: n}
}

func (fc *formatCursor) next() (formatItem, error) {
	if fc.synth >= 0 {
		if fc.synthSpace {
			fc.synthSpace = false
			return formatItem{kind: itemSpace}, nil
		}
		if fc.synth == 0 {
			return formatItem{}, nil
		}
		fc.synth--
		fc.synthSpace = fc.synth > 0
		return formatItem{kind: itemDirective, dir: defaultDirective()}, nil
	}

	if fc.pos >= len(fc.format) {
		return formatItem{}, nil
	}

	c := fc.format[fc.pos]
	if c < 0x80 && asciiClass[c]&Space != 0 {
		for fc.pos < len(fc.format) && fc.format[fc.pos] < 0x80 && asciiClass[fc.format[fc.pos]]&Space != 0 {
			fc.pos++
		}
		return formatItem{kind: itemSpace}, nil
	}

	if fc.scanf {
		return fc.nextScanf()
	}
	return fc.nextBrace()
}

func (fc *formatCursor) nextBrace() (formatItem, error) {
	switch c := fc.format[fc.pos]; c {
	case '{':
		if fc.pos+1 < len(fc.format) && fc.format[fc.pos+1] == '{' {
			fc.pos += 2
			return formatItem{kind: itemLiteral, lit: '{'}, nil
		}
		return fc.parseBraceDirective()
	case '}':
		if fc.pos+1 < len(fc.format) && fc.format[fc.pos+1] == '}' {
			fc.pos += 2
			return formatItem{kind: itemLiteral, lit: '}'}, nil
		}
		return formatItem{}, errorf(InvalidOperation, "unmatched '}' in format string at %d", fc.pos)
	default:
		fc.pos++
		return formatItem{kind: itemLiteral, lit: c}, nil
	}
}

func (fc *formatCursor) parseBraceDirective() (formatItem, error) {
	start := fc.pos
	fc.pos++ // consume '{'
	d := defaultDirective()

	if fc.pos < len(fc.format) && fc.format[fc.pos] == '}' {
		fc.pos++
		return formatItem{kind: itemDirective, dir: d}, nil
	}
	if fc.pos >= len(fc.format) || fc.format[fc.pos] != ':' {
		return formatItem{}, errorf(InvalidOperation, "malformed directive in format string at %d", start)
	}
	fc.pos++ // consume ':'

	for fc.pos < len(fc.format) {
		c := fc.format[fc.pos]
		fc.pos++
		switch c {
		case '}':
			return formatItem{kind: itemDirective, dir: d}, nil
		case 'd':
			d.Verb, d.Base = 'd', 10
		case 'x':
			d.Verb, d.Base = 'x', 16
		case 'o':
			d.Verb, d.Base = 'o', 8
		case 'i':
			d.Verb, d.Base = 'i', 0
		case 'u':
			d.Verb, d.Base = 'u', 10
		case 'b':
			d.Verb, d.Base = 'b', 2
			base := 0
			for fc.pos < len(fc.format) && fc.format[fc.pos] >= '0' && fc.format[fc.pos] <= '9' {
				base = base*10 + int(fc.format[fc.pos]-'0')
				fc.pos++
			}
			if base != 0 {
				if base < 2 || base > 36 {
					return formatItem{}, errorf(InvalidOperation, "integer base %d out of range at %d", base, start)
				}
				d.Base = base
			}
		case 'f', 'e', 'g':
			d.Verb = c
		case 's':
			d.Verb = 's'
		case 'c':
			d.Verb = 'c'
		case 'l':
			d.Localized = true
		case 'n':
			d.Localized = true
			d.BoolAlpha = false
		case 'a':
			d.BoolDigit = false
		case 'p':
			d.KeepPrefix = true
		default:
			return formatItem{}, errorf(InvalidOperation, "invalid format flag %q at %d", c, fc.pos-1)
		}
	}
	return formatItem{}, errorf(InvalidOperation, "unterminated directive in format string at %d", start)
}

func (fc *formatCursor) nextScanf() (formatItem, error) {
	if c := fc.format[fc.pos]; c != '%' {
		fc.pos++
		return formatItem{kind: itemLiteral, lit: c}, nil
	}
	if fc.pos+1 >= len(fc.format) {
		return formatItem{}, errorf(InvalidOperation, "trailing '%%' in format string")
	}
	d := defaultDirective()
	verb := fc.format[fc.pos+1]
	fc.pos += 2
	switch verb {
	case '%':
		return formatItem{kind: itemLiteral, lit: '%'}, nil
	case 'd':
		d.Verb, d.Base = 'd', 10
	case 'i':
		d.Verb, d.Base = 'i', 0
	case 'u':
		d.Verb, d.Base = 'u', 10
	case 'o':
		d.Verb, d.Base = 'o', 8
	case 'x', 'X':
		d.Verb, d.Base = 'x', 16
	case 'b':
		d.Verb, d.Base = 'b', 2
	case 'f', 'F', 'e', 'E', 'g', 'G':
		d.Verb = 'f'
	case 's':
		d.Verb = 's'
	case 'c':
		d.Verb = 'c'
	case 't':
		d.Verb = 't'
	case 'v':
		// default directive
	default:
		return formatItem{}, errorf(InvalidOperation, "invalid scanf verb %%%c", verb)
	}
	return formatItem{kind: itemDirective, dir: d}, nil
}
