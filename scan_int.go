package scanfmt

import "unicode/utf8"

// scanIntValue consumes one integer from the cursor. On a contiguous
// source the numeric core runs directly over the remaining window; a
// streaming source first gathers the maximal plausible run, parses it,
// and then rewinds to consume exactly what the core accepted. Both paths
// share parseIntCore, so their behavior is identical.
//
// On failure the cursor is rolled back to the argument start, except for
// overflow with d.KeepPrefix set, which leaves the in-range prefix
// consumed.
func scanIntValue(c *Cursor, loc *Locale, d Directive, bits int, signed bool) (uint64, bool, error) {
	if w, ok := c.Window(); ok {
		u, neg, n, err := parseIntCore(w, d.Base, signed, bits, loc, d.Localized)
		return finishNumber(c, u, neg, n, err, d)
	}

	run, err := gatherNumberRun(c, loc, d, false)
	if err != nil {
		return 0, false, err
	}
	u, neg, n, err := parseIntCore(run, d.Base, signed, bits, loc, d.Localized)
	if rerr := c.Rollback(); rerr != nil {
		return 0, false, rerr
	}
	if err == nil || (d.KeepPrefix && KindOf(err) == ValueOutOfRange) {
		c.Advance(n)
	}
	if err != nil {
		return 0, false, err
	}
	return u, neg, nil
}

// finishNumber applies the shared post-core cursor discipline for the
// contiguous path: advance over what was accepted, or leave the cursor at
// the argument start on failure (overflow prefix excepted).
func finishNumber(c *Cursor, u uint64, neg bool, n int, err error, d Directive) (uint64, bool, error) {
	if err == nil {
		c.Advance(n)
		return u, neg, nil
	}
	if d.KeepPrefix && KindOf(err) == ValueOutOfRange {
		c.Advance(n)
	}
	return 0, false, err
}

// gatherNumberRun consumes the maximal run of bytes that could belong to
// a number: a leading sign, alphanumerics (covering digits of any base
// and base prefixes), the locale's group separator between digits, and
// for floats the decimal point and exponent signs. Over-gathering is
// harmless: the caller rewinds to what the core actually accepted.
func gatherNumberRun(c *Cursor, loc *Locale, d Directive, float bool) ([]byte, error) {
	decimal, group := rune(0), rune(0)
	if float {
		decimal = '.'
	}
	if d.Localized {
		group = loc.group
		if float {
			decimal = loc.decimal
		}
	}

	run := make([]byte, 0, 32)
	if b, err := c.PeekByte(); err != nil {
		return nil, err
	} else if b == '-' || b == '+' {
		run = append(run, b)
		c.Advance(1)
	}

	var buf [utf8.UTFMax]byte
	for {
		r, size, err := c.PeekRune()
		if err != nil {
			break
		}
		ok := r < 0x80 && asciiClass[r]&Alnum != 0
		ok = ok || (group != 0 && r == group)
		ok = ok || (float && r == decimal)
		if float && (r == '+' || r == '-') && len(run) > 0 {
			last := run[len(run)-1]
			ok = last == 'e' || last == 'E'
		}
		if !ok {
			break
		}
		n := utf8.EncodeRune(buf[:], r)
		run = append(run, buf[:n]...)
		c.Advance(size)
	}

	if len(run) == 0 {
		return nil, errEndOfRange
	}
	return run, nil
}

func storeInt(arg any, u uint64, neg bool) {
	v := int64(u)
	if neg {
		v = -int64(u)
	}
	switch p := arg.(type) {
	case *int:
		*p = int(v)
	case *int8:
		*p = int8(v)
	case *int16:
		*p = int16(v)
	case *int32:
		*p = int32(v)
	case *int64:
		*p = v
	case *uint:
		*p = uint(u)
	case *uint8:
		*p = uint8(u)
	case *uint16:
		*p = uint16(u)
	case *uint32:
		*p = uint32(u)
	case *uint64:
		*p = u
	case *uintptr:
		*p = uintptr(u)
	}
}
