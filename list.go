package scanfmt

// ScanList repeatedly scans values of type T from input and appends them
// to *dst until the input runs out, a value fails to scan, or — when sep
// is non-zero — the character after a value is not sep. An unexpected
// separator stops the list cleanly rather than erroring, with the cursor
// rolled back before the unconsumed tail.
func ScanList[T any](input any, dst *[]T, sep rune) Result {
	return scanListCore(wrap(input), dst, 0, sep, false)
}

// ScanListUntil is ScanList bounded by a terminator: scanning stops when
// the character after a value (or, whitespace permitting, before one) is
// until, which is left unconsumed.
func ScanListUntil[T any](input any, dst *[]T, until, sep rune) Result {
	return scanListCore(wrap(input), dst, until, sep, false)
}

// ScanListCap is ScanList honoring *dst's capacity: scanning stops once
// len(*dst) reaches cap(*dst), for pre-sized destinations.
func ScanListCap[T any](input any, dst *[]T, sep rune) Result {
	return scanListCore(wrap(input), dst, 0, sep, true)
}

func scanListCore[T any](c *Cursor, dst *[]T, until, sep rune, capped bool) Result {
	loc := C()
	c.Checkpoint()
	count := 0
	for {
		if capped && len(*dst) >= cap(*dst) {
			return result(c, count, nil)
		}

		skipSpace(c, loc)
		c.Checkpoint()
		if until != 0 {
			if r, _, err := c.PeekRune(); err == nil && r == until {
				return result(c, count, nil)
			}
		}

		var v T
		if err := scanOne(c, loc, defaultDirective(), &v); err != nil {
			switch KindOf(err) {
			case EndOfRange:
				return result(c, count, nil)
			case InvalidScannedValue:
				if count > 0 {
					// unexpected separator: stop, not error
					return result(c, count, nil)
				}
			}
			return result(c, count, err)
		}
		*dst = append(*dst, v)
		count++
		c.Checkpoint()

		skipSpace(c, loc)
		r, size, err := c.PeekRune()
		if err != nil {
			if KindOf(err) == EndOfRange {
				c.Checkpoint()
				return result(c, count, nil)
			}
			return result(c, count, err)
		}
		switch {
		case until != 0 && r == until:
			c.Checkpoint()
			return result(c, count, nil)
		case sep != 0 && r == sep:
			c.Advance(size)
			c.Checkpoint()
		case sep != 0:
			// not the separator: assume the list ended
			if err := c.Rollback(); err != nil {
				return result(c, count, err)
			}
			return result(c, count, nil)
		}
	}
}
