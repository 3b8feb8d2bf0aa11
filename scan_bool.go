package scanfmt

// scanBoolValue consumes one boolean: the digits 0/1 and/or the locale's
// true/false spellings, as selected by the directive. Spellings match
// case-sensitively.
func scanBoolValue(c *Cursor, loc *Locale, d Directive) (bool, error) {
	if d.BoolDigit {
		b, err := c.PeekByte()
		if err != nil {
			return false, err
		}
		switch b {
		case '0':
			c.Advance(1)
			return false, nil
		case '1':
			c.Advance(1)
			return true, nil
		}
		if !d.BoolAlpha {
			return false, errorf(InvalidScannedValue, "expected boolean digit 0 or 1")
		}
	}

	if ok, err := matchExact(c, loc.trueName); err != nil {
		return false, err
	} else if ok {
		return true, nil
	}
	if ok, err := matchExact(c, loc.falseName); err != nil {
		return false, err
	} else if ok {
		return false, nil
	}
	return false, errorf(InvalidScannedValue,
		"expected boolean %q or %q", loc.trueName, loc.falseName)
}

// matchExact consumes word if the input starts with it exactly.
func matchExact(c *Cursor, word string) (bool, error) {
	if word == "" {
		return false, nil
	}
	p, err := c.Peek(len(word))
	if err != nil {
		return false, err
	}
	if len(p) < len(word) || string(p) != word {
		return false, nil
	}
	c.Advance(len(word))
	return true, nil
}
