package scanfmt

// scanRuneValue consumes exactly one decoded code point. Unlike every
// other scanner it does not skip leading whitespace; a malformed sequence
// yields InvalidEncoding with nothing consumed.
func scanRuneValue(c *Cursor) (rune, error) {
	r, _, err := c.ReadRune()
	return r, err
}

// scanWord consumes the maximal run of non-space storage units, as
// classified by loc. Bytes that do not decode are not spaces and so are
// part of the word. On a contiguous source the returned slice borrows the
// cursor's buffer; otherwise it is freshly copied.
func scanWord(c *Cursor, loc *Locale) ([]byte, bool, error) {
	if w, ok := c.Window(); ok {
		if len(w) == 0 {
			return nil, false, errEndOfRange
		}
		i := 0
		for i < len(w) {
			r, size, err := decodeRune(w[i:])
			if err != nil {
				i++ // undecodable unit, not a space
				continue
			}
			if loc.IsSpace(r) {
				break
			}
			i += size
		}
		if i == 0 {
			return nil, false, errorf(InvalidScannedValue, "expected a word")
		}
		c.Advance(i)
		return w[:i], true, nil
	}

	var word []byte
	for {
		p, err := c.Peek(4)
		if err != nil {
			if len(word) == 0 {
				return nil, false, err
			}
			break
		}
		r, size, err := decodeRune(p)
		if err != nil {
			word = append(word, p[0])
			c.Advance(1)
			continue
		}
		if loc.IsSpace(r) {
			if len(word) == 0 {
				return nil, false, errorf(InvalidScannedValue, "expected a word")
			}
			break
		}
		word = append(word, p[:size]...)
		c.Advance(size)
	}
	return word, false, nil
}
