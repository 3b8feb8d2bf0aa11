package scanfmt

import (
	"bytes"
	"unicode/utf8"
)

// IgnoreUntil advances the input up to and including until, storing
// nothing. Exhausting the input before the delimiter reports EndOfRange
// with everything consumed.
func IgnoreUntil(input any, until rune) Result {
	c := wrap(input)
	err := ignoreUntil(c, until, -1)
	c.Checkpoint()
	return result(c, 0, err)
}

// IgnoreUntilN is IgnoreUntil bounded to at most max characters; hitting
// the bound before the delimiter is a clean stop.
func IgnoreUntilN(input any, max int, until rune) Result {
	c := wrap(input)
	err := ignoreUntil(c, until, max)
	c.Checkpoint()
	return result(c, 0, err)
}

func ignoreUntil(c *Cursor, until rune, max int) error {
	// block scan only when unbounded; the bound counts characters, not bytes
	if w, ok := c.Window(); ok && max < 0 {
		if len(w) == 0 {
			return errEndOfRange
		}
		if i := bytes.IndexRune(w, until); i >= 0 {
			c.Advance(i + utf8.RuneLen(until))
			return nil
		}
		c.Advance(len(w))
		return errEndOfRange
	}

	skipped := 0
	for max < 0 || skipped < max {
		p, err := c.Peek(4)
		if err != nil {
			return err
		}
		r, size, err := decodeRune(p)
		if err != nil {
			c.Advance(1)
			skipped++
			continue
		}
		c.Advance(size)
		skipped++
		if r == until {
			return nil
		}
	}
	return nil
}
