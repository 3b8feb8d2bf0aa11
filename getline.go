package scanfmt

import (
	"bytes"
	"unicode/utf8"
)

// GetLine reads everything up to and excluding until into *dst, consuming
// the delimiter itself. Missing delimiter is not an error: the rest of
// the input becomes the line. An already exhausted input yields
// EndOfRange.
func GetLine(input any, dst *string, until rune) Result {
	c := wrap(input)
	line, err := getLine(c, until)
	if err != nil {
		return result(c, 0, err)
	}
	*dst = string(line)
	c.Checkpoint()
	return result(c, 1, nil)
}

// GetLineBytes is GetLine into a byte slice. On a contiguous source the
// slice borrows the input's memory; a reader-backed source cannot lend a
// view and fails with InvalidOperation.
func GetLineBytes(input any, dst *[]byte, until rune) Result {
	c := wrap(input)
	if _, ok := c.Window(); !ok {
		return result(c, 0, errorf(InvalidOperation,
			"cannot borrow a view of a non-contiguous source"))
	}
	line, err := getLine(c, until)
	if err != nil {
		return result(c, 0, err)
	}
	*dst = line
	c.Checkpoint()
	return result(c, 1, nil)
}

func getLine(c *Cursor, until rune) ([]byte, error) {
	if w, ok := c.Window(); ok {
		if len(w) == 0 {
			return nil, errEndOfRange
		}
		if i := bytes.IndexRune(w, until); i >= 0 {
			c.Advance(i + utf8.RuneLen(until))
			return w[:i], nil
		}
		c.Advance(len(w))
		return w, nil
	}

	var line []byte
	for {
		p, err := c.Peek(4)
		if err != nil {
			if len(line) == 0 {
				return nil, err
			}
			return line, nil
		}
		r, size, err := decodeRune(p)
		if err != nil {
			// undecodable unit: line content, not a delimiter
			line = append(line, p[0])
			c.Advance(1)
			continue
		}
		if r == until {
			c.Advance(size)
			return line, nil
		}
		line = append(line, p[:size]...)
		c.Advance(size)
	}
}
