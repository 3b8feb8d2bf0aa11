package scanfmt

import (
	"fmt"
	"io"

	"github.com/jcorbin/scanfmt/internal/lookbuf"
)

// Cursor is a uniform reading position over a scan input source. In-memory
// sources (strings and byte slices) are walked directly and expose their
// remaining bytes through Window; reader-backed sources go through a
// bounded look-back buffer instead.
//
// The cursor tracks one checkpoint: Rollback restores the position as of
// the last Checkpoint, so a failed scan attempt never leaves partially
// consumed input behind. Running out of input is reported as EndOfRange, a
// first-class outcome rather than a fault.
//
// A Cursor is owned by one top-level scan call at a time; it is not safe
// for concurrent use.
type Cursor struct {
	buf    []byte          // in-memory input; nil when stream != nil
	pos    int             // read position within buf
	mark   int             // checkpoint position within buf
	stream *lookbuf.Buffer // reader-backed input
	off    int             // absolute offset consumed since creation
	poison *Error          // set once the cursor is no longer trustworthy
}

// FromString returns a cursor over the contents of s.
func FromString(s string) *Cursor { return &Cursor{buf: []byte(s)} }

// FromBytes returns a cursor over p without copying it. The caller must
// not mutate p while scanning; borrowed views returned by word and line
// scans alias it.
func FromBytes(p []byte) *Cursor { return &Cursor{buf: p} }

// FromReader returns a cursor over r with the default look-back window.
// Rollback fails with SourceError if a single scan attempt consumes more
// than the window before failing.
func FromReader(r io.Reader) *Cursor {
	return FromReaderSize(r, lookbuf.DefaultWindow)
}

// FromReaderSize is FromReader with an explicit look-back window size;
// window <= 0 retains unbounded look-back.
func FromReaderSize(r io.Reader, window int) *Cursor {
	return &Cursor{stream: lookbuf.New(r, window)}
}

// Peek returns a view of up to n unread bytes without consuming them. It
// returns a non-nil error only when no bytes are available: EndOfRange at
// end of input, or the poisoning error after a source failure. A short
// (but non-empty) result is not an error; callers that need exactly n
// bytes check the length.
func (c *Cursor) Peek(n int) ([]byte, error) {
	if c.poison != nil {
		return nil, c.poison
	}
	if c.stream == nil {
		rest := c.buf[c.pos:]
		if len(rest) == 0 {
			return nil, errEndOfRange
		}
		if len(rest) > n {
			rest = rest[:n]
		}
		return rest, nil
	}
	p, err := c.stream.Peek(n)
	if len(p) > 0 {
		return p, nil
	}
	if err == nil || err == io.EOF {
		return nil, errEndOfRange
	}
	return nil, c.fail(wrapErr(SourceError, "input source failed", err))
}

// PeekByte returns the next byte without consuming it.
func (c *Cursor) PeekByte() (byte, error) {
	p, err := c.Peek(1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

// ReadByte consumes and returns the next byte.
func (c *Cursor) ReadByte() (byte, error) {
	b, err := c.PeekByte()
	if err == nil {
		c.Advance(1)
	}
	return b, err
}

// PeekRune decodes the next code point without consuming it, returning
// the rune and its encoded size. Malformed input yields InvalidEncoding.
func (c *Cursor) PeekRune() (rune, int, error) {
	p, err := c.Peek(4)
	if err != nil {
		return 0, 0, err
	}
	return decodeRune(p)
}

// ReadRune consumes and returns the next code point.
func (c *Cursor) ReadRune() (rune, int, error) {
	r, size, err := c.PeekRune()
	if err == nil {
		c.Advance(size)
	}
	return r, size, err
}

// Advance consumes n bytes. Advancing past bytes not yet returned by Peek
// is a programming-contract violation and panics.
func (c *Cursor) Advance(n int) {
	if c.poison != nil {
		return
	}
	if c.stream != nil {
		c.stream.Advance(n)
	} else {
		if c.pos+n > len(c.buf) {
			panic(fmt.Sprintf("scanfmt: Advance(%d) past end of input", n))
		}
		c.pos += n
	}
	c.off += n
}

// Checkpoint commits everything consumed so far: the current position
// becomes the new rollback target. Call it once an argument has been
// successfully and irrevocably consumed.
func (c *Cursor) Checkpoint() {
	if c.poison != nil {
		return
	}
	if c.stream != nil {
		c.stream.Commit()
	} else {
		c.mark = c.pos
	}
}

// Rollback restores the position as of the last Checkpoint. For
// reader-backed sources whose look-back window was exceeded it fails with
// SourceError and poisons the cursor; it never fails silently.
func (c *Cursor) Rollback() error {
	if c.poison != nil {
		return c.poison
	}
	if c.stream == nil {
		c.off -= c.pos - c.mark
		c.pos = c.mark
		return nil
	}
	n := c.stream.Uncommitted()
	if err := c.stream.Reset(); err != nil {
		return c.fail(wrapErr(SourceError, "rollback failed", err))
	}
	c.off -= n
	return nil
}

// Window returns the remaining unread bytes when the source is contiguous
// in memory, enabling block operations. Reader-backed sources report
// ok=false; callers then fall back to the element-at-a-time path, whose
// behavior is identical.
func (c *Cursor) Window() ([]byte, bool) {
	if c.stream != nil || c.poison != nil {
		return nil, false
	}
	return c.buf[c.pos:], true
}

// Offset returns the number of bytes consumed since the cursor was
// created.
func (c *Cursor) Offset() int { return c.off }

// Poisoned reports whether an unrecoverable error has invalidated the
// cursor; a poisoned cursor fails every further operation with the same
// error.
func (c *Cursor) Poisoned() bool { return c.poison != nil }

func (c *Cursor) fail(err *Error) *Error {
	c.poison = err
	return err
}

// Format renders the cursor for debugging: remaining contiguous content
// (truncated) or the consumed offset for streaming sources.
func (c *Cursor) Format(f fmt.State, verb rune) {
	switch {
	case c.poison != nil:
		fmt.Fprintf(f, "<poisoned cursor: %v>", c.poison)
	case c.stream != nil:
		fmt.Fprintf(f, "<stream cursor @%d>", c.off)
	default:
		rest := c.buf[c.pos:]
		if prec, ok := f.Precision(); ok && len(rest) > prec {
			fmt.Fprintf(f, "%q...", rest[:prec])
		} else {
			fmt.Fprintf(f, "%q", rest)
		}
	}
}
