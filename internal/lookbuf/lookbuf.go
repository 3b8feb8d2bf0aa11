// Package lookbuf buffers a forward-only io.Reader behind a bounded
// look-back window, so that a scanning cursor can replay bytes it has read
// but not yet committed.
//
// All bytes read since the last Commit are retained in a single in-memory
// buffer. Reset rewinds the read position to the commit point; Commit
// discards everything before the read position and makes the current
// position the new replay target. If more than the configured window of
// uncommitted bytes accumulates, the oldest are dropped and the buffer
// remembers that replay is no longer possible.
package lookbuf

import (
	"errors"
	"io"
)

// DefaultWindow is the default look-back window size.
const DefaultWindow = 32 * 1024

// ErrWindowExceeded is returned by Reset when the uncommitted look-back
// exceeded the window and was partially discarded.
var ErrWindowExceeded = errors.New("look-back window exceeded")

// Buffer wraps an io.Reader with a replayable window.
// The zero value is not usable; construct with New.
type Buffer struct {
	src    io.Reader
	buf    []byte // retained bytes, buf[0] is the commit point (when !lost)
	pos    int    // read position within buf
	window int    // max retained bytes behind pos; <= 0 means unbounded
	err    error  // sticky read error, io.EOF included
	lost   bool   // bytes between commit point and pos were dropped
}

// New returns a Buffer over src retaining up to window bytes of look-back.
// A window <= 0 retains unbounded look-back.
func New(src io.Reader, window int) *Buffer {
	return &Buffer{src: src, window: window}
}

// Peek returns a view of the next n unread bytes without consuming them,
// reading from the source as needed. It returns fewer than n bytes only at
// end of input or on a source error; a short result carries the sticky
// error explaining why.
//
// The returned slice aliases the internal buffer and is only valid until
// the next Buffer method call.
func (b *Buffer) Peek(n int) ([]byte, error) {
	for len(b.buf)-b.pos < n && b.err == nil {
		b.fill(n - (len(b.buf) - b.pos))
	}
	avail := b.buf[b.pos:]
	if len(avail) > n {
		return avail[:n], nil
	}
	if len(avail) < n {
		return avail, b.err
	}
	return avail, nil
}

// Advance consumes n bytes. It is a contract violation to advance past
// bytes not yet returned by Peek.
func (b *Buffer) Advance(n int) {
	if b.pos+n > len(b.buf) {
		panic("lookbuf: Advance past peeked bytes")
	}
	b.pos += n
	b.trim()
}

// Commit discards the replay window: all bytes before the current read
// position are dropped and the position becomes the new Reset target.
func (b *Buffer) Commit() {
	if b.pos > 0 {
		b.buf = b.buf[:copy(b.buf, b.buf[b.pos:])]
		b.pos = 0
	}
	b.lost = false
}

// Reset rewinds the read position to the last commit point. It fails with
// ErrWindowExceeded if uncommitted bytes were dropped to honor the window,
// in which case the position is left unchanged.
func (b *Buffer) Reset() error {
	if b.lost {
		return ErrWindowExceeded
	}
	b.pos = 0
	return nil
}

// Uncommitted returns the number of bytes consumed since the last commit.
// After look-back loss this undercounts; pair with Lost.
func (b *Buffer) Uncommitted() int { return b.pos }

// Lost reports whether the look-back window dropped uncommitted bytes,
// making Reset impossible until the next Commit.
func (b *Buffer) Lost() bool { return b.lost }

// Err returns the sticky source error, if any. io.EOF is retained as-is.
func (b *Buffer) Err() error { return b.err }

func (b *Buffer) fill(want int) {
	if want < 512 {
		want = 512
	}
	if free := cap(b.buf) - len(b.buf); free < want {
		grown := make([]byte, len(b.buf), len(b.buf)+want)
		copy(grown, b.buf)
		b.buf = grown
	}
	n, err := b.src.Read(b.buf[len(b.buf) : len(b.buf)+want])
	b.buf = b.buf[:len(b.buf)+n]
	if err != nil {
		b.err = err
	} else if n == 0 {
		b.err = io.ErrNoProgress
	}
}

func (b *Buffer) trim() {
	if b.window <= 0 || b.pos <= b.window {
		return
	}
	drop := b.pos - b.window
	b.buf = b.buf[:copy(b.buf, b.buf[drop:])]
	b.pos -= drop
	b.lost = true
}
