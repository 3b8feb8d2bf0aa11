package scanfmt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/jcorbin/scanfmt"
)

func TestGetLine(t *testing.T) {
	t.Run("to newline", func(t *testing.T) {
		var s string
		res := GetLine("hello\nworld", &s, '\n')
		require.True(t, res.OK())
		assert.Equal(t, "hello", s, "delimiter is excluded")
		rest, _ := res.Remaining()
		assert.Equal(t, "world", string(rest), "delimiter is consumed")
	})

	t.Run("custom delimiter", func(t *testing.T) {
		var s string
		res := GetLine("a;b;c", &s, ';')
		require.True(t, res.OK())
		assert.Equal(t, "a", s)
	})

	t.Run("missing delimiter takes the rest", func(t *testing.T) {
		var s string
		res := GetLine("no newline", &s, '\n')
		require.True(t, res.OK())
		assert.Equal(t, "no newline", s)
		rest, _ := res.Remaining()
		assert.Empty(t, rest)
	})

	t.Run("empty line", func(t *testing.T) {
		var s string
		res := GetLine("\nnext", &s, '\n')
		require.True(t, res.OK())
		assert.Equal(t, "", s)
		rest, _ := res.Remaining()
		assert.Equal(t, "next", string(rest))
	})

	t.Run("exhausted input", func(t *testing.T) {
		var s string
		res := GetLine("", &s, '\n')
		assert.Equal(t, EndOfRange, res.Kind())
	})

	t.Run("whitespace is line content", func(t *testing.T) {
		var s string
		res := GetLine("  padded  \nnext", &s, '\n')
		require.True(t, res.OK())
		assert.Equal(t, "  padded  ", s)
	})

	t.Run("from a stream", func(t *testing.T) {
		c := FromReader(strings.NewReader("one\ntwo\n"))
		var s string
		require.True(t, GetLine(c, &s, '\n').OK())
		assert.Equal(t, "one", s)
		require.True(t, GetLine(c, &s, '\n').OK())
		assert.Equal(t, "two", s)
		assert.Equal(t, EndOfRange, GetLine(c, &s, '\n').Kind())
	})

	t.Run("stream keeps undecodable bytes", func(t *testing.T) {
		var s string
		res := GetLine(strings.NewReader("a\xffb\nx"), &s, '\n')
		require.True(t, res.OK())
		assert.Equal(t, "a\xffb", s)
	})
}

func TestGetLineBytes(t *testing.T) {
	t.Run("borrows the input", func(t *testing.T) {
		in := []byte("abc\ndef")
		var line []byte
		res := GetLineBytes(in, &line, '\n')
		require.True(t, res.OK())
		assert.Equal(t, "abc", string(line))
		assert.Same(t, &in[0], &line[0])
	})

	t.Run("equals the copying variant", func(t *testing.T) {
		var s string
		var line []byte
		require.True(t, GetLine("x y z\nrest", &s, '\n').OK())
		require.True(t, GetLineBytes([]byte("x y z\nrest"), &line, '\n').OK())
		assert.Equal(t, s, string(line))
	})

	t.Run("streams cannot lend a view", func(t *testing.T) {
		var line []byte
		res := GetLineBytes(strings.NewReader("abc\n"), &line, '\n')
		assert.Equal(t, InvalidOperation, res.Kind())
	})
}

func TestIgnoreUntil(t *testing.T) {
	t.Run("consumes through the delimiter", func(t *testing.T) {
		res := IgnoreUntil("skip this\nkeep", '\n')
		require.True(t, res.OK())
		rest, _ := res.Remaining()
		assert.Equal(t, "keep", string(rest))
	})

	t.Run("missing delimiter consumes everything", func(t *testing.T) {
		res := IgnoreUntil("abc", '\n')
		assert.Equal(t, EndOfRange, res.Kind())
		rest, _ := res.Remaining()
		assert.Empty(t, rest)
	})

	t.Run("from a stream", func(t *testing.T) {
		c := FromReader(strings.NewReader("junk;value"))
		require.True(t, IgnoreUntil(c, ';').OK())
		var s string
		require.True(t, Scan(c, "{}", &s).OK())
		assert.Equal(t, "value", s)
	})
}

func TestIgnoreUntilN(t *testing.T) {
	t.Run("delimiter within bound", func(t *testing.T) {
		res := IgnoreUntilN("ab;cd", 5, ';')
		require.True(t, res.OK())
		rest, _ := res.Remaining()
		assert.Equal(t, "cd", string(rest))
	})

	t.Run("bound hit first is a clean stop", func(t *testing.T) {
		res := IgnoreUntilN("abcdef", 3, ';')
		require.True(t, res.OK())
		rest, _ := res.Remaining()
		assert.Equal(t, "def", string(rest))
	})

	t.Run("bound counts characters not bytes", func(t *testing.T) {
		res := IgnoreUntilN("äöü;x", 4, ';')
		require.True(t, res.OK())
		rest, _ := res.Remaining()
		assert.Equal(t, "x", string(rest), "four characters reach the delimiter")
	})
}
