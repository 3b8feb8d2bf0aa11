package scanfmt_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/jcorbin/scanfmt"
)

func TestScanList(t *testing.T) {
	t.Run("comma separated", func(t *testing.T) {
		var xs []int
		res := ScanList("1, 2, 3", &xs, ',')
		require.True(t, res.OK(), "unexpected error: %v", res.Err())
		assert.Equal(t, []int{1, 2, 3}, xs)
		assert.Equal(t, 3, res.Count())
	})

	t.Run("whitespace separated", func(t *testing.T) {
		var xs []int
		res := ScanList("4 5 6", &xs, 0)
		require.True(t, res.OK())
		assert.Equal(t, []int{4, 5, 6}, xs)
	})

	t.Run("words", func(t *testing.T) {
		var ws []string
		res := ScanList("foo bar baz", &ws, 0)
		require.True(t, res.OK())
		assert.Equal(t, []string{"foo", "bar", "baz"}, ws)
	})

	t.Run("floats", func(t *testing.T) {
		var fs []float64
		res := ScanList("1.5,2.5,3.5", &fs, ',')
		require.True(t, res.OK())
		assert.Equal(t, []float64{1.5, 2.5, 3.5}, fs)
	})

	t.Run("missing separator stops before the tail", func(t *testing.T) {
		var xs []int
		res := ScanList("1,2 3", &xs, ',')
		require.True(t, res.OK())
		assert.Equal(t, []int{1, 2}, xs)
		rest, _ := res.Remaining()
		assert.Equal(t, " 3", string(rest))
	})

	t.Run("bad element after separator stops cleanly", func(t *testing.T) {
		var xs []int
		res := ScanList("1,2,foo", &xs, ',')
		require.True(t, res.OK(), "unexpected error: %v", res.Err())
		assert.Equal(t, []int{1, 2}, xs)
		rest, _ := res.Remaining()
		assert.Equal(t, "foo", string(rest))
	})

	t.Run("first element must scan", func(t *testing.T) {
		var xs []int
		res := ScanList("foo", &xs, ',')
		assert.Equal(t, InvalidScannedValue, res.Kind())
		assert.Empty(t, xs)
	})

	t.Run("empty input yields an empty list", func(t *testing.T) {
		var xs []int
		res := ScanList("", &xs, ',')
		require.True(t, res.OK())
		assert.Empty(t, xs)
		assert.Equal(t, 0, res.Count())
	})

	t.Run("appends to an existing list", func(t *testing.T) {
		xs := []int{0}
		res := ScanList("1 2", &xs, 0)
		require.True(t, res.OK())
		assert.Equal(t, []int{0, 1, 2}, xs)
		assert.Equal(t, 2, res.Count())
	})

	t.Run("from a stream", func(t *testing.T) {
		var xs []int
		res := ScanList(strings.NewReader("7, 8, 9"), &xs, ',')
		require.True(t, res.OK(), "unexpected error: %v", res.Err())
		assert.Equal(t, []int{7, 8, 9}, xs)
	})
}

func TestScanListUntil(t *testing.T) {
	t.Run("terminator after a value", func(t *testing.T) {
		var xs []int
		res := ScanListUntil("1,2,3;rest", &xs, ';', ',')
		require.True(t, res.OK(), "unexpected error: %v", res.Err())
		assert.Equal(t, []int{1, 2, 3}, xs)
		rest, _ := res.Remaining()
		assert.Equal(t, ";rest", string(rest), "terminator stays unconsumed")
	})

	t.Run("terminator before any value", func(t *testing.T) {
		var xs []int
		res := ScanListUntil(";rest", &xs, ';', ',')
		require.True(t, res.OK())
		assert.Empty(t, xs)
		rest, _ := res.Remaining()
		assert.Equal(t, ";rest", string(rest))
	})

	t.Run("input may end before the terminator", func(t *testing.T) {
		var xs []int
		res := ScanListUntil("1,2", &xs, ';', ',')
		require.True(t, res.OK())
		assert.Equal(t, []int{1, 2}, xs)
	})
}

func TestScanListCap(t *testing.T) {
	t.Run("stops at capacity", func(t *testing.T) {
		xs := make([]int, 0, 2)
		res := ScanListCap("1 2 3", &xs, 0)
		require.True(t, res.OK())
		assert.Equal(t, []int{1, 2}, xs)
		rest, _ := res.Remaining()
		assert.Equal(t, " 3", string(rest))
	})

	t.Run("short input fills what it can", func(t *testing.T) {
		xs := make([]int, 0, 4)
		res := ScanListCap("1 2", &xs, 0)
		require.True(t, res.OK())
		assert.Equal(t, []int{1, 2}, xs)
	})

	t.Run("zero capacity scans nothing", func(t *testing.T) {
		var xs []int
		res := ScanListCap("1 2", &xs, 0)
		require.True(t, res.OK())
		assert.Empty(t, xs)
	})
}
