package scanfmt_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/jcorbin/scanfmt"
)

func TestParseInt(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		base int
		want int64
		n    int
		kind Kind
	}{
		{"decimal", "123", 10, 123, 3, NoError},
		{"stops at junk", "123abc", 10, 123, 3, NoError},
		{"negative", "-45", 10, -45, 3, NoError},
		{"zero", "0", 10, 0, 1, NoError},
		{"hex", "1f", 16, 31, 2, NoError},
		{"detect hex", "0x1f", 0, 31, 4, NoError},
		{"detect octal", "017", 0, 15, 3, NoError},
		{"detect binary", "0b101", 0, 5, 5, NoError},
		{"plain zero under detection", "0", 0, 0, 1, NoError},
		{"explicit plus", "+5", 10, 0, 0, InvalidScannedValue},
		{"no digits", "abc", 10, 0, 0, InvalidScannedValue},
		{"empty", "", 10, 0, 0, InvalidOperation},
		{"bad base", "1", 37, 0, 0, InvalidOperation},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v, n, err := ParseInt[int64]([]byte(tc.in), tc.base)
			if tc.kind != NoError {
				require.Error(t, err)
				assert.Equal(t, tc.kind, KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
			assert.Equal(t, tc.n, n)
		})
	}

	t.Run("int8 bounds", func(t *testing.T) {
		v, n, err := ParseInt[int8]([]byte("-128"), 10)
		require.NoError(t, err)
		assert.Equal(t, int8(-128), v)
		assert.Equal(t, 4, n)

		_, n, err = ParseInt[int8]([]byte("-129"), 10)
		assert.Equal(t, ValueOutOfRange, KindOf(err))
		assert.Contains(t, err.Error(), "underflow")
		assert.Equal(t, 3, n, "count covers the longest in-range prefix")

		_, n, err = ParseInt[int8]([]byte("128"), 10)
		assert.Equal(t, ValueOutOfRange, KindOf(err))
		assert.Contains(t, err.Error(), "overflow")
		assert.Equal(t, 2, n)
	})
}

func TestParseUint(t *testing.T) {
	v, n, err := ParseUint[uint16]([]byte("65535"), 10)
	require.NoError(t, err)
	assert.Equal(t, uint16(65535), v)
	assert.Equal(t, 5, n)

	_, _, err = ParseUint[uint16]([]byte("65536"), 10)
	assert.Equal(t, ValueOutOfRange, KindOf(err))

	_, _, err = ParseUint[uint]([]byte("-3"), 10)
	assert.Equal(t, InvalidScannedValue, KindOf(err))

	v64, n, err := ParseUint[uint64]([]byte("ffffffffffffffff"), 16)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), v64)
	assert.Equal(t, 16, n)
}

func TestParseFloat(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want float64
		n    int
		kind Kind
	}{
		{"simple", "3.14", 3.14, 4, NoError},
		{"integral", "42", 42, 2, NoError},
		{"stops at junk", "3.5e2xyz", 350, 5, NoError},
		{"bare fraction", ".5", 0.5, 2, NoError},
		{"negative exponent", "1e-3", 0.001, 4, NoError},
		{"dangling exponent", "2e", 2, 1, NoError},
		{"no digits", "xyz", 0, 0, InvalidScannedValue},
		{"empty", "", 0, 0, InvalidOperation},
		{"overflow", "1e400", 0, 0, ValueOutOfRange},
		{"underflow", "1e-400", 0, 0, ValueOutOfRange},
	} {
		t.Run(tc.name, func(t *testing.T) {
			v, n, err := ParseFloat[float64]([]byte(tc.in))
			if tc.kind != NoError {
				require.Error(t, err)
				assert.Equal(t, tc.kind, KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
			assert.Equal(t, tc.n, n)
		})
	}

	t.Run("special spellings", func(t *testing.T) {
		v, n, err := ParseFloat[float64]([]byte("inf"))
		require.NoError(t, err)
		assert.True(t, math.IsInf(v, 1))
		assert.Equal(t, 3, n)

		v, n, err = ParseFloat[float64]([]byte("-infinity"))
		require.NoError(t, err)
		assert.True(t, math.IsInf(v, -1))
		assert.Equal(t, 9, n)

		v, n, err = ParseFloat[float64]([]byte("NANxyz"))
		require.NoError(t, err)
		assert.True(t, math.IsNaN(v))
		assert.Equal(t, 3, n)
	})

	t.Run("float32 range", func(t *testing.T) {
		_, _, err := ParseFloat[float32]([]byte("1e39"))
		assert.Equal(t, ValueOutOfRange, KindOf(err))
	})
}
