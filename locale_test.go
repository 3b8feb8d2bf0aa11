package scanfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	. "github.com/jcorbin/scanfmt"
)

func TestLocale_classify(t *testing.T) {
	c := C()
	for _, tc := range []struct {
		name  string
		class Class
		r     rune
		want  bool
	}{
		{"space", Space, ' ', true},
		{"tab is space", Space, '\t', true},
		{"newline is space", Space, '\n', true},
		{"letter is not space", Space, 'a', false},
		{"digit", Digit, '5', true},
		{"hex letter is not a digit", Digit, 'f', false},
		{"hex letter is xdigit", Xdigit, 'f', true},
		{"g is not xdigit", Xdigit, 'g', false},
		{"alpha", Alpha, 'q', true},
		{"alnum letter", Alnum, 'a', true},
		{"alnum digit", Alnum, '5', true},
		{"alnum punct", Alnum, ',', false},
		{"upper", Upper, 'A', true},
		{"lower is not upper", Upper, 'a', false},
		{"punct", Punct, ',', true},
		{"cntrl", Cntrl, '\x01', true},
		{"blank", Blank, '\t', true},
		{"newline is not blank", Blank, '\n', false},
		{"graph excludes space", Graph, ' ', false},
		{"print includes space", Print, ' ', true},
		{"non-ascii is unclassified", Alpha, 'é', false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.Is(tc.class, tc.r))
		})
	}
}

func TestLocale_unicodeClassify(t *testing.T) {
	de := ForTag(language.German)
	assert.True(t, de.IsAlpha('ä'))
	assert.True(t, de.IsSpace(' '))
	assert.True(t, de.IsUpper('Ä'))
	assert.False(t, de.IsDigit('ä'))
	assert.True(t, de.IsAlnum('ß'))
}

func TestLocale_IsRun(t *testing.T) {
	c := C()
	assert.True(t, c.IsRun(Digit, []byte("5x")))
	assert.False(t, c.IsRun(Digit, []byte("x5")))
	assert.False(t, c.IsRun(Digit, []byte{0xff}), "undecodable is not in any class")
	assert.False(t, c.IsRun(Digit, nil))
}

func TestForTag(t *testing.T) {
	de := ForTag(language.German)
	assert.Equal(t, ',', de.DecimalPoint())
	assert.Equal(t, '.', de.GroupSeparator())
	assert.Equal(t, "true", de.TrueName())
	assert.Equal(t, "false", de.FalseName())

	// a regional variant resolves to its base entry
	at := ForTag(language.MustParse("de-AT"))
	assert.Equal(t, ',', at.DecimalPoint())

	// unknown tags fall back to the first entry
	und := ForTag(language.Und)
	assert.Equal(t, '.', und.DecimalPoint())
	assert.Equal(t, ',', und.GroupSeparator())
}

func TestLocale_read(t *testing.T) {
	de := ForTag(language.German)

	t.Run("grouped int", func(t *testing.T) {
		v, n, err := de.ReadInt([]byte("1.234.567"), 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1234567), v)
		assert.Equal(t, 9, n)
	})

	t.Run("separator only counts between digits", func(t *testing.T) {
		v, n, err := de.ReadInt([]byte("12."), 10)
		require.NoError(t, err)
		assert.Equal(t, int64(12), v)
		assert.Equal(t, 2, n, "trailing separator stays unconsumed")
	})

	t.Run("negative", func(t *testing.T) {
		v, _, err := de.ReadInt([]byte("-42"), 10)
		require.NoError(t, err)
		assert.Equal(t, int64(-42), v)
	})

	t.Run("unsigned rejects minus", func(t *testing.T) {
		_, _, err := de.ReadUint([]byte("-1"), 10)
		assert.Equal(t, InvalidScannedValue, KindOf(err))
	})

	t.Run("localized float", func(t *testing.T) {
		v, n, err := de.ReadFloat([]byte("1.234,56"))
		require.NoError(t, err)
		assert.Equal(t, 1234.56, v)
		assert.Equal(t, 8, n)
	})

	t.Run("default locale float", func(t *testing.T) {
		v, _, err := C().ReadFloat([]byte("3.14"))
		require.NoError(t, err)
		assert.Equal(t, 3.14, v)
	})

	t.Run("bad base", func(t *testing.T) {
		_, _, err := C().ReadInt([]byte("5"), 1)
		assert.Equal(t, InvalidOperation, KindOf(err))
	})

	t.Run("zero locale is unsupported", func(t *testing.T) {
		var l Locale
		_, _, err := l.ReadInt([]byte("5"), 10)
		assert.Equal(t, Unsupported, KindOf(err))
		assert.False(t, KindOf(err).Recoverable())
	})
}

func TestCustom(t *testing.T) {
	loc := Custom(',', '\'', "oui", "non")
	assert.Equal(t, ',', loc.DecimalPoint())
	assert.Equal(t, '\'', loc.GroupSeparator())

	v, n, err := loc.ReadFloat([]byte("1'234,5"))
	require.NoError(t, err)
	assert.Equal(t, 1234.5, v)
	assert.Equal(t, 7, n)
}
