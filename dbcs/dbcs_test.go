package dbcs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithin(t *testing.T) {
	tests := []struct {
		name      string
		input     []byte
		lineStart int
		pos       int
		expected  Half
	}{
		{name: "ascii", input: []byte("ab"), pos: 1, expected: None},
		{name: "gbk lead", input: []byte{0xD6, 0xD0, 0xCE, 0xC4}, pos: 0, expected: First},
		{name: "gbk trail", input: []byte{0xD6, 0xD0, 0xCE, 0xC4}, pos: 1, expected: Second},
		{name: "gbk second lead", input: []byte{0xD6, 0xD0, 0xCE, 0xC4}, pos: 2, expected: First},
		{name: "gbk second trail", input: []byte{0xD6, 0xD0, 0xCE, 0xC4}, pos: 3, expected: Second},
		{name: "lead after ascii", input: []byte{'a', 0xD6, 0xD0}, pos: 1, expected: First},
		{name: "trail after ascii", input: []byte{'a', 0xD6, 0xD0}, pos: 2, expected: Second},
		{name: "big5 ascii-range trail", input: []byte{0xB3, 0x5C, 'a'}, pos: 1, expected: Second},
		{name: "ascii after big5 pair", input: []byte{0xB3, 0x5C, 'a'}, pos: 2, expected: None},
		{name: "ascii-range byte after ascii", input: []byte{'a', 0x5C}, pos: 1, expected: None},
		{name: "ascii-range byte at line start", input: []byte{0xB3, 0x5C}, lineStart: 1, pos: 1, expected: None},
		{name: "ascii-range byte after a complete pair", input: []byte{0x81, 0x81, 0x5C}, pos: 2, expected: None},
		{name: "ascii-range byte after lead below 0x81", input: []byte{0x80, 0x5C}, pos: 1, expected: None},
		{name: "line start shifts pairing", input: []byte{0xD6, 0xD0, 0xD6}, lineStart: 1, pos: 2, expected: Second},
		{name: "delete is not a trail", input: []byte{0xB3, 0x7F}, pos: 1, expected: None},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Within(test.input, test.lineStart, test.pos))
		})
	}
}

func TestWithinLongRun(t *testing.T) {
	b := make([]byte, 0, 2000)
	for i := 0; i < 1000; i += 1 {
		b = append(b, 0xB3, 0xA4)
	}
	assert.Equal(t, First, Within(b, 0, 1998))
	assert.Equal(t, Second, Within(b, 0, 1999))
	assert.Equal(t, First, Within(b, 1, 1999))
}

func TestHalfString(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "first", First.String())
	assert.Equal(t, "second", Second.String())
}

func TestIsWideCharset(t *testing.T) {
	for _, name := range []string{"big5", "GBK", "euc-kr", "EUCJP", " uhc "} {
		assert.True(t, IsWideCharset(name), name)
	}
	for _, name := range []string{"utf-8", "iso-8859-1", "ascii", ""} {
		assert.False(t, IsWideCharset(name), name)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	tests := []struct {
		charset string
		input   string
	}{
		{charset: "gbk", input: "中文 text"},
		{charset: "big5", input: "許功蓋"},
		{charset: "euc-kr", input: "한국어"},
		{charset: "euc-jp", input: "日本語"},
	}
	for _, test := range tests {
		t.Run(test.charset, func(t *testing.T) {
			b, err := Encode(test.charset, test.input)
			require.NoError(t, err)
			s, err := Decode(test.charset, b)
			require.NoError(t, err)
			assert.Equal(t, test.input, s)
		})
	}
}

func TestEncodedPairs(t *testing.T) {
	b, err := Encode("gbk", "中文")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xD6, 0xD0, 0xCE, 0xC4}, b)

	// 許 has a backslash trail byte in Big5
	b, err = Encode("big5", "許a")
	require.NoError(t, err)
	require.Len(t, b, 3)
	assert.Equal(t, byte(0x5C), b[1])
	assert.Equal(t, First, Within(b, 0, 0))
	assert.Equal(t, Second, Within(b, 0, 1))
	assert.Equal(t, None, Within(b, 0, 2))
}

func TestEncodedCharactersPair(t *testing.T) {
	for _, charset := range []string{"gbk", "big5", "euc-kr"} {
		t.Run(charset, func(t *testing.T) {
			input := map[string]string{
				"gbk":    "汉字汉字",
				"big5":   "漢字許功",
				"euc-kr": "한글한글",
			}[charset]
			b, err := Encode(charset, input)
			require.NoError(t, err)
			require.Len(t, b, 8)
			for i := range b {
				expected := First
				if i%2 == 1 {
					expected = Second
				}
				assert.Equal(t, expected, Within(b, 0, i), "offset %d", i)
			}
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("klingon")
	assert.True(t, errors.Is(err, ErrUnknownCharset))

	_, err = Encode("euc-tw", "x")
	assert.True(t, errors.Is(err, ErrUnknownCharset))

	_, err = Decode("klingon", []byte("x"))
	assert.True(t, errors.Is(err, ErrUnknownCharset))
}
