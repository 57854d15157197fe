package utf8dec

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestForward(t *testing.T) {
	tests := []struct {
		name  string
		input string
		r     rune
		next  int
	}{
		{name: "ascii", input: "ab", r: 'a', next: 1},
		{name: "bad lead then ascii", input: "\xc0a", r: '?', next: 1},
		{name: "truncated 2 byte", input: "\xc2", r: '?', next: 1},
		{name: "truncated 2 byte lead alone", input: "\xc0", r: '?', next: 1},
		{name: "overlong 2 byte", input: "\xc0\x80", r: '?', next: 1},
		{name: "smallest 2 byte", input: "\xc2\x80", r: 0x80, next: 2},
		{name: "largest 2 byte", input: "\xdf\xbf", r: 0x7ff, next: 2},
		{name: "truncated 3 byte", input: "\xe0", r: '?', next: 1},
		{name: "truncated 3 byte with one continuation", input: "\xe0\xa0", r: '?', next: 1},
		{name: "overlong 3 byte", input: "\xe0\x90\x80", r: '?', next: 1},
		{name: "smallest 3 byte", input: "\xe0\xa0\x80", r: 0x800, next: 3},
		{name: "largest 3 byte", input: "\xef\xbf\xbf", r: 0xffff, next: 3},
		{name: "euro", input: "€", r: 0x20AC, next: 3},
		{name: "bad second continuation", input: "\xe2\x82A", r: '?', next: 1},
		{name: "truncated 4 byte", input: "\xf0", r: '?', next: 1},
		{name: "truncated 4 byte with one continuation", input: "\xf0\x90", r: '?', next: 1},
		{name: "truncated 4 byte with two continuations", input: "\xf0\x90\x80", r: '?', next: 1},
		{name: "overlong 4 byte", input: "\xf0\x80\x80\x80", r: '?', next: 1},
		{name: "smallest 4 byte", input: "\xf0\x90\x80\x80", r: 0x10000, next: 4},
		{name: "large 4 byte", input: "\xf3\xbf\xbf\xbf", r: 0xfffff, next: 4},
		{name: "continuation as lead", input: "\x80abc", r: '?', next: 1},
		{name: "five byte lead", input: "\xf8\x88\x80\x80\x80", r: '?', next: 1},
		{name: "surrogate passes through", input: "\xed\xa0\x80", r: 0xD800, next: 3},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Forward([]byte(test.input), 0)
			assert.Equal(t, test.r, got.Rune)
			assert.Equal(t, test.next, got.Next)
		})
	}
}

func TestForwardMidBuffer(t *testing.T) {
	b := []byte("A€B")
	assert.Equal(t, Result{'A', 1}, Forward(b, 0))
	assert.Equal(t, Result{0x20AC, 4}, Forward(b, 1))
	assert.Equal(t, Result{'?', 3}, Forward(b, 2))
	assert.Equal(t, Result{'B', 5}, Forward(b, 4))
}

func TestForwardRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"hello",
		"A€B",
		"中文字符",
		"ünïcödé",
		"😀🔮🌍",
		"mixed 中 and é and 😀",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			b := []byte(input)
			var got []rune
			for pos := 0; pos < len(b); {
				res := Forward(b, pos)
				got = append(got, res.Rune)
				pos = res.Next
			}
			assert.Equal(t, input, string(got))
			assert.Equal(t, utf8.RuneCountInString(input), len(got))
		})
	}
}

func TestForwardAlwaysProgresses(t *testing.T) {
	b := make([]byte, 0, 512)
	for i := 0; i < 256; i += 1 {
		b = append(b, byte(i), byte(255-i))
	}
	steps := 0
	for pos := 0; pos < len(b); steps += 1 {
		res := Forward(b, pos)
		assert.Greater(t, res.Next, pos)
		pos = res.Next
	}
	assert.LessOrEqual(t, steps, len(b))
}

func TestBackward(t *testing.T) {
	tests := []struct {
		name  string
		input string
		pos   int
		r     rune
		next  int
	}{
		{name: "ascii", input: "ab", pos: 1, r: 'b', next: 0},
		{name: "first ascii", input: "ab", pos: 0, r: 'a', next: -1},
		{name: "euro trailing byte", input: "A€B", pos: 3, r: 0x20AC, next: 0},
		{name: "euro middle byte", input: "A€B", pos: 2, r: 0x20AC, next: 0},
		{name: "euro lead byte", input: "A€B", pos: 1, r: 0x20AC, next: 0},
		{name: "4 byte trailing", input: "x😀", pos: 4, r: 0x1F600, next: 0},
		{name: "continuation at start", input: "\x80\x80", pos: 1, r: '?', next: -1},
		{name: "too many continuations", input: "a\x80\x80\x80\x80\x80", pos: 5, r: '?', next: 1},
		{name: "truncated sequence", input: "a\xe2\x82", pos: 2, r: '?', next: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Backward([]byte(test.input), test.pos)
			assert.Equal(t, test.r, got.Rune)
			assert.Equal(t, test.next, got.Next)
		})
	}
}

func TestBackwardRoundTrip(t *testing.T) {
	input := "mixed 中 and é and 😀"
	b := []byte(input)
	var got []rune
	for pos := len(b) - 1; pos >= 0; {
		res := Backward(b, pos)
		got = append([]rune{res.Rune}, got...)
		assert.Less(t, res.Next, pos)
		pos = res.Next
	}
	assert.Equal(t, input, string(got))
}

func TestBackwardAlwaysProgresses(t *testing.T) {
	b := []byte("\x80\xbf\xc0\xe2\x82\xf0\x90\x80\xff\x80\x80\x80\x80\x80")
	for pos := len(b) - 1; pos >= 0; {
		res := Backward(b, pos)
		assert.Less(t, res.Next, pos)
		pos = res.Next
	}
}

func BenchmarkForward(b *testing.B) {
	input := []byte("😀🔮🌍📎test string 中文")
	for i := 0; i < b.N; i += 1 {
		for pos := 0; pos < len(input); {
			pos = Forward(input, pos).Next
		}
	}
}
