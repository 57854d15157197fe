package colwidth

import (
	"git.sr.ht/~rockorager/colwidth/dbcs"
	"git.sr.ht/~rockorager/colwidth/utf8dec"
)

// Text is a sequence of characters with known boundaries. Offsets are in the
// native unit of the representation: bytes for Bytes, code points for Runes.
// The only implementations are Bytes and Runes.
type Text interface {
	// Len is the length of the text in its native unit
	Len() int
	scanner(e *Engine) scanner
}

// Bytes is encoded text, interpreted according to the Engine's Encoding.
type Bytes []byte

func (b Bytes) Len() int { return len(b) }

func (b Bytes) scanner(e *Engine) scanner {
	switch e.Encoding() {
	case Wide:
		return legacyScanner{b: b, double: true}
	case Narrow:
		return legacyScanner{b: b}
	default:
		return utf8Scanner{b: b, widthOf: e.widthOf}
	}
}

// Runes is already-decoded text, one element per code point. Its layout does
// not depend on the Engine's Encoding.
type Runes []rune

func (r Runes) Len() int { return len(r) }

func (r Runes) scanner(e *Engine) scanner {
	return runeScanner{r: r, widthOf: e.widthOf}
}

// textOf converts a caller value into a Text. Strings are Go's encoded
// byte form, so they become Bytes.
func textOf(v any) (Text, error) {
	switch v := v.(type) {
	case Bytes:
		return v, nil
	case Runes:
		return v, nil
	case []byte:
		return Bytes(v), nil
	case string:
		return Bytes(v), nil
	case []rune:
		return Runes(v), nil
	}
	return nil, errType(v)
}

// scanner implements the engine operations for one representation and
// encoding. Arguments are already bounds checked.
type scanner interface {
	isWide(offs int) bool
	prev(start, end int) int
	next(start, end int) int
	width(start, end int) int
	textPos(start, end, col int) Position
}

type utf8Scanner struct {
	b       []byte
	widthOf func(rune) int
}

func (s utf8Scanner) isWide(offs int) bool {
	return s.widthOf(utf8dec.Forward(s.b, offs).Rune) == 2
}

func (s utf8Scanner) prev(start, end int) int {
	o := end - 1
	for o > start && utf8dec.IsContinuation(s.b[o]) {
		o -= 1
	}
	return o
}

func (s utf8Scanner) next(start, end int) int {
	o := start + 1
	for o < end && utf8dec.IsContinuation(s.b[o]) {
		o += 1
	}
	return o
}

func (s utf8Scanner) width(start, end int) int {
	if printableASCII(s.b[start:end]) {
		return end - start
	}
	cols := 0
	for i := start; i < end; {
		res := utf8dec.Forward(s.b, i)
		cols += s.widthOf(res.Rune)
		i = res.Next
	}
	return cols
}

func (s utf8Scanner) textPos(start, end, col int) Position {
	cols := 0
	i := start
	for i < end {
		res := utf8dec.Forward(s.b, i)
		w := s.widthOf(res.Rune)
		if cols+w > col {
			return Position{Offset: i, Column: cols}
		}
		i = res.Next
		cols += w
	}
	if i > end {
		// the last sequence ran past the span
		i = end
	}
	return Position{Offset: i, Column: cols}
}

// printableASCII reports whether every byte of b is in 0x20-0x7E, each of
// which is one column.
func printableASCII(b []byte) bool {
	for _, c := range b {
		if c < 0x20 || c > 0x7E {
			return false
		}
	}
	return true
}

// legacyScanner lays out bytes one column each. With double set, lead and
// trail bytes of a pair are kept together.
type legacyScanner struct {
	b      []byte
	double bool
}

func (s legacyScanner) isWide(offs int) bool {
	return s.double && dbcs.Within(s.b, offs, offs) == dbcs.First
}

func (s legacyScanner) prev(start, end int) int {
	if s.double && dbcs.Within(s.b, start, end-1) == dbcs.Second {
		return end - 2
	}
	return end - 1
}

func (s legacyScanner) next(start, end int) int {
	if s.double && dbcs.Within(s.b, start, start) == dbcs.First && start+2 <= end {
		return start + 2
	}
	return start + 1
}

func (s legacyScanner) width(start, end int) int {
	return end - start
}

func (s legacyScanner) textPos(start, end, col int) Position {
	i := start + col
	if i >= end {
		return Position{Offset: end, Column: end - start}
	}
	if s.double && dbcs.Within(s.b, start, i) == dbcs.Second {
		i -= 1
	}
	return Position{Offset: i, Column: i - start}
}

type runeScanner struct {
	r       []rune
	widthOf func(rune) int
}

func (s runeScanner) isWide(offs int) bool {
	return s.widthOf(s.r[offs]) == 2
}

func (s runeScanner) prev(start, end int) int {
	return end - 1
}

func (s runeScanner) next(start, end int) int {
	return start + 1
}

func (s runeScanner) width(start, end int) int {
	cols := 0
	for _, r := range s.r[start:end] {
		cols += s.widthOf(r)
	}
	return cols
}

func (s runeScanner) textPos(start, end, col int) Position {
	cols := 0
	for i := start; i < end; i += 1 {
		w := s.widthOf(s.r[i])
		if cols+w > col {
			return Position{Offset: i, Column: cols}
		}
		cols += w
	}
	return Position{Offset: end, Column: cols}
}
