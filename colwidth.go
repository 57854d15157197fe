// Package colwidth computes how many terminal columns text occupies and finds
// character boundaries in encoded buffers, for laying text out on a fixed
// width terminal grid.
//
// Text is either encoded bytes (Bytes, []byte or string), interpreted in one
// of three encodings, or already-decoded code points (Runes or []rune):
//
//   - UTF8 decodes bytes as UTF-8 and sizes each code point with the width
//     table. Malformed bytes count as a single '?' each.
//   - Wide treats bytes as a legacy double-byte charset such as Big5 or GBK.
//     Each byte is one column and the two bytes of a pair are never split.
//   - Narrow treats each byte as one column.
//
// The package-level functions use a process-wide default Engine whose
// encoding starts as UTF8. Set it once with SetEncoding before measuring
// from several goroutines, or create independent engines with New.
package colwidth

import (
	"fmt"

	"git.sr.ht/~rockorager/colwidth/dbcs"
	"git.sr.ht/~rockorager/colwidth/utf8dec"
)

var std = New(Options{})

// Default returns the Engine used by the package-level functions.
func Default() *Engine {
	return std
}

// GetEncoding returns the name of the default engine's encoding: "utf8",
// "wide" or "narrow".
func GetEncoding() string {
	return std.Encoding().String()
}

// SetEncoding sets the default engine's encoding. Unknown names return
// ErrInvalidArgument and leave the encoding unchanged.
func SetEncoding(name string) error {
	return std.SetEncoding(name)
}

// WidthOfCodepoint returns the column width of r using the default engine's
// width method.
func WidthOfCodepoint(r rune) int {
	return std.WidthOf(r)
}

// DecodeForward decodes the UTF-8 sequence starting at b[pos].
func DecodeForward(b []byte, pos int) (utf8dec.Result, error) {
	if pos < 0 || pos >= len(b) {
		return utf8dec.Result{}, fmt.Errorf("%w: offset %d, length %d", ErrOutOfRange, pos, len(b))
	}
	return utf8dec.Forward(b, pos), nil
}

// DecodeBackward decodes the UTF-8 sequence ending at b[pos]. The returned
// Next is the offset before the sequence, -1 when it starts the buffer.
func DecodeBackward(b []byte, pos int) (utf8dec.Result, error) {
	if pos < 0 || pos >= len(b) {
		return utf8dec.Result{}, fmt.Errorf("%w: offset %d, length %d", ErrOutOfRange, pos, len(b))
	}
	return utf8dec.Backward(b, pos), nil
}

// WithinDoubleByte reports whether b[pos] is the first or second half of a
// double-byte character, scanning back no further than lineStart.
func WithinDoubleByte(b []byte, lineStart, pos int) (dbcs.Half, error) {
	switch {
	case lineStart < 0 || lineStart >= len(b):
		return dbcs.None, fmt.Errorf("%w: line start %d is outside of %d bytes", ErrOutOfRange, lineStart, len(b))
	case pos < 0 || pos >= len(b):
		return dbcs.None, fmt.Errorf("%w: position %d is outside of %d bytes", ErrOutOfRange, pos, len(b))
	case pos < lineStart:
		return dbcs.None, fmt.Errorf("%w: position %d is before line start %d", ErrOutOfRange, pos, lineStart)
	}
	return dbcs.Within(b, lineStart, pos), nil
}

// IsWideChar reports whether the character at offs in text takes two
// columns.
func IsWideChar(text any, offs int) (bool, error) {
	t, err := textOf(text)
	if err != nil {
		return false, err
	}
	return std.IsWideChar(t, offs)
}

// MovePrevChar returns the offset of the character before end in text.
func MovePrevChar(text any, start, end int) (int, error) {
	t, err := textOf(text)
	if err != nil {
		return 0, err
	}
	return std.MovePrevChar(t, start, end)
}

// MoveNextChar returns the offset of the character after start in text.
func MoveNextChar(text any, start, end int) (int, error) {
	t, err := textOf(text)
	if err != nil {
		return 0, err
	}
	return std.MoveNextChar(t, start, end)
}

// CalcWidth returns the screen column width of text between start and end.
func CalcWidth(text any, start, end int) (int, error) {
	t, err := textOf(text)
	if err != nil {
		return 0, err
	}
	return std.CalcWidth(t, start, end)
}

// CalcTextPos returns the offset in text closest to screen column col, where
// start is column 0, and the column actually reached.
func CalcTextPos(text any, start, end, col int) (Position, error) {
	t, err := textOf(text)
	if err != nil {
		return Position{}, err
	}
	return std.CalcTextPos(t, start, end, col)
}

// CalcTrimText returns the part of text[start:end] that fits between screen
// columns startCol and endCol, with padding for double-width characters cut
// at either edge.
func CalcTrimText(text any, start, end, startCol, endCol int) (Trim, error) {
	t, err := textOf(text)
	if err != nil {
		return Trim{}, err
	}
	return std.CalcTrimText(t, start, end, startCol, endCol)
}
