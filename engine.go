package colwidth

import (
	"fmt"
	"io"
	"sync/atomic"

	"golang.org/x/exp/slog"

	"git.sr.ht/~rockorager/colwidth/width"
)

// Options configure an Engine.
type Options struct {
	// Encoding is how Bytes are interpreted. The zero value is UTF8
	Encoding Encoding
	// Method selects the source of code point widths. The zero value is the
	// built-in table
	Method width.Method
	// Logger is an optional slog.Logger the engine will log to. colwidth
	// uses stdlib levels for logging
	Logger *slog.Logger
}

// Position is an offset into a text and the screen column it starts at.
type Position struct {
	Offset int
	Column int
}

// Engine measures text and moves between character boundaries. An Engine is
// safe for concurrent use; changing its encoding while other goroutines are
// measuring gives each call whichever encoding it observes first.
type Engine struct {
	encoding atomic.Int32
	method   width.Method
	widthOf  func(rune) int
	log      *slog.Logger
}

// New returns an Engine configured by opts.
func New(opts Options) *Engine {
	e := &Engine{
		method:  opts.Method,
		widthOf: opts.Method.Func(),
		log:     opts.Logger,
	}
	if e.log == nil {
		e.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	e.encoding.Store(int32(opts.Encoding))
	return e
}

// Encoding returns the encoding used for Bytes.
func (e *Engine) Encoding() Encoding {
	return Encoding(e.encoding.Load())
}

// SetEncoding switches the engine to the encoding called name: "utf8", "wide"
// or "narrow". Any other name returns ErrInvalidArgument and leaves the
// encoding unchanged.
func (e *Engine) SetEncoding(name string) error {
	enc, err := ParseEncoding(name)
	if err != nil {
		e.log.Warn("rejected encoding", "name", name)
		return err
	}
	old := Encoding(e.encoding.Swap(int32(enc)))
	if old != enc {
		e.log.Debug("encoding changed", "from", old, "to", enc)
	}
	return nil
}

// Method returns the width method of the engine.
func (e *Engine) Method() width.Method {
	return e.method
}

// WidthOf returns the column width of r: 0, 1 or 2.
func (e *Engine) WidthOf(r rune) int {
	return e.widthOf(r)
}

// IsWideChar reports whether the character at offs takes two columns. In
// Narrow encoding nothing is wide.
func (e *Engine) IsWideChar(t Text, offs int) (bool, error) {
	if t == nil {
		return false, errType(t)
	}
	if offs < 0 || offs >= t.Len() {
		return false, fmt.Errorf("%w: offset %d, length %d", ErrOutOfRange, offs, t.Len())
	}
	return t.scanner(e).isWide(offs), nil
}

// MovePrevChar returns the offset of the character before end, never going
// below start.
func (e *Engine) MovePrevChar(t Text, start, end int) (int, error) {
	if err := checkMove(t, start, end); err != nil {
		return 0, err
	}
	return t.scanner(e).prev(start, end), nil
}

// MoveNextChar returns the offset of the character after the one at start,
// never going past end.
func (e *Engine) MoveNextChar(t Text, start, end int) (int, error) {
	if err := checkMove(t, start, end); err != nil {
		return 0, err
	}
	return t.scanner(e).next(start, end), nil
}

// CalcWidth returns the number of screen columns text[start:end] occupies.
// In Wide and Narrow encoding that is the byte count.
func (e *Engine) CalcWidth(t Text, start, end int) (int, error) {
	if err := checkSpan(t, start, end); err != nil {
		return 0, err
	}
	return t.scanner(e).width(start, end), nil
}

// CalcTextPos finds the offset in text[start:end] closest to screen column
// col, treating start as column 0. The result is the first character that
// would extend past col, and the column it starts at. If the span is narrower
// than col, the result is end and the width of the span. A double-width
// character is never split.
func (e *Engine) CalcTextPos(t Text, start, end, col int) (Position, error) {
	if err := checkSpan(t, start, end); err != nil {
		return Position{}, err
	}
	if col < 0 {
		return Position{}, fmt.Errorf("%w: negative column %d", ErrInvalidArgument, col)
	}
	return t.scanner(e).textPos(start, end, col), nil
}

// Trim is the part of a span that fits between two screen columns. PadLeft
// and PadRight are 1 when a double-width character was cut at that edge and
// one space of padding stands in for it.
type Trim struct {
	Start    int
	End      int
	PadLeft  int
	PadRight int
}

// CalcTrimText trims text[start:end] to the columns [startCol, endCol), where
// start is column 0.
func (e *Engine) CalcTrimText(t Text, start, end, startCol, endCol int) (Trim, error) {
	if err := checkSpan(t, start, end); err != nil {
		return Trim{}, err
	}
	if startCol < 0 || endCol < startCol {
		return Trim{}, fmt.Errorf("%w: columns [%d, %d)", ErrInvalidArgument, startCol, endCol)
	}
	sc := t.scanner(e)
	trim := Trim{Start: start}
	if startCol > 0 {
		p := sc.textPos(start, end, startCol)
		if p.Column < startCol {
			trim.PadLeft = 1
			p = sc.textPos(start, end, startCol+1)
		}
		trim.Start = p.Offset
	}
	run := endCol - startCol - trim.PadLeft
	if run < 0 {
		// a wide character straddles both edges of a one column window
		trim.End = trim.Start
		return trim, nil
	}
	p := sc.textPos(trim.Start, end, run)
	if p.Column < run {
		trim.PadRight = 1
	}
	trim.End = p.Offset
	return trim, nil
}

func checkSpan(t Text, start, end int) error {
	if t == nil {
		return errType(t)
	}
	if start < 0 || start > end || end > t.Len() {
		return fmt.Errorf("%w: span [%d, %d), length %d", ErrOutOfRange, start, end, t.Len())
	}
	return nil
}

// checkMove is checkSpan for a span that must hold at least one character.
func checkMove(t Text, start, end int) error {
	if err := checkSpan(t, start, end); err != nil {
		return err
	}
	if start == end {
		return fmt.Errorf("%w: empty span at %d", ErrOutOfRange, start)
	}
	return nil
}

func errType(v any) error {
	return fmt.Errorf("%w: %T", ErrType, v)
}
