// Package utf8dec decodes single UTF-8 sequences out of byte buffers that may
// be malformed or sliced mid-character.
//
// Unlike unicode/utf8, a bad sequence decodes to the ASCII '?' marker and
// consumes exactly one byte, so a scan over any buffer always makes progress.
// Surrogates and 4-byte values above U+10FFFF are passed through unchanged;
// only truncation, bad continuation bytes, over-long forms and invalid lead
// bytes are rejected.
package utf8dec

// Replacement is returned in place of a sequence that could not be decoded.
const Replacement rune = '?'

// Result is a decoded code point and the offset where scanning continues.
type Result struct {
	Rune rune
	// Next is the offset following the sequence when decoding forward, or
	// the offset just before the sequence when decoding backward.
	Next int
}

// IsContinuation reports whether c has the 10xxxxxx form of a non-leading
// byte.
func IsContinuation(c byte) bool {
	return c&0xC0 == 0x80
}

// Forward decodes the sequence starting at b[pos]. pos must be within b.
func Forward(b []byte, pos int) Result {
	c := b[pos]
	if c&0x80 == 0 {
		return Result{rune(c), pos + 1}
	}
	bad := Result{Replacement, pos + 1}
	n := len(b) - pos

	switch {
	case c&0xE0 == 0xC0:
		if n < 2 || !IsContinuation(b[pos+1]) {
			return bad
		}
		r := rune(c&0x1F)<<6 | rune(b[pos+1]&0x3F)
		if r < 0x80 {
			return bad
		}
		return Result{r, pos + 2}
	case c&0xF0 == 0xE0:
		if n < 3 || !IsContinuation(b[pos+1]) || !IsContinuation(b[pos+2]) {
			return bad
		}
		r := rune(c&0x0F)<<12 | rune(b[pos+1]&0x3F)<<6 | rune(b[pos+2]&0x3F)
		if r < 0x800 {
			return bad
		}
		return Result{r, pos + 3}
	case c&0xF8 == 0xF0:
		if n < 4 || !IsContinuation(b[pos+1]) || !IsContinuation(b[pos+2]) || !IsContinuation(b[pos+3]) {
			return bad
		}
		r := rune(c&0x07)<<18 | rune(b[pos+1]&0x3F)<<12 | rune(b[pos+2]&0x3F)<<6 | rune(b[pos+3]&0x3F)
		if r < 0x10000 {
			return bad
		}
		return Result{r, pos + 4}
	}
	return bad
}

// maxSequence is the longest UTF-8 sequence in bytes
const maxSequence = 4

// Backward decodes the sequence that b[pos] belongs to, where pos is usually
// the trailing byte of a sequence found while scanning right to left. It steps
// left over at most three continuation bytes to find the lead byte, decodes
// forward from there, and reports the offset before the lead byte. pos must be
// within b.
func Backward(b []byte, pos int) Result {
	p := pos
	for steps := 1; p > 0 && steps < maxSequence && IsContinuation(b[p]); steps += 1 {
		p -= 1
	}
	return Result{Forward(b, p).Rune, p - 1}
}
