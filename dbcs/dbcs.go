// Package dbcs handles legacy double-byte character sets such as Big5, GBK and
// UHC, where a character is either a single ASCII byte or a high lead byte
// followed by a trail byte that may itself fall in the ASCII range.
package dbcs

// Half describes where an offset falls relative to a double-byte character.
type Half int

const (
	// None is a single-byte character
	None Half = iota
	// First is the lead byte of a pair
	First
	// Second is the trail byte of a pair
	Second
)

func (h Half) String() string {
	switch h {
	case First:
		return "first"
	case Second:
		return "second"
	default:
		return "none"
	}
}

// Within reports whether b[pos] is part of a double-byte character. Pairing
// can't be decided from a single byte, so Within counts back from pos to the
// nearest byte below 0x80, never going before lineStart. Callers must ensure
// 0 <= lineStart <= pos < len(b).
func Within(b []byte, lineStart, pos int) Half {
	v := b[pos]
	if v >= 0x40 && v < 0x7F {
		// Big5, UHC and GBK trail bytes overlap ASCII letters
		if pos == lineStart || b[pos-1] < 0x81 {
			return None
		}
		if highRun(b, lineStart, pos-1) == First {
			return Second
		}
		return None
	}
	if v < 0x80 {
		return None
	}
	return highRun(b, lineStart, pos)
}

// highRun pairs up the run of high bytes ending at pos.
func highRun(b []byte, lineStart, pos int) Half {
	i := pos - 1
	for i >= lineStart && b[i] >= 0x80 {
		i -= 1
	}
	if (pos-i)&1 == 1 {
		return First
	}
	return Second
}
