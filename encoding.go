package colwidth

import (
	"fmt"
	"os"
	"strings"

	"git.sr.ht/~rockorager/colwidth/dbcs"
)

// Encoding is the way byte buffers are laid out on the terminal.
type Encoding int32

const (
	// UTF8 decodes bytes as UTF-8 and sizes each code point with the width
	// table
	UTF8 Encoding = iota
	// Wide treats bytes as a double-byte charset (Big5, GBK, UHC...), one
	// column per byte, never splitting a pair
	Wide
	// Narrow treats every byte as one column
	Narrow
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "utf8"
	case Wide:
		return "wide"
	case Narrow:
		return "narrow"
	default:
		return fmt.Sprintf("Encoding(%d)", int32(e))
	}
}

// ParseEncoding returns the Encoding named "utf8", "wide" or "narrow".
func ParseEncoding(name string) (Encoding, error) {
	switch name {
	case "utf8":
		return UTF8, nil
	case "wide":
		return Wide, nil
	case "narrow":
		return Narrow, nil
	}
	return UTF8, fmt.Errorf("%w: unknown encoding %q", ErrInvalidArgument, name)
}

// EncodingForCharset picks the Encoding a terminal using charset expects.
// UTF-8 charsets map to UTF8, double-byte East Asian charsets to Wide and
// everything else to Narrow.
func EncodingForCharset(charset string) Encoding {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "utf-8", "utf8", "utf":
		return UTF8
	}
	if dbcs.IsWideCharset(charset) {
		return Wide
	}
	return Narrow
}

// DetectEncoding picks the Encoding from the locale environment, checking
// LC_ALL, LC_CTYPE and LANG in that order. A locale without a charset, such
// as "C", is Narrow.
func DetectEncoding() Encoding {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if loc := os.Getenv(key); loc != "" {
			return EncodingForCharset(localeCharset(loc))
		}
	}
	return Narrow
}

// localeCharset extracts the charset of a locale name: "zh_TW.Big5@euro"
// yields "Big5".
func localeCharset(loc string) string {
	if i := strings.IndexByte(loc, '@'); i >= 0 {
		loc = loc[:i]
	}
	i := strings.IndexByte(loc, '.')
	if i < 0 {
		return ""
	}
	return loc[i+1:]
}
