package dbcs

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"
)

// ErrUnknownCharset is returned when no codec exists for a charset name.
var ErrUnknownCharset = errors.New("dbcs: unknown charset")

// wideCharsets are the locale charsets whose terminals lay text out as double
// byte cells.
var wideCharsets = map[string]bool{
	"euc-jp": true, // JIS X 0208 only
	"euc-kr": true,
	"euc-cn": true,
	"euc-tw": true, // CNS 11643 plane 1 only
	"gb2312": true,
	"gbk":    true,
	"big5":   true,
	"cn-gb":  true,
	"uhc":    true,
	"eucjp":  true,
	"euckr":  true,
	"euccn":  true,
	"euctw":  true,
	"cncb":   true,
}

var codecs = map[string]encoding.Encoding{
	"euc-jp":     japanese.EUCJP,
	"eucjp":      japanese.EUCJP,
	"euc-kr":     korean.EUCKR,
	"euckr":      korean.EUCKR,
	"uhc":        korean.EUCKR,
	"cp949":      korean.EUCKR,
	"euc-cn":     simplifiedchinese.GBK,
	"euccn":      simplifiedchinese.GBK,
	"gb2312":     simplifiedchinese.GBK,
	"cn-gb":      simplifiedchinese.GBK,
	"gbk":        simplifiedchinese.GBK,
	"cp936":      simplifiedchinese.GBK,
	"hz-gb-2312": simplifiedchinese.HZGB2312,
	"big5":       traditionalchinese.Big5,
	"cp950":      traditionalchinese.Big5,
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IsWideCharset reports whether name is a double-byte charset.
func IsWideCharset(name string) bool {
	return wideCharsets[normalize(name)]
}

// Lookup returns the codec for a legacy charset name.
func Lookup(name string) (encoding.Encoding, error) {
	enc, ok := codecs[normalize(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
	}
	return enc, nil
}

// Encode converts s from UTF-8 into the named charset.
func Encode(name, s string) ([]byte, error) {
	enc, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	out, _, err := transform.String(enc.NewEncoder(), s)
	if err != nil {
		return nil, fmt.Errorf("dbcs: encode %s: %w", name, err)
	}
	return []byte(out), nil
}

// Decode converts b from the named charset into UTF-8.
func Decode(name string, b []byte) (string, error) {
	enc, err := Lookup(name)
	if err != nil {
		return "", err
	}
	out, _, err := transform.Bytes(enc.NewDecoder(), b)
	if err != nil {
		return "", fmt.Errorf("dbcs: decode %s: %w", name, err)
	}
	return string(out), nil
}
