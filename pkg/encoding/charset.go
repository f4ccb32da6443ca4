// Package encoding decodes names written by exporters that do not use UTF-8.
package encoding

import (
	"errors"
	"fmt"
	"strings"

	xenc "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// ErrUnknownCharset is returned for charset names Lookup does not know.
var ErrUnknownCharset = errors.New("unknown charset")

var charsets = map[string]xenc.Encoding{
	"euc-kr":       korean.EUCKR,
	"cp949":        korean.EUCKR,
	"shift_jis":    japanese.ShiftJIS,
	"sjis":         japanese.ShiftJIS,
	"euc-jp":       japanese.EUCJP,
	"gbk":          simplifiedchinese.GBK,
	"latin1":       charmap.ISO8859_1,
	"iso-8859-1":   charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
	"cp1252":       charmap.Windows1252,
}

// Lookup returns the encoding for a charset name. Empty and UTF-8 names
// return nil, meaning bytes pass through unchanged.
func Lookup(name string) (xenc.Encoding, error) {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "", "utf-8", "utf8":
		return nil, nil
	default:
		enc, ok := charsets[n]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, name)
		}
		return enc, nil
	}
}

// DecodeName converts a name read from a file in the given charset to UTF-8.
func DecodeName(name, charset string) (string, error) {
	enc, err := Lookup(charset)
	if err != nil || enc == nil {
		return name, err
	}
	out, _, err := transform.String(enc.NewDecoder(), name)
	if err != nil {
		return name, fmt.Errorf("decoding %q as %s: %w", name, charset, err)
	}
	return out, nil
}
