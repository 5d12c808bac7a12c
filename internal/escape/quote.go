// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape handles escaping of text for inclusion in JSON strings.
package escape

import (
	"unicode/utf8"

	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

var hexDigit = []byte("0123456789abcdef")

// Append appends the escaped form of src to dst and returns the result.
// The output does not include enclosing quotation marks, and contains no
// zero bytes.
func Append(dst []byte, src mem.RO) []byte {
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		if r < utf8.RuneSelf {
			if r < ' ' {
				if b := controlEsc[r]; b != 0 {
					dst = append(dst, '\\', b)
				} else {
					dst = append(dst, '\\', 'u', '0', '0', hexDigit[int(r>>4)], hexDigit[int(r&15)])
				}
			} else if r == '\\' || r == '"' {
				dst = append(dst, '\\', byte(r))
			} else {
				dst = append(dst, byte(r))
			}
			src = src.SliceFrom(n)
			continue
		}

		switch r {
		case '\u2028': // line separator
			dst = append(dst, `\u2028`...)
		case '\u2029': // paragraph separator
			dst = append(dst, `\u2029`...)
		default:
			// Invalid encodings decode as the replacement rune, and are
			// written out as such.
			dst = utf8.AppendRune(dst, r)
		}
		src = src.SliceFrom(n)
	}
	return dst
}

// NeedsEscape is a conservative check for whether Append might change src.
// It reports false only if every byte of src is printable ASCII other than a
// quotation mark or backslash, in which case Append copies src unchanged. It
// reports true for any non-ASCII byte, even one Append would copy as is.
func NeedsEscape(src mem.RO) bool {
	for i := 0; i < src.Len(); i++ {
		if c := src.At(i); c < ' ' || c == '"' || c == '\\' || c >= utf8.RuneSelf {
			return true
		}
	}
	return false
}
