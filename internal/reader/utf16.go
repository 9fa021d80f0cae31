// Package reader decodes the Windows Registry's two string encodings (the
// Windows-1252 "compressed" name form and UTF-16LE) and the typed value
// payloads (SZ, EXPAND_SZ, MULTI_SZ, DWORD, QWORD, ...) into Go values.
package reader

import (
	"strings"
	"unicode/utf8"

	"github.com/regforensics/gohive/internal/format"
)

// decodeUTF16LE decodes UTF-16LE bytes to a UTF-8 string without an
// intermediate []uint16 allocation, with a fast path for the common
// ASCII-only case.
func decodeUTF16LE(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	allASCII := len(data)%2 == 0
	if allASCII {
		for i := 0; i < len(data); i += 2 {
			if data[i+1] != 0 || data[i] >= format.UTF16ASCIIThreshold {
				allASCII = false
				break
			}
		}
	}

	if allASCII {
		var b strings.Builder
		b.Grow(len(data) / 2)
		for i := 0; i < len(data); i += 2 {
			b.WriteByte(data[i])
		}
		return b.String()
	}

	var b strings.Builder
	b.Grow(len(data))
	for i := 0; i+1 < len(data); i += 2 {
		r := rune(data[i]) | rune(data[i+1])<<8
		if r >= format.UTF16HighSurrogateStart && r <= format.UTF16HighSurrogateEnd && i+3 < len(data) {
			r2 := rune(data[i+2]) | rune(data[i+3])<<8
			if r2 >= format.UTF16LowSurrogateStart && r2 <= format.UTF16LowSurrogateEnd {
				r = format.UTF16SurrogateBase + ((r-format.UTF16HighSurrogateStart)<<10 | (r2 - format.UTF16LowSurrogateStart))
				i += 2
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// isASCII reports whether every byte is < 0x80, the range where
// Windows-1252 and UTF-8 agree byte-for-byte.
func isASCII(data []byte) bool {
	for _, b := range data {
		if b >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
