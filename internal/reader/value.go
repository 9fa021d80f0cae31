package reader

import (
	"errors"
	"fmt"

	"github.com/regforensics/gohive/internal/buf"
	"github.com/regforensics/gohive/internal/format"
)

// DecodeUTF16String decodes a NUL-terminated (or unterminated) UTF-16LE
// string, trimming one trailing NUL code unit if present. Used for
// REG_SZ/REG_EXPAND_SZ/REG_LINK values.
func DecodeUTF16String(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	if len(data)%2 != 0 {
		return "", errors.New("reader: utf16 string has odd length")
	}
	if len(data) >= 2 && data[len(data)-2] == 0 && data[len(data)-1] == 0 {
		data = data[:len(data)-2]
	}
	return decodeUTF16LE(data), nil
}

// DecodeMultiString decodes a REG_MULTI_SZ value: a sequence of
// NUL-terminated UTF-16LE strings terminated by an extra NUL code unit.
func DecodeMultiString(data []byte) ([]string, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data)%2 != 0 {
		return nil, errors.New("reader: multi_sz has odd length")
	}
	if len(data) < 2 || data[len(data)-1] != 0 || data[len(data)-2] != 0 {
		return nil, errors.New("reader: multi_sz missing terminator")
	}
	var out []string
	start := 0
	for i := 0; i < len(data); i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			if i == start {
				break
			}
			s, err := DecodeUTF16String(data[start:i])
			if err != nil {
				return nil, err
			}
			out = append(out, s)
			start = i + 2
		}
	}
	return out, nil
}

// DecodeDword decodes a REG_DWORD (little-endian) value. A payload shorter
// than 4 bytes is zero-padded rather than rejected.
func DecodeDword(data []byte) (uint32, error) {
	if len(data) >= format.DWORDSize {
		return buf.U32LE(data), nil
	}
	padded := make([]byte, format.DWORDSize)
	copy(padded, data)
	return buf.U32LE(padded), nil
}

// DecodeDwordBigEndian decodes a REG_DWORD_BIG_ENDIAN value.
func DecodeDwordBigEndian(data []byte) (uint32, error) {
	if len(data) < format.DWORDSize {
		return 0, fmt.Errorf("reader: dword_be too small: %d", len(data))
	}
	return buf.U32BE(data), nil
}

// DecodeQword decodes a REG_QWORD (little-endian) value.
func DecodeQword(data []byte) (uint64, error) {
	if len(data) < format.QWORDSize {
		return 0, fmt.Errorf("reader: qword too small: %d", len(data))
	}
	return buf.U64LE(data), nil
}
