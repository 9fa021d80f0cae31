package reader

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// DecodeName converts a raw nk/vk name field to UTF-8. When compressed is
// true the bytes are Windows-1252 (the format's "compressed name" form);
// otherwise they are UTF-16LE.
func DecodeName(raw []byte, compressed bool) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	if compressed {
		if isASCII(raw) {
			return string(raw), nil
		}
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
		if err != nil {
			return "", fmt.Errorf("reader: decode windows-1252 name: %w", err)
		}
		return string(decoded), nil
	}
	if len(raw)%2 != 0 {
		return "", errors.New("reader: name has odd length")
	}
	return decodeUTF16LE(raw), nil
}

// EncodeName is the inverse of DecodeName for the compressed (Windows-1252)
// form.
func EncodeName(name string) ([]byte, error) {
	if name == "" {
		return nil, nil
	}
	encoded, err := charmap.Windows1252.NewEncoder().Bytes([]byte(name))
	if err != nil {
		return nil, fmt.Errorf("reader: encode name to windows-1252: %w", err)
	}
	return encoded, nil
}
