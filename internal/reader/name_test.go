package reader

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeNameCompressedASCII(t *testing.T) {
	got, err := DecodeName([]byte("ControlSet001"), true)
	require.NoError(t, err)
	require.Equal(t, "ControlSet001", got)
}

func TestDecodeNameCompressedLatin1(t *testing.T) {
	// 0xE9 in Windows-1252 is 'é'.
	got, err := DecodeName([]byte{0xE9}, true)
	require.NoError(t, err)
	require.Equal(t, "é", got)
}

func TestDecodeNameUTF16(t *testing.T) {
	got, err := DecodeName(utf16le("Soft")[:8], false)
	require.NoError(t, err)
	require.Equal(t, "Soft", got)
}

func TestDecodeNameEmpty(t *testing.T) {
	got, err := DecodeName(nil, true)
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestEncodeNameRoundTrip(t *testing.T) {
	enc, err := EncodeName("café")
	require.NoError(t, err)
	dec, err := DecodeName(enc, true)
	require.NoError(t, err)
	require.Equal(t, "café", dec)
}
