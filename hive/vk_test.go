package hive

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/regforensics/gohive/internal/buf"
	"github.com/regforensics/gohive/internal/format"
)

func makeVKPayload(t *testing.T, name string, dataLen uint32, small bool) []byte {
	t.Helper()
	b := make([]byte, format.VKFixedHeaderSize+len(name))
	copy(b[:2], format.VKSignature)
	buf.PutU16LE(b[format.VKNameLenOffset:], uint16(len(name)))
	raw := dataLen
	if small {
		raw |= format.VKSmallDataMask
	}
	buf.PutU32LE(b[format.VKDataLenOffset:], raw)
	buf.PutU32LE(b[format.VKTypeOffset:], format.RegSZ)
	copy(b[format.VKNameOffset:], name)
	return b
}

func TestParseVKInlineData(t *testing.T) {
	payload := makeVKPayload(t, "Version", 3, true)
	buf.PutU32LE(payload[format.VKDataOffOffset:], 0x00004241) // "AB\0" little endian layout
	vk, err := ParseVK(payload)
	require.NoError(t, err)
	require.True(t, vk.IsSmallData())
	require.Equal(t, 3, vk.DataLen())
	data, err := vk.Data(payload)
	require.NoError(t, err)
	require.Len(t, data, 3)
}

func TestParseVKName(t *testing.T) {
	payload := makeVKPayload(t, "MyValue", 0, true)
	vk, err := ParseVK(payload)
	require.NoError(t, err)
	require.Equal(t, "MyValue", string(vk.Name()))
	require.Equal(t, format.RegSZ, vk.Type())
}

func TestParseVKBadSignature(t *testing.T) {
	payload := makeVKPayload(t, "X", 0, true)
	payload[0] = 'z'
	_, err := ParseVK(payload)
	require.Error(t, err)
}
