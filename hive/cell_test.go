package hive

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/regforensics/gohive/internal/buf"
)

func TestCellAllocatedAndFree(t *testing.T) {
	b := make([]byte, 16)
	buf.PutU32LE(b, 0xFFFFFFF0) // int32(-16)
	copy(b[4:], "nk")
	c, err := newCellAt(b, 0)
	require.NoError(t, err)
	require.True(t, c.IsAllocated())
	require.Equal(t, 16, c.SizeAbs())
	require.Equal(t, "nk", string(c.Signature2()))

	buf.PutU32LE(b, 16)
	c2, err := newCellAt(b, 0)
	require.NoError(t, err)
	require.False(t, c2.IsAllocated())
}

func TestCellIteratorWalksBin(t *testing.T) {
	bin := make([]byte, 0x20+32)
	copy(bin, "hbin")
	buf.PutU32LE(bin[8:], uint32(len(bin)))

	cellA := bin[0x20 : 0x20+16]
	buf.PutU32LE(cellA, 0xFFFFFFF0) // int32(-16)
	copy(cellA[4:], "vk")

	cellB := bin[0x20+16 : 0x20+32]
	buf.PutU32LE(cellB, 0xFFFFFFF0) // int32(-16)
	copy(cellB[4:], "nk")

	hb := HBIN{Data: bin, Offset: 0, Size: uint32(len(bin))}
	it := hb.Cells()

	c1, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, "vk", string(c1.Signature2()))

	c2, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, "nk", string(c2.Signature2()))
}
