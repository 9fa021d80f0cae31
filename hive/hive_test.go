package hive

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/regforensics/gohive/internal/buf"
	"github.com/regforensics/gohive/internal/format"
)

// buildMiniHive assembles a minimal but structurally complete hive: a base
// block, one HBIN containing a root NK with one subkey (via an li list) and
// one inline DWORD value (via a value list + vk).
func buildMiniHive(t *testing.T) []byte {
	t.Helper()

	const binSize = 0x1000
	total := format.HeaderSize + binSize
	data := make([]byte, total)

	// --- HBIN header ---
	bin := data[format.HeaderSize:]
	copy(bin, format.HBINSignature)
	buf.PutU32LE(bin[format.HBINSizeOffset:], binSize)

	cursor := format.HBINHeaderSize

	// --- child NK cell (the subkey) ---
	childOff := cursor
	childPayloadLen := format.NKFixedHeaderSize + len("Child")
	childCellLen := align8(format.CellHeaderSize + childPayloadLen)
	childCell := bin[cursor : cursor+childCellLen]
	buf.PutU32LE(childCell, uint32(int32(-childCellLen)))
	copy(childCell[format.CellHeaderSize:], format.NKSignature)
	nkBody := childCell[format.CellHeaderSize:]
	buf.PutU16LE(nkBody[format.NKFlagsOffset:], format.NKFlagCompressedName)
	buf.PutU16LE(nkBody[format.NKNameLenOffset:], uint16(len("Child")))
	copy(nkBody[format.NKNameOffset:], "Child")
	cursor += childCellLen

	// --- li list cell referencing the child NK ---
	liOff := cursor
	liPayloadLen := format.IdxListOffset + format.LIEntrySize
	liCellLen := align8(format.CellHeaderSize + liPayloadLen)
	liCell := bin[cursor : cursor+liCellLen]
	buf.PutU32LE(liCell, uint32(int32(-liCellLen)))
	liBody := liCell[format.CellHeaderSize:]
	copy(liBody, format.LISignature)
	buf.PutU16LE(liBody[format.IdxCountOffset:], 1)
	buf.PutU32LE(liBody[format.IdxListOffset:], uint32(childOff))
	cursor += liCellLen

	// --- vk cell: a DWORD value stored inline ---
	vkOff := cursor
	vkPayloadLen := format.VKFixedHeaderSize + len("Count")
	vkCellLen := align8(format.CellHeaderSize + vkPayloadLen)
	vkCell := bin[cursor : cursor+vkCellLen]
	buf.PutU32LE(vkCell, uint32(int32(-vkCellLen)))
	copy(vkCell[format.CellHeaderSize:], format.VKSignature)
	vkBody := vkCell[format.CellHeaderSize:]
	buf.PutU16LE(vkBody[format.VKNameLenOffset:], uint16(len("Count")))
	buf.PutU16LE(vkBody[format.VKFlagsOffset:], format.VKFlagNameCompressed)
	buf.PutU32LE(vkBody[format.VKTypeOffset:], format.RegDword)
	buf.PutU32LE(vkBody[format.VKDataLenOffset:], format.VKSmallDataMask|4)
	buf.PutU32LE(vkBody[format.VKDataOffOffset:], 42)
	copy(vkBody[format.VKNameOffset:], "Count")
	cursor += vkCellLen

	// --- value list cell referencing the vk ---
	vlOff := cursor
	vlCellLen := align8(format.CellHeaderSize + format.DWORDSize)
	vlCell := bin[cursor : cursor+vlCellLen]
	buf.PutU32LE(vlCell, uint32(int32(-vlCellLen)))
	buf.PutU32LE(vlCell[format.CellHeaderSize:], uint32(vkOff))
	cursor += vlCellLen

	// --- root NK cell ---
	rootOff := cursor
	rootPayloadLen := format.NKFixedHeaderSize + len("Root")
	rootCellLen := align8(format.CellHeaderSize + rootPayloadLen)
	rootCell := bin[cursor : cursor+rootCellLen]
	buf.PutU32LE(rootCell, uint32(int32(-rootCellLen)))
	copy(rootCell[format.CellHeaderSize:], format.NKSignature)
	rootBody := rootCell[format.CellHeaderSize:]
	buf.PutU16LE(rootBody[format.NKFlagsOffset:], format.NKFlagCompressedName)
	buf.PutU32LE(rootBody[format.NKSubkeyCountOffset:], 1)
	buf.PutU32LE(rootBody[format.NKSubkeyListOffset:], uint32(liOff))
	buf.PutU32LE(rootBody[format.NKValueCountOffset:], 1)
	buf.PutU32LE(rootBody[format.NKValueListOffset:], uint32(vlOff))
	buf.PutU32LE(rootBody[format.NKSecurityOffset:], format.InvalidOffset)
	buf.PutU32LE(rootBody[format.NKClassNameOffset:], format.InvalidOffset)
	buf.PutU16LE(rootBody[format.NKNameLenOffset:], uint16(len("Root")))
	copy(rootBody[format.NKNameOffset:], "Root")

	// --- base block ---
	copy(data, format.REGFSignature)
	buf.PutU32LE(data[format.REGFPrimarySeqOffset:], 1)
	buf.PutU32LE(data[format.REGFSecondarySeqOffset:], 1)
	buf.PutU32LE(data[format.REGFMajorVersionOffset:], 1)
	buf.PutU32LE(data[format.REGFMinorVersionOffset:], 5)
	buf.PutU32LE(data[format.REGFRootCellOffset:], uint32(rootOff))
	buf.PutU32LE(data[format.REGFDataSizeOffset:], binSize)
	require.NoError(t, format.PutChecksum(data))

	return data
}

func align8(n int) int {
	if rem := n % format.CellAlignment; rem != 0 {
		n += format.CellAlignment - rem
	}
	return n
}

func TestHiveRootTraversal(t *testing.T) {
	data := buildMiniHive(t)
	h, err := NewHive(data)
	require.NoError(t, err)
	require.True(t, h.Base().IsClean())

	rootPayload, err := h.ResolveCellPayload(h.RootCellOffset())
	require.NoError(t, err)
	root, err := ParseNK(rootPayload)
	require.NoError(t, err)
	require.Equal(t, "Root", string(root.Name()))
	require.Equal(t, uint32(1), root.SubkeyCount())
	require.Equal(t, uint32(1), root.ValueCount())

	subkeys, err := root.ResolveSubkeyList(h)
	require.NoError(t, err)
	require.Equal(t, ListLI, subkeys.Kind)
	require.Equal(t, 1, subkeys.LI.Count())

	childPayload, err := h.ResolveCellPayload(subkeys.LI.CellIndexAt(0))
	require.NoError(t, err)
	child, err := ParseNK(childPayload)
	require.NoError(t, err)
	require.Equal(t, "Child", string(child.Name()))

	values, err := root.ResolveValueList(h)
	require.NoError(t, err)
	vkOff, err := values.VKOffsetAt(0)
	require.NoError(t, err)
	vkPayload, err := h.ResolveCellPayload(vkOff)
	require.NoError(t, err)
	vk, err := ParseVK(vkPayload)
	require.NoError(t, err)
	require.Equal(t, "Count", string(vk.Name()))
	require.Equal(t, format.RegDword, vk.Type())

	raw, err := vk.Data(h.Bytes())
	require.NoError(t, err)
	require.Equal(t, uint32(42), buf.U32LE(raw))
}

func TestHiveHBinIteration(t *testing.T) {
	data := buildMiniHive(t)
	h, err := NewHive(data)
	require.NoError(t, err)
	it := h.HBins()
	bin, err := it.Next()
	require.NoError(t, err)
	require.Equal(t, uint32(format.HeaderSize), bin.Offset)
}
