package hive

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/regforensics/gohive/internal/buf"
	"github.com/regforensics/gohive/internal/format"
)

// buildRIFixture assembles a hive whose only bin contents are two li leaf
// lists (the first holding two placeholder child offsets, the second
// holding one), plus a standalone ri view referencing them in that order.
// It returns the hive and the ri's expected flattened order.
func buildRIFixture(t *testing.T) (*Hive, RI, []uint32) {
	t.Helper()

	const binSize = 0x1000
	total := format.HeaderSize + binSize
	data := make([]byte, total)

	bin := data[format.HeaderSize:]
	copy(bin, format.HBINSignature)
	buf.PutU32LE(bin[format.HBINSizeOffset:], binSize)

	cursor := format.HBINHeaderSize

	// leaf0: li list with two entries.
	leaf0Off := cursor
	leaf0PayloadLen := format.IdxListOffset + 2*format.LIEntrySize
	leaf0CellLen := align8(format.CellHeaderSize + leaf0PayloadLen)
	leaf0Cell := bin[cursor : cursor+leaf0CellLen]
	buf.PutU32LE(leaf0Cell, uint32(int32(-leaf0CellLen)))
	leaf0Body := leaf0Cell[format.CellHeaderSize:]
	copy(leaf0Body, format.LISignature)
	buf.PutU16LE(leaf0Body[format.IdxCountOffset:], 2)
	buf.PutU32LE(leaf0Body[format.IdxListOffset:], 0x111)
	buf.PutU32LE(leaf0Body[format.IdxListOffset+format.LIEntrySize:], 0x222)
	cursor += leaf0CellLen

	// leaf1: li list with one entry.
	leaf1Off := cursor
	leaf1PayloadLen := format.IdxListOffset + 1*format.LIEntrySize
	leaf1CellLen := align8(format.CellHeaderSize + leaf1PayloadLen)
	leaf1Cell := bin[cursor : cursor+leaf1CellLen]
	buf.PutU32LE(leaf1Cell, uint32(int32(-leaf1CellLen)))
	leaf1Body := leaf1Cell[format.CellHeaderSize:]
	copy(leaf1Body, format.LISignature)
	buf.PutU16LE(leaf1Body[format.IdxCountOffset:], 1)
	buf.PutU32LE(leaf1Body[format.IdxListOffset:], 0x333)
	cursor += leaf1CellLen

	// base block, just enough to resolve cells against.
	copy(data, format.REGFSignature)
	buf.PutU32LE(data[format.REGFPrimarySeqOffset:], 1)
	buf.PutU32LE(data[format.REGFSecondarySeqOffset:], 1)
	buf.PutU32LE(data[format.REGFMajorVersionOffset:], 1)
	buf.PutU32LE(data[format.REGFMinorVersionOffset:], 5)
	buf.PutU32LE(data[format.REGFRootCellOffset:], uint32(leaf0Off))
	buf.PutU32LE(data[format.REGFDataSizeOffset:], binSize)
	require.NoError(t, format.PutChecksum(data))

	h, err := NewHive(data)
	require.NoError(t, err)

	// Standalone ri referencing leaf0 then leaf1, in that on-disk order.
	riBuf := make([]byte, format.IdxListOffset+2*format.LIEntrySize)
	copy(riBuf, format.RISignature)
	buf.PutU16LE(riBuf[format.IdxCountOffset:], 2)
	buf.PutU32LE(riBuf[format.IdxListOffset:], uint32(leaf0Off))
	buf.PutU32LE(riBuf[format.IdxListOffset+format.LIEntrySize:], uint32(leaf1Off))
	ri, err := ParseRI(riBuf)
	require.NoError(t, err)

	return h, ri, []uint32{0x111, 0x222, 0x333}
}

func TestFlattenSubkeyOffsetsPreservesRIOrder(t *testing.T) {
	h, ri, want := buildRIFixture(t)

	out, err := FlattenSubkeyOffsets(h, SubkeyListResult{Kind: ListRI, RI: ri})
	require.NoError(t, err)
	require.Equal(t, want, out)
}
