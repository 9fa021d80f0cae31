package hive

import (
	"fmt"
	"io"
	"math"

	"github.com/regforensics/gohive/internal/buf"
	"github.com/regforensics/gohive/internal/format"
)

// maxHiveSize is the largest hive a HCELL_INDEX can address; registry
// offsets are uint32, so files beyond this are never valid.
const maxHiveSize = math.MaxUint32

// HBIN is a zero-copy view of one hive bin: a 4096-byte-aligned container of cells.
type HBIN struct {
	Data   []byte // full HBIN bytes (header + payload)
	Offset uint32 // absolute file offset of this HBIN
	Size   uint32 // total size of this HBIN, always 4096-aligned
}

// HBinIter walks the bin region of a hive in disk order.
type HBinIter struct {
	h     *Hive
	next  uint32
	limit uint32
	done  bool
}

// NewHBINIterator returns an iterator positioned at the first HBIN,
// immediately after the 4096-byte base block.
func (h *Hive) NewHBINIterator() HBinIter {
	return HBinIter{h: h, next: uint32(format.HeaderSize)}
}

// Next returns the next HBIN, or io.EOF once the bin region is exhausted.
// Non-"hbin" bytes at a 4096-byte boundary are treated as trailing padding
// rather than corruption.
func (it *HBinIter) Next() (HBIN, error) {
	if it.done {
		return HBIN{}, io.EOF
	}
	data := it.h.data
	if it.limit == 0 {
		if len(data) > maxHiveSize {
			return HBIN{}, fmt.Errorf("hive: file too large (%d bytes, max 4GB)", len(data))
		}
		it.limit = uint32(len(data))
	}

	if it.next > it.limit || it.next+uint32(format.HBINHeaderSize) > it.limit {
		it.done = true
		return HBIN{}, io.EOF
	}

	if string(data[it.next:it.next+4]) != string(format.HBINSignature) {
		it.done = true
		return HBIN{}, io.EOF
	}

	hb, err := ParseHBINAt(data, it.next)
	if err != nil {
		it.done = true
		return HBIN{}, err
	}

	next := it.next + hb.Size
	if next >= it.limit {
		it.done = true
	} else {
		it.next = next
	}
	return hb, nil
}

// ParseHBINAt parses one HBIN at absolute file offset abs and returns a
// zero-copy view over the backing hive buffer.
func ParseHBINAt(hiveBuf []byte, abs uint32) (HBIN, error) {
	if len(hiveBuf) > maxHiveSize {
		return HBIN{}, fmt.Errorf("hive: file too large (%d bytes, max 4GB)", len(hiveBuf))
	}
	end := uint32(len(hiveBuf))

	if abs+uint32(format.HBINHeaderSize) > end {
		return HBIN{}, fmt.Errorf("hive: hbin header truncated at 0x%X", abs)
	}
	hdr := hiveBuf[abs : abs+uint32(format.HBINHeaderSize)]
	if string(hdr[:4]) != string(format.HBINSignature) {
		return HBIN{}, fmt.Errorf("hive: hbin bad signature at 0x%X", abs)
	}

	sz := buf.U32LE(hdr[format.HBINSizeOffset:])
	if sz == 0 {
		return HBIN{}, fmt.Errorf("hive: hbin at 0x%X has size 0", abs)
	}
	if abs%uint32(format.HeaderSize) != 0 {
		return HBIN{}, fmt.Errorf("hive: hbin start 0x%X not 4KiB-aligned", abs)
	}
	if sz%uint32(format.HeaderSize) != 0 {
		return HBIN{}, fmt.Errorf("hive: hbin size 0x%X not 4KiB-aligned", sz)
	}

	hend := abs + sz
	if hend > end {
		return HBIN{}, fmt.Errorf("hive: hbin at 0x%X (size 0x%X) exceeds file (0x%X)", abs, sz, end)
	}

	return HBIN{Data: hiveBuf[abs:hend], Offset: abs, Size: sz}, nil
}

// Header returns the fixed-size HBIN header bytes, zero-copy.
func (h *HBIN) Header() []byte { return h.Data[:format.HBINHeaderSize] }

// Payload returns the region of the HBIN where cells reside, zero-copy.
func (h *HBIN) Payload() []byte { return h.Data[format.HBINHeaderSize:] }

// FirstCellAbs returns the absolute file offset of the first cell in this HBIN.
func (h *HBIN) FirstCellAbs() uint32 { return h.Offset + uint32(format.HBINHeaderSize) }

// EndAbs returns the absolute file offset right after this HBIN.
func (h *HBIN) EndAbs() uint32 { return h.Offset + h.Size }
