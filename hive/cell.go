package hive

import (
	"fmt"

	"github.com/regforensics/gohive/internal/buf"
	"github.com/regforensics/gohive/internal/format"
)

// Cell is a zero-cost view over a single hive cell living inside an HBIN.
// On disk a cell looks like:
//
//	int32  size     // negative = allocated, positive = free
//	...    payload
//
// Size is always relative to the start of this cell's own header.
type Cell struct {
	Buf []byte // the HBIN (or whole hive) data backing this cell
	Off int    // offset into Buf where this cell's header starts
}

func newCellAt(b []byte, off int) (Cell, error) {
	if off+format.CellHeaderSize > len(b) {
		return Cell{}, fmt.Errorf("hive: cell header at %d truncated (len=%d)", off, len(b))
	}
	return Cell{Buf: b, Off: off}, nil
}

// RawSize returns the signed size field as stored on disk.
func (c Cell) RawSize() int32 { return int32(buf.I32LE(c.Buf[c.Off:])) }

// SizeAbs returns the absolute cell size (header + payload).
func (c Cell) SizeAbs() int {
	sz := c.RawSize()
	if sz < 0 {
		sz = -sz
	}
	return int(sz)
}

// IsAllocated reports whether the cell is in use (negative size on disk).
func (c Cell) IsAllocated() bool { return c.RawSize() < 0 }

// Payload returns the bytes following the size header.
func (c Cell) Payload() []byte {
	start := c.Off + format.CellHeaderSize
	end := c.Off + c.SizeAbs()
	if end > len(c.Buf) {
		end = len(c.Buf)
	}
	if start > end {
		return nil
	}
	return c.Buf[start:end]
}

// Signature2 returns the first two payload bytes (nk, vk, lf, lh, li, ri, sk, db).
func (c Cell) Signature2() []byte {
	pl := c.Payload()
	if len(pl) < format.SignatureSize {
		return nil
	}
	return pl[:format.SignatureSize]
}
