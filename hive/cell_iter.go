package hive

import (
	"fmt"
	"io"

	"github.com/regforensics/gohive/internal/format"
)

// CellIterator walks every cell inside one HBIN in disk order.
type CellIterator struct {
	hbin *HBIN
	off  int
	done bool
}

// Cells returns an iterator positioned at the first cell of the bin.
func (h *HBIN) Cells() *CellIterator {
	return &CellIterator{hbin: h, off: format.HBINHeaderSize}
}

// Next returns the next cell, or io.EOF once the bin is exhausted.
func (it *CellIterator) Next() (Cell, error) {
	if it.done {
		return Cell{}, io.EOF
	}
	b := it.hbin.Data
	if it.off >= len(b) {
		it.done = true
		return Cell{}, io.EOF
	}

	cell, err := newCellAt(b, it.off)
	if err != nil {
		it.done = true
		return Cell{}, err
	}

	size := cell.SizeAbs()
	if size == 0 {
		it.done = true
		if it.off == format.HBINHeaderSize {
			return Cell{}, fmt.Errorf("hive: cell at %d has zero size", it.off)
		}
		return Cell{}, io.EOF
	}

	if it.off+size > len(b) {
		it.done = true
		if it.off == format.HBINHeaderSize {
			return Cell{}, fmt.Errorf("hive: cell at %d exceeds HBIN (len=%d)", it.off, len(b))
		}
		return Cell{}, io.EOF
	}

	next := it.off + size
	if rem := next % format.CellAlignment; rem != 0 {
		next += format.CellAlignment - rem
	}
	if next > len(b) {
		it.done = true
	} else {
		it.off = next
	}
	return cell, nil
}
