package hive

import (
	"errors"
	"fmt"

	"github.com/regforensics/gohive/internal/buf"
	"github.com/regforensics/gohive/internal/format"
)

// Sentinel errors for relative-cell resolution failures.
var (
	ErrCellOffsetZero = errors.New("hive: cell offset is zero")
	ErrCellOutOfRange = errors.New("hive: cell offset out of range")
	ErrCellTruncated  = errors.New("hive: cell truncated")
	ErrCellMisaligned = errors.New("hive: cell size not a multiple of 8")
	ErrCellCrossesBin = errors.New("hive: cell extent crosses a bin boundary")
)

// binContaining walks the bin region of hiveBuf from its start, in disk
// order, and returns the HBIN whose [Offset, EndAbs) range contains abs.
// Bins are only guaranteed 4096-aligned at their start, and can be larger
// than 4096 bytes, so containment can't be computed without this walk.
func binContaining(hiveBuf []byte, abs uint32) (HBIN, error) {
	pos := uint32(format.HiveDataBase)
	for pos < uint32(len(hiveBuf)) {
		hb, err := ParseHBINAt(hiveBuf, pos)
		if err != nil {
			return HBIN{}, fmt.Errorf("hive: locating bin for cell at 0x%X: %w", abs, err)
		}
		if abs >= hb.Offset && abs < hb.EndAbs() {
			return hb, nil
		}
		pos = hb.EndAbs()
	}
	return HBIN{}, fmt.Errorf("hive: no bin contains offset 0x%X", abs)
}

// resolveRelCell returns the slice of hiveBuf starting at the absolute
// position for the given relative HCELL offset (header + payload).
func resolveRelCell(hiveBuf []byte, relOff uint32) ([]byte, error) {
	if relOff == 0 {
		return nil, ErrCellOffsetZero
	}
	abs := format.HiveDataBase + int(relOff)
	if abs < 0 || abs > len(hiveBuf) {
		return nil, fmt.Errorf("%w: abs=%d, len=%d", ErrCellOutOfRange, abs, len(hiveBuf))
	}
	return hiveBuf[abs:], nil
}

// resolveRelCellPayload resolves a relative HCELL offset and returns just the
// payload bytes, skipping the 4-byte size header.
func resolveRelCellPayload(hiveBuf []byte, relOff uint32) ([]byte, error) {
	cell, err := resolveRelCell(hiveBuf, relOff)
	if err != nil {
		return nil, err
	}
	if len(cell) < format.CellHeaderSize {
		return nil, fmt.Errorf("%w: header", ErrCellTruncated)
	}
	size := buf.I32LE(cell)
	if size == 0 {
		return nil, ErrCellOffsetZero
	}
	total := int(size)
	if total < 0 {
		total = -total
	}
	if total < format.CellHeaderSize {
		return nil, fmt.Errorf("%w: size too small: %d", ErrCellTruncated, total)
	}
	if total > len(cell) {
		return nil, fmt.Errorf("%w: declared size %d > available %d", ErrCellOutOfRange, total, len(cell))
	}
	if total%format.CellAlignment != 0 {
		return nil, fmt.Errorf("%w: size %d", ErrCellMisaligned, total)
	}

	abs := uint32(format.HiveDataBase) + relOff
	bin, err := binContaining(hiveBuf, abs)
	if err != nil {
		return nil, err
	}
	if abs+uint32(total) > bin.EndAbs() {
		return nil, fmt.Errorf("%w: cell at 0x%X (size %d) extends past bin end 0x%X", ErrCellCrossesBin, abs, total, bin.EndAbs())
	}

	return cell[format.CellHeaderSize:total], nil
}
