package hive

import (
	"errors"
	"fmt"
	"io"

	"github.com/regforensics/gohive/internal/buf"
	"github.com/regforensics/gohive/internal/format"
)

// DB is a zero-cost view over a "db" (big-data) header payload. Big-data
// cells store values larger than format.DBChunkSize as a list of fixed-size
// chunks rather than inline or in one oversized external cell. Layout:
//
//	0x00  "db"
//	0x02  uint16  block count
//	0x04  uint32  HCELL_INDEX of the separate block-offset list cell
//	0x08  uint32  unknown/reserved
type DB struct {
	buf []byte
}

// ParseDB validates the header only; it does not touch the block list.
func ParseDB(payload []byte) (DB, error) {
	if len(payload) < format.DBHeaderSize {
		return DB{}, fmt.Errorf("hive: db header too small: %d", len(payload))
	}
	sig := payload[format.DBSignatureOffset : format.DBSignatureOffset+format.DBSignatureLen]
	if string(sig) != string(format.DBSignature) {
		return DB{}, fmt.Errorf("hive: db bad signature: %q", sig)
	}
	cnt := buf.U16LE(payload[format.DBCountOffset:])
	if cnt < format.DBMinBlockCount {
		return DB{}, fmt.Errorf("hive: db block count %d invalid (min %d)", cnt, format.DBMinBlockCount)
	}
	return DB{buf: payload}, nil
}

// Count returns the number of data blocks referenced by this big-data value.
func (d DB) Count() int { return int(buf.U16LE(d.buf[format.DBCountOffset:])) }

// BlocklistOffset returns the relative HCELL_INDEX of the block-offset list cell.
func (d DB) BlocklistOffset() uint32 { return buf.U32LE(d.buf[format.DBListOffset:]) }

// DBList is a zero-copy view of the separate block-offset list cell: a flat
// array of uint32 HCELL_INDEX entries with no signature of its own.
type DBList struct {
	buf []byte
}

// ResolveList resolves the external block-list cell for this DB header.
func (d DB) ResolveList(h *Hive) (DBList, error) {
	rel := d.BlocklistOffset()
	abs := int(h.HBINStart()) + int(rel)
	cell, err := newCellAt(h.data, abs)
	if err != nil {
		return DBList{}, err
	}
	return DBList{buf: cell.Payload()}, nil
}

// ValidateCount ensures the list has at least n entries (n * 4 bytes).
func (l DBList) ValidateCount(n int) error {
	if n < 0 {
		return errors.New("hive: negative count")
	}
	if n*format.DWORDSize > len(l.buf) {
		return fmt.Errorf("hive: db list too small: need %d bytes, have %d", n*format.DWORDSize, len(l.buf))
	}
	return nil
}

// Len returns the number of entries the list can hold.
func (l DBList) Len() int { return len(l.buf) / format.DWORDSize }

// At returns the relative cell offset of the i-th data block, or io.EOF if
// out of range.
func (l DBList) At(i int) (uint32, error) {
	off := i * format.DWORDSize
	if off+format.DWORDSize > len(l.buf) {
		return 0, io.EOF
	}
	return buf.U32LE(l.buf[off:]), nil
}

// Raw returns the backing byte slice, zero-copy.
func (l DBList) Raw() []byte { return l.buf }
