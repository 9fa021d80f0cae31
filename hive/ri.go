package hive

import (
	"errors"
	"fmt"

	"github.com/regforensics/gohive/internal/buf"
	"github.com/regforensics/gohive/internal/format"
)

// RI is a "root index": a list of cell offsets pointing at leaf subkey lists
// (li/lf/lh), used when a key has enough subkeys that a single leaf can't
// hold them all.
type RI struct {
	buf []byte
}

// ParseRI validates the signature and entry-table bounds.
func ParseRI(payload []byte) (RI, error) {
	if !hasPrefix(payload, format.RISignature) {
		return RI{}, errors.New("hive: ri bad signature")
	}
	cnt, err := checkIndexHeader(payload)
	if err != nil {
		return RI{}, err
	}
	need := format.IdxListOffset + int(cnt)*format.LIEntrySize
	if len(payload) < need {
		return RI{}, fmt.Errorf("hive: ri truncated list: have=%d need=%d", len(payload), need)
	}
	return RI{buf: payload}, nil
}

// Count returns the number of leaf-list pointers.
func (ri RI) Count() int { return int(buf.U16LE(ri.buf[format.IdxCountOffset:])) }

// LeafCellAt returns the relative cell offset of the i-th child leaf list.
func (ri RI) LeafCellAt(i int) uint32 {
	return u32(ri.buf, format.IdxListOffset+i*format.LIEntrySize)
}

// RawList returns the raw uint32 array (zero-copy).
func (ri RI) RawList() []byte {
	return ri.buf[format.IdxListOffset : format.IdxListOffset+ri.Count()*format.LIEntrySize]
}
