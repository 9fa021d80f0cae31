package hive

import (
	"errors"
	"fmt"

	"github.com/regforensics/gohive/internal/buf"
	"github.com/regforensics/gohive/internal/format"
)

// LH is a "hash leaf" subkey list: CM_INDEX entries of {Cell, HashKey}, where
// HashKey is a case-insensitive name hash rather than a literal prefix.
type LH struct {
	buf []byte
}

// ParseLH validates the signature and entry-table bounds.
func ParseLH(payload []byte) (LH, error) {
	if !hasPrefix(payload, format.LHSignature) {
		return LH{}, errors.New("hive: lh bad signature")
	}
	cnt, err := checkIndexHeader(payload)
	if err != nil {
		return LH{}, err
	}
	need := format.IdxListOffset + int(cnt)*format.LFFHEntrySize
	if len(payload) < need {
		return LH{}, fmt.Errorf("hive: lh truncated list: have=%d need=%d", len(payload), need)
	}
	return LH{buf: payload}, nil
}

// Count returns the number of entries in the table.
func (lh LH) Count() int { return int(buf.U16LE(lh.buf[format.IdxCountOffset:])) }

func (lh LH) entryBytes(i int) []byte {
	off := format.IdxListOffset + i*format.LFFHEntrySize
	return lh.buf[off : off+format.LFFHEntrySize]
}

// Entry returns the i-th {cell, hash} pair.
func (lh LH) Entry(i int) LHEntry { return LHEntry{raw: lh.entryBytes(i)} }

// LHEntry is a zero-copy view of one hash-leaf entry.
type LHEntry struct{ raw []byte }

// Cell returns the relative NK cell offset.
func (e LHEntry) Cell() uint32 { return buf.U32LE(e.raw) }

// HashKey returns the stored name hash.
func (e LHEntry) HashKey() uint32 { return buf.U32LE(e.raw[format.DWORDSize:]) }

// RawList returns the raw entry table (zero-copy).
func (lh LH) RawList() []byte {
	return lh.buf[format.IdxListOffset : format.IdxListOffset+lh.Count()*format.LFFHEntrySize]
}
