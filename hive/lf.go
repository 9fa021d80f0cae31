package hive

import (
	"errors"
	"fmt"

	"github.com/regforensics/gohive/internal/buf"
	"github.com/regforensics/gohive/internal/format"
)

// LF is a "fast leaf" subkey list: CM_INDEX entries of {Cell, NameHint[4]}.
type LF struct {
	buf []byte // payload beginning with "lf"
}

// ParseLF validates the signature and entry-table bounds.
func ParseLF(payload []byte) (LF, error) {
	if !hasPrefix(payload, format.LFSignature) {
		return LF{}, errors.New("hive: lf bad signature")
	}
	cnt, err := checkIndexHeader(payload)
	if err != nil {
		return LF{}, err
	}
	need := format.IdxListOffset + int(cnt)*format.LFFHEntrySize
	if len(payload) < need {
		return LF{}, fmt.Errorf("hive: lf truncated list: have=%d need=%d", len(payload), need)
	}
	return LF{buf: payload}, nil
}

// Count returns the number of entries in the table.
func (lf LF) Count() int { return int(buf.U16LE(lf.buf[format.IdxCountOffset:])) }

func (lf LF) entryBytes(i int) []byte {
	off := format.IdxListOffset + i*format.LFFHEntrySize
	return lf.buf[off : off+format.LFFHEntrySize]
}

// Entry returns the i-th {cell, hint} pair.
func (lf LF) Entry(i int) LFEntry { return LFEntry{raw: lf.entryBytes(i)} }

// LFEntry is a zero-copy view of one fast-leaf entry.
type LFEntry struct {
	raw []byte // [0:4]=cell offset, [4:8]=name hint (verbatim 4 bytes)
}

// Cell returns the relative NK cell offset.
func (e LFEntry) Cell() uint32 { return buf.U32LE(e.raw) }

// HintBytes returns the first 4 bytes of the subkey name, case-sensitive.
// Subkey enumeration in this package does not filter on it.
func (e LFEntry) HintBytes() []byte { return e.raw[4:8] }

// RawList returns the raw entry table (zero-copy).
func (lf LF) RawList() []byte {
	return lf.buf[format.IdxListOffset : format.IdxListOffset+lf.Count()*format.LFFHEntrySize]
}
