package hive

import (
	"errors"
	"fmt"

	"github.com/regforensics/gohive/internal/buf"
	"github.com/regforensics/gohive/internal/format"
)

// LI is an "index leaf" subkey list: a flat array of NK cell offsets with no
// per-entry name hint or hash.
type LI struct {
	buf []byte
}

// ParseLI validates the signature and entry-table bounds.
func ParseLI(payload []byte) (LI, error) {
	if !hasPrefix(payload, format.LISignature) {
		return LI{}, errors.New("hive: li bad signature")
	}
	cnt, err := checkIndexHeader(payload)
	if err != nil {
		return LI{}, err
	}
	need := format.IdxListOffset + int(cnt)*format.LIEntrySize
	if len(payload) < need {
		return LI{}, fmt.Errorf("hive: li truncated list: have=%d need=%d", len(payload), need)
	}
	return LI{buf: payload}, nil
}

// Count returns the number of entries in the table.
func (li LI) Count() int { return int(buf.U16LE(li.buf[format.IdxCountOffset:])) }

// CellIndexAt returns the relative NK cell offset at position i.
func (li LI) CellIndexAt(i int) uint32 {
	return u32(li.buf, format.IdxListOffset+i*format.LIEntrySize)
}

// RawList returns the raw uint32 array (zero-copy).
func (li LI) RawList() []byte {
	return li.buf[format.IdxListOffset : format.IdxListOffset+li.Count()*format.LIEntrySize]
}
