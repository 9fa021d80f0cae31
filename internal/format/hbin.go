package format

import (
	"bytes"
	"fmt"

	"github.com/regforensics/gohive/internal/buf"
)

// BinHeader describes one HBIN: a 4096-byte-aligned container of cells.
type BinHeader struct {
	// FileOffset is the bin's offset relative to HiveDataBase, as stored in
	// the header (not the absolute file offset).
	FileOffset uint32
	// Size is the bin's total size in bytes, always a multiple of HBINAlignment.
	Size uint32
}

// ParseBinHeader validates the 'hbin' signature and reads the two fields
// needed to iterate: the relative offset and size.
func ParseBinHeader(b []byte) (BinHeader, error) {
	if len(b) < HBINHeaderSize {
		return BinHeader{}, fmt.Errorf("hbin header: %w", ErrTruncated)
	}
	if !bytes.Equal(b[:len(HBINSignature)], HBINSignature) {
		return BinHeader{}, fmt.Errorf("hbin header: %w", ErrSignatureMismatch)
	}
	h := BinHeader{
		FileOffset: buf.U32LE(b[HBINFileOffsetField:]),
		Size:       buf.U32LE(b[HBINSizeOffset:]),
	}
	if h.Size == 0 || h.Size%HBINAlignment != 0 {
		return BinHeader{}, fmt.Errorf("hbin header: size %d not bin-aligned: %w", h.Size, ErrBadSize)
	}
	return h, nil
}
