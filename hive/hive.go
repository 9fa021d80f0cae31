package hive

import (
	"fmt"

	"github.com/regforensics/gohive/internal/buf"
	"github.com/regforensics/gohive/internal/format"
)

// Hive is an opened hive file's decoded bytes plus its parsed base block.
// Data is backed by mmap where available and falls back to a plain read;
// package hive itself is agnostic to which.
type Hive struct {
	data        []byte
	size        int64
	base        *BaseBlock
	cleanup     func() error // unmaps the backing mmap, if any; nil for owned/cloned buffers
	maxCellSize int          // ceiling on a single cell's declared size; set by Open via WithMaxCellSize
}

// NewHive wraps data (the full hive file contents) after validating the base
// block signature.
func NewHive(data []byte) (*Hive, error) {
	bb, err := ParseBaseBlock(data)
	if err != nil {
		return nil, err
	}
	return &Hive{data: data, size: int64(len(data)), base: bb, maxCellSize: defaultMaxCellSize}, nil
}

// Base returns the parsed base block.
func (h *Hive) Base() *BaseBlock { return h.base }

// Close releases the backing mmap, if this handle owns one. Safe to call on
// a Hive opened over a cloned (log-reconciled) buffer, where it is a no-op.
func (h *Hive) Close() error {
	if h == nil || h.cleanup == nil {
		return nil
	}
	err := h.cleanup()
	h.cleanup = nil
	return err
}

// Bytes returns the full backing buffer, zero-copy.
func (h *Hive) Bytes() []byte { return h.data }

// Size returns the total hive length in bytes.
func (h *Hive) Size() int64 { return h.size }

// HBINStart returns the absolute file offset where the HBIN region begins;
// always 4096 on disk.
func (h *Hive) HBINStart() uint32 { return uint32(format.HeaderSize) }

// RootOffset returns the absolute file offset of the root NK cell.
func (h *Hive) RootOffset() uint32 {
	if h == nil || h.base == nil {
		return 0
	}
	return uint32(format.HeaderSize) + h.base.RootCellOffset()
}

// RootCellOffset returns the root NK pointer relative to the HBIN start.
func (h *Hive) RootCellOffset() uint32 {
	if h.base == nil {
		return 0
	}
	return h.base.RootCellOffset()
}

// ResolveCellPayload resolves a relative HCELL offset and returns its
// payload, rejecting cells whose declared size exceeds the configured
// maximum (WithMaxCellSize), guarding traversal against a malformed or
// hostile hive that declares an implausibly large cell.
func (h *Hive) ResolveCellPayload(relOff uint32) ([]byte, error) {
	payload, err := resolveRelCellPayload(h.Bytes(), relOff)
	if err != nil {
		return nil, err
	}
	limit := h.maxCellSize
	if limit <= 0 {
		limit = defaultMaxCellSize
	}
	if len(payload) > limit {
		return nil, fmt.Errorf("hive: cell at rel offset 0x%X exceeds max cell size: %d > %d", relOff, len(payload), limit)
	}
	return payload, nil
}

// HBins returns an iterator over all HBINs starting at the base of the bin
// region. If the mapping is too short to hold even the base block the
// iterator simply yields io.EOF on the first Next call.
func (h *Hive) HBins() *HBinIter {
	it := h.NewHBINIterator()
	return &it
}

// BumpDataSize adds delta to the base block's hive-bins-data-size field. It
// does not recompute the header checksum.
func (h *Hive) BumpDataSize(delta uint32) {
	if h == nil || len(h.data) < format.HeaderSize {
		return
	}
	cur := buf.U32LE(h.data[format.REGFDataSizeOffset:])
	buf.PutU32LE(h.data[format.REGFDataSizeOffset:format.REGFDataSizeOffset+4], cur+delta)
}

// SetSequences forces both sequence numbers to the same value, marking the
// hive clean. Used after applying a transaction log.
func (h *Hive) SetSequences(seq uint32) error {
	if h == nil || len(h.data) < format.HeaderSize {
		return fmt.Errorf("hive: header too small to update")
	}
	buf.PutU32LE(h.data[format.REGFPrimarySeqOffset:format.REGFPrimarySeqOffset+4], seq)
	buf.PutU32LE(h.data[format.REGFSecondarySeqOffset:format.REGFSecondarySeqOffset+4], seq)
	return format.PutChecksum(h.data)
}

// SetDataSize overwrites the hive-bins-data-size field directly.
func (h *Hive) SetDataSize(size uint32) error {
	if h == nil || len(h.data) < format.HeaderSize {
		return fmt.Errorf("hive: header too small to update")
	}
	buf.PutU32LE(h.data[format.REGFDataSizeOffset:format.REGFDataSizeOffset+4], size)
	return format.PutChecksum(h.data)
}

// GrowTo ensures the backing buffer is at least n bytes long, zero-filling
// any newly added region. It only works on a mutable (cloned) buffer, which
// is what Open operates on when WithLog1/WithLog2 is given; a plain
// mmap-backed Hive should never need to grow. Reports the new length.
func (h *Hive) GrowTo(n int) int {
	if h == nil {
		return 0
	}
	if n <= len(h.data) {
		return len(h.data)
	}
	grown := make([]byte, n)
	copy(grown, h.data)
	h.data = grown
	h.size = int64(n)
	if h.base != nil {
		h.base.raw = grown[:format.HeaderSize]
	}
	return n
}
