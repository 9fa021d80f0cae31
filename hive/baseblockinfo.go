package hive

import "time"

// BaseBlockInfo is a plain-data snapshot of the REGF header, for callers
// who want header metadata without holding onto the zero-copy BaseBlock
// view.
type BaseBlockInfo struct {
	PrimarySequence   uint32
	SecondarySequence uint32
	LastWrite         time.Time
	MajorVersion      uint32
	MinorVersion      uint32
	RootCellOffset    uint32
	HiveBinsDataSize  uint32
	Clean             bool
}

// BaseBlock returns a snapshot of the current header state.
func (h *Hive) BaseBlock() BaseBlockInfo {
	bb := h.base
	return BaseBlockInfo{
		PrimarySequence:   bb.Sequence1(),
		SecondarySequence: bb.Sequence2(),
		LastWrite:         bb.LastWriteTime(),
		MajorVersion:      bb.Major(),
		MinorVersion:      bb.Minor(),
		RootCellOffset:    bb.RootCellOffset(),
		HiveBinsDataSize:  bb.DataSize(),
		Clean:             bb.IsClean(),
	}
}
