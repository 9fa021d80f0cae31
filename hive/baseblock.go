package hive

import (
	"errors"
	"fmt"
	"time"

	"github.com/regforensics/gohive/internal/buf"
	"github.com/regforensics/gohive/internal/format"
)

// BaseBlock is a zero-copy view of the 4096-byte REGF header at the start of
// a hive file.
type BaseBlock struct {
	raw []byte // len >= format.HeaderSize
}

// ParseBaseBlock validates the signature and returns a header view.
func ParseBaseBlock(b []byte) (*BaseBlock, error) {
	if len(b) < format.HeaderSize {
		return nil, fmt.Errorf("hive: file too small for regf header (%d)", len(b))
	}
	if string(b[:len(format.REGFSignature)]) != string(format.REGFSignature) {
		return nil, errors.New("hive: bad regf signature")
	}
	return &BaseBlock{raw: b[:format.HeaderSize]}, nil
}

// Raw returns the raw base-block bytes, zero-copy.
func (bb *BaseBlock) Raw() []byte { return bb.raw }

// Sequence1 returns the primary sequence number.
func (bb *BaseBlock) Sequence1() uint32 { return buf.U32LE(bb.raw[format.REGFPrimarySeqOffset:]) }

// Sequence2 returns the secondary sequence number.
func (bb *BaseBlock) Sequence2() uint32 { return buf.U32LE(bb.raw[format.REGFSecondarySeqOffset:]) }

// IsClean reports whether Sequence1 equals Sequence2, i.e. there is no
// pending transaction-log data to reconcile.
func (bb *BaseBlock) IsClean() bool { return bb.Sequence1() == bb.Sequence2() }

// TimeStampFILETIME returns the header's last-write FILETIME, raw.
func (bb *BaseBlock) TimeStampFILETIME() uint64 { return buf.U64LE(bb.raw[format.REGFTimeStampOffset:]) }

// LastWriteTime returns the last-write timestamp, or the zero Time if absent.
func (bb *BaseBlock) LastWriteTime() time.Time { return format.FiletimeToTime(bb.TimeStampFILETIME()) }

// Major returns the major version number.
func (bb *BaseBlock) Major() uint32 { return buf.U32LE(bb.raw[format.REGFMajorVersionOffset:]) }

// Minor returns the minor version number.
func (bb *BaseBlock) Minor() uint32 { return buf.U32LE(bb.raw[format.REGFMinorVersionOffset:]) }

// RootCellOffset returns the root NK cell offset, relative to the first HBIN.
func (bb *BaseBlock) RootCellOffset() uint32 { return buf.U32LE(bb.raw[format.REGFRootCellOffset:]) }

// DataSize returns the declared size of the hive bin region.
func (bb *BaseBlock) DataSize() uint32 { return buf.U32LE(bb.raw[format.REGFDataSizeOffset:]) }

// HiveLength reports the hive length implied by the header: 4096 + DataSize.
func (bb *BaseBlock) HiveLength() int { return format.HeaderSize + int(bb.DataSize()) }

// ChecksumOK reports whether the stored checksum matches the computed XOR of
// the first 508 bytes.
func (bb *BaseBlock) ChecksumOK() bool {
	ok, err := format.VerifyChecksum(bb.raw)
	return err == nil && ok
}

// StoredChecksum returns the checksum value stored in the header.
func (bb *BaseBlock) StoredChecksum() uint32 { return buf.U32LE(bb.raw[format.REGFCheckSumOffset:]) }

// ErrChecksumMismatch, ErrTruncatedData, and ErrUnsupportedVersion tag
// which Validate check failed so callers can map onto a specific ErrKind
// instead of a blanket "corrupt structure".
var (
	ErrChecksumMismatch   = errors.New("hive: regf checksum mismatch")
	ErrTruncatedData      = errors.New("hive: declared hive length exceeds file size")
	ErrUnsupportedVersion = errors.New("hive: unsupported regf version")
)

// Validate performs a conservative structural check of the base block
// against the whole-file size, beyond the signature check ParseBaseBlock
// already did.
func (bb *BaseBlock) Validate(fileSize int) error {
	if !bb.ChecksumOK() {
		computed, _ := format.Checksum(bb.raw)
		return fmt.Errorf("%w: stored=0x%08X computed=0x%08X", ErrChecksumMismatch, bb.StoredChecksum(), computed)
	}
	ds := bb.DataSize()
	if ds%format.HBINAlignment != 0 {
		return fmt.Errorf("hive: data size not 4KiB-aligned: 0x%X", ds)
	}
	reported := bb.HiveLength()
	if reported > fileSize {
		return fmt.Errorf("%w: reported=%d have=%d", ErrTruncatedData, reported, fileSize)
	}
	root := bb.RootCellOffset()
	if root == 0 {
		return errors.New("hive: root cell offset is zero")
	}
	if root >= ds {
		return fmt.Errorf("hive: root cell offset (0x%X) beyond data area (size=0x%X)", root, ds)
	}
	major, minor := bb.Major(), bb.Minor()
	if !format.SupportedVersion(major, minor) {
		return fmt.Errorf("%w: %d.%d", ErrUnsupportedVersion, major, minor)
	}
	return nil
}
