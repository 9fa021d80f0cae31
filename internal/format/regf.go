package format

import (
	"bytes"
	"fmt"

	"github.com/regforensics/gohive/internal/buf"
)

// Header captures the REGF base-block fields needed to traverse and
// reconcile a hive. Layout (little-endian, offsets relative to file start):
//
//	0x000  4  'r' 'e' 'g' 'f'
//	0x004  4  Primary sequence number
//	0x008  4  Secondary sequence number
//	0x00C  8  Last write FILETIME
//	0x014  4  Major version
//	0x018  4  Minor version
//	0x024  4  Root cell offset (relative to first HBIN)
//	0x028  4  Hive bins data size
//	0x1FC  4  XOR checksum of the first 508 bytes
type Header struct {
	PrimarySequence   uint32
	SecondarySequence uint32
	LastWriteRaw      uint64
	MajorVersion      uint32
	MinorVersion      uint32
	RootCellOffset    uint32
	HiveBinsDataSize  uint32
	Checksum          uint32
}

// ParseHeader validates the signature and extracts the base-block fields.
// It does not validate the checksum; call Checksum/VerifyChecksum for that.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("regf header: %w", ErrTruncated)
	}
	if !bytes.Equal(b[:len(REGFSignature)], REGFSignature) {
		return Header{}, fmt.Errorf("regf header: %w", ErrSignatureMismatch)
	}
	return Header{
		PrimarySequence:   buf.U32LE(b[REGFPrimarySeqOffset:]),
		SecondarySequence: buf.U32LE(b[REGFSecondarySeqOffset:]),
		LastWriteRaw:      buf.U64LE(b[REGFTimeStampOffset:]),
		MajorVersion:      buf.U32LE(b[REGFMajorVersionOffset:]),
		MinorVersion:      buf.U32LE(b[REGFMinorVersionOffset:]),
		RootCellOffset:    buf.U32LE(b[REGFRootCellOffset:]),
		HiveBinsDataSize:  buf.U32LE(b[REGFDataSizeOffset:]),
		Checksum:          buf.U32LE(b[REGFCheckSumOffset:]),
	}, nil
}

// IsClean reports whether the primary and secondary sequence numbers match,
// i.e. the hive has no pending transaction-log writes to reconcile.
func (h Header) IsClean() bool { return h.PrimarySequence == h.SecondarySequence }

// SupportedVersion reports whether (major, minor) falls in the set this
// parser accepts: major 1, minor 3 through 6.
func SupportedVersion(major, minor uint32) bool {
	return major == 1 && minor >= 3 && minor <= 6
}

// Checksum edge cases: an XOR result of all-zeros or all-ones is remapped,
// since the kernel treats those two values as reserved ("no checksum yet"
// and "checksum disabled").
const (
	checksumAllZeros            = 0x00000000
	checksumAllZerosReplacement = 0x00000001
	checksumAllOnes             = 0xFFFFFFFF
	checksumAllOnesReplacement  = 0xFFFFFFFE
)

// Checksum computes the XOR checksum over the first 508 bytes of the base
// block, interpreted as 127 little-endian uint32 words, with the all-zero
// and all-one edge cases remapped per the on-disk convention.
func Checksum(b []byte) (uint32, error) {
	if len(b) < REGFChecksumRegionLen {
		return 0, fmt.Errorf("regf checksum: %w", ErrTruncated)
	}
	var sum uint32
	for i := 0; i < REGFChecksumDwords; i++ {
		sum ^= buf.U32LE(b[i*4:])
	}
	switch sum {
	case checksumAllOnes:
		return checksumAllOnesReplacement, nil
	case checksumAllZeros:
		return checksumAllZerosReplacement, nil
	default:
		return sum, nil
	}
}

// VerifyChecksum reports whether the stored checksum at offset 0x1FC matches
// the computed XOR of the first 508 bytes.
func VerifyChecksum(b []byte) (bool, error) {
	sum, err := Checksum(b)
	if err != nil {
		return false, err
	}
	return sum == buf.U32LE(b[REGFCheckSumOffset:]), nil
}

// PutChecksum recomputes and writes the checksum field in place. Used after
// updating header fields such as the sequence numbers or the data size.
func PutChecksum(b []byte) error {
	sum, err := Checksum(b)
	if err != nil {
		return err
	}
	buf.PutU32LE(b[REGFCheckSumOffset:REGFCheckSumOffset+4], sum)
	return nil
}
