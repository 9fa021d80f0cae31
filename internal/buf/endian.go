// Package buf contains endian-safe primitive decoding helpers shared by the
// format and hive packages. Every read function is defensive against short
// slices (it returns 0) so callers can do a single length check up front
// rather than guarding every individual field read. The Put* writers are not:
// they panic when b is too short.
package buf

import "encoding/binary"

// U16LE reads a little-endian uint16 from b. Returns 0 when b is too short.
func U16LE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// U64LE reads a little-endian uint64 from b. Returns 0 when b is too short.
func U64LE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// U32BE reads a big-endian uint32 from b. Returns 0 when b is too short.
func U32BE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// I32LE reads a little-endian int32 from b. Returns 0 when b is too short.
func I32LE(b []byte) int32 {
	if len(b) < 4 {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(b))
}

// PutU16LE writes v to b[0:2] in little-endian form.
func PutU16LE(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) }

// PutU32LE writes v to b[0:4] in little-endian form.
func PutU32LE(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }

// PutU64LE writes v to b[0:8] in little-endian form.
func PutU64LE(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }
