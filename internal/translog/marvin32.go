package translog

import (
	"math/bits"

	"github.com/regforensics/gohive/internal/buf"
)

// DefaultSeed is the Marvin32 seed documented for hive transaction-log entry
// hashing; it is constant across hives in the published format.
const DefaultSeed uint64 = 0x82EF4D887A4E55C5

// Marvin32 computes the Marvin32 checksum of data using seed, returning the
// packed (hi<<32)|lo state exactly as the registry log format stores it
// (the low 32 bits are what entry headers actually check against).
func Marvin32(seed uint64, data []byte) uint64 {
	lo := uint32(seed)
	hi := uint32(seed >> 32)

	i := 0
	for ; i+4 <= len(data); i += 4 {
		lo += buf.U32LE(data[i:])
		lo, hi = marvinMix(lo, hi)
	}

	rem := len(data) - i
	var tail uint32
	switch rem {
	case 3:
		tail |= uint32(data[i+2]) << 16
		fallthrough
	case 2:
		tail |= uint32(data[i+1]) << 8
		fallthrough
	case 1:
		tail |= uint32(data[i])
		tail |= 0x80 << (8 * uint(rem))
	case 0:
		tail = 0x80
	}
	lo += tail
	lo, hi = marvinMix(lo, hi)
	lo, hi = marvinMix(lo, hi)

	return uint64(hi)<<32 | uint64(lo)
}

// Marvin32Checksum returns just the low 32 bits of Marvin32, which is the
// value stored in a log entry's hash field.
func Marvin32Checksum(seed uint64, data []byte) uint32 {
	return uint32(Marvin32(seed, data))
}

func marvinMix(lo, hi uint32) (uint32, uint32) {
	lo += hi
	hi = bits.RotateLeft32(hi, 5) ^ lo
	lo = bits.RotateLeft32(lo, 13)
	return lo, hi
}
