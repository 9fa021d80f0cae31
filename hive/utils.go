package hive

import (
	"errors"

	"github.com/regforensics/gohive/internal/buf"
	"github.com/regforensics/gohive/internal/format"
)

func u32(b []byte, off int) uint32 { return buf.U32LE(b[off:]) }

func hasPrefix(b []byte, sig []byte) bool {
	return len(b) >= format.IdxMinHeader &&
		b[format.IdxSignatureOffset] == sig[0] &&
		b[format.IdxSignatureOffset+1] == sig[1]
}

func checkIndexHeader(b []byte) (uint16, error) {
	if len(b) < format.IdxMinHeader {
		return 0, errors.New("hive: subkey index truncated header")
	}
	return buf.U16LE(b[format.IdxCountOffset:]), nil
}
