package format

import (
	"fmt"

	"github.com/regforensics/gohive/internal/buf"
)

// CellFraming is the decoded 4-byte size word that precedes every cell
// payload. Negative sizes (per the on-disk int32 encoding) mark allocated
// cells; non-negative sizes mark free cells.
type CellFraming struct {
	// Size is the absolute cell size in bytes, including the 4-byte size
	// field itself.
	Size int
	// Allocated reports whether the cell is in use (size field was negative).
	Allocated bool
}

// ParseCellFraming reads the signed cell-size word at the start of b.
func ParseCellFraming(b []byte) (CellFraming, error) {
	if len(b) < CellHeaderSize {
		return CellFraming{}, fmt.Errorf("cell framing: %w", ErrTruncated)
	}
	raw := buf.I32LE(b)
	if raw == 0 {
		return CellFraming{}, fmt.Errorf("cell framing: zero-length cell: %w", ErrBadSize)
	}
	if raw < 0 {
		return CellFraming{Size: int(-raw), Allocated: true}, nil
	}
	return CellFraming{Size: int(raw), Allocated: false}, nil
}

// Payload returns the cell's payload (the bytes following the size field),
// ending at the framing's declared size. It reports false when the declared
// size is smaller than the size field or larger than b.
func (c CellFraming) Payload(b []byte) ([]byte, bool) {
	if c.Size < CellHeaderSize {
		return nil, false
	}
	end := c.Size
	if end > len(b) {
		return nil, false
	}
	return b[CellHeaderSize:end], true
}

// Signature returns the two-byte cell-type tag at the start of a payload,
// e.g. "nk", "vk", "sk", "lf", "lh", "li", "ri", "db". Returns "" if the
// payload is too short to carry one (raw value data has no signature).
func Signature(payload []byte) string {
	if len(payload) < SignatureSize {
		return ""
	}
	return string(payload[:SignatureSize])
}
