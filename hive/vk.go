package hive

import (
	"errors"
	"fmt"

	"github.com/regforensics/gohive/internal/buf"
	"github.com/regforensics/gohive/internal/format"
)

// VK is a zero-cost view over a "vk" (value key) cell payload.
type VK struct {
	buf []byte
}

// ParseVK validates the signature and fixed header size.
func ParseVK(payload []byte) (VK, error) {
	if len(payload) < format.VKFixedHeaderSize {
		return VK{}, errors.New("hive: vk truncated header")
	}
	if payload[0] != 'v' || payload[1] != 'k' {
		return VK{}, fmt.Errorf("hive: vk bad signature %c%c", payload[0], payload[1])
	}
	return VK{buf: payload}, nil
}

// Flags returns the vk flags field.
func (v VK) Flags() uint16 { return buf.U16LE(v.buf[format.VKFlagsOffset:]) }

// Type returns the declared registry value type.
func (v VK) Type() uint32 { return buf.U32LE(v.buf[format.VKTypeOffset:]) }

// NameLen returns the raw name length in bytes.
func (v VK) NameLen() uint16 { return buf.U16LE(v.buf[format.VKNameLenOffset:]) }

// NameCompressed reports whether the name is stored as Windows-1252
// (compressed) bytes rather than UTF-16LE.
func (v VK) NameCompressed() bool { return v.Flags()&format.VKFlagNameCompressed != 0 }

// Name returns the raw name bytes (compressed or UTF-16LE, undecoded).
func (v VK) Name() []byte {
	n := int(v.NameLen())
	start := format.VKNameOffset
	end := start + n
	if n == 0 || end > len(v.buf) {
		return nil
	}
	return v.buf[start:end]
}

// RawDataLen returns the raw data-length field, with the inline-data bit still set.
func (v VK) RawDataLen() uint32 { return buf.U32LE(v.buf[format.VKDataLenOffset:]) }

// IsSmallData reports whether the value is stored inline in the 4-byte
// data-offset field rather than in an external cell.
func (v VK) IsSmallData() bool { return v.RawDataLen()&format.VKSmallDataMask != 0 }

// DataLen returns the logical data length, with the inline-data bit cleared.
func (v VK) DataLen() int {
	if v.IsSmallData() {
		return int(v.RawDataLen() &^ format.VKSmallDataMask)
	}
	return int(v.RawDataLen())
}

// DataOffsetRel returns the relative HCELL_INDEX of the external data cell
// (meaningless when IsSmallData is true).
func (v VK) DataOffsetRel() uint32 { return buf.U32LE(v.buf[format.VKDataOffOffset:]) }

// Data returns the value's raw bytes, inline or from the external data cell.
// When that cell is a "db" big-data header it returns ErrBigDataRedirect
// instead; ResolveBigData reassembles such values. hiveBuf must be the whole
// hive buffer.
func (v VK) Data(hiveBuf []byte) ([]byte, error) {
	n := v.DataLen()
	if n == 0 {
		return nil, nil
	}

	if v.IsSmallData() {
		raw := v.buf[format.VKDataOffOffset : format.VKDataOffOffset+4]
		return raw[:n:n], nil
	}

	rel := v.DataOffsetRel()
	pl, err := resolveRelCellPayload(hiveBuf, rel)
	if err != nil {
		return nil, fmt.Errorf("hive: vk data: %w", err)
	}

	if len(pl) >= format.DBSignatureLen && string(pl[:format.DBSignatureLen]) == string(format.DBSignature) {
		return nil, ErrBigDataRedirect
	}

	if len(pl) < n {
		return nil, fmt.Errorf("hive: vk data: truncated external cell: have=%d need=%d", len(pl), n)
	}
	return pl[:n:n], nil
}
