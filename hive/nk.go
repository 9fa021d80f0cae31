package hive

import (
	"errors"
	"fmt"

	"github.com/regforensics/gohive/internal/buf"
	"github.com/regforensics/gohive/internal/format"
)

// NK is a zero-cost view over an "nk" (key node) cell payload. It does not
// own memory; it only points into the hive buffer.
type NK struct {
	buf []byte // payload only (starts with "nk")
}

// ParseNK wraps a cell payload as NK and validates the signature.
func ParseNK(payload []byte) (NK, error) {
	if len(payload) < format.NKFixedHeaderSize {
		return NK{}, fmt.Errorf("hive: nk too small: %d", len(payload))
	}
	if payload[0] != 'n' || payload[1] != 'k' {
		return NK{}, fmt.Errorf("hive: nk bad sig: %c%c", payload[0], payload[1])
	}
	return NK{buf: payload}, nil
}

// Flags returns the nk flags field.
func (n NK) Flags() uint16 { return buf.U16LE(n.buf[format.NKFlagsOffset:]) }

// LastWriteFILETIME returns the raw 8-byte FILETIME last-write timestamp.
func (n NK) LastWriteFILETIME() []byte {
	start := format.NKLastWriteOffset
	end := start + format.NKLastWriteLen
	if end > len(n.buf) {
		return nil
	}
	return n.buf[start:end]
}

// AccessBits returns the access-bits/spare field at offset 0x0C.
func (n NK) AccessBits() uint32 { return buf.U32LE(n.buf[format.NKAccessBitsOffset:]) }

// ParentOffsetRel returns the relative parent cell offset.
func (n NK) ParentOffsetRel() uint32 { return buf.U32LE(n.buf[format.NKParentOffset:]) }

// SubkeyCount returns the stable subkey count.
func (n NK) SubkeyCount() uint32 { return buf.U32LE(n.buf[format.NKSubkeyCountOffset:]) }

// VolatileSubkeyCount returns the volatile subkey count (0 in an on-disk hive).
func (n NK) VolatileSubkeyCount() uint32 { return buf.U32LE(n.buf[format.NKVolSubkeyCountOffset:]) }

// SubkeyListOffsetRel returns the relative stable subkey list offset.
func (n NK) SubkeyListOffsetRel() uint32 { return buf.U32LE(n.buf[format.NKSubkeyListOffset:]) }

// ValueCount returns the value count.
func (n NK) ValueCount() uint32 { return buf.U32LE(n.buf[format.NKValueCountOffset:]) }

// ValueListOffsetRel returns the relative value-list cell offset.
func (n NK) ValueListOffsetRel() uint32 { return buf.U32LE(n.buf[format.NKValueListOffset:]) }

// SecurityOffsetRel returns the relative SK cell offset.
func (n NK) SecurityOffsetRel() uint32 { return buf.U32LE(n.buf[format.NKSecurityOffset:]) }

// ClassNameOffsetRel returns the relative class-name data cell offset.
func (n NK) ClassNameOffsetRel() uint32 { return buf.U32LE(n.buf[format.NKClassNameOffset:]) }

// NameLength returns the key name length in bytes.
func (n NK) NameLength() uint16 {
	if format.NKNameLenOffset+2 > len(n.buf) {
		return 0
	}
	return buf.U16LE(n.buf[format.NKNameLenOffset:])
}

// ClassLength returns the class name length in bytes.
func (n NK) ClassLength() uint16 {
	if format.NKClassLenOffset+2 > len(n.buf) {
		return 0
	}
	return buf.U16LE(n.buf[format.NKClassLenOffset:])
}

// IsCompressedName reports whether the key name is Windows-1252 rather than UTF-16LE.
func (n NK) IsCompressedName() bool { return n.Flags()&format.NKFlagCompressedName != 0 }

// Name returns the raw key name bytes, undecoded.
func (n NK) Name() []byte {
	nl := n.NameLength()
	if nl == 0 {
		return nil
	}
	start := format.NKNameOffset
	end := start + int(nl)
	if end > len(n.buf) {
		return nil
	}
	return n.buf[start:end]
}

// SubkeyListResult holds the parsed subkey list resolved by ResolveSubkeyList.
// Exactly one of LF/LH/LI/RI is populated, selected by Kind.
type SubkeyListResult struct {
	Kind SubkeyListKind
	LF   LF
	LH   LH
	LI   LI
	RI   RI
}

// ResolveSubkeyList resolves and parses the subkey list this NK points at.
func (n NK) ResolveSubkeyList(h *Hive) (SubkeyListResult, error) {
	count := n.SubkeyCount()
	if count == 0 {
		return SubkeyListResult{}, errors.New("hive: nk has no subkeys")
	}
	offset := n.SubkeyListOffsetRel()
	if offset == format.InvalidOffset {
		return SubkeyListResult{}, errors.New("hive: nk subkey list offset is invalid")
	}
	payload, err := resolveRelCellPayload(h.Bytes(), offset)
	if err != nil {
		return SubkeyListResult{}, fmt.Errorf("hive: resolve subkey list: %w", err)
	}

	kind := DetectListKind(payload)
	result := SubkeyListResult{Kind: kind}
	switch kind {
	case ListLF:
		result.LF, err = ParseLF(payload)
	case ListLH:
		result.LH, err = ParseLH(payload)
	case ListLI:
		result.LI, err = ParseLI(payload)
	case ListRI:
		result.RI, err = ParseRI(payload)
	default:
		return SubkeyListResult{}, fmt.Errorf("hive: unknown subkey list signature: %q", payload[:2])
	}
	if err != nil {
		return SubkeyListResult{}, fmt.Errorf("hive: parse subkey list: %w", err)
	}
	return result, nil
}

// ResolveValueList resolves and parses the value list this NK points at.
func (n NK) ResolveValueList(h *Hive) (ValueList, error) {
	count := n.ValueCount()
	if count == 0 {
		return ValueList{}, errors.New("hive: nk has no values")
	}
	offset := n.ValueListOffsetRel()
	if offset == format.InvalidOffset {
		return ValueList{}, errors.New("hive: nk value list offset is invalid")
	}
	payload, err := resolveRelCellPayload(h.Bytes(), offset)
	if err != nil {
		return ValueList{}, fmt.Errorf("hive: resolve value list: %w", err)
	}
	vl, err := ParseValueList(payload, int(count))
	if err != nil {
		return ValueList{}, fmt.Errorf("hive: parse value list: %w", err)
	}
	return vl, nil
}

// ResolveSecurity resolves and parses the security descriptor this NK points at.
func (n NK) ResolveSecurity(h *Hive) (SK, error) {
	offset := n.SecurityOffsetRel()
	if offset == format.InvalidOffset {
		return SK{}, errors.New("hive: nk security offset is invalid")
	}
	payload, err := resolveRelCellPayload(h.Bytes(), offset)
	if err != nil {
		return SK{}, fmt.Errorf("hive: resolve security cell: %w", err)
	}
	sk, err := ParseSK(payload)
	if err != nil {
		return SK{}, fmt.Errorf("hive: parse sk cell: %w", err)
	}
	return sk, nil
}

// ResolveClassName resolves the class-name data this NK points at, undecoded.
func (n NK) ResolveClassName(h *Hive) ([]byte, error) {
	classLen := n.ClassLength()
	if classLen == 0 {
		return nil, errors.New("hive: nk has no class name")
	}
	offset := n.ClassNameOffsetRel()
	if offset == format.InvalidOffset {
		return nil, errors.New("hive: nk class name offset is invalid")
	}
	payload, err := resolveRelCellPayload(h.Bytes(), offset)
	if err != nil {
		return nil, fmt.Errorf("hive: resolve class name cell: %w", err)
	}
	if len(payload) < int(classLen) {
		return nil, fmt.Errorf("hive: class name cell too small: need %d bytes, have %d", classLen, len(payload))
	}
	return payload[:classLen], nil
}
