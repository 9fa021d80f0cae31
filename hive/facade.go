package hive

import (
	"errors"
	"strings"
	"time"

	"github.com/regforensics/gohive/internal/buf"
	"github.com/regforensics/gohive/internal/format"
	"github.com/regforensics/gohive/internal/reader"
)

// Key is a decoded view of one key node, ready for traversal.
type Key struct {
	h  *Hive
	nk NK
}

// RootKey returns the key node at the hive's root cell offset.
func (h *Hive) RootKey() (*Key, error) {
	payload, err := h.ResolveCellPayload(h.RootCellOffset())
	if err != nil {
		return nil, newErr(KindInvalidOffset, "resolve root cell", err)
	}
	nk, err := ParseNK(payload)
	if err != nil {
		return nil, newErr(KindCorruptStructure, "parse root nk", err)
	}
	return &Key{h: h, nk: nk}, nil
}

// Name returns the key's decoded UTF-8 name.
func (k *Key) Name() string {
	name, err := reader.DecodeName(k.nk.Name(), k.nk.IsCompressedName())
	if err != nil {
		return string(k.nk.Name())
	}
	return name
}

// SubkeyCount returns the direct child count.
func (k *Key) SubkeyCount() uint32 { return k.nk.SubkeyCount() }

// ValueCount returns the value count.
func (k *Key) ValueCount() uint32 { return k.nk.ValueCount() }

// LastWritten converts the key's FILETIME last-write timestamp; ok is false
// when the stored FILETIME is zero (absent).
func (k *Key) LastWritten() (time.Time, bool) {
	raw := k.nk.LastWriteFILETIME()
	if len(raw) < 8 {
		return time.Time{}, false
	}
	sec, ok := format.FiletimeToUnix(buf.U64LE(raw))
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(sec, 0).UTC(), true
}

// Subkeys decodes and returns every direct child, in on-disk list order.
func (k *Key) Subkeys() ([]*Key, error) {
	if k.nk.SubkeyCount() == 0 {
		return nil, nil
	}
	list, err := k.nk.ResolveSubkeyList(k.h)
	if err != nil {
		return nil, newErr(KindCorruptStructure, "resolve subkey list", err)
	}
	offsets, err := FlattenSubkeyOffsets(k.h, list)
	if err != nil {
		return nil, newErr(KindCorruptStructure, "flatten subkey list", err)
	}
	out := make([]*Key, 0, len(offsets))
	for _, off := range offsets {
		payload, err := k.h.ResolveCellPayload(off)
		if err != nil {
			return nil, newErr(KindInvalidOffset, "resolve subkey cell", err)
		}
		nk, err := ParseNK(payload)
		if err != nil {
			return nil, newErr(KindCorruptStructure, "parse subkey nk", err)
		}
		out = append(out, &Key{h: k.h, nk: nk})
	}
	return out, nil
}

// Values decodes and returns every value attached to this key.
func (k *Key) Values() ([]*Value, error) {
	if k.nk.ValueCount() == 0 {
		return nil, nil
	}
	vl, err := k.nk.ResolveValueList(k.h)
	if err != nil {
		return nil, newErr(KindCorruptStructure, "resolve value list", err)
	}
	n := int(k.nk.ValueCount())
	out := make([]*Value, 0, n)
	for i := 0; i < n; i++ {
		rel, err := vl.VKOffsetAt(i)
		if err != nil {
			return nil, newErr(KindCorruptStructure, "value list entry", err)
		}
		payload, err := k.h.ResolveCellPayload(rel)
		if err != nil {
			return nil, newErr(KindInvalidOffset, "resolve vk cell", err)
		}
		vk, err := ParseVK(payload)
		if err != nil {
			return nil, newErr(KindCorruptStructure, "parse vk", err)
		}
		out = append(out, &Value{h: k.h, vk: vk})
	}
	return out, nil
}

// Value finds a value by name, case-insensitive (ASCII), per Windows
// registry semantics. Returns ErrNotFound if no value matches.
func (k *Key) Value(name string) (*Value, error) {
	values, err := k.Values()
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		if strings.EqualFold(v.Name(), name) {
			return v, nil
		}
	}
	return nil, ErrNotFound
}

// Value is a decoded view of one value key.
type Value struct {
	h  *Hive
	vk VK
}

// Name returns the value's decoded UTF-8 name.
func (v *Value) Name() string {
	name, err := reader.DecodeName(v.vk.Name(), v.vk.NameCompressed())
	if err != nil {
		return string(v.vk.Name())
	}
	return name
}

// Type returns the declared registry value type.
func (v *Value) Type() RegType { return RegType(v.vk.Type()) }

// DataSize returns the declared effective data size.
func (v *Value) DataSize() int { return v.vk.DataLen() }

// RawData returns the value's undecoded bytes, resolving external and
// big-data cells as needed.
func (v *Value) RawData() ([]byte, error) {
	data, err := v.vk.Data(v.h.Bytes())
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, ErrBigDataRedirect) {
		return nil, newErr(KindCorruptStructure, "resolve value data", err)
	}
	big, err := ResolveBigData(v.h, v.vk)
	if err != nil {
		return nil, newErr(KindCorruptStructure, "resolve big-data value", err)
	}
	return big, nil
}

// Data decodes the value's bytes according to its declared type, returning
// a tagged ValueData. Decoding failures (e.g. truncated UTF-16) surface here
// rather than from RawData, which always returns the undecoded bytes.
func (v *Value) Data() (ValueData, error) {
	raw, err := v.RawData()
	if err != nil {
		return ValueData{}, err
	}
	switch v.Type() {
	case RegSZ, RegExpandSZ, RegLink:
		s, err := reader.DecodeUTF16String(raw)
		if err != nil {
			return ValueData{}, newErr(KindInvalidUTF16, "decode string value", err)
		}
		return newStringValueData(s), nil
	case RegMultiSZ:
		ss, err := reader.DecodeMultiString(raw)
		if err != nil {
			return ValueData{}, newErr(KindInvalidUTF16, "decode multi_sz value", err)
		}
		return newMultiStringValueData(ss), nil
	case RegDword:
		d, err := reader.DecodeDword(raw)
		if err != nil {
			return ValueData{}, newErr(KindTruncated, "decode dword value", err)
		}
		return newDwordValueData(d), nil
	case RegDwordBigEndian:
		d, err := reader.DecodeDwordBigEndian(raw)
		if err != nil {
			return ValueData{}, newErr(KindTruncated, "decode dword_be value", err)
		}
		return newDwordValueData(d), nil
	case RegQword:
		q, err := reader.DecodeQword(raw)
		if err != nil {
			return ValueData{}, newErr(KindTruncated, "decode qword value", err)
		}
		return newQwordValueData(q), nil
	default:
		return newBytesValueData(raw), nil
	}
}
