package hive

import (
	"fmt"

	"github.com/regforensics/gohive/internal/format"
)

// RegType enumerates the Windows registry value type codes.
type RegType uint32

const (
	RegNone                     RegType = RegType(format.RegNone)
	RegSZ                       RegType = RegType(format.RegSZ)
	RegExpandSZ                 RegType = RegType(format.RegExpandSZ)
	RegBinary                   RegType = RegType(format.RegBinary)
	RegDword                    RegType = RegType(format.RegDword)
	RegDwordBigEndian           RegType = RegType(format.RegDwordBigEndian)
	RegLink                     RegType = RegType(format.RegLink)
	RegMultiSZ                  RegType = RegType(format.RegMultiSZ)
	RegResourceList             RegType = RegType(format.RegResourceList)
	RegFullResourceDescriptor   RegType = RegType(format.RegFullResourceDescriptor)
	RegResourceRequirementsList RegType = RegType(format.RegResourceRequirementsList)
	RegQword                    RegType = RegType(format.RegQword)
)

func (t RegType) String() string {
	switch t {
	case RegNone:
		return "REG_NONE"
	case RegSZ:
		return "REG_SZ"
	case RegExpandSZ:
		return "REG_EXPAND_SZ"
	case RegBinary:
		return "REG_BINARY"
	case RegDword:
		return "REG_DWORD"
	case RegDwordBigEndian:
		return "REG_DWORD_BIG_ENDIAN"
	case RegLink:
		return "REG_LINK"
	case RegMultiSZ:
		return "REG_MULTI_SZ"
	case RegResourceList:
		return "REG_RESOURCE_LIST"
	case RegFullResourceDescriptor:
		return "REG_FULL_RESOURCE_DESCRIPTOR"
	case RegResourceRequirementsList:
		return "REG_RESOURCE_REQUIREMENTS_LIST"
	case RegQword:
		return "REG_QWORD"
	default:
		return fmt.Sprintf("REG_UNKNOWN_%d", uint32(t))
	}
}

// ValueDataKind discriminates the concrete Go type wrapped by a ValueData.
type ValueDataKind int

const (
	ValueKindString ValueDataKind = iota
	ValueKindMultiString
	ValueKindDword
	ValueKindQword
	ValueKindBytes
)

func (k ValueDataKind) String() string {
	switch k {
	case ValueKindString:
		return "string"
	case ValueKindMultiString:
		return "multi_string"
	case ValueKindDword:
		return "dword"
	case ValueKindQword:
		return "qword"
	case ValueKindBytes:
		return "bytes"
	default:
		return "unknown"
	}
}

// ValueData is the decoded form of a value's bytes, tagged by the kind of
// Go value it holds: string for REG_SZ/REG_EXPAND_SZ/REG_LINK, []string for
// REG_MULTI_SZ, uint32 for REG_DWORD/REG_DWORD_BIG_ENDIAN, uint64 for
// REG_QWORD, and []byte for everything else (REG_BINARY, REG_NONE, and the
// resource-list types, all preserved as opaque bytes). Use the Is* predicates
// to branch on kind and the As* extractors to pull out the typed value; an
// extractor called against the wrong kind returns an error instead of
// panicking or silently zero-valuing.
type ValueData struct {
	kind ValueDataKind
	raw  any
}

func newStringValueData(s string) ValueData {
	return ValueData{kind: ValueKindString, raw: s}
}

func newMultiStringValueData(ss []string) ValueData {
	return ValueData{kind: ValueKindMultiString, raw: ss}
}

func newDwordValueData(d uint32) ValueData {
	return ValueData{kind: ValueKindDword, raw: d}
}

func newQwordValueData(q uint64) ValueData {
	return ValueData{kind: ValueKindQword, raw: q}
}

func newBytesValueData(b []byte) ValueData {
	return ValueData{kind: ValueKindBytes, raw: b}
}

// Kind reports which concrete type this ValueData wraps.
func (v ValueData) Kind() ValueDataKind { return v.kind }

func (v ValueData) IsString() bool      { return v.kind == ValueKindString }
func (v ValueData) IsMultiString() bool { return v.kind == ValueKindMultiString }
func (v ValueData) IsDword() bool       { return v.kind == ValueKindDword }
func (v ValueData) IsQword() bool       { return v.kind == ValueKindQword }
func (v ValueData) IsBytes() bool       { return v.kind == ValueKindBytes }

// AsString extracts the decoded string, or fails if this ValueData does not
// wrap REG_SZ/REG_EXPAND_SZ/REG_LINK data.
func (v ValueData) AsString() (string, error) {
	s, ok := v.raw.(string)
	if !ok {
		return "", fmt.Errorf("hive: value data is %v, not a string", v.kind)
	}
	return s, nil
}

// AsMultiString extracts the decoded string slice, or fails if this
// ValueData does not wrap REG_MULTI_SZ data.
func (v ValueData) AsMultiString() ([]string, error) {
	ss, ok := v.raw.([]string)
	if !ok {
		return nil, fmt.Errorf("hive: value data is %v, not a multi_string", v.kind)
	}
	return ss, nil
}

// AsDword extracts the decoded uint32, or fails if this ValueData does not
// wrap REG_DWORD/REG_DWORD_BIG_ENDIAN data.
func (v ValueData) AsDword() (uint32, error) {
	d, ok := v.raw.(uint32)
	if !ok {
		return 0, fmt.Errorf("hive: value data is %v, not a dword", v.kind)
	}
	return d, nil
}

// AsQword extracts the decoded uint64, or fails if this ValueData does not
// wrap REG_QWORD data.
func (v ValueData) AsQword() (uint64, error) {
	q, ok := v.raw.(uint64)
	if !ok {
		return 0, fmt.Errorf("hive: value data is %v, not a qword", v.kind)
	}
	return q, nil
}

// AsBytes extracts the raw byte slice, or fails if this ValueData does not
// wrap opaque bytes (REG_BINARY, REG_NONE, or a resource-list type).
func (v ValueData) AsBytes() ([]byte, error) {
	b, ok := v.raw.([]byte)
	if !ok {
		return nil, fmt.Errorf("hive: value data is %v, not bytes", v.kind)
	}
	return b, nil
}
