package hive

import (
	"bytes"
	"fmt"

	"github.com/regforensics/gohive/internal/buf"
	"github.com/regforensics/gohive/internal/format"
)

// SK is a zero-cost view over an "sk" (security descriptor) cell payload.
//
// Security cells store a self-relative SECURITY_DESCRIPTOR. Multiple keys
// can share one via reference counting, and all stable descriptors are
// linked in a doubly-linked list for enumeration during hive load; volatile
// descriptors form single-entry lists pointing at themselves.
type SK struct {
	buf []byte
}

func isSK(b []byte) bool {
	if len(b) < format.SKSignatureOffset+format.SKSignatureLen {
		return false
	}
	return bytes.Equal(b[format.SKSignatureOffset:format.SKSignatureOffset+format.SKSignatureLen], format.SKSignature)
}

// ParseSK validates the signature, minimum size, and that the declared
// descriptor length does not exceed the cell, so Descriptor() can be
// zero-copy without further bounds checks.
func ParseSK(payload []byte) (SK, error) {
	if len(payload) < format.SKMinSize {
		return SK{}, fmt.Errorf("hive: sk too small: %d", len(payload))
	}
	if !isSK(payload) {
		return SK{}, fmt.Errorf("hive: sk bad signature: %c%c", payload[0], payload[1])
	}
	descLen := buf.U32LE(payload[format.SKDescriptorLengthOffset:])
	if format.SKDescriptorOffset+int(descLen) > len(payload) {
		return SK{}, fmt.Errorf("hive: sk descriptor length %d exceeds cell (%d)", descLen, len(payload))
	}
	return SK{buf: payload}, nil
}

// Blink returns the backward link in the security-descriptor list.
func (s SK) Blink() uint32 { return buf.U32LE(s.buf[format.SKBlinkOffset:]) }

// Flink returns the forward link in the security-descriptor list.
func (s SK) Flink() uint32 { return buf.U32LE(s.buf[format.SKFlinkOffset:]) }

// ReferenceCount returns the number of key nodes sharing this descriptor.
func (s SK) ReferenceCount() uint32 { return buf.U32LE(s.buf[format.SKReferenceCountOffset:]) }

// DescriptorLength returns the declared length of the descriptor data. The
// format permits this to be larger than strictly necessary; extra bytes are
// ignored by consumers.
func (s SK) DescriptorLength() uint32 { return buf.U32LE(s.buf[format.SKDescriptorLengthOffset:]) }

// Descriptor returns the self-relative SECURITY_DESCRIPTOR bytes, zero-copy.
func (s SK) Descriptor() []byte {
	n := s.DescriptorLength()
	if n == 0 {
		return nil
	}
	return s.buf[format.SKDescriptorOffset : format.SKDescriptorOffset+int(n)]
}
