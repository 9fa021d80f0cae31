package format

import (
	"testing"

	"github.com/regforensics/gohive/internal/buf"
)

func TestParseCellFramingAllocated(t *testing.T) {
	b := make([]byte, 16)
	buf.PutU32LE(b, 0xFFFFFFF0) // int32(-16)
	copy(b[4:], "nk")
	c, err := ParseCellFraming(b)
	if err != nil {
		t.Fatalf("ParseCellFraming: %v", err)
	}
	if !c.Allocated || c.Size != 16 {
		t.Fatalf("got %+v", c)
	}
	payload, ok := c.Payload(b)
	if !ok || Signature(payload) != "nk" {
		t.Fatalf("payload=%q ok=%v", payload, ok)
	}
}

func TestParseCellFramingFree(t *testing.T) {
	b := make([]byte, 16)
	buf.PutU32LE(b, 16)
	c, err := ParseCellFraming(b)
	if err != nil {
		t.Fatalf("ParseCellFraming: %v", err)
	}
	if c.Allocated {
		t.Fatal("expected free cell")
	}
}

func TestParseCellFramingZero(t *testing.T) {
	b := make([]byte, 8)
	if _, err := ParseCellFraming(b); err == nil {
		t.Fatal("expected error for zero-length cell")
	}
}

func TestParseBinHeader(t *testing.T) {
	b := make([]byte, HBINHeaderSize)
	copy(b, HBINSignature)
	buf.PutU32LE(b[HBINFileOffsetField:], 0)
	buf.PutU32LE(b[HBINSizeOffset:], 0x1000)
	h, err := ParseBinHeader(b)
	if err != nil {
		t.Fatalf("ParseBinHeader: %v", err)
	}
	if h.Size != 0x1000 {
		t.Fatalf("got size %d", h.Size)
	}
}

func TestParseBinHeaderMisaligned(t *testing.T) {
	b := make([]byte, HBINHeaderSize)
	copy(b, HBINSignature)
	buf.PutU32LE(b[HBINSizeOffset:], 0x123)
	if _, err := ParseBinHeader(b); err == nil {
		t.Fatal("expected misaligned size error")
	}
}
