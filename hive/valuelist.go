package hive

import (
	"errors"
	"fmt"
	"io"

	"github.com/regforensics/gohive/internal/buf"
	"github.com/regforensics/gohive/internal/format"
)

// ValueList is a zero-copy view of a value-list cell: a signature-less array
// of uint32 HCELL_INDEX entries, each pointing at a VK cell. A key node
// stores its values this way rather than inline because NK cells are
// fixed-size.
type ValueList struct {
	buf []byte
}

// ParseValueList validates that the payload holds at least expectedCount
// entries (the NK's declared value count).
func ParseValueList(payload []byte, expectedCount int) (ValueList, error) {
	if expectedCount < 0 {
		return ValueList{}, errors.New("hive: negative value count")
	}
	needed := expectedCount * format.DWORDSize
	if len(payload) < needed {
		return ValueList{}, fmt.Errorf("hive: value list too small: need %d bytes for %d values, have %d",
			needed, expectedCount, len(payload))
	}
	return ValueList{buf: payload}, nil
}

// Count returns the number of VK offsets the backing cell can hold.
func (vl ValueList) Count() int { return len(vl.buf) / format.DWORDSize }

// VKOffsetAt returns the relative VK cell offset at position i, or io.EOF if
// i is out of range.
func (vl ValueList) VKOffsetAt(i int) (uint32, error) {
	if i < 0 {
		return 0, io.EOF
	}
	off := i * format.DWORDSize
	if off+format.DWORDSize > len(vl.buf) {
		return 0, io.EOF
	}
	return buf.U32LE(vl.buf[off:]), nil
}

// ValidateCount ensures the list has room for at least n entries.
func (vl ValueList) ValidateCount(n int) error {
	if n < 0 {
		return errors.New("hive: negative count")
	}
	if n*format.DWORDSize > len(vl.buf) {
		return fmt.Errorf("hive: value list too small: need %d bytes for %d values, have %d",
			n*format.DWORDSize, n, len(vl.buf))
	}
	return nil
}

// Raw returns the backing byte slice, zero-copy.
func (vl ValueList) Raw() []byte { return vl.buf }
