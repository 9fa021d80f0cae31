package hive

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/regforensics/gohive/internal/buf"
	"github.com/regforensics/gohive/internal/format"
)

func TestParseDBHeader(t *testing.T) {
	b := make([]byte, format.DBHeaderSize)
	copy(b, format.DBSignature)
	buf.PutU16LE(b[format.DBCountOffset:], 3)
	buf.PutU32LE(b[format.DBListOffset:], 0x500)
	db, err := ParseDB(b)
	require.NoError(t, err)
	require.Equal(t, 3, db.Count())
	require.Equal(t, uint32(0x500), db.BlocklistOffset())
}

func TestParseDBRejectsLowCount(t *testing.T) {
	b := make([]byte, format.DBHeaderSize)
	copy(b, format.DBSignature)
	buf.PutU16LE(b[format.DBCountOffset:], 1)
	_, err := ParseDB(b)
	require.Error(t, err)
}

func TestDBListAt(t *testing.T) {
	b := make([]byte, 3*format.DWORDSize)
	buf.PutU32LE(b[0:], 0x10)
	buf.PutU32LE(b[4:], 0x20)
	buf.PutU32LE(b[8:], 0x30)
	l := DBList{buf: b}
	require.Equal(t, 3, l.Len())
	v, err := l.At(1)
	require.NoError(t, err)
	require.Equal(t, uint32(0x20), v)
	require.NoError(t, l.ValidateCount(3))
	require.Error(t, l.ValidateCount(10))
}
