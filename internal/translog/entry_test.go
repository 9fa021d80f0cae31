package translog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/regforensics/gohive/internal/buf"
	"github.com/regforensics/gohive/internal/format"
)

// buildEntry assembles one HvLE entry with a single page descriptor and
// returns its raw bytes, with the hash field correctly filled in.
func buildEntry(seq, dataSize uint32, pageOffset uint32, pageBody []byte) []byte {
	descEnd := format.LogEntryPageDescOffset + format.LogEntryPageDescSize
	bodyStart := descEnd
	total := bodyStart + len(pageBody)

	e := make([]byte, total)
	copy(e[format.LogEntrySignatureOffset:], format.LogEntryMagic)
	buf.PutU32LE(e[format.LogEntrySizeOffset:format.LogEntrySizeOffset+4], uint32(total))
	buf.PutU32LE(e[format.LogEntrySequenceOffset:format.LogEntrySequenceOffset+4], seq)
	buf.PutU32LE(e[format.LogEntryDataSizeOffset:format.LogEntryDataSizeOffset+4], dataSize)
	buf.PutU32LE(e[format.LogEntryPageCountOffset:format.LogEntryPageCountOffset+4], 1)
	buf.PutU32LE(e[format.LogEntryPageDescOffset:format.LogEntryPageDescOffset+4], pageOffset)
	buf.PutU32LE(e[format.LogEntryPageDescOffset+4:format.LogEntryPageDescOffset+8], uint32(len(pageBody)))
	copy(e[bodyStart:], pageBody)

	for i := 0; i < 4; i++ {
		e[format.LogEntryHashOffset+i] = 0
	}
	h := Marvin32Checksum(DefaultSeed, e)
	buf.PutU32LE(e[format.LogEntryHashOffset:format.LogEntryHashOffset+4], h)
	return e
}

func TestParseNewEntriesSingle(t *testing.T) {
	body := []byte{0xAA, 0xBB, 0xCC, 0xDD}
	raw := buildEntry(5, 0x2000, 0x1000, body)

	entries, err := parseNewEntries(raw)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, uint32(5), entries[0].Sequence)
	require.Equal(t, uint32(0x2000), entries[0].DataSize)
	require.True(t, verifyHash(entries[0]))
	require.Equal(t, body, entries[0].PageAt(0))
}

func TestParseNewEntriesStopsAtNonMagic(t *testing.T) {
	raw := buildEntry(1, 0x1000, 0, []byte{1, 2, 3, 4})
	raw = append(raw, []byte("junk")...)

	entries, err := parseNewEntries(raw)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestParseNewEntriesMultiple(t *testing.T) {
	e1 := buildEntry(5, 0x1000, 0, []byte{1, 2, 3, 4})
	e2 := buildEntry(6, 0x2000, 0x1000, []byte{5, 6, 7, 8})
	raw := append(append([]byte{}, e1...), e2...)

	entries, err := parseNewEntries(raw)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, uint32(5), entries[0].Sequence)
	require.Equal(t, uint32(6), entries[1].Sequence)
}

func TestVerifyHashDetectsCorruption(t *testing.T) {
	raw := buildEntry(5, 0x1000, 0, []byte{1, 2, 3, 4})
	entries, err := parseNewEntries(raw)
	require.NoError(t, err)
	e := entries[0]
	e.Raw = append([]byte{}, e.Raw...)
	e.Raw[bodyOffsetForTest()] ^= 0xFF
	require.False(t, verifyHash(e))
}

func bodyOffsetForTest() int {
	return format.LogEntryPageDescOffset + format.LogEntryPageDescSize
}
