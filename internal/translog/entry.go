// Package translog implements the hive transaction-log reconciliation
// engine: parsing old-scheme (.LOG) and new-scheme (.LOG1/.LOG2) sidecar
// files, ordering their entries by sequence number, validating each against
// its Marvin32 hash, and applying accepted dirty pages onto a mutable hive
// image.
package translog

import (
	"errors"
	"fmt"

	"github.com/regforensics/gohive/internal/buf"
	"github.com/regforensics/gohive/internal/format"
)

// PageDescriptor names one dirty 4096-byte-or-smaller region: the bytes at
// absolute file offset 4096+Offset are to be overwritten with Size bytes
// from the entry's page data.
type PageDescriptor struct {
	Offset uint32
	Size   uint32
}

// Entry is one parsed HvLE log entry.
type Entry struct {
	Sequence  uint32
	DataSize  uint32 // hive_bins_data_size snapshot at the time the entry was written
	Hash      uint32
	Pages     []PageDescriptor
	PageData  []byte // concatenated page bodies, in descriptor order
	TotalSize uint32 // declared entry size, used to locate the next entry
	Raw       []byte // the entry's raw bytes, length == TotalSize, for hash verification
	Hashed    bool   // true for new-scheme entries, which carry a Marvin32 hash to verify
}

// ErrBadLogSignature is returned when a log file's leading base-block copy
// does not carry the regf signature.
var ErrBadLogSignature = errors.New("translog: bad log signature")

// PageAt returns the body bytes for page i.
func (e Entry) PageAt(i int) []byte {
	off := 0
	for j := 0; j < i; j++ {
		off += int(e.Pages[j].Size)
	}
	return e.PageData[off : off+int(e.Pages[i].Size)]
}

// parseNewEntries parses a sequence of back-to-back HvLE entries starting at
// body (the log file bytes immediately following the leading base-block
// copy). Parsing stops, without error, at the first position that does not
// carry the "HvLE" magic or does not have enough bytes remaining for its
// declared size; this is normal end-of-log, not corruption.
func parseNewEntries(body []byte) ([]Entry, error) {
	var entries []Entry
	off := 0
	for off+format.LogEntryPageDescOffset <= len(body) {
		hdr := body[off:]
		if len(hdr) < format.LogEntryPageDescOffset {
			break
		}
		if string(hdr[format.LogEntrySignatureOffset:format.LogEntrySignatureOffset+format.LogEntrySignatureLen]) != format.LogEntryMagic {
			break
		}
		entrySize := buf.U32LE(hdr[format.LogEntrySizeOffset:])
		if entrySize == 0 || off+int(entrySize) > len(body) {
			break
		}
		seq := buf.U32LE(hdr[format.LogEntrySequenceOffset:])
		dataSize := buf.U32LE(hdr[format.LogEntryDataSizeOffset:])
		hash := buf.U32LE(hdr[format.LogEntryHashOffset:])
		pageCount := buf.U32LE(hdr[format.LogEntryPageCountOffset:])

		descStart := format.LogEntryPageDescOffset
		descEnd := descStart + int(pageCount)*format.LogEntryPageDescSize
		if descEnd > int(entrySize) || descEnd > len(hdr) {
			return nil, fmt.Errorf("translog: entry at seq %d: page descriptor table overruns entry", seq)
		}

		pages := make([]PageDescriptor, pageCount)
		var total uint32
		for i := 0; i < int(pageCount); i++ {
			d := hdr[descStart+i*format.LogEntryPageDescSize:]
			pages[i] = PageDescriptor{Offset: buf.U32LE(d), Size: buf.U32LE(d[4:])}
			total += pages[i].Size
		}

		bodyStart := descEnd
		bodyEnd := bodyStart + int(total)
		if bodyEnd > int(entrySize) || bodyEnd > len(hdr) {
			return nil, fmt.Errorf("translog: entry at seq %d: page bodies overrun entry", seq)
		}

		entries = append(entries, Entry{
			Sequence:  seq,
			DataSize:  dataSize,
			Hash:      hash,
			Pages:     pages,
			PageData:  hdr[bodyStart:bodyEnd],
			TotalSize: entrySize,
			Raw:       hdr[:entrySize],
			Hashed:    true,
		})
		off += int(entrySize)
	}
	return entries, nil
}

// verifyHash reports whether e's stored hash matches Marvin32 of its raw
// bytes with the hash field itself zeroed out before hashing.
func verifyHash(e Entry) bool {
	if len(e.Raw) < int(e.TotalSize) {
		return false
	}
	scratch := make([]byte, e.TotalSize)
	copy(scratch, e.Raw)
	for i := 0; i < 4; i++ {
		scratch[format.LogEntryHashOffset+i] = 0
	}
	return Marvin32Checksum(DefaultSeed, scratch) == e.Hash
}
