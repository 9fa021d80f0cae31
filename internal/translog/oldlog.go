package translog

import (
	"fmt"

	"github.com/regforensics/gohive/internal/buf"
	"github.com/regforensics/gohive/internal/format"
)

// parseOldLog parses a pre-Windows-8.1 .LOG file: a base-block copy, a
// dirty-page bitmap (one bit per 4096-byte page of the bin region, as sized
// by the copied base block's hive_bins_data_size), then the dirty page
// bodies themselves in bitmap order. There is no per-entry sequence number
// or hash; the whole file represents one update to the sequence recorded in
// its embedded base-block copy's primary sequence.
func parseOldLog(data []byte) (Entry, error) {
	if len(data) < format.HeaderSize {
		return Entry{}, fmt.Errorf("translog: old log shorter than base block copy")
	}
	if string(data[:len(format.REGFSignature)]) != string(format.REGFSignature) {
		return Entry{}, ErrBadLogSignature
	}
	dataSize := buf.U32LE(data[format.REGFDataSizeOffset:])
	seq := buf.U32LE(data[format.REGFPrimarySeqOffset:])

	numPages := (int(dataSize) + format.HBINAlignment - 1) / format.HBINAlignment
	bitmapLen := (numPages + 7) / 8
	bitmapStart := format.HeaderSize
	bitmapEnd := bitmapStart + bitmapLen
	if bitmapEnd > len(data) {
		return Entry{}, fmt.Errorf("translog: old log truncated dirty bitmap")
	}
	bitmap := data[bitmapStart:bitmapEnd]

	var pages []PageDescriptor
	cursor := bitmapEnd
	for page := 0; page < numPages; page++ {
		if bitmap[page/8]&(1<<uint(page%8)) == 0 {
			continue
		}
		if cursor+format.HBINAlignment > len(data) {
			return Entry{}, fmt.Errorf("translog: old log truncated page body for page %d", page)
		}
		pages = append(pages, PageDescriptor{Offset: uint32(page * format.HBINAlignment), Size: format.HBINAlignment})
		cursor += format.HBINAlignment
	}

	pageData := make([]byte, 0, cursor-bitmapEnd)
	cursor = bitmapEnd
	for range pages {
		pageData = append(pageData, data[cursor:cursor+format.HBINAlignment]...)
		cursor += format.HBINAlignment
	}

	return Entry{
		Sequence:  seq,
		DataSize:  dataSize,
		Pages:     pages,
		PageData:  pageData,
		TotalSize: uint32(cursor),
	}, nil
}
