package hive

import (
	"fmt"

	"github.com/regforensics/gohive/internal/format"
	"github.com/regforensics/gohive/internal/writer"
)

// Save writes exactly 4096+hive_bins_data_size bytes to path: the header
// (with its checksum already current) followed by the bin region verbatim.
// The write is atomic (temp file + fsync + rename); it never touches path
// until the full image is durably staged.
func (h *Hive) Save(path string) error {
	length := format.HeaderSize + int(h.base.DataSize())
	if length > len(h.Bytes()) {
		return newErr(KindTruncated, fmt.Sprintf("save: declared length %d exceeds buffer %d", length, len(h.Bytes())), nil)
	}
	w := &writer.FileWriter{Path: path}
	if err := w.WriteHive(h.Bytes()[:length]); err != nil {
		return newErr(KindIO, "save hive", err)
	}
	return nil
}
