package hive

import (
	"errors"
	"fmt"

	"github.com/regforensics/gohive/internal/format"
)

// ErrBigDataRedirect is returned by VK.Data when the external cell it
// pointed at turns out to be a "db" big-data header rather than raw value
// bytes; callers should resolve the value via ResolveBigData instead.
var ErrBigDataRedirect = errors.New("hive: vk data: big-data value requires ResolveBigData")

// ResolveBigData reassembles a value whose data is stored via a "db"
// big-data descriptor: a header cell naming a block count and a separate
// block-offset list, each entry of which points at a chunk of up to
// format.DBChunkSize bytes. It is used whenever a VK's external data cell
// turns out to hold a db header instead of the raw value bytes.
func ResolveBigData(h *Hive, vk VK) ([]byte, error) {
	total := vk.DataLen()
	if total == 0 {
		return nil, nil
	}

	rel := vk.DataOffsetRel()
	payload, err := resolveRelCellPayload(h.Bytes(), rel)
	if err != nil {
		return nil, fmt.Errorf("hive: big-data: resolve db header: %w", err)
	}

	db, err := ParseDB(payload)
	if err != nil {
		return nil, fmt.Errorf("hive: big-data: parse db header: %w", err)
	}

	list, err := db.ResolveList(h)
	if err != nil {
		return nil, fmt.Errorf("hive: big-data: resolve block list: %w", err)
	}
	if err := list.ValidateCount(db.Count()); err != nil {
		return nil, fmt.Errorf("hive: big-data: %w", err)
	}

	out := make([]byte, 0, total)
	remaining := total
	for i := 0; i < db.Count() && remaining > 0; i++ {
		blockOff, err := list.At(i)
		if err != nil {
			return nil, fmt.Errorf("hive: big-data: block %d offset: %w", i, err)
		}
		chunk, err := resolveRelCellPayload(h.Bytes(), blockOff)
		if err != nil {
			return nil, fmt.Errorf("hive: big-data: block %d payload: %w", i, err)
		}
		n := remaining
		if n > format.DBChunkSize {
			n = format.DBChunkSize
		}
		if len(chunk) < n {
			return nil, fmt.Errorf("hive: big-data: block %d truncated: have=%d need=%d", i, len(chunk), n)
		}
		out = append(out, chunk[:n]...)
		remaining -= n
	}
	if remaining > 0 {
		return nil, fmt.Errorf("hive: big-data: only reassembled %d of %d bytes", total-remaining, total)
	}
	return out, nil
}
