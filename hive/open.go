package hive

import (
	"errors"
	"fmt"
	"os"

	"github.com/regforensics/gohive/internal/mmfile"
	"github.com/regforensics/gohive/internal/translog"
)

// Open memory-maps the hive file at path read-only, validates its base
// block, and returns a handle positioned at the root. Passing WithLog1
// and/or WithLog2 additionally clones the mapped bytes into a private
// mutable buffer and reconciles pending transaction-log entries before the
// handle is returned, mirroring the spec's open_with_logs contract.
func Open(path string, opts ...Option) (*Hive, error) {
	cfg := newOpenConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, newErr(KindIO, fmt.Sprintf("open %s", path), err)
	}

	if cfg.log1Path == "" && cfg.log2Path == "" {
		h, err := newValidatedHive(data, cfg.maxCellSize)
		if err != nil {
			_ = cleanup()
			return nil, err
		}
		h.cleanup = cleanup
		return h, nil
	}

	owned := make([]byte, len(data))
	copy(owned, data)
	if err := cleanup(); err != nil {
		return nil, newErr(KindIO, "unmap after clone", err)
	}

	h, err := newValidatedHive(owned, cfg.maxCellSize)
	if err != nil {
		return nil, err
	}

	if err := applyLogs(h, cfg); err != nil {
		return nil, err
	}
	return h, nil
}

func newValidatedHive(data []byte, maxCellSize int) (*Hive, error) {
	h, err := NewHive(data)
	if err != nil {
		return nil, newErr(KindBadSignature, "parse base block", err)
	}
	h.maxCellSize = maxCellSize
	if err := h.base.Validate(len(data)); err != nil {
		return nil, classifyValidateErr(err)
	}
	return h, nil
}

// classifyValidateErr maps BaseBlock.Validate's errors onto the public
// error-kind taxonomy, via the sentinel errors Validate wraps its specific
// failures with; anything else falls back to KindCorruptStructure.
func classifyValidateErr(err error) error {
	switch {
	case errors.Is(err, ErrChecksumMismatch):
		return newErr(KindBadChecksum, "base block validation", err)
	case errors.Is(err, ErrTruncatedData):
		return newErr(KindTruncated, "base block validation", err)
	case errors.Is(err, ErrUnsupportedVersion):
		return newErr(KindUnsupportedVersion, "base block validation", err)
	default:
		return newErr(KindCorruptStructure, "base block validation", err)
	}
}

func applyLogs(h *Hive, cfg *openConfig) error {
	var log1, log2 []translog.Entry

	if cfg.log1Path != "" {
		entries, err := readLog(cfg.log1Path)
		if err != nil {
			return err
		}
		log1 = entries
	}
	if cfg.log2Path != "" {
		entries, err := readLog(cfg.log2Path)
		if err != nil {
			return err
		}
		log2 = entries
	}

	startSeq := h.base.Sequence2() + 1
	if _, err := translog.Reconcile(h, startSeq, log1, log2); err != nil {
		// Reconcile itself never fails on a sequence gap or hash mismatch —
		// those just stop replay early, which is normal. An error here means
		// the post-apply header update (SetDataSize/SetSequences) failed.
		return newErr(KindIO, "apply transaction log", err)
	}
	return nil
}

func readLog(path string) ([]translog.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newErr(KindIO, fmt.Sprintf("read log %s", path), err)
	}
	entries, err := translog.ParseAuto(data)
	if err != nil {
		return nil, newErr(KindBadSignature, fmt.Sprintf("parse log %s", path), err)
	}
	return entries, nil
}
