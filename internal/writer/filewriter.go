package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileWriter writes a hive image to a filesystem path atomically: the
// bytes land in a temp file in the same directory, get fsynced, then are
// renamed over the destination so a reader never observes a partial write.
type FileWriter struct {
	Path string
}

func (w *FileWriter) WriteHive(data []byte) error {
	dir := filepath.Dir(w.Path)
	tmp, err := os.CreateTemp(dir, ".gohive-tmp-*")
	if err != nil {
		return fmt.Errorf("writer: create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("writer: write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("writer: sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writer: close temp file: %w", err)
	}
	tmp = nil

	if err := os.Rename(tmpPath, w.Path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writer: rename temp file: %w", err)
	}
	return nil
}
