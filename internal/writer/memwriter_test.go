package writer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemWriter(t *testing.T) {
	w := &MemWriter{}
	require.NoError(t, w.WriteHive([]byte("hello")))
	require.Equal(t, []byte("hello"), w.Data)

	require.NoError(t, w.WriteHive([]byte("world!!")))
	require.Equal(t, []byte("world!!"), w.Data)
}

func TestFileWriterAtomicRename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.hive")
	w := &FileWriter{Path: path}
	require.NoError(t, w.WriteHive([]byte("regf-bytes")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("regf-bytes"), got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}
