package hive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFacadeRootKeyTraversal(t *testing.T) {
	data := buildMiniHive(t)
	h, err := NewHive(data)
	require.NoError(t, err)

	root, err := h.RootKey()
	require.NoError(t, err)
	require.Equal(t, "Root", root.Name())
	require.EqualValues(t, 1, root.SubkeyCount())
	require.EqualValues(t, 1, root.ValueCount())

	subkeys, err := root.Subkeys()
	require.NoError(t, err)
	require.Len(t, subkeys, 1)
	require.Equal(t, "Child", subkeys[0].Name())

	values, err := root.Values()
	require.NoError(t, err)
	require.Len(t, values, 1)
	require.Equal(t, "Count", values[0].Name())
	require.Equal(t, RegDword, values[0].Type())

	decoded, err := values[0].Data()
	require.NoError(t, err)
	require.True(t, decoded.IsDword())
	dword, err := decoded.AsDword()
	require.NoError(t, err)
	require.Equal(t, uint32(42), dword)

	_, err = decoded.AsString()
	require.Error(t, err)
}

func TestFacadeValueByNameCaseInsensitive(t *testing.T) {
	data := buildMiniHive(t)
	h, err := NewHive(data)
	require.NoError(t, err)
	root, err := h.RootKey()
	require.NoError(t, err)

	v, err := root.Value("COUNT")
	require.NoError(t, err)
	require.Equal(t, "Count", v.Name())
}

func TestFacadeValueNotFound(t *testing.T) {
	data := buildMiniHive(t)
	h, err := NewHive(data)
	require.NoError(t, err)
	root, err := h.RootKey()
	require.NoError(t, err)

	_, err = root.Value("DoesNotExist")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBaseBlockInfoSnapshot(t *testing.T) {
	data := buildMiniHive(t)
	h, err := NewHive(data)
	require.NoError(t, err)

	info := h.BaseBlock()
	require.True(t, info.Clean)
	require.Equal(t, h.base.RootCellOffset(), info.RootCellOffset)
}
