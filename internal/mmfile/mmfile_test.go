package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Map_ReadsFileContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.mem")
	want := []byte("0123456789abcdef")
	require.NoError(t, os.WriteFile(path, want, 0o644))

	data, cleanup, err := Map(path)
	require.NoError(t, err)
	require.Equal(t, want, data)
	require.NoError(t, cleanup())
}

func Test_Map_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.mem")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	data, cleanup, err := Map(path)
	require.NoError(t, err)
	require.Empty(t, data)
	require.NoError(t, cleanup())
}

func Test_Map_MissingFile(t *testing.T) {
	_, _, err := Map(filepath.Join(t.TempDir(), "nope.mem"))
	require.Error(t, err)
}

func Test_Map_CleanupIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.mem")
	require.NoError(t, os.WriteFile(path, []byte("payload"), 0o644))

	_, cleanup, err := Map(path)
	require.NoError(t, err)
	require.NoError(t, cleanup())
	require.NoError(t, cleanup())
}
