package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotFile_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snapshot.json")
	f := NewSnapshotFile(path)

	assert.False(t, f.Exists())
	_, err := f.Load()
	assert.Error(t, err)

	content := []byte(`{"name":"Banco Aurora"}`)
	require.NoError(t, f.Save(content))
	assert.True(t, f.Exists())

	got, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestSnapshotFile_SaveReplacesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	f := NewSnapshotFile(path)

	require.NoError(t, f.Save([]byte("first")))
	require.NoError(t, f.Save([]byte("second")))

	got, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file must not survive a save")
}
