package fs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "summary.json")

	require.NoError(t, WriteFileAtomic(Default, path, []byte("v1")))
	require.NoError(t, WriteFileAtomic(Default, path, []byte("v2")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestWriteFileAtomic_Faults(t *testing.T) {
	boom := errors.New("disk full")

	tests := []struct {
		name  string
		fault Fault
	}{
		{"Write", Fault{FailAfterBytes: 2, Err: boom}},
		{"Sync", Fault{FailAfterBytes: -1, FailOnSync: true, Err: boom}},
		{"Close", Fault{FailAfterBytes: -1, FailOnClose: true, Err: boom}},
		{"Rename", Fault{FailAfterBytes: -1, FailOnRename: true, Err: boom}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "summary.json")
			require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

			ffs := NewFaultyFS(nil)
			ffs.AddRule("summary.json", tt.fault)

			err := WriteFileAtomic(ffs, path, []byte("new content"))
			assert.ErrorIs(t, err, boom)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "old", string(data), "previous content survives")

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Len(t, entries, 1, "temporary file removed")
		})
	}
}

func TestFaultyFS_DefaultError(t *testing.T) {
	ffs := NewFaultyFS(nil)
	ffs.AddRule("x", Fault{FailAfterBytes: 0})

	err := WriteFileAtomic(ffs, filepath.Join(t.TempDir(), "x"), []byte("a"))
	assert.ErrorIs(t, err, ErrInjected)
	assert.Equal(t, int64(0), ffs.Written())
}
