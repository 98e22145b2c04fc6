package blobstore

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ifs "github.com/hupe1980/sememeval/internal/fs"
)

func TestLocalStore_Lifecycle(t *testing.T) {
	tmpDir := t.TempDir()
	store := NewLocalStore(tmpDir)
	ctx := context.Background()

	data := []byte("猫\t{animal|动物,pet|宠物}\n")
	require.NoError(t, store.Put(ctx, "lexicon/zh.txt", data))

	_, err := os.Stat(filepath.Join(tmpDir, "lexicon", "zh.txt"))
	require.NoError(t, err)

	blob, err := store.Open(ctx, "lexicon/zh.txt")
	require.NoError(t, err)
	defer blob.Close()

	require.Equal(t, int64(len(data)), blob.Size())

	buf := make([]byte, 3)
	n, err := blob.ReadAt(ctx, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, "猫", string(buf))

	rc, err := blob.ReadRange(ctx, 5, 6)
	require.NoError(t, err)
	part, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "animal", string(part))

	r, err := NewReader(ctx, blob)
	require.NoError(t, err)
	all, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, data, all)
}

func TestLocalStore_PutReplaces(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "out.txt", []byte("first")))
	require.NoError(t, store.Put(ctx, "out.txt", []byte("second")))

	got, err := ReadAll(ctx, store, "out.txt")
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"out.txt"}, names)
}

func TestLocalStore_List(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()

	for _, name := range []string{"wordsim-353.txt", "wordsim-240.txt", "vec/en.vec", "SimLex-999.txt"} {
		require.NoError(t, store.Put(ctx, name, []byte("x")))
	}

	names, err := store.List(ctx, "wordsim-")
	require.NoError(t, err)
	assert.Equal(t, []string{"wordsim-240.txt", "wordsim-353.txt"}, names)

	names, err = store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"SimLex-999.txt", "vec/en.vec", "wordsim-240.txt", "wordsim-353.txt"}, names)
}

func TestLocalStore_NotFound(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	_, err := store.Open(context.Background(), "missing.vec")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_EmptyFile(t *testing.T) {
	store := NewLocalStore(t.TempDir())
	ctx := context.Background()
	require.NoError(t, store.Put(ctx, "empty", nil))

	got, err := ReadAll(ctx, store, "empty")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLocalStore_PutFault(t *testing.T) {
	ctx := context.Background()
	ffs := ifs.NewFaultyFS(nil)
	ffs.AddRule("metrics.prom", ifs.Fault{FailAfterBytes: -1, FailOnSync: true})

	s := NewLocalStore(t.TempDir(), WithFileSystem(ffs))
	require.NoError(t, s.Put(ctx, "summary.json", []byte("{}")))

	err := s.Put(ctx, "metrics.prom", []byte("x 1\n"))
	assert.ErrorIs(t, err, ifs.ErrInjected)

	names, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"summary.json"}, names)
}
