package minio

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/hupe1980/sememeval/blobstore"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Keys(t *testing.T) {
	s := &Store{prefix: "hownet/"}

	assert.Equal(t, "hownet/zh.txt", s.key("zh.txt"))
	assert.Equal(t, "hownet", s.key(""))
	assert.Equal(t, "zh.txt", s.relative("hownet/zh.txt"))
	assert.Equal(t, "bench/wordsim-240.txt", s.relative("hownet/bench/wordsim-240.txt"))

	bare := &Store{}
	assert.Equal(t, "zh.txt", bare.relative("zh.txt"))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, isNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.False(t, isNotFound(minio.ErrorResponse{Code: "AccessDenied"}))
}

// TestMinioStore_Integration requires a running MinIO instance.
// Set MINIO_ENDPOINT (and optionally MINIO_ACCESS_KEY / MINIO_SECRET_KEY).
func TestMinioStore_Integration(t *testing.T) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		t.Skip("MINIO_ENDPOINT not set")
	}
	accessKey := envOr("MINIO_ACCESS_KEY", "minioadmin")
	secretKey := envOr("MINIO_SECRET_KEY", "minioadmin")
	bucket := "test-sememeval"

	store, err := New(endpoint, bucket, WithCredentials(accessKey, secretKey), WithPrefix("test-prefix/"))
	require.NoError(t, err)

	ctx := context.Background()
	if _, err := store.client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	exists, err := store.client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, store.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	data := []byte("cat 0.6 0.8\n")
	require.NoError(t, store.Put(ctx, "en.vec", data))

	blob, err := store.Open(ctx, "en.vec")
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), blob.Size())

	r, err := blobstore.NewReader(ctx, blob)
	require.NoError(t, err)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, data, got)
	require.NoError(t, r.Close())
	require.NoError(t, blob.Close())

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, "en.vec")

	_, err = store.Open(ctx, "missing.vec")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	_ = store.client.RemoveObject(ctx, bucket, store.key("en.vec"), minio.RemoveObjectOptions{})
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
