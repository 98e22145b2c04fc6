// Package blobstore abstracts where evaluation inputs live and where results go.
//
// Embedding files, lexicons and benchmark files are read through a BlobStore so
// the same run can work off a local directory, an S3 bucket or any
// S3-compatible object store. Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem, read through mmap
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3 (see subpackage s3)
//   - minio.Store: MinIO and other S3-compatible stores (see subpackage minio)
//
// Blobs are read sequentially and exactly once, so the interface favors
// streaming reads:
//
//	blob, err := store.Open(ctx, "zh.vec")
//	if err != nil { ... }
//	defer blob.Close()
//
//	r, err := blobstore.NewReader(ctx, blob)
package blobstore
