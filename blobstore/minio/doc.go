// Package minio provides a blobstore.BlobStore backed by the MinIO client.
//
// It works with MinIO itself and other S3-compatible systems (Ceph, Garage,
// SeaweedFS) without pulling in the AWS configuration chain:
//
//	store, err := minioblob.New("localhost:9000", "sememe-data",
//	    minioblob.WithCredentials("minioadmin", "minioadmin"),
//	    minioblob.WithPrefix("hownet/"),
//	)
package minio
