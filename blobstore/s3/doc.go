// Package s3 provides an Amazon S3 implementation of blobstore.BlobStore.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("sememe-data/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//
// Inputs are streamed with a single ranged GET per blob; result files are
// written with the multipart upload manager.
package s3
