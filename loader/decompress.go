package loader

import (
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Decompress wraps r in a decoder chosen by the extension of name:
// ".zst" for zstd and ".lz4" for lz4 frames. Other names pass through.
func Decompress(name string, r io.Reader) (io.ReadCloser, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".zst", ".zstd":
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case ".lz4":
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

// Compressed reports whether Decompress would decode name.
func Compressed(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".zst", ".zstd", ".lz4":
		return true
	}
	return false
}
