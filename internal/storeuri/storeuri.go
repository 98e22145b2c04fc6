// Package storeuri resolves the data locations given on the command line to
// blob stores.
//
// Supported forms:
//
//	/local/dir or file:///local/dir
//	s3://bucket/prefix?region=eu-west-1&endpoint=http://localhost:4566
//	minio://[access:secret@]host:port/bucket/prefix?secure=true&region=us-east-1
package storeuri

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/hupe1980/sememeval/blobstore"
	"github.com/hupe1980/sememeval/blobstore/minio"
	"github.com/hupe1980/sememeval/blobstore/s3"
)

// ErrInvalidLocation is returned for a location that cannot be parsed.
var ErrInvalidLocation = errors.New("invalid data location")

// Store is a blob store that also accepts result files.
type Store interface {
	blobstore.BlobStore
	blobstore.Writer
}

// Location is a parsed data location.
type Location struct {
	Scheme    string // "file", "s3" or "minio"
	Path      string // local directory for "file"
	Bucket    string
	Prefix    string
	Region    string
	Endpoint  string
	Secure    bool
	AccessKey string
	SecretKey string
}

// Parse parses a location string. Anything without a scheme is a local path.
func Parse(raw string) (Location, error) {
	if raw == "" {
		return Location{}, fmt.Errorf("%w: empty", ErrInvalidLocation)
	}
	if !strings.Contains(raw, "://") {
		return Location{Scheme: "file", Path: raw}, nil
	}

	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, fmt.Errorf("%w: %v", ErrInvalidLocation, err)
	}
	q := u.Query()
	loc := Location{Scheme: u.Scheme, Region: q.Get("region")}

	switch u.Scheme {
	case "file":
		loc.Path = u.Path
	case "s3":
		loc.Bucket = u.Host
		loc.Prefix = strings.Trim(u.Path, "/")
		loc.Endpoint = q.Get("endpoint")
	case "minio":
		loc.Endpoint = u.Host
		bucket, prefix, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
		loc.Bucket = bucket
		loc.Prefix = strings.Trim(prefix, "/")
		if s := q.Get("secure"); s != "" {
			if loc.Secure, err = strconv.ParseBool(s); err != nil {
				return Location{}, fmt.Errorf("%w: secure=%q", ErrInvalidLocation, s)
			}
		}
		if u.User != nil {
			loc.AccessKey = u.User.Username()
			loc.SecretKey, _ = u.User.Password()
		}
	default:
		return Location{}, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidLocation, u.Scheme)
	}

	if loc.Scheme != "file" && loc.Bucket == "" {
		return Location{}, fmt.Errorf("%w: missing bucket in %q", ErrInvalidLocation, raw)
	}
	return loc, nil
}

// Open parses raw and opens the store it names.
func Open(ctx context.Context, raw string) (Store, error) {
	loc, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	return loc.Open(ctx)
}

// Open opens the store the location names.
func (l Location) Open(ctx context.Context) (Store, error) {
	switch l.Scheme {
	case "file":
		return blobstore.NewLocalStore(l.Path), nil
	case "s3":
		opts := []s3.Option{s3.WithPrefix(l.Prefix)}
		if l.Region != "" {
			opts = append(opts, s3.WithRegion(l.Region))
		}
		if l.Endpoint != "" {
			opts = append(opts, s3.WithEndpoint(l.Endpoint))
		}
		st, err := s3.New(ctx, l.Bucket, opts...)
		if err != nil {
			return nil, err
		}
		return st, nil
	case "minio":
		opts := []minio.Option{minio.WithPrefix(l.Prefix), minio.WithSecure(l.Secure)}
		if l.Region != "" {
			opts = append(opts, minio.WithRegion(l.Region))
		}
		if l.AccessKey != "" {
			opts = append(opts, minio.WithCredentials(l.AccessKey, l.SecretKey))
		}
		st, err := minio.New(l.Endpoint, l.Bucket, opts...)
		if err != nil {
			return nil, err
		}
		return st, nil
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidLocation, l.Scheme)
	}
}

// Join appends a path element to a location string, keeping a URI query in
// place.
func Join(raw, elem string) string {
	if elem == "" {
		return raw
	}
	base, query, hasQuery := strings.Cut(raw, "?")
	joined := strings.TrimSuffix(base, "/") + "/" + strings.Trim(elem, "/")
	if hasQuery {
		joined += "?" + query
	}
	return joined
}
