package storage

import (
	"context"
	"io"
)

// PutOptions describes upload options for object storage.
type PutOptions struct {
	ContentType string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key  string
	Size int64
}

// Store abstracts the object store the image URLs point into.
type Store interface {
	// Exists reports whether an object is present under key. A missing
	// key is (false, nil), not an error.
	Exists(ctx context.Context, bucket, key string) (bool, error)
	PutObject(ctx context.Context, bucket, key string, reader io.Reader, size int64, opts PutOptions) error
	// RemoveObject deletes an object. Removing a missing key is a no-op.
	RemoveObject(ctx context.Context, bucket, key string) error
}

// Default is the main object store instance.
var Default Store
