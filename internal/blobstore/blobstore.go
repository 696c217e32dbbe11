package blobstore

import (
	"context"
	"errors"
)

// ErrNotExist is returned by Load when nothing has been saved yet.
var ErrNotExist = errors.New("blob does not exist")

// BlobStore holds one opaque blob. Save replaces it wholesale; there is no
// append or partial update.
type BlobStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Location() string
}
