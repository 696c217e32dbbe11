package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vbonduro/unitregistry/internal/blobstore"
)

// BlobStore keeps the blob in the single row of the unit_collection table.
type BlobStore struct {
	db       *sql.DB
	location string
}

var _ blobstore.BlobStore = (*BlobStore)(nil)

// NewBlobStore expects db to have been opened with db.Open so the schema is
// in place. location is only used for diagnostics.
func NewBlobStore(db *sql.DB, location string) *BlobStore {
	return &BlobStore{db: db, location: location}
}

func (s *BlobStore) Location() string {
	return s.location
}

func (s *BlobStore) Load(ctx context.Context) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT payload FROM unit_collection WHERE id = 1
	`).Scan(&payload)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, blobstore.ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}
	return payload, nil
}

func (s *BlobStore) Save(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO unit_collection (id, payload, updated_at) VALUES (1, ?, datetime('now'))
		ON CONFLICT(id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`, data)
	if err != nil {
		return fmt.Errorf("failed to save collection: %w", err)
	}
	return nil
}
