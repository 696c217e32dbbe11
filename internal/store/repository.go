package store

import (
	"context"

	"github.com/vbonduro/unitregistry/internal/domain"
)

// Repository is persisted access to the unit collection.
//
// Get returns (nil, nil) when no unit has the id. Insert fails with
// domain.ErrDuplicateIdentifier and Delete with domain.ErrNotFound, leaving
// the stored collection unchanged. Backing store failures are returned as
// *domain.StorageError.
type Repository interface {
	List(ctx context.Context) ([]domain.Unit, error)
	Get(ctx context.Context, id int) (domain.Unit, error)
	Insert(ctx context.Context, unit domain.Unit) error
	Delete(ctx context.Context, id int) error
}
