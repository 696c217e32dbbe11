package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/vbonduro/unitregistry/internal/blobstore"
	"github.com/vbonduro/unitregistry/internal/domain"
)

// FileRepository persists the whole unit collection as one serialized blob.
//
// Every call reloads the collection from the blob store; nothing is cached
// between calls. Insert and Delete load everything, change it in memory and
// write everything back. There is no lock across that cycle: two writers
// interleaving on the same store lose the first writer's change.
type FileRepository struct {
	blobs  blobstore.BlobStore
	logger *slog.Logger
}

var _ Repository = (*FileRepository)(nil)

func NewFileRepository(blobs blobstore.BlobStore, logger *slog.Logger) *FileRepository {
	return &FileRepository{blobs: blobs, logger: logger}
}

func (r *FileRepository) List(ctx context.Context) ([]domain.Unit, error) {
	return r.load(ctx)
}

func (r *FileRepository) Get(ctx context.Context, id int) (domain.Unit, error) {
	units, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexOf(units, id); i >= 0 {
		return units[i], nil
	}
	return nil, nil
}

func (r *FileRepository) Insert(ctx context.Context, unit domain.Unit) error {
	units, err := r.load(ctx)
	if err != nil {
		return err
	}
	if indexOf(units, unit.ID()) >= 0 {
		return fmt.Errorf("%w (id=%d)", domain.ErrDuplicateIdentifier, unit.ID())
	}
	return r.save(ctx, append(units, unit))
}

func (r *FileRepository) Delete(ctx context.Context, id int) error {
	units, err := r.load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(units, id)
	if i < 0 {
		return fmt.Errorf("%w (id=%d)", domain.ErrNotFound, id)
	}
	return r.save(ctx, slices.Delete(units, i, i+1))
}

func (r *FileRepository) load(ctx context.Context) ([]domain.Unit, error) {
	data, err := r.blobs.Load(ctx)
	if errors.Is(err, blobstore.ErrNotExist) {
		r.logger.Debug("unit store absent, treating as empty", "location", r.blobs.Location())
		return []domain.Unit{}, nil
	}
	if err != nil {
		return nil, &domain.StorageError{Op: "load", Location: r.blobs.Location(), Err: err}
	}

	units, err := decodeUnits(data)
	if err != nil {
		return nil, &domain.StorageError{Op: "decode", Location: r.blobs.Location(), Err: err}
	}
	r.logger.Debug("unit store loaded", "location", r.blobs.Location(), "units", len(units), "bytes", len(data))
	return units, nil
}

func (r *FileRepository) save(ctx context.Context, units []domain.Unit) error {
	data, err := encodeUnits(units)
	if err != nil {
		return &domain.StorageError{Op: "encode", Location: r.blobs.Location(), Err: err}
	}
	if err := r.blobs.Save(ctx, data); err != nil {
		return &domain.StorageError{Op: "save", Location: r.blobs.Location(), Err: err}
	}
	r.logger.Debug("unit store saved", "location", r.blobs.Location(), "units", len(units), "bytes", len(data))
	return nil
}

func indexOf(units []domain.Unit, id int) int {
	return slices.IndexFunc(units, func(u domain.Unit) bool { return u.ID() == id })
}
