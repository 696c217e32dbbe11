package service

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/unitregistry/internal/blobstore/local"
	"github.com/vbonduro/unitregistry/internal/domain"
	"github.com/vbonduro/unitregistry/internal/store"
)

// stubRepository is a minimal store.Repository returning fixed errors.
type stubRepository struct {
	err error
}

func (s *stubRepository) List(context.Context) ([]domain.Unit, error) { return nil, s.err }
func (s *stubRepository) Get(context.Context, int) (domain.Unit, error) { return nil, s.err }
func (s *stubRepository) Insert(context.Context, domain.Unit) error { return s.err }
func (s *stubRepository) Delete(context.Context, int) error { return s.err }

func newTestService(t *testing.T) *ManagementService {
	t.Helper()
	blobs, err := local.NewFileBlobStore(filepath.Join(t.TempDir(), "units.cbor"))
	require.NoError(t, err)
	return NewManagementService(store.NewFileRepository(blobs, slog.Default()), slog.Default())
}

// condo builds a ground-floor condo whose total cost equals area.
func condo(t *testing.T, id int, area float64, year int) domain.Unit {
	t.Helper()
	u, err := domain.NewCondoUnit(domain.Attributes{
		ID:      id,
		Area:    area,
		Rooms:   2,
		Floor:   0,
		Built:   domain.BuiltIn(year),
		Address: domain.NewAddress(1010, "Graben", 1, id),
	}, decimal.RequireFromString("0.60"), decimal.RequireFromString("0.40"))
	require.NoError(t, err)
	return u
}

func rental(t *testing.T, id int, year int) domain.Unit {
	t.Helper()
	u, err := domain.NewRentalUnit(domain.Attributes{
		ID:      id,
		Area:    50,
		Rooms:   2,
		Floor:   1,
		Built:   domain.BuiltIn(year),
		Address: domain.NewAddress(4020, "Landstrasse", 5, id),
	}, decimal.RequireFromString("8"), 1)
	require.NoError(t, err)
	return u
}

func addAll(t *testing.T, svc *ManagementService, units ...domain.Unit) {
	t.Helper()
	for _, u := range units {
		require.NoError(t, svc.Add(context.Background(), u))
	}
}

func TestManagementServiceListAndGet(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	addAll(t, svc, condo(t, 1, 100, 2000), rental(t, 2, 2001))

	units, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, units, 2)

	u, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, domain.KindRental, u.Kind())

	missing, err := svc.Get(ctx, 3)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestManagementServiceAddDuplicate(t *testing.T) {
	svc := newTestService(t)
	addAll(t, svc, condo(t, 1, 100, 2000))

	err := svc.Add(context.Background(), rental(t, 1, 2001))
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentifier)
}

func TestManagementServiceRemove(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	addAll(t, svc, condo(t, 1, 100, 2000))

	require.NoError(t, svc.Remove(ctx, 1))
	assert.ErrorIs(t, svc.Remove(ctx, 1), domain.ErrNotFound)
}

func TestManagementServiceCount(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	n, err := svc.Count(ctx, domain.AnyUnit)
	require.NoError(t, err)
	assert.Zero(t, n)

	addAll(t, svc, condo(t, 1, 100, 2000), rental(t, 2, 2001), condo(t, 3, 70, 2002))

	n, err = svc.Count(ctx, domain.AnyUnit)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = svc.Count(ctx, domain.OfKind(domain.KindCondo))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = svc.Count(ctx, domain.OfKind(domain.KindRental))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestManagementServiceAverageMonthlyCostEmpty(t *testing.T) {
	svc := newTestService(t)

	avg, err := svc.AverageMonthlyCost(context.Background())
	require.NoError(t, err)
	assert.True(t, avg.IsZero())
}

func TestManagementServiceAverageMonthlyCost(t *testing.T) {
	svc := newTestService(t)
	addAll(t, svc, condo(t, 1, 100, 2000), condo(t, 2, 300, 2001))

	avg, err := svc.AverageMonthlyCost(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "200.00", avg.StringFixed(2))
	assert.True(t, avg.Equal(decimal.NewFromInt(200)))
}

func TestManagementServiceAverageMonthlyCostRoundsHalfUp(t *testing.T) {
	svc := newTestService(t)
	// Costs 100.01 and 100.00 average to 100.005.
	addAll(t, svc, condo(t, 1, 100.01, 2000), condo(t, 2, 100, 2001))

	avg, err := svc.AverageMonthlyCost(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "100.01", avg.String())
}

func TestManagementServiceOldestUnitIDs(t *testing.T) {
	svc := newTestService(t)
	addAll(t, svc,
		condo(t, 10, 100, 2000),
		rental(t, 11, 1995),
		condo(t, 12, 80, 1995),
		rental(t, 13, 2010),
	)

	ids, err := svc.OldestUnitIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{11, 12}, ids)
}

func TestManagementServiceOldestUnitIDsEmpty(t *testing.T) {
	svc := newTestService(t)

	ids, err := svc.OldestUnitIDs(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestManagementServicePropagatesStorageFailure(t *testing.T) {
	storageErr := &domain.StorageError{Op: "load", Err: errors.New("io")}
	svc := NewManagementService(&stubRepository{err: storageErr}, slog.Default())
	ctx := context.Background()

	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, domain.ErrStorageFailure)

	_, err = svc.Count(ctx, domain.AnyUnit)
	assert.ErrorIs(t, err, domain.ErrStorageFailure)

	_, err = svc.AverageMonthlyCost(ctx)
	assert.ErrorIs(t, err, domain.ErrStorageFailure)

	_, err = svc.OldestUnitIDs(ctx)
	assert.ErrorIs(t, err, domain.ErrStorageFailure)

	assert.ErrorIs(t, svc.Add(ctx, condo(t, 1, 10, 2000)), domain.ErrStorageFailure)
	assert.ErrorIs(t, svc.Remove(ctx, 1), domain.ErrStorageFailure)
}
