package service

import (
	"context"
	"log/slog"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/vbonduro/unitregistry/internal/domain"
	"github.com/vbonduro/unitregistry/internal/store"
)

// ManagementService answers the registry's operations on top of a
// store.Repository. Repository errors are returned unchanged.
type ManagementService struct {
	repo   store.Repository
	logger *slog.Logger
}

func NewManagementService(repo store.Repository, logger *slog.Logger) *ManagementService {
	return &ManagementService{
		repo:   repo,
		logger: logger,
	}
}

func (s *ManagementService) List(ctx context.Context) ([]domain.Unit, error) {
	return s.repo.List(ctx)
}

// Get returns nil without error when no unit has the id.
func (s *ManagementService) Get(ctx context.Context, id int) (domain.Unit, error) {
	return s.repo.Get(ctx, id)
}

func (s *ManagementService) Add(ctx context.Context, unit domain.Unit) error {
	if err := s.repo.Insert(ctx, unit); err != nil {
		return err
	}
	s.logger.Info("unit added", "id", unit.ID(), "kind", unit.Kind())
	return nil
}

func (s *ManagementService) Remove(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("unit removed", "id", id)
	return nil
}

// Count returns how many stored units satisfy match, e.g. domain.AnyUnit or
// domain.OfKind(domain.KindCondo).
func (s *ManagementService) Count(ctx context.Context, match func(domain.Unit) bool) (int, error) {
	units, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, u := range units {
		if match(u) {
			n++
		}
	}
	return n, nil
}

// AverageMonthlyCost is the mean total cost over all units, rounded half-up
// to two places. It is zero for an empty registry.
func (s *ManagementService) AverageMonthlyCost(ctx context.Context) (decimal.Decimal, error) {
	units, err := s.repo.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	if len(units) == 0 {
		return decimal.Zero, nil
	}

	sum := decimal.Zero
	for _, u := range units {
		sum = sum.Add(u.TotalCost())
	}
	return sum.DivRound(decimal.NewFromInt(int64(len(units))), 2), nil
}

// OldestUnitIDs returns the ids of every unit built on the earliest
// construction date, in stored order.
func (s *ManagementService) OldestUnitIDs(ctx context.Context) ([]int, error) {
	units, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return []int{}, nil
	}

	sorted := slices.Clone(units)
	slices.SortStableFunc(sorted, func(a, b domain.Unit) int {
		return a.Built().Compare(b.Built())
	})

	oldest := sorted[0].Built()
	ids := []int{}
	for _, u := range sorted {
		if !u.Built().Equal(oldest) {
			break
		}
		ids = append(ids, u.ID())
	}
	return ids, nil
}
