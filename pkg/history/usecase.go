package history

import (
	"context"

	"github.com/google/uuid"
)

// UseCase covers the stored-analysis surface: list, fetch, delete, compare
// plus persisting results computed by the analysis client.
type UseCase interface {
	Save(ctx context.Context, a Analysis) (int64, error)
	List(ctx context.Context, userID uuid.UUID) ([]Item, error)
	Get(ctx context.Context, userID uuid.UUID, id int64) (Analysis, error)
	Delete(ctx context.Context, userID uuid.UUID, id int64) error
	Compare(ctx context.Context, userID uuid.UUID, ids []int64) (Comparison, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Save(ctx context.Context, a Analysis) (int64, error) {
	return s.repo.Create(ctx, a)
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]Item, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Get(ctx context.Context, userID uuid.UUID, id int64) (Analysis, error) {
	return s.repo.GetForUser(ctx, userID, id)
}

func (s *service) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	return s.repo.DeleteForUser(ctx, userID, id)
}

// Compare resolves the requested ids for the owner and returns the two oldest
// as a pair. Ids that do not exist or belong to somebody else are silently
// dropped; the response shape assumes exactly two analyses, so any extra
// resolved rows are ignored.
func (s *service) Compare(ctx context.Context, userID uuid.UUID, ids []int64) (Comparison, error) {
	if len(ids) < 2 {
		return Comparison{}, ErrNotEnoughIDs
	}
	rows, err := s.repo.ListForUserByIDs(ctx, userID, ids)
	if err != nil {
		return Comparison{}, err
	}
	if len(rows) < 2 {
		return Comparison{}, ErrNotFound
	}
	return Comparison{Analysis1: rows[0], Analysis2: rows[1]}, nil
}
