package jobskills

import "context"

// UseCase serves the static role-to-skills reference table.
type UseCase interface {
	List(ctx context.Context) ([]Profile, error)
	Get(ctx context.Context, role string) (Profile, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) List(ctx context.Context) ([]Profile, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, role string) (Profile, error) {
	return s.repo.GetByRole(ctx, role)
}
