package jobskills

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	profiles map[string]Profile
	inserts  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{profiles: make(map[string]Profile)}
}

func (f *fakeRepo) List(_ context.Context) ([]Profile, error) {
	var res []Profile
	for _, p := range f.profiles {
		res = append(res, p)
	}
	return res, nil
}

func (f *fakeRepo) GetByRole(_ context.Context, role string) (Profile, error) {
	p, ok := f.profiles[role]
	if !ok {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

func (f *fakeRepo) Seed(_ context.Context, p Profile) error {
	f.inserts++
	if _, ok := f.profiles[p.JobRole]; ok {
		return nil // conflict on job_role is a no-op
	}
	f.profiles[p.JobRole] = p
	return nil
}

func TestSeedProfiles_Shape(t *testing.T) {
	require.Len(t, SeedProfiles, 8)

	seen := make(map[string]bool)
	for _, p := range SeedProfiles {
		require.NotEmpty(t, p.JobRole)
		require.False(t, seen[p.JobRole], "job roles must be unique: %s", p.JobRole)
		seen[p.JobRole] = true
		require.NotEmpty(t, p.RequiredSkills, "%s has no skills", p.JobRole)
	}
}

func TestSeed_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	require.NoError(t, Seed(context.Background(), repo))
	require.Len(t, repo.profiles, len(SeedProfiles))

	// running the bootstrap again changes nothing
	require.NoError(t, Seed(context.Background(), repo))
	require.Len(t, repo.profiles, len(SeedProfiles))
	require.Equal(t, 2*len(SeedProfiles), repo.inserts)
}

func TestGet_UnknownRole(t *testing.T) {
	repo := newFakeRepo()
	require.NoError(t, Seed(context.Background(), repo))

	svc := NewService(repo)
	_, err := svc.Get(context.Background(), "Astronaut")
	require.ErrorIs(t, err, ErrNotFound)

	p, err := svc.Get(context.Background(), "Backend Developer")
	require.NoError(t, err)
	require.Contains(t, p.RequiredSkills, "PostgreSQL")
}
