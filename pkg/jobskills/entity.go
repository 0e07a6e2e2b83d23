package jobskills

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("job role not found")

// Profile maps a job role to its required skills, in presentation order.
// Static reference data: seeded once, read-only afterwards.
type Profile struct {
	JobRole        string   `json:"job_role"`
	RequiredSkills []string `json:"required_skills"`
}

// Repository — persistence port for job skill profiles.
type Repository interface {
	List(ctx context.Context) ([]Profile, error)
	GetByRole(ctx context.Context, role string) (Profile, error)
	// Seed inserts a profile, treating an already-present job role as a no-op.
	Seed(ctx context.Context, p Profile) error
}
