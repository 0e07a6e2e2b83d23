package history

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Domain errors translated by handlers into fixed response messages.
var (
	ErrNotFound     = errors.New("analysis not found")
	ErrNotEnoughIDs = errors.New("at least 2 analysis ids are required")
)

// Analysis is one stored resume-analysis result. The match fields are computed
// upstream before the row reaches this service; rows are never mutated in place.
type Analysis struct {
	ID              int64           `json:"id"`
	UserID          uuid.UUID       `json:"user_id"`
	UserEmail       string          `json:"user_email"`
	UserName        string          `json:"user_name"`
	JobRole         string          `json:"job_role"`
	ResumeText      string          `json:"resume_text"`
	MatchPercentage int             `json:"match_percentage"`
	MatchedSkills   []string        `json:"matched_skills"`
	MissingSkills   []string        `json:"missing_skills"`
	LearningRoadmap json.RawMessage `json:"learning_roadmap"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Item is the list projection of an Analysis.
type Item struct {
	ID              int64     `json:"id"`
	JobRole         string    `json:"job_role"`
	MatchPercentage int       `json:"match_percentage"`
	CreatedAt       time.Time `json:"created_at"`
}

// Comparison is a pairwise diff of two analyses ordered by creation time.
type Comparison struct {
	Analysis1 Analysis `json:"analysis1"`
	Analysis2 Analysis `json:"analysis2"`
}

// Repository — persistence port for stored analyses. All reads and writes are
// scoped by owner in the predicate itself.
type Repository interface {
	Create(ctx context.Context, a Analysis) (int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Item, error)
	GetForUser(ctx context.Context, userID uuid.UUID, id int64) (Analysis, error)
	DeleteForUser(ctx context.Context, userID uuid.UUID, id int64) error
	ListForUserByIDs(ctx context.Context, userID uuid.UUID, ids []int64) ([]Analysis, error)
}
