package progress

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status values with meaning for stats and badge evaluation. Status is not a
// closed enum: callers may store other strings, which count toward neither bucket.
const (
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

var ErrSkillRequired = errors.New("skill name is required")

// SkillProgress tracks one user's state on one skill. At most one row exists
// per (user, skill); repeated updates replace status, notes and completed_at
// while started_at keeps the value from the first insert.
type SkillProgress struct {
	ID          int64      `json:"id"`
	UserID      uuid.UUID  `json:"user_id"`
	UserEmail   string     `json:"user_email"`
	SkillName   string     `json:"skill_name"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// Achievement is an append-only milestone badge, awarded at most once per
// (user, badge type).
type Achievement struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	UserEmail string    `json:"user_email"`
	BadgeType string    `json:"badge_type"`
	BadgeName string    `json:"badge_name"`
	EarnedAt  time.Time `json:"earned_at"`
}

// CompletedSkill is the recently-completed projection used by Stats.
type CompletedSkill struct {
	SkillName   string     `json:"skill_name"`
	CompletedAt *time.Time `json:"completed_at"`
}

// Stats is a dashboard aggregate assembled from independent reads; the counts
// are not taken in one snapshot and may skew under concurrent writes.
type Stats struct {
	TotalSkills       int              `json:"totalSkills"`
	CompletedSkills   int              `json:"completedSkills"`
	InProgressSkills  int              `json:"inProgressSkills"`
	RecentlyCompleted []CompletedSkill `json:"recentlyCompleted"`
}

// Repository — persistence port for skill progress rows.
type Repository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]SkillProgress, error)
	Upsert(ctx context.Context, p SkillProgress) error
	CountCompleted(ctx context.Context, userID uuid.UUID) (int, error)
	Stats(ctx context.Context, userID uuid.UUID) (Stats, error)
}

// AchievementRepository — persistence port for badges. Award must treat a
// duplicate (user, badge type) as a no-op, not an error.
type AchievementRepository interface {
	Award(ctx context.Context, a Achievement) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Achievement, error)
}
