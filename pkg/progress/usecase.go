package progress

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// UseCase covers skill progress, achievements and the stats aggregate.
type UseCase interface {
	Get(ctx context.Context, userID uuid.UUID) ([]SkillProgress, error)
	Update(ctx context.Context, userID uuid.UUID, userEmail, skillName, status, notes string) error
	Achievements(ctx context.Context, userID uuid.UUID) ([]Achievement, error)
	Stats(ctx context.Context, userID uuid.UUID) (Stats, error)
}

type service struct {
	repo         Repository
	achievements AchievementRepository
	evaluator    *Evaluator
	log          *logrus.Logger
}

func NewService(repo Repository, achievements AchievementRepository, evaluator *Evaluator, log *logrus.Logger) UseCase {
	return &service{repo: repo, achievements: achievements, evaluator: evaluator, log: log}
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) ([]SkillProgress, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Update upserts the (user, skill) row and then re-evaluates achievements.
// The evaluation is best-effort: its failure is logged and never surfaced, so
// a successful progress write always reports success to the caller.
func (s *service) Update(ctx context.Context, userID uuid.UUID, userEmail, skillName, status, notes string) error {
	skillName = strings.TrimSpace(skillName)
	if skillName == "" {
		return ErrSkillRequired
	}

	var completedAt *time.Time
	if status == StatusCompleted {
		now := time.Now().UTC()
		completedAt = &now
	}
	p := SkillProgress{
		UserID:      userID,
		UserEmail:   userEmail,
		SkillName:   skillName,
		Status:      status,
		Notes:       notes,
		CompletedAt: completedAt,
	}
	if err := s.repo.Upsert(ctx, p); err != nil {
		return err
	}

	if err := s.evaluator.Evaluate(ctx, userID, userEmail); err != nil {
		s.log.WithError(err).WithField("user_id", userID).Error("achievement evaluation failed")
	}
	return nil
}

func (s *service) Achievements(ctx context.Context, userID uuid.UUID) ([]Achievement, error) {
	return s.achievements.ListByUser(ctx, userID)
}

func (s *service) Stats(ctx context.Context, userID uuid.UUID) (Stats, error) {
	return s.repo.Stats(ctx, userID)
}
