package progress

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Milestone maps a completed-skill count to a badge.
type Milestone struct {
	Threshold int
	BadgeType string
	BadgeName string
}

// Milestones are cumulative: at 12 completed skills the first three are all
// considered earned.
var milestones = []Milestone{
	{Threshold: 1, BadgeType: "first_skill", BadgeName: "First Step"},
	{Threshold: 5, BadgeType: "skill_explorer", BadgeName: "Skill Explorer"},
	{Threshold: 10, BadgeType: "skill_master", BadgeName: "Skill Master"},
	{Threshold: 20, BadgeType: "skill_legend", BadgeName: "Skill Legend"},
}

func earnedMilestones(completedCount int) []Milestone {
	var earned []Milestone
	for _, m := range milestones {
		if completedCount >= m.Threshold {
			earned = append(earned, m)
		}
	}
	return earned
}

// Evaluator re-checks the full milestone table against a user's completed
// count and awards any badge not yet held. Awarding relies on the store's
// conflict handling, so re-running at the same count changes nothing.
type Evaluator struct {
	progress     Repository
	achievements AchievementRepository
	log          *logrus.Logger
}

func NewEvaluator(progress Repository, achievements AchievementRepository, log *logrus.Logger) *Evaluator {
	return &Evaluator{progress: progress, achievements: achievements, log: log}
}

// Evaluate counts the user's completed skills and attempts every earned badge.
// A single failed award is logged and does not stop the remaining awards.
func (e *Evaluator) Evaluate(ctx context.Context, userID uuid.UUID, userEmail string) error {
	count, err := e.progress.CountCompleted(ctx, userID)
	if err != nil {
		return err
	}
	for _, m := range earnedMilestones(count) {
		a := Achievement{
			UserID:    userID,
			UserEmail: userEmail,
			BadgeType: m.BadgeType,
			BadgeName: m.BadgeName,
		}
		if err := e.achievements.Award(ctx, a); err != nil {
			e.log.WithError(err).WithFields(logrus.Fields{
				"user_id": userID,
				"badge":   m.BadgeType,
			}).Error("award badge failed")
		}
	}
	return nil
}
