package progress

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeProgressRepo struct {
	rows     map[string]SkillProgress // keyed by user|skill
	countErr error
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{rows: make(map[string]SkillProgress)}
}

func (f *fakeProgressRepo) key(userID uuid.UUID, skill string) string {
	return userID.String() + "|" + skill
}

func (f *fakeProgressRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]SkillProgress, error) {
	var res []SkillProgress
	for _, p := range f.rows {
		if p.UserID == userID {
			res = append(res, p)
		}
	}
	return res, nil
}

func (f *fakeProgressRepo) Upsert(_ context.Context, p SkillProgress) error {
	k := f.key(p.UserID, p.SkillName)
	if existing, ok := f.rows[k]; ok {
		// replace status/notes/completed_at, keep started_at and id
		existing.Status = p.Status
		existing.Notes = p.Notes
		existing.CompletedAt = p.CompletedAt
		f.rows[k] = existing
		return nil
	}
	p.ID = int64(len(f.rows) + 1)
	f.rows[k] = p
	return nil
}

func (f *fakeProgressRepo) CountCompleted(_ context.Context, userID uuid.UUID) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	n := 0
	for _, p := range f.rows {
		if p.UserID == userID && p.Status == StatusCompleted {
			n++
		}
	}
	return n, nil
}

func (f *fakeProgressRepo) Stats(_ context.Context, userID uuid.UUID) (Stats, error) {
	s := Stats{RecentlyCompleted: []CompletedSkill{}}
	for _, p := range f.rows {
		if p.UserID != userID {
			continue
		}
		s.TotalSkills++
		switch p.Status {
		case StatusCompleted:
			s.CompletedSkills++
		case StatusInProgress:
			s.InProgressSkills++
		}
	}
	return s, nil
}

type fakeAchievementRepo struct {
	awarded  map[string]Achievement // keyed by user|badge_type
	failType string                 // Award returns an error for this badge type
	calls    []string
}

func newFakeAchievementRepo() *fakeAchievementRepo {
	return &fakeAchievementRepo{awarded: make(map[string]Achievement)}
}

func (f *fakeAchievementRepo) Award(_ context.Context, a Achievement) error {
	f.calls = append(f.calls, a.BadgeType)
	if a.BadgeType == f.failType {
		return errors.New("insert failed")
	}
	k := a.UserID.String() + "|" + a.BadgeType
	if _, ok := f.awarded[k]; ok {
		return nil // conflict is a no-op
	}
	f.awarded[k] = a
	return nil
}

func (f *fakeAchievementRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]Achievement, error) {
	var res []Achievement
	for _, a := range f.awarded {
		if a.UserID == userID {
			res = append(res, a)
		}
	}
	return res, nil
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func seedCompleted(repo *fakeProgressRepo, userID uuid.UUID, n int) {
	for i := 0; i < n; i++ {
		_ = repo.Upsert(context.Background(), SkillProgress{
			UserID:    userID,
			SkillName: "skill-" + string(rune('a'+i)),
			Status:    StatusCompleted,
		})
	}
}

func TestEvaluate_CumulativeThresholds(t *testing.T) {
	userID := uuid.New()
	repo := newFakeProgressRepo()
	ach := newFakeAchievementRepo()
	seedCompleted(repo, userID, 12)

	ev := NewEvaluator(repo, ach, quietLogger())
	require.NoError(t, ev.Evaluate(context.Background(), userID, "u@example.com"))

	var types []string
	for _, a := range ach.awarded {
		types = append(types, a.BadgeType)
	}
	require.ElementsMatch(t, []string{"first_skill", "skill_explorer", "skill_master"}, types)
}

func TestEvaluate_NoCompletedSkills(t *testing.T) {
	repo := newFakeProgressRepo()
	ach := newFakeAchievementRepo()

	ev := NewEvaluator(repo, ach, quietLogger())
	require.NoError(t, ev.Evaluate(context.Background(), uuid.New(), "u@example.com"))
	require.Empty(t, ach.awarded)
	require.Empty(t, ach.calls)
}

func TestEvaluate_AllThresholds(t *testing.T) {
	userID := uuid.New()
	repo := newFakeProgressRepo()
	ach := newFakeAchievementRepo()
	seedCompleted(repo, userID, 20)

	ev := NewEvaluator(repo, ach, quietLogger())
	require.NoError(t, ev.Evaluate(context.Background(), userID, "u@example.com"))
	require.Len(t, ach.awarded, 4)
}

func TestEvaluate_Idempotent(t *testing.T) {
	userID := uuid.New()
	repo := newFakeProgressRepo()
	ach := newFakeAchievementRepo()
	seedCompleted(repo, userID, 5)

	ev := NewEvaluator(repo, ach, quietLogger())
	require.NoError(t, ev.Evaluate(context.Background(), userID, "u@example.com"))
	require.NoError(t, ev.Evaluate(context.Background(), userID, "u@example.com"))

	require.Len(t, ach.awarded, 2, "re-evaluation must not create duplicate badges")
	require.Len(t, ach.calls, 4, "every earned badge is attempted on each run")
}

func TestEvaluate_SingleAwardFailureDoesNotAbort(t *testing.T) {
	userID := uuid.New()
	repo := newFakeProgressRepo()
	ach := newFakeAchievementRepo()
	ach.failType = "first_skill"
	seedCompleted(repo, userID, 10)

	ev := NewEvaluator(repo, ach, quietLogger())
	require.NoError(t, ev.Evaluate(context.Background(), userID, "u@example.com"))

	// first_skill failed but the later badges were still awarded
	require.Len(t, ach.awarded, 2)
	require.Equal(t, []string{"first_skill", "skill_explorer", "skill_master"}, ach.calls)
}

func TestEvaluate_CountFailurePropagates(t *testing.T) {
	repo := newFakeProgressRepo()
	repo.countErr = errors.New("db down")
	ach := newFakeAchievementRepo()

	ev := NewEvaluator(repo, ach, quietLogger())
	require.Error(t, ev.Evaluate(context.Background(), uuid.New(), "u@example.com"))
	require.Empty(t, ach.calls)
}
