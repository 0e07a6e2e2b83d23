package progress

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var errTest = errors.New("test error")

func newTestService(repo *fakeProgressRepo, ach *fakeAchievementRepo) UseCase {
	log := quietLogger()
	return NewService(repo, ach, NewEvaluator(repo, ach, log), log)
}

func TestUpdate_EmptySkillNameRejected(t *testing.T) {
	repo := newFakeProgressRepo()
	svc := newTestService(repo, newFakeAchievementRepo())

	err := svc.Update(context.Background(), uuid.New(), "u@example.com", "   ", StatusInProgress, "")
	require.ErrorIs(t, err, ErrSkillRequired)
	require.Empty(t, repo.rows)
}

func TestUpdate_CompletedAtFollowsStatus(t *testing.T) {
	userID := uuid.New()
	repo := newFakeProgressRepo()
	svc := newTestService(repo, newFakeAchievementRepo())

	require.NoError(t, svc.Update(context.Background(), userID, "u@example.com", "Go", StatusCompleted, ""))
	row := repo.rows[repo.key(userID, "Go")]
	require.NotNil(t, row.CompletedAt)

	require.NoError(t, svc.Update(context.Background(), userID, "u@example.com", "Go", StatusInProgress, ""))
	row = repo.rows[repo.key(userID, "Go")]
	require.Nil(t, row.CompletedAt, "a non-completed write stores a null completed_at")
}

func TestUpdate_UpsertReplacesInPlace(t *testing.T) {
	userID := uuid.New()
	repo := newFakeProgressRepo()
	svc := newTestService(repo, newFakeAchievementRepo())

	require.NoError(t, svc.Update(context.Background(), userID, "u@example.com", "Docker", StatusInProgress, "reading docs"))
	first := repo.rows[repo.key(userID, "Docker")]

	require.NoError(t, svc.Update(context.Background(), userID, "u@example.com", "Docker", StatusCompleted, "done"))
	require.Len(t, repo.rows, 1, "same (user, skill) must not create a second row")

	second := repo.rows[repo.key(userID, "Docker")]
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, StatusCompleted, second.Status)
	require.Equal(t, "done", second.Notes)
	require.NotNil(t, second.CompletedAt)
}

func TestUpdate_OtherStatusCountsInNeitherBucket(t *testing.T) {
	userID := uuid.New()
	repo := newFakeProgressRepo()
	svc := newTestService(repo, newFakeAchievementRepo())

	require.NoError(t, svc.Update(context.Background(), userID, "u@example.com", "K8s", "paused", ""))
	s, err := svc.Stats(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, 1, s.TotalSkills)
	require.Equal(t, 0, s.CompletedSkills)
	require.Equal(t, 0, s.InProgressSkills)
}

func TestUpdate_EvaluatorFailureIsSwallowed(t *testing.T) {
	userID := uuid.New()
	repo := newFakeProgressRepo()
	svc := newTestService(repo, newFakeAchievementRepo())

	// Make achievement evaluation fail at the count step after the write.
	require.NoError(t, svc.Update(context.Background(), userID, "u@example.com", "SQL", StatusCompleted, ""))
	repo.countErr = errTest

	err := svc.Update(context.Background(), userID, "u@example.com", "Git", StatusCompleted, "")
	require.NoError(t, err, "progress update reports success even when evaluation fails")
	require.Len(t, repo.rows, 2)
}

func TestUpdate_AwardsBadgeOnFirstCompletion(t *testing.T) {
	userID := uuid.New()
	repo := newFakeProgressRepo()
	ach := newFakeAchievementRepo()
	svc := newTestService(repo, ach)

	require.NoError(t, svc.Update(context.Background(), userID, "u@example.com", "Go", StatusCompleted, ""))

	badges, err := svc.Achievements(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, badges, 1)
	require.Equal(t, "first_skill", badges[0].BadgeType)
	require.Equal(t, "First Step", badges[0].BadgeName)
}

func TestStats_EmptyUser(t *testing.T) {
	svc := newTestService(newFakeProgressRepo(), newFakeAchievementRepo())

	s, err := svc.Stats(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Equal(t, Stats{RecentlyCompleted: []CompletedSkill{}}, s)
}
