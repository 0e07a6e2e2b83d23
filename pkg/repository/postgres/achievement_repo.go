package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumatch/backend/pkg/progress"
)

// AchievementRepository stores awarded badges. Rows are append-only.
type AchievementRepository struct {
	pool *pgxpool.Pool
}

func NewAchievementRepository(pool *pgxpool.Pool) (*AchievementRepository, error) {
	r := &AchievementRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *AchievementRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS achievements (
	id BIGSERIAL PRIMARY KEY,
	user_id UUID NOT NULL,
	user_email TEXT NOT NULL,
	badge_type TEXT NOT NULL,
	badge_name TEXT NOT NULL,
	earned_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	UNIQUE(user_id, badge_type)
);
`)
	return err
}

// Award inserts the badge; a badge already held is a silent no-op, which
// keeps re-evaluation idempotent.
func (r *AchievementRepository) Award(ctx context.Context, a progress.Achievement) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO achievements (user_id, user_email, badge_type, badge_name)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, badge_type) DO NOTHING
`, a.UserID, a.UserEmail, a.BadgeType, a.BadgeName)
	return err
}

func (r *AchievementRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]progress.Achievement, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, user_email, badge_type, badge_name, earned_at
FROM achievements
WHERE user_id = $1
ORDER BY earned_at DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []progress.Achievement
	for rows.Next() {
		var a progress.Achievement
		var earned time.Time
		if err := rows.Scan(&a.ID, &a.UserID, &a.UserEmail, &a.BadgeType, &a.BadgeName, &earned); err != nil {
			return nil, err
		}
		a.EarnedAt = earned.UTC()
		res = append(res, a)
	}
	return res, rows.Err()
}
