package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumatch/backend/pkg/progress"
)

// ProgressRepository stores per-user skill progress rows.
type ProgressRepository struct {
	pool *pgxpool.Pool
}

func NewProgressRepository(pool *pgxpool.Pool) (*ProgressRepository, error) {
	r := &ProgressRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ProgressRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS skill_progress (
	id BIGSERIAL PRIMARY KEY,
	user_id UUID NOT NULL,
	user_email TEXT NOT NULL,
	skill_name TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'in-progress',
	notes TEXT NOT NULL DEFAULT '',
	started_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
	completed_at TIMESTAMPTZ,
	UNIQUE(user_id, skill_name)
);
`)
	return err
}

func (r *ProgressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]progress.SkillProgress, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, user_email, skill_name, status, notes, started_at, completed_at
FROM skill_progress
WHERE user_id = $1
ORDER BY started_at DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []progress.SkillProgress
	for rows.Next() {
		var p progress.SkillProgress
		var started time.Time
		if err := rows.Scan(&p.ID, &p.UserID, &p.UserEmail, &p.SkillName, &p.Status, &p.Notes, &started, &p.CompletedAt); err != nil {
			return nil, err
		}
		p.StartedAt = started.UTC()
		res = append(res, p)
	}
	return res, rows.Err()
}

// Upsert inserts the (user, skill) row or replaces status, notes and
// completed_at in place. started_at is only ever set by the first insert.
func (r *ProgressRepository) Upsert(ctx context.Context, p progress.SkillProgress) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO skill_progress (user_id, user_email, skill_name, status, notes, completed_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (user_id, skill_name)
DO UPDATE SET status = $4, notes = $5, completed_at = $6
`, p.UserID, p.UserEmail, p.SkillName, p.Status, p.Notes, p.CompletedAt)
	return err
}

func (r *ProgressRepository) CountCompleted(ctx context.Context, userID uuid.UUID) (int, error) {
	row := r.pool.QueryRow(ctx, `
SELECT COUNT(*) FROM skill_progress WHERE user_id = $1 AND status = 'completed'
`, userID)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Stats issues four independent reads; no transaction wraps them, so the
// counts may skew under concurrent writes. Fine for a dashboard view.
func (r *ProgressRepository) Stats(ctx context.Context, userID uuid.UUID) (progress.Stats, error) {
	s := progress.Stats{RecentlyCompleted: []progress.CompletedSkill{}}

	if err := r.pool.QueryRow(ctx, `
SELECT COUNT(*) FROM skill_progress WHERE user_id = $1
`, userID).Scan(&s.TotalSkills); err != nil {
		return progress.Stats{}, err
	}
	if err := r.pool.QueryRow(ctx, `
SELECT COUNT(*) FROM skill_progress WHERE user_id = $1 AND status = 'completed'
`, userID).Scan(&s.CompletedSkills); err != nil {
		return progress.Stats{}, err
	}
	if err := r.pool.QueryRow(ctx, `
SELECT COUNT(*) FROM skill_progress WHERE user_id = $1 AND status = 'in-progress'
`, userID).Scan(&s.InProgressSkills); err != nil {
		return progress.Stats{}, err
	}

	rows, err := r.pool.Query(ctx, `
SELECT skill_name, completed_at
FROM skill_progress
WHERE user_id = $1 AND status = 'completed'
ORDER BY completed_at DESC
LIMIT 5
`, userID)
	if err != nil {
		return progress.Stats{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var cs progress.CompletedSkill
		if err := rows.Scan(&cs.SkillName, &cs.CompletedAt); err != nil {
			return progress.Stats{}, err
		}
		s.RecentlyCompleted = append(s.RecentlyCompleted, cs)
	}
	return s, rows.Err()
}
