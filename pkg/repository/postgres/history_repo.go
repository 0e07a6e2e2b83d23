package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumatch/backend/pkg/history"
)

// HistoryRepository stores resume-analysis results.
type HistoryRepository struct {
	pool *pgxpool.Pool
}

func NewHistoryRepository(pool *pgxpool.Pool) (*HistoryRepository, error) {
	r := &HistoryRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *HistoryRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS resume_analyses (
	id BIGSERIAL PRIMARY KEY,
	user_id UUID NOT NULL,
	user_email TEXT NOT NULL,
	user_name TEXT,
	job_role TEXT NOT NULL,
	resume_text TEXT NOT NULL,
	match_percentage INTEGER NOT NULL,
	matched_skills JSONB NOT NULL,
	missing_skills JSONB NOT NULL,
	learning_roadmap JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_resume_analyses_user ON resume_analyses(user_id, created_at DESC);
`)
	return err
}

func (r *HistoryRepository) Create(ctx context.Context, a history.Analysis) (int64, error) {
	matched, err := marshalSkills(a.MatchedSkills)
	if err != nil {
		return 0, err
	}
	missing, err := marshalSkills(a.MissingSkills)
	if err != nil {
		return 0, err
	}
	roadmap := a.LearningRoadmap
	if len(roadmap) == 0 {
		roadmap = json.RawMessage(`[]`)
	}
	row := r.pool.QueryRow(ctx, `
INSERT INTO resume_analyses (user_id, user_email, user_name, job_role, resume_text, match_percentage, matched_skills, missing_skills, learning_roadmap)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id
`, a.UserID, a.UserEmail, a.UserName, a.JobRole, a.ResumeText, a.MatchPercentage, matched, missing, []byte(roadmap))
	var id int64
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *HistoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]history.Item, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, job_role, match_percentage, created_at
FROM resume_analyses
WHERE user_id = $1
ORDER BY created_at DESC
`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []history.Item
	for rows.Next() {
		var it history.Item
		var created time.Time
		if err := rows.Scan(&it.ID, &it.JobRole, &it.MatchPercentage, &created); err != nil {
			return nil, err
		}
		it.CreatedAt = created.UTC()
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *HistoryRepository) GetForUser(ctx context.Context, userID uuid.UUID, id int64) (history.Analysis, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, user_id, user_email, user_name, job_role, resume_text, match_percentage, matched_skills, missing_skills, learning_roadmap, created_at
FROM resume_analyses
WHERE id = $1 AND user_id = $2
`, id, userID)
	a, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return history.Analysis{}, history.ErrNotFound
		}
		return history.Analysis{}, err
	}
	return a, nil
}

func (r *HistoryRepository) DeleteForUser(ctx context.Context, userID uuid.UUID, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM resume_analyses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return history.ErrNotFound
	}
	return nil
}

// ListForUserByIDs resolves the requested ids for the owner, oldest first.
// Ids that do not exist or belong to another user simply produce no row.
func (r *HistoryRepository) ListForUserByIDs(ctx context.Context, userID uuid.UUID, ids []int64) ([]history.Analysis, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, user_id, user_email, user_name, job_role, resume_text, match_percentage, matched_skills, missing_skills, learning_roadmap, created_at
FROM resume_analyses
WHERE id = ANY($1) AND user_id = $2
ORDER BY created_at ASC
`, ids, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []history.Analysis
	for rows.Next() {
		a, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

func scanAnalysis(row pgx.Row) (history.Analysis, error) {
	var a history.Analysis
	var matched, missing, roadmap []byte
	var created time.Time
	if err := row.Scan(&a.ID, &a.UserID, &a.UserEmail, &a.UserName, &a.JobRole, &a.ResumeText,
		&a.MatchPercentage, &matched, &missing, &roadmap, &created); err != nil {
		return history.Analysis{}, err
	}
	_ = json.Unmarshal(matched, &a.MatchedSkills)
	_ = json.Unmarshal(missing, &a.MissingSkills)
	a.LearningRoadmap = json.RawMessage(roadmap)
	a.CreatedAt = created.UTC()
	return a, nil
}

func marshalSkills(skills []string) ([]byte, error) {
	if skills == nil {
		skills = []string{}
	}
	return json.Marshal(skills)
}
