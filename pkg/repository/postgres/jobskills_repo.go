package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumatch/backend/pkg/jobskills"
)

// JobSkillsRepository serves the static role-to-skills reference table.
type JobSkillsRepository struct {
	pool *pgxpool.Pool
}

func NewJobSkillsRepository(pool *pgxpool.Pool) (*JobSkillsRepository, error) {
	r := &JobSkillsRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *JobSkillsRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS job_skills (
	id BIGSERIAL PRIMARY KEY,
	job_role TEXT NOT NULL UNIQUE,
	required_skills JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`)
	return err
}

func (r *JobSkillsRepository) List(ctx context.Context) ([]jobskills.Profile, error) {
	rows, err := r.pool.Query(ctx, `
SELECT job_role, required_skills FROM job_skills ORDER BY job_role ASC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []jobskills.Profile
	for rows.Next() {
		var p jobskills.Profile
		var skills []byte
		if err := rows.Scan(&p.JobRole, &skills); err != nil {
			return nil, err
		}
		_ = json.Unmarshal(skills, &p.RequiredSkills)
		res = append(res, p)
	}
	return res, rows.Err()
}

func (r *JobSkillsRepository) GetByRole(ctx context.Context, role string) (jobskills.Profile, error) {
	row := r.pool.QueryRow(ctx, `
SELECT job_role, required_skills FROM job_skills WHERE job_role = $1
`, role)
	var p jobskills.Profile
	var skills []byte
	if err := row.Scan(&p.JobRole, &skills); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return jobskills.Profile{}, jobskills.ErrNotFound
		}
		return jobskills.Profile{}, err
	}
	_ = json.Unmarshal(skills, &p.RequiredSkills)
	return p, nil
}

func (r *JobSkillsRepository) Seed(ctx context.Context, p jobskills.Profile) error {
	skills, err := json.Marshal(p.RequiredSkills)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO job_skills (job_role, required_skills)
VALUES ($1, $2)
ON CONFLICT (job_role) DO NOTHING
`, p.JobRole, skills)
	return err
}
