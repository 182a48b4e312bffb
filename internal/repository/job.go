package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/anhtu2808/talent-nexus-sub000/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `
	job_id, title, company, locations, salary, type, skills, requirements,
	posted_at, is_active, views, clicks, recruiter_id`

func scanJob(row pgx.Row) (*model.Job, error) {
	var j model.Job
	err := row.Scan(
		&j.JobID, &j.Title, &j.Company, &j.Locations, &j.Salary, &j.Type,
		&j.Skills, &j.Requirements, &j.PostedAt, &j.IsActive, &j.Views,
		&j.Clicks, &j.RecruiterID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan job: %w", err)
	}
	return &j, nil
}

func (r *Repository) GetJob(ctx context.Context, jobID uuid.UUID) (*model.Job, error) {
	q := `SELECT` + jobColumns + ` FROM jobs WHERE job_id = $1`
	return scanJob(r.db.QueryRow(ctx, q, jobID))
}

func (r *Repository) ListJobs(ctx context.Context) ([]model.Job, error) {
	q := `SELECT` + jobColumns + ` FROM jobs ORDER BY posted_at DESC`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	defer rows.Close()

	out := make([]model.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *job)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r *Repository) UpdateJobSkills(ctx context.Context, jobID uuid.UUID, skills []string) error {
	const q = `UPDATE jobs SET skills = $2 WHERE job_id = $1`
	if _, err := r.db.Exec(ctx, q, jobID, skills); err != nil {
		return fmt.Errorf("update job skills: %w", err)
	}
	return nil
}

func (r *Repository) SetJobActive(ctx context.Context, jobID uuid.UUID, active bool) error {
	const q = `UPDATE jobs SET is_active = $2 WHERE job_id = $1`
	if _, err := r.db.Exec(ctx, q, jobID, active); err != nil {
		return fmt.Errorf("set job active: %w", err)
	}
	return nil
}

func (r *Repository) IncrementJobViews(ctx context.Context, jobID uuid.UUID) error {
	const q = `UPDATE jobs SET views = views + 1 WHERE job_id = $1`
	if _, err := r.db.Exec(ctx, q, jobID); err != nil {
		return fmt.Errorf("increment job views: %w", err)
	}
	return nil
}

func (r *Repository) IncrementJobClicks(ctx context.Context, jobID uuid.UUID) error {
	const q = `UPDATE jobs SET clicks = clicks + 1 WHERE job_id = $1`
	if _, err := r.db.Exec(ctx, q, jobID); err != nil {
		return fmt.Errorf("increment job clicks: %w", err)
	}
	return nil
}
