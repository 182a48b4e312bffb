package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anhtu2808/talent-nexus-sub000/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const applicationColumns = `
	application_id, job_id, candidate_id, cv_id, status, match_score,
	applied_at, updated_at`

func scanApplication(row pgx.Row) (*model.Application, error) {
	var a model.Application
	err := row.Scan(
		&a.ApplicationID, &a.JobID, &a.CandidateID, &a.CVID, &a.Status,
		&a.MatchScore, &a.AppliedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan application: %w", err)
	}
	return &a, nil
}

func (r *Repository) GetApplication(ctx context.Context, applicationID uuid.UUID) (*model.Application, error) {
	q := `SELECT` + applicationColumns + ` FROM applications WHERE application_id = $1`
	app, err := scanApplication(r.db.QueryRow(ctx, q, applicationID))
	if err != nil || app == nil {
		return app, err
	}
	app.Notes, err = r.listNotes(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *Repository) GetApplicationByPair(ctx context.Context, jobID, candidateID uuid.UUID) (*model.Application, error) {
	q := `SELECT` + applicationColumns + ` FROM applications WHERE job_id = $1 AND candidate_id = $2`
	app, err := scanApplication(r.db.QueryRow(ctx, q, jobID, candidateID))
	if err != nil || app == nil {
		return app, err
	}
	app.Notes, err = r.listNotes(ctx, app.ApplicationID)
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *Repository) ListApplicationsByJob(ctx context.Context, jobID uuid.UUID) ([]model.Application, error) {
	q := `SELECT` + applicationColumns + ` FROM applications WHERE job_id = $1`
	rows, err := r.db.Query(ctx, q, jobID)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}
	defer rows.Close()

	out := make([]model.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *app)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}

	for i := range out {
		out[i].Notes, err = r.listNotes(ctx, out[i].ApplicationID)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *Repository) InsertApplication(ctx context.Context, app *model.Application) error {
	const q = `
INSERT INTO applications (
	application_id, job_id, candidate_id, cv_id, status, match_score, applied_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	_, err := r.db.Exec(ctx, q,
		app.ApplicationID, app.JobID, app.CandidateID, app.CVID, app.Status,
		app.MatchScore, app.AppliedAt, app.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (r *Repository) UpdateApplicationStatus(ctx context.Context, applicationID uuid.UUID, status model.Status, updatedAt time.Time) error {
	const q = `UPDATE applications SET status = $2, updated_at = $3 WHERE application_id = $1`
	if _, err := r.db.Exec(ctx, q, applicationID, status, updatedAt); err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	return nil
}

func (r *Repository) UpdateApplicationCV(ctx context.Context, applicationID, cvID uuid.UUID, matchScore int, updatedAt time.Time) error {
	const q = `UPDATE applications SET cv_id = $2, match_score = $3, updated_at = $4 WHERE application_id = $1`
	if _, err := r.db.Exec(ctx, q, applicationID, cvID, matchScore, updatedAt); err != nil {
		return fmt.Errorf("update application cv: %w", err)
	}
	return nil
}

func (r *Repository) UpdateApplicationScore(ctx context.Context, applicationID uuid.UUID, matchScore int, updatedAt time.Time) error {
	const q = `UPDATE applications SET match_score = $2, updated_at = $3 WHERE application_id = $1`
	if _, err := r.db.Exec(ctx, q, applicationID, matchScore, updatedAt); err != nil {
		return fmt.Errorf("update application score: %w", err)
	}
	return nil
}

func (r *Repository) InsertNote(ctx context.Context, note *model.Note) error {
	const q = `
INSERT INTO notes (note_id, application_id, author_id, author_name, content, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`
	_, err := r.db.Exec(ctx, q,
		note.NoteID, note.ApplicationID, note.AuthorID, note.AuthorName, note.Content, note.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	return nil
}

func (r *Repository) listNotes(ctx context.Context, applicationID uuid.UUID) ([]model.Note, error) {
	const q = `
SELECT note_id, application_id, author_id, author_name, content, created_at
FROM notes WHERE application_id = $1 ORDER BY created_at
`
	rows, err := r.db.Query(ctx, q, applicationID)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	out := make([]model.Note, 0)
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.NoteID, &n.ApplicationID, &n.AuthorID, &n.AuthorName, &n.Content, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan note row: %w", err)
		}
		out = append(out, n)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}
