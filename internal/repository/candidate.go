package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/anhtu2808/talent-nexus-sub000/pkg/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (r *Repository) GetCandidate(ctx context.Context, candidateID uuid.UUID) (*model.CandidateProfile, error) {
	const q = `
SELECT candidate_id, name, email, location, years_of_experience, skills, languages
FROM candidates WHERE candidate_id = $1
`
	var c model.CandidateProfile
	err := r.db.QueryRow(ctx, q, candidateID).Scan(
		&c.CandidateID, &c.Name, &c.Email, &c.Location, &c.YearsOfExperience,
		&c.Skills, &c.Languages,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan candidate: %w", err)
	}
	return &c, nil
}

func (r *Repository) GetCV(ctx context.Context, cvID uuid.UUID) (*model.CV, error) {
	const q = `
SELECT cv_id, candidate_id, file_name, uploaded_at, ats_score, ats_breakdown
FROM cvs WHERE cv_id = $1
`
	var cv model.CV
	err := r.db.QueryRow(ctx, q, cvID).Scan(
		&cv.CVID, &cv.CandidateID, &cv.FileName, &cv.UploadedAt, &cv.ATSScore, &cv.Breakdown,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan cv: %w", err)
	}
	return &cv, nil
}

func (r *Repository) ListCVsByCandidate(ctx context.Context, candidateID uuid.UUID) ([]model.CV, error) {
	const q = `
SELECT cv_id, candidate_id, file_name, uploaded_at, ats_score, ats_breakdown
FROM cvs WHERE candidate_id = $1 ORDER BY uploaded_at
`
	rows, err := r.db.Query(ctx, q, candidateID)
	if err != nil {
		return nil, fmt.Errorf("query cvs: %w", err)
	}
	defer rows.Close()

	out := make([]model.CV, 0)
	for rows.Next() {
		var cv model.CV
		if err := rows.Scan(&cv.CVID, &cv.CandidateID, &cv.FileName, &cv.UploadedAt, &cv.ATSScore, &cv.Breakdown); err != nil {
			return nil, fmt.Errorf("scan cv row: %w", err)
		}
		out = append(out, cv)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}
