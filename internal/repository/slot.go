package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/anhtu2808/talent-nexus-sub000/pkg/model"
	"github.com/google/uuid"
)

func (r *Repository) InsertSlot(ctx context.Context, slot *model.InterviewSlot) error {
	const q = `
INSERT INTO interview_slots (
	slot_id, application_id, job_id, candidate_id, recruiter_id, scheduled_at, status
) VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	_, err := r.db.Exec(ctx, q,
		slot.SlotID, slot.ApplicationID, slot.JobID, slot.CandidateID,
		slot.RecruiterID, slot.ScheduledAt, slot.Status,
	)
	if err != nil {
		return fmt.Errorf("insert slot: %w", err)
	}
	return nil
}

func (r *Repository) ListSlotsByApplication(ctx context.Context, applicationID uuid.UUID) ([]model.InterviewSlot, error) {
	const q = `
SELECT slot_id, application_id, job_id, candidate_id, recruiter_id, scheduled_at, status
FROM interview_slots WHERE application_id = $1 ORDER BY scheduled_at
`
	rows, err := r.db.Query(ctx, q, applicationID)
	if err != nil {
		return nil, fmt.Errorf("query slots: %w", err)
	}
	defer rows.Close()

	out := make([]model.InterviewSlot, 0)
	for rows.Next() {
		var s model.InterviewSlot
		if err := rows.Scan(&s.SlotID, &s.ApplicationID, &s.JobID, &s.CandidateID, &s.RecruiterID, &s.ScheduledAt, &s.Status); err != nil {
			return nil, fmt.Errorf("scan slot row: %w", err)
		}
		out = append(out, s)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r *Repository) HasConfirmedSlotAt(ctx context.Context, recruiterID uuid.UUID, at time.Time) (bool, error) {
	const q = `
SELECT COUNT(1) FROM interview_slots
WHERE recruiter_id = $1 AND status = $2 AND scheduled_at = $3
`
	var count int
	if err := r.db.QueryRow(ctx, q, recruiterID, model.SlotConfirmed, at).Scan(&count); err != nil {
		return false, fmt.Errorf("check confirmed slot: %w", err)
	}
	return count > 0, nil
}
