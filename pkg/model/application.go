package model

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending      Status = "pending"
	StatusReviewing    Status = "reviewing"
	StatusShortlisted  Status = "shortlisted"
	StatusInterviewing Status = "interviewing"
	StatusOffered      Status = "offered"
	StatusRejected     Status = "rejected"
)

// Statuses lists every pipeline status in board lane order.
var Statuses = []Status{
	StatusPending,
	StatusReviewing,
	StatusShortlisted,
	StatusInterviewing,
	StatusOffered,
	StatusRejected,
}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transitions are legal in normal flow.
func (s Status) Terminal() bool {
	return s == StatusOffered || s == StatusRejected
}

// Application is one candidate's submission of one CV against one job.
// Status changes only through the state machine; notes are append-only;
// AppliedAt is never mutated after creation.
type Application struct {
	ApplicationID uuid.UUID `json:"application_id" db:"application_id"`
	JobID         uuid.UUID `json:"job_id" db:"job_id"`
	CandidateID   uuid.UUID `json:"candidate_id" db:"candidate_id"`
	CVID          uuid.UUID `json:"cv_id" db:"cv_id"`
	Status        Status    `json:"status" db:"status"`
	MatchScore    int       `json:"match_score" db:"match_score"`
	AppliedAt     time.Time `json:"applied_at" db:"applied_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
	Notes         []Note    `json:"notes" db:"notes"`
}

type Note struct {
	NoteID        uuid.UUID `json:"note_id" db:"note_id"`
	ApplicationID uuid.UUID `json:"application_id" db:"application_id"`
	AuthorID      string    `json:"author_id" db:"author_id"`
	AuthorName    string    `json:"author_name" db:"author_name"`
	Content       string    `json:"content" db:"content"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

type SlotStatus string

const (
	SlotProposed  SlotStatus = "proposed"
	SlotConfirmed SlotStatus = "confirmed"
	SlotCancelled SlotStatus = "cancelled"
)

type InterviewSlot struct {
	SlotID        uuid.UUID  `json:"slot_id" db:"slot_id"`
	ApplicationID uuid.UUID  `json:"application_id" db:"application_id"`
	JobID         uuid.UUID  `json:"job_id" db:"job_id"`
	CandidateID   uuid.UUID  `json:"candidate_id" db:"candidate_id"`
	RecruiterID   uuid.UUID  `json:"recruiter_id" db:"recruiter_id"`
	ScheduledAt   time.Time  `json:"scheduled_at" db:"scheduled_at"`
	Status        SlotStatus `json:"status" db:"status"`
}

// Applicant is an application joined with its candidate and CV for display
// and filtering. CV may be nil; the join never fails on a missing CV.
type Applicant struct {
	Application Application       `json:"application"`
	Candidate   *CandidateProfile `json:"candidate"`
	CV          *CV               `json:"cv"`
}

type CreateApplicationRequest struct {
	JobID       uuid.UUID `json:"job_id" binding:"required"`
	CandidateID uuid.UUID `json:"candidate_id" binding:"required"`
	CVID        uuid.UUID `json:"cv_id" binding:"required"`
}

type TransitionRequest struct {
	Status Status `json:"status" binding:"required"`
}

type AddNoteRequest struct {
	AuthorID   string `json:"author_id" binding:"required"`
	AuthorName string `json:"author_name" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

type AttachCVRequest struct {
	CVID uuid.UUID `json:"cv_id" binding:"required"`
}

type BookInterviewRequest struct {
	ApplicationID uuid.UUID `json:"application_id" binding:"required"`
	CandidateID   uuid.UUID `json:"candidate_id" binding:"required"`
	JobID         uuid.UUID `json:"job_id" binding:"required"`
	RecruiterID   uuid.UUID `json:"recruiter_id" binding:"required"`
	ScheduledAt   time.Time `json:"scheduled_at" binding:"required"`
}
