package pipeline

import (
	"errors"
	"fmt"

	"github.com/anhtu2808/talent-nexus-sub000/pkg/model"
	"github.com/google/uuid"
)

// ErrEmptyNoteContent is returned when a note is appended with no content.
var ErrEmptyNoteContent = errors.New("note content must not be empty")

// NotFoundError indicates a referenced entity is absent from the store.
type NotFoundError struct {
	Entity string
	ID     uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// DuplicateApplicationError indicates a candidate re-applying to a job they
// already have an application for.
type DuplicateApplicationError struct {
	JobID       uuid.UUID
	CandidateID uuid.UUID
}

func (e *DuplicateApplicationError) Error() string {
	return fmt.Sprintf("candidate %s already applied to job %s", e.CandidateID, e.JobID)
}

// InvalidReferenceError indicates a cross-entity reference that violates
// ownership, e.g. a CV not owned by the applying candidate.
type InvalidReferenceError struct {
	Reason string
}

func (e *InvalidReferenceError) Error() string {
	return "invalid reference: " + e.Reason
}

// IllegalTransitionError indicates a status change not present in the
// transition graph.
type IllegalTransitionError struct {
	From model.Status
	To   model.Status
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition from %s to %s", e.From, e.To)
}

// SlotConflictError indicates a recruiter already has a confirmed interview
// at the requested time.
type SlotConflictError struct {
	RecruiterID uuid.UUID
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("recruiter %s already has a confirmed interview at that time", e.RecruiterID)
}
