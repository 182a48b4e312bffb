package pipeline

import (
	"context"
	"time"

	"github.com/anhtu2808/talent-nexus-sub000/pkg/model"
	"github.com/google/uuid"
)

// Store is the persistence contract the engine runs against. Get methods
// return (nil, nil) when the entity is absent; the engine turns that into a
// NotFoundError. GetApplication returns the application with its notes loaded.
type Store interface {
	GetJob(ctx context.Context, jobID uuid.UUID) (*model.Job, error)
	ListJobs(ctx context.Context) ([]model.Job, error)
	UpdateJobSkills(ctx context.Context, jobID uuid.UUID, skills []string) error
	SetJobActive(ctx context.Context, jobID uuid.UUID, active bool) error
	IncrementJobViews(ctx context.Context, jobID uuid.UUID) error
	IncrementJobClicks(ctx context.Context, jobID uuid.UUID) error

	GetCandidate(ctx context.Context, candidateID uuid.UUID) (*model.CandidateProfile, error)
	GetCV(ctx context.Context, cvID uuid.UUID) (*model.CV, error)
	ListCVsByCandidate(ctx context.Context, candidateID uuid.UUID) ([]model.CV, error)

	GetApplication(ctx context.Context, applicationID uuid.UUID) (*model.Application, error)
	GetApplicationByPair(ctx context.Context, jobID, candidateID uuid.UUID) (*model.Application, error)
	ListApplicationsByJob(ctx context.Context, jobID uuid.UUID) ([]model.Application, error)
	InsertApplication(ctx context.Context, app *model.Application) error
	UpdateApplicationStatus(ctx context.Context, applicationID uuid.UUID, status model.Status, updatedAt time.Time) error
	UpdateApplicationCV(ctx context.Context, applicationID, cvID uuid.UUID, matchScore int, updatedAt time.Time) error
	UpdateApplicationScore(ctx context.Context, applicationID uuid.UUID, matchScore int, updatedAt time.Time) error

	InsertNote(ctx context.Context, note *model.Note) error

	InsertSlot(ctx context.Context, slot *model.InterviewSlot) error
	ListSlotsByApplication(ctx context.Context, applicationID uuid.UUID) ([]model.InterviewSlot, error)
	HasConfirmedSlotAt(ctx context.Context, recruiterID uuid.UUID, at time.Time) (bool, error)

	// Tx runs fn against a store view whose writes commit or roll back as a
	// unit. Used for multi-write sections (transition + audit note, booking).
	Tx(ctx context.Context, fn func(Store) error) error
}
