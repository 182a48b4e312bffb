package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/anhtu2808/talent-nexus-sub000/pkg/model"
	"github.com/google/uuid"
)

const systemAuthor = "system"

// Engine owns the pipeline rules: application creation, state-machine
// transitions, notes, scoring and interview booking. All writes run under a
// single engine-wide mutex; the operations are short in-memory or single-tx
// mutations, so single-writer semantics are sufficient.
type Engine struct {
	store  Store
	events Sink

	mu  sync.Mutex
	now func() time.Time
}

func NewEngine(store Store, events Sink) *Engine {
	if events == nil {
		events = NopSink{}
	}
	return &Engine{
		store:  store,
		events: events,
		now:    time.Now,
	}
}

// CreateApplication registers one candidate's submission of one CV against
// one job. The application starts at pending with its match score computed
// and cached.
func (e *Engine) CreateApplication(ctx context.Context, jobID, candidateID, cvID uuid.UUID) (*model.Application, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	job, err := e.store.GetJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	if job == nil {
		return nil, &NotFoundError{Entity: "job", ID: jobID}
	}

	candidate, err := e.store.GetCandidate(ctx, candidateID)
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	if candidate == nil {
		return nil, &NotFoundError{Entity: "candidate", ID: candidateID}
	}

	cv, err := e.store.GetCV(ctx, cvID)
	if err != nil {
		return nil, fmt.Errorf("get cv: %w", err)
	}
	if cv == nil {
		return nil, &NotFoundError{Entity: "cv", ID: cvID}
	}
	if cv.CandidateID != candidateID {
		return nil, &InvalidReferenceError{Reason: fmt.Sprintf("cv %s is not owned by candidate %s", cvID, candidateID)}
	}

	existing, err := e.store.GetApplicationByPair(ctx, jobID, candidateID)
	if err != nil {
		return nil, fmt.Errorf("check existing application: %w", err)
	}
	if existing != nil {
		return nil, &DuplicateApplicationError{JobID: jobID, CandidateID: candidateID}
	}

	now := e.now()
	app := &model.Application{
		ApplicationID: uuid.New(),
		JobID:         jobID,
		CandidateID:   candidateID,
		CVID:          cvID,
		Status:        model.StatusPending,
		MatchScore:    MatchScore(candidate, job, cv),
		AppliedAt:     now,
		UpdatedAt:     now,
		Notes:         []model.Note{},
	}
	if err := e.store.InsertApplication(ctx, app); err != nil {
		return nil, fmt.Errorf("insert application: %w", err)
	}
	return app, nil
}

// Transition moves an application along the pipeline graph, appending a
// system audit note. Illegal moves, including anything out of a terminal
// state, fail with IllegalTransitionError.
func (e *Engine) Transition(ctx context.Context, applicationID uuid.UUID, newStatus model.Status) (*model.Application, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	app, err := e.getApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(app.Status, newStatus) {
		return nil, &IllegalTransitionError{From: app.Status, To: newStatus}
	}
	return e.applyTransition(ctx, app, newStatus)
}

// Reopen is the administrative override that moves a terminal application
// back to reviewing. It is not reachable through Transition.
func (e *Engine) Reopen(ctx context.Context, applicationID uuid.UUID) (*model.Application, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	app, err := e.getApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if !app.Status.Terminal() {
		return nil, &IllegalTransitionError{From: app.Status, To: model.StatusReviewing}
	}
	return e.applyTransition(ctx, app, model.StatusReviewing)
}

// applyTransition persists the status change together with its audit note and
// emits the status event. Legality has already been decided by the caller.
func (e *Engine) applyTransition(ctx context.Context, app *model.Application, newStatus model.Status) (*model.Application, error) {
	now := e.now()
	old := app.Status
	note := &model.Note{
		NoteID:        uuid.New(),
		ApplicationID: app.ApplicationID,
		AuthorID:      systemAuthor,
		AuthorName:    systemAuthor,
		Content:       fmt.Sprintf("status changed from %s to %s", old, newStatus),
		CreatedAt:     now,
	}

	err := e.store.Tx(ctx, func(s Store) error {
		if err := s.UpdateApplicationStatus(ctx, app.ApplicationID, newStatus, now); err != nil {
			return fmt.Errorf("update status: %w", err)
		}
		if err := s.InsertNote(ctx, note); err != nil {
			return fmt.Errorf("insert audit note: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	app.Status = newStatus
	app.UpdatedAt = now
	app.Notes = append(app.Notes, *note)

	e.events.StatusChanged(ctx, ApplicationStatusChanged{
		ApplicationID: app.ApplicationID,
		OldStatus:     old,
		NewStatus:     newStatus,
		At:            now,
	})
	return app, nil
}

// AddNote appends a recruiter note to an application. Notes are append-only
// and never edited or removed.
func (e *Engine) AddNote(ctx context.Context, applicationID uuid.UUID, authorID, authorName, content string) (*model.Note, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyNoteContent
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.getApplication(ctx, applicationID); err != nil {
		return nil, err
	}

	note := &model.Note{
		NoteID:        uuid.New(),
		ApplicationID: applicationID,
		AuthorID:      authorID,
		AuthorName:    authorName,
		Content:       content,
		CreatedAt:     e.now(),
	}
	if err := e.store.InsertNote(ctx, note); err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}

	e.events.NoteAdded(ctx, NoteAdded{ApplicationID: applicationID, NoteID: note.NoteID})
	return note, nil
}

// AttachCV replaces the CV on an application and recomputes the cached match
// score. Ownership is re-checked against the applying candidate.
func (e *Engine) AttachCV(ctx context.Context, applicationID, cvID uuid.UUID) (*model.Application, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	app, err := e.getApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	cv, err := e.store.GetCV(ctx, cvID)
	if err != nil {
		return nil, fmt.Errorf("get cv: %w", err)
	}
	if cv == nil {
		return nil, &NotFoundError{Entity: "cv", ID: cvID}
	}
	if cv.CandidateID != app.CandidateID {
		return nil, &InvalidReferenceError{Reason: fmt.Sprintf("cv %s is not owned by candidate %s", cvID, app.CandidateID)}
	}

	job, err := e.store.GetJob(ctx, app.JobID)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	candidate, err := e.store.GetCandidate(ctx, app.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	if job == nil || candidate == nil {
		return nil, &NotFoundError{Entity: "application references", ID: applicationID}
	}

	now := e.now()
	score := MatchScore(candidate, job, cv)
	if err := e.store.UpdateApplicationCV(ctx, applicationID, cvID, score, now); err != nil {
		return nil, fmt.Errorf("update application cv: %w", err)
	}

	app.CVID = cvID
	app.MatchScore = score
	app.UpdatedAt = now
	return app, nil
}

// BookInterview reserves a confirmed slot for a candidate and moves the
// application into interviewing in the same transaction. Booking is the
// second legal entry path into interviewing: any non-terminal status
// qualifies; an application already past interviewing fails with
// IllegalTransitionError and no slot is created.
func (e *Engine) BookInterview(ctx context.Context, applicationID, candidateID, jobID, recruiterID uuid.UUID, scheduledAt time.Time) (*model.InterviewSlot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	app, err := e.store.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	if app == nil || app.CandidateID != candidateID || app.JobID != jobID {
		return nil, &InvalidReferenceError{Reason: "application, candidate and job ids do not resolve to one application"}
	}
	if app.Status.Terminal() {
		return nil, &IllegalTransitionError{From: app.Status, To: model.StatusInterviewing}
	}

	conflict, err := e.store.HasConfirmedSlotAt(ctx, recruiterID, scheduledAt)
	if err != nil {
		return nil, fmt.Errorf("check slot conflict: %w", err)
	}
	if conflict {
		return nil, &SlotConflictError{RecruiterID: recruiterID}
	}

	now := e.now()
	slot := &model.InterviewSlot{
		SlotID:        uuid.New(),
		ApplicationID: applicationID,
		JobID:         jobID,
		CandidateID:   candidateID,
		RecruiterID:   recruiterID,
		ScheduledAt:   scheduledAt,
		Status:        model.SlotConfirmed,
	}

	old := app.Status
	var note *model.Note
	if old != model.StatusInterviewing {
		note = &model.Note{
			NoteID:        uuid.New(),
			ApplicationID: applicationID,
			AuthorID:      systemAuthor,
			AuthorName:    systemAuthor,
			Content:       fmt.Sprintf("status changed from %s to %s", old, model.StatusInterviewing),
			CreatedAt:     now,
		}
	}

	err = e.store.Tx(ctx, func(s Store) error {
		if err := s.InsertSlot(ctx, slot); err != nil {
			return fmt.Errorf("insert slot: %w", err)
		}
		if note != nil {
			if err := s.UpdateApplicationStatus(ctx, applicationID, model.StatusInterviewing, now); err != nil {
				return fmt.Errorf("update status: %w", err)
			}
			if err := s.InsertNote(ctx, note); err != nil {
				return fmt.Errorf("insert audit note: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if note != nil {
		e.events.StatusChanged(ctx, ApplicationStatusChanged{
			ApplicationID: applicationID,
			OldStatus:     old,
			NewStatus:     model.StatusInterviewing,
			At:            now,
		})
	}
	e.events.InterviewBooked(ctx, InterviewBooked{
		ApplicationID: applicationID,
		SlotID:        slot.SlotID,
		ScheduledAt:   scheduledAt,
	})
	return slot, nil
}

// JoinApplicant denormalizes an application with its candidate and CV. A
// missing candidate is an error; a missing CV is not, the join is optional.
func (e *Engine) JoinApplicant(ctx context.Context, app model.Application) (*model.Applicant, error) {
	candidate, err := e.store.GetCandidate(ctx, app.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	if candidate == nil {
		return nil, &NotFoundError{Entity: "candidate", ID: app.CandidateID}
	}

	cv, err := e.store.GetCV(ctx, app.CVID)
	if err != nil {
		return nil, fmt.Errorf("get cv: %w", err)
	}

	return &model.Applicant{Application: app, Candidate: candidate, CV: cv}, nil
}

// ApplicantsForJob joins and filters a job's application set. Applications
// whose candidate is missing are silently dropped.
func (e *Engine) ApplicantsForJob(ctx context.Context, jobID uuid.UUID, criteria Criteria) ([]model.Applicant, error) {
	job, err := e.store.GetJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	if job == nil {
		return nil, &NotFoundError{Entity: "job", ID: jobID}
	}

	apps, err := e.store.ListApplicationsByJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	applicants := make([]model.Applicant, 0, len(apps))
	for _, app := range apps {
		joined, err := e.JoinApplicant(ctx, app)
		if err != nil {
			var nf *NotFoundError
			if errors.As(err, &nf) {
				continue
			}
			return nil, err
		}
		applicants = append(applicants, *joined)
	}

	return criteria.Apply(applicants), nil
}

// BoardForJob builds the Kanban board for one job from its filtered
// application set.
func (e *Engine) BoardForJob(ctx context.Context, jobID uuid.UUID, criteria Criteria, order SortOrder) (*Board, error) {
	applicants, err := e.ApplicantsForJob(ctx, jobID, criteria)
	if err != nil {
		return nil, err
	}
	return BuildBoard(jobID, applicants, order), nil
}

// UpdateJobSkills replaces a job's skill set and recomputes the cached match
// score of every application on the job.
func (e *Engine) UpdateJobSkills(ctx context.Context, jobID uuid.UUID, skills []string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	job, err := e.store.GetJob(ctx, jobID)
	if err != nil {
		return 0, fmt.Errorf("get job: %w", err)
	}
	if job == nil {
		return 0, &NotFoundError{Entity: "job", ID: jobID}
	}

	if err := e.store.UpdateJobSkills(ctx, jobID, skills); err != nil {
		return 0, fmt.Errorf("update job skills: %w", err)
	}
	job.Skills = skills

	apps, err := e.store.ListApplicationsByJob(ctx, jobID)
	if err != nil {
		return 0, fmt.Errorf("list applications: %w", err)
	}

	rescored := 0
	now := e.now()
	for _, app := range apps {
		candidate, err := e.store.GetCandidate(ctx, app.CandidateID)
		if err != nil {
			return rescored, fmt.Errorf("get candidate: %w", err)
		}
		if candidate == nil {
			continue
		}
		cv, err := e.store.GetCV(ctx, app.CVID)
		if err != nil {
			return rescored, fmt.Errorf("get cv: %w", err)
		}
		score := MatchScore(candidate, job, cv)
		if score == app.MatchScore {
			continue
		}
		if err := e.store.UpdateApplicationScore(ctx, app.ApplicationID, score, now); err != nil {
			return rescored, fmt.Errorf("update score: %w", err)
		}
		rescored++
	}
	return rescored, nil
}

func (e *Engine) getApplication(ctx context.Context, applicationID uuid.UUID) (*model.Application, error) {
	app, err := e.store.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	if app == nil {
		return nil, &NotFoundError{Entity: "application", ID: applicationID}
	}
	return app, nil
}
