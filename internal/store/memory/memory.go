// Package memory is the map-backed Store used by tests and DSN-less runs.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/anhtu2808/talent-nexus-sub000/internal/pipeline"
	"github.com/anhtu2808/talent-nexus-sub000/pkg/model"
	"github.com/google/uuid"
)

type Store struct {
	mu           sync.RWMutex
	jobs         map[uuid.UUID]model.Job
	candidates   map[uuid.UUID]model.CandidateProfile
	cvs          map[uuid.UUID]model.CV
	applications map[uuid.UUID]model.Application
	notes        map[uuid.UUID][]model.Note
	slots        map[uuid.UUID]model.InterviewSlot
}

var _ pipeline.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		jobs:         make(map[uuid.UUID]model.Job),
		candidates:   make(map[uuid.UUID]model.CandidateProfile),
		cvs:          make(map[uuid.UUID]model.CV),
		applications: make(map[uuid.UUID]model.Application),
		notes:        make(map[uuid.UUID][]model.Note),
		slots:        make(map[uuid.UUID]model.InterviewSlot),
	}
}

func (s *Store) PutJob(job model.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.JobID] = job
}

func (s *Store) PutCandidate(c model.CandidateProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates[c.CandidateID] = c
}

func (s *Store) PutCV(cv model.CV) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cvs[cv.CVID] = cv
}

func (s *Store) DeleteCandidate(candidateID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.candidates, candidateID)
}

func (s *Store) GetJob(_ context.Context, jobID uuid.UUID) (*model.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return nil, nil
	}
	return &job, nil
}

func (s *Store) ListJobs(_ context.Context) ([]model.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Job, 0, len(s.jobs))
	for _, job := range s.jobs {
		out = append(out, job)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PostedAt.After(out[j].PostedAt) })
	return out, nil
}

func (s *Store) UpdateJobSkills(_ context.Context, jobID uuid.UUID, skills []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return nil
	}
	job.Skills = append([]string(nil), skills...)
	s.jobs[jobID] = job
	return nil
}

func (s *Store) SetJobActive(_ context.Context, jobID uuid.UUID, active bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return nil
	}
	job.IsActive = active
	s.jobs[jobID] = job
	return nil
}

func (s *Store) IncrementJobViews(_ context.Context, jobID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return nil
	}
	job.Views++
	s.jobs[jobID] = job
	return nil
}

func (s *Store) IncrementJobClicks(_ context.Context, jobID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[jobID]
	if !ok {
		return nil
	}
	job.Clicks++
	s.jobs[jobID] = job
	return nil
}

func (s *Store) GetCandidate(_ context.Context, candidateID uuid.UUID) (*model.CandidateProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.candidates[candidateID]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (s *Store) GetCV(_ context.Context, cvID uuid.UUID) (*model.CV, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cv, ok := s.cvs[cvID]
	if !ok {
		return nil, nil
	}
	return &cv, nil
}

func (s *Store) ListCVsByCandidate(_ context.Context, candidateID uuid.UUID) ([]model.CV, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.CV, 0)
	for _, cv := range s.cvs {
		if cv.CandidateID == candidateID {
			out = append(out, cv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UploadedAt.Before(out[j].UploadedAt) })
	return out, nil
}

func (s *Store) GetApplication(_ context.Context, applicationID uuid.UUID) (*model.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	app, ok := s.applications[applicationID]
	if !ok {
		return nil, nil
	}
	app.Notes = s.notesLocked(applicationID)
	return &app, nil
}

func (s *Store) GetApplicationByPair(_ context.Context, jobID, candidateID uuid.UUID) (*model.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, app := range s.applications {
		if app.JobID == jobID && app.CandidateID == candidateID {
			app.Notes = s.notesLocked(app.ApplicationID)
			return &app, nil
		}
	}
	return nil, nil
}

func (s *Store) ListApplicationsByJob(_ context.Context, jobID uuid.UUID) ([]model.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Application, 0)
	for _, app := range s.applications {
		if app.JobID == jobID {
			app.Notes = s.notesLocked(app.ApplicationID)
			out = append(out, app)
		}
	}
	return out, nil
}

func (s *Store) InsertApplication(_ context.Context, app *model.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications[app.ApplicationID] = *app
	return nil
}

func (s *Store) UpdateApplicationStatus(_ context.Context, applicationID uuid.UUID, status model.Status, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.applications[applicationID]
	if !ok {
		return nil
	}
	app.Status = status
	app.UpdatedAt = updatedAt
	s.applications[applicationID] = app
	return nil
}

func (s *Store) UpdateApplicationCV(_ context.Context, applicationID, cvID uuid.UUID, matchScore int, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.applications[applicationID]
	if !ok {
		return nil
	}
	app.CVID = cvID
	app.MatchScore = matchScore
	app.UpdatedAt = updatedAt
	s.applications[applicationID] = app
	return nil
}

func (s *Store) UpdateApplicationScore(_ context.Context, applicationID uuid.UUID, matchScore int, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.applications[applicationID]
	if !ok {
		return nil
	}
	app.MatchScore = matchScore
	app.UpdatedAt = updatedAt
	s.applications[applicationID] = app
	return nil
}

func (s *Store) InsertNote(_ context.Context, note *model.Note) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[note.ApplicationID] = append(s.notes[note.ApplicationID], *note)
	return nil
}

func (s *Store) InsertSlot(_ context.Context, slot *model.InterviewSlot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[slot.SlotID] = *slot
	return nil
}

func (s *Store) ListSlotsByApplication(_ context.Context, applicationID uuid.UUID) ([]model.InterviewSlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.InterviewSlot, 0)
	for _, slot := range s.slots {
		if slot.ApplicationID == applicationID {
			out = append(out, slot)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	return out, nil
}

func (s *Store) HasConfirmedSlotAt(_ context.Context, recruiterID uuid.UUID, at time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, slot := range s.slots {
		if slot.RecruiterID == recruiterID && slot.Status == model.SlotConfirmed && slot.ScheduledAt.Equal(at) {
			return true, nil
		}
	}
	return false, nil
}

// Tx runs fn directly: in-memory writes cannot fail partially, so the
// engine's single-writer lock already makes the section atomic.
func (s *Store) Tx(_ context.Context, fn func(pipeline.Store) error) error {
	return fn(s)
}

// notesLocked returns the application's notes ordered by creation time.
// Callers must hold at least a read lock.
func (s *Store) notesLocked(applicationID uuid.UUID) []model.Note {
	notes := append([]model.Note(nil), s.notes[applicationID]...)
	sort.SliceStable(notes, func(i, j int) bool { return notes[i].CreatedAt.Before(notes[j].CreatedAt) })
	if notes == nil {
		notes = []model.Note{}
	}
	return notes
}
