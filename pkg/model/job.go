package model

import (
	"time"

	"github.com/google/uuid"
)

type JobType string

const (
	JobTypeFullTime JobType = "full-time"
	JobTypePartTime JobType = "part-time"
	JobTypeContract JobType = "contract"
	JobTypeRemote   JobType = "remote"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeRemote:
		return true
	}
	return false
}

// Job is immutable once published except for IsActive, Skills and the
// view/click counters, all owned by the posting recruiter.
type Job struct {
	JobID        uuid.UUID `json:"job_id" db:"job_id"`
	Title        string    `json:"title" db:"title"`
	Company      string    `json:"company" db:"company"`
	Locations    []string  `json:"locations" db:"locations"`
	Salary       string    `json:"salary" db:"salary"`
	Type         JobType   `json:"type" db:"type"`
	Skills       []string  `json:"skills" db:"skills"`
	Requirements []string  `json:"requirements" db:"requirements"`
	PostedAt     time.Time `json:"posted_at" db:"posted_at"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	Views        int       `json:"views" db:"views"`
	Clicks       int       `json:"clicks" db:"clicks"`
	RecruiterID  uuid.UUID `json:"recruiter_id" db:"recruiter_id"`
}

type PatchJobRequest struct {
	IsActive *bool     `json:"is_active,omitempty"`
	Skills   *[]string `json:"skills,omitempty"`
}
