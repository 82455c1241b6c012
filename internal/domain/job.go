package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job employment types
const (
	EmploymentPerDay     = "PER_DAY"
	EmploymentPerProject = "PER_PROJECT"
)

// Job statuses
const (
	JobStatusOpen   = "OPEN"
	JobStatusClosed = "CLOSED"
)

type Job struct {
	ID                int64     `json:"id"`
	ProviderProfileID int64     `json:"providerProfileId"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Pay               float64   `json:"pay"`
	EmploymentType    string    `json:"employmentType"`
	Location          string    `json:"location"`
	Duration          *string   `json:"duration"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`

	RequiredSkills []JobSkill `json:"requiredSkills"`
}

// JobSkill links a job to a required catalog skill.
type JobSkill struct {
	ID      int64  `json:"id"`
	SkillID int64  `json:"skillId"`
	Skill   *Skill `json:"skill,omitempty"`
}

// JobWithEmployer extends Job with the employer's public profile fields
// for feed and detail views.
type JobWithEmployer struct {
	Job
	Employer EmployerSummary `json:"jobProviderProfile"`
}

// JobFilter carries the public feed filters. Zero-valued pointers mean
// "not filtered". Skills matching is any-of, not all-of.
type JobFilter struct {
	PayMin         *float64
	PayMax         *float64
	Location       string
	EmploymentType string
	SkillIDs       []int64
	Sort           string
}

// Feed sort orders
const (
	SortRecent  = "recent"
	SortPayAsc  = "pay_asc"
	SortPayDesc = "pay_desc"
)

type JobRepository interface {
	// Create inserts the job and its job_skills rows in one transaction.
	Create(ctx context.Context, job *Job) error
	GetByID(ctx context.Context, id int64) (*Job, error)
	GetByIDWithEmployer(ctx context.Context, id int64) (*JobWithEmployer, error)
	FetchByProviderID(ctx context.Context, providerProfileID int64) ([]Job, error)
	// SearchOpen returns OPEN jobs matching the filter, employer data joined.
	SearchOpen(ctx context.Context, filter JobFilter) ([]JobWithEmployer, error)
	// Update overwrites scalar fields and full-replaces job_skills, scoped
	// to the owning provider profile. An empty Status preserves the stored
	// one. ErrNotFound when absent or not owned.
	Update(ctx context.Context, providerProfileID int64, job *Job) error
	// Delete removes the job, its job_skills, and its applications, scoped
	// to the owning provider profile.
	Delete(ctx context.Context, providerProfileID, jobID int64) error
	// OwnedBy reports whether the job exists and belongs to the provider.
	OwnedBy(ctx context.Context, providerProfileID, jobID int64) (bool, error)
}

type JobUsecase interface {
	CreateJob(ctx context.Context, employerUserID string, job *Job) error
	ListMyJobs(ctx context.Context, employerUserID string) ([]Job, error)
	UpdateJob(ctx context.Context, employerUserID string, jobID int64, job *Job) error
	DeleteJob(ctx context.Context, employerUserID string, jobID int64) error
	ListApplicantsForJob(ctx context.Context, employerUserID string, jobID int64) ([]ApplicationWithSeeker, error)
}

// FeedUsecase serves the public, unauthenticated read views.
type FeedUsecase interface {
	SearchJobs(ctx context.Context, filter JobFilter) ([]JobWithEmployer, error)
	GetJob(ctx context.Context, jobID int64) (*JobWithEmployer, error)
	ListSkillsCatalog(ctx context.Context) ([]Skill, error)
}
