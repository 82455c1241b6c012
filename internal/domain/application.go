package domain

import (
	"context"
	"time"
)

// Application links a seeker profile to a job. A seeker may apply to a
// given job at most once; the pair is unique. Applications are created and
// deleted, never updated.
type Application struct {
	ID              int64     `json:"id"`
	JobID           int64     `json:"jobId"`
	SeekerProfileID int64     `json:"seekerProfileId"`
	AppliedAt       time.Time `json:"appliedAt"`
}

// ApplicationWithJob is the seeker-facing list item: the application plus
// the job and its employer summary.
type ApplicationWithJob struct {
	Application
	Job JobWithEmployer `json:"job"`
}

// ApplicationWithSeeker is the employer-facing list item: the application
// plus the applicant's full profile with nested collections.
type ApplicationWithSeeker struct {
	Application
	SeekerProfile SeekerProfile `json:"jobSeekerProfile"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	Exists(ctx context.Context, jobID, seekerProfileID int64) (bool, error)
	FetchBySeekerProfileID(ctx context.Context, seekerProfileID int64) ([]ApplicationWithJob, error)
	FetchByJobID(ctx context.Context, jobID int64) ([]Application, error)
	// Delete is scoped to the owning seeker profile. ErrNotFound when the
	// application is absent or owned by another seeker.
	Delete(ctx context.Context, seekerProfileID, applicationID int64) error
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, seekerUserID string, jobID int64) (*Application, error)
	ListMyApplications(ctx context.Context, seekerUserID string) ([]ApplicationWithJob, error)
	Withdraw(ctx context.Context, seekerUserID string, applicationID int64) error
}
