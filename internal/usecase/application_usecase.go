package usecase

import (
	"context"
	"errors"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
)

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	jobRepo         domain.JobRepository
	seekerRepo      domain.SeekerProfileRepository
}

func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	jobRepo domain.JobRepository,
	seekerRepo domain.SeekerProfileRepository,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		seekerRepo:      seekerRepo,
	}
}

// seekerProfile resolves the caller's profile, the precondition for every
// application operation.
func (u *applicationUsecase) seekerProfile(ctx context.Context, seekerUserID string) (*domain.SeekerProfile, error) {
	profile, err := u.seekerRepo.GetByUserID(ctx, seekerUserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.BadRequest("Create a profile before applying to jobs")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *applicationUsecase) Apply(ctx context.Context, seekerUserID string, jobID int64) (*domain.Application, error) {
	profile, err := u.seekerProfile(ctx, seekerUserID)
	if err != nil {
		return nil, err
	}

	job, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	if job.Status != domain.JobStatusOpen {
		return nil, apperror.BadRequest("This job is no longer accepting applications")
	}

	// Friendly pre-check; the unique (job_id, seeker_profile_id) pair is
	// the real guarantee when two applies race.
	exists, err := u.applicationRepo.Exists(ctx, jobID, profile.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.Conflict("You have already applied to this job")
	}

	app := &domain.Application{
		JobID:           jobID,
		SeekerProfileID: profile.ID,
	}
	if err := u.applicationRepo.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (u *applicationUsecase) ListMyApplications(ctx context.Context, seekerUserID string) ([]domain.ApplicationWithJob, error) {
	profile, err := u.seekerRepo.GetByUserID(ctx, seekerUserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, apperror.Internal(err)
	}

	apps, err := u.applicationRepo.FetchBySeekerProfileID(ctx, profile.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if apps == nil {
		apps = []domain.ApplicationWithJob{}
	}
	return apps, nil
}

func (u *applicationUsecase) Withdraw(ctx context.Context, seekerUserID string, applicationID int64) error {
	profile, err := u.seekerProfile(ctx, seekerUserID)
	if err != nil {
		return err
	}

	if err := u.applicationRepo.Delete(ctx, profile.ID, applicationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Application not found")
		}
		return apperror.Internal(err)
	}
	return nil
}
