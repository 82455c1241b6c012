package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo         domain.JobRepository
	employerRepo    domain.EmployerProfileRepository
	applicationRepo domain.ApplicationRepository
	seekerRepo      domain.SeekerProfileRepository
	skillRepo       domain.SkillRepository
}

func NewJobUsecase(
	jobRepo domain.JobRepository,
	employerRepo domain.EmployerProfileRepository,
	applicationRepo domain.ApplicationRepository,
	seekerRepo domain.SeekerProfileRepository,
	skillRepo domain.SkillRepository,
) domain.JobUsecase {
	return &jobUsecase{
		jobRepo:         jobRepo,
		employerRepo:    employerRepo,
		applicationRepo: applicationRepo,
		seekerRepo:      seekerRepo,
		skillRepo:       skillRepo,
	}
}

// checkSkills rejects job skill ids that are not in the catalog, before any
// write can trip an FK error.
func (u *jobUsecase) checkSkills(ctx context.Context, skills []domain.JobSkill) error {
	if len(skills) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(skills))
	for _, js := range skills {
		ids = append(ids, js.SkillID)
	}

	catalog, err := u.skillRepo.GetByIDs(ctx, ids)
	if err != nil {
		return apperror.Internal(err)
	}
	known := make(map[int64]bool, len(catalog))
	for _, s := range catalog {
		known[s.ID] = true
	}
	for _, js := range skills {
		if !known[js.SkillID] {
			return apperror.BadRequest(fmt.Sprintf("Unknown skill id %d", js.SkillID))
		}
	}
	return nil
}

// providerProfile resolves the caller's employer profile, the precondition
// for every job operation.
func (u *jobUsecase) providerProfile(ctx context.Context, employerUserID string) (*domain.EmployerProfile, error) {
	profile, err := u.employerRepo.GetByUserID(ctx, employerUserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.BadRequest("Create a company profile before posting jobs")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, employerUserID string, job *domain.Job) error {
	profile, err := u.providerProfile(ctx, employerUserID)
	if err != nil {
		return err
	}
	if err := u.checkSkills(ctx, job.RequiredSkills); err != nil {
		return err
	}

	job.ProviderProfileID = profile.ID
	job.Status = domain.JobStatusOpen
	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) ListMyJobs(ctx context.Context, employerUserID string) ([]domain.Job, error) {
	profile, err := u.providerProfile(ctx, employerUserID)
	if err != nil {
		return nil, err
	}
	return u.jobRepo.FetchByProviderID(ctx, profile.ID)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, employerUserID string, jobID int64, job *domain.Job) error {
	profile, err := u.providerProfile(ctx, employerUserID)
	if err != nil {
		return err
	}
	if err := u.checkSkills(ctx, job.RequiredSkills); err != nil {
		return err
	}

	job.ID = jobID
	if err := u.jobRepo.Update(ctx, profile.ID, job); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	return nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, employerUserID string, jobID int64) error {
	profile, err := u.providerProfile(ctx, employerUserID)
	if err != nil {
		return err
	}

	if err := u.jobRepo.Delete(ctx, profile.ID, jobID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	return nil
}

// ListApplicantsForJob returns the applications for an owned job, each with
// the applicant's full profile. A job owned by another employer is
// indistinguishable from a missing one.
func (u *jobUsecase) ListApplicantsForJob(ctx context.Context, employerUserID string, jobID int64) ([]domain.ApplicationWithSeeker, error) {
	profile, err := u.providerProfile(ctx, employerUserID)
	if err != nil {
		return nil, err
	}

	owned, err := u.jobRepo.OwnedBy(ctx, profile.ID, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if !owned {
		return nil, apperror.NotFound("Job not found")
	}

	apps, err := u.applicationRepo.FetchByJobID(ctx, jobID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	seekerIDs := make([]int64, 0, len(apps))
	seen := make(map[int64]bool, len(apps))
	for _, app := range apps {
		if !seen[app.SeekerProfileID] {
			seen[app.SeekerProfileID] = true
			seekerIDs = append(seekerIDs, app.SeekerProfileID)
		}
	}

	seekers, err := u.seekerRepo.GetByIDs(ctx, seekerIDs)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	byID := make(map[int64]domain.SeekerProfile, len(seekers))
	for _, s := range seekers {
		byID[s.ID] = s
	}

	result := make([]domain.ApplicationWithSeeker, 0, len(apps))
	for _, app := range apps {
		seeker, ok := byID[app.SeekerProfileID]
		if !ok {
			// Applications cascade with profile deletion, so a missing
			// profile here is a real failure, not a dangling row.
			return nil, apperror.Internal(fmt.Errorf("seeker profile %d missing for application %d", app.SeekerProfileID, app.ID))
		}
		result = append(result, domain.ApplicationWithSeeker{
			Application:   app,
			SeekerProfile: seeker,
		})
	}
	return result, nil
}
