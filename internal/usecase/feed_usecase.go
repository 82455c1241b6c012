package usecase

import (
	"context"
	"errors"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
)

type feedUsecase struct {
	jobRepo   domain.JobRepository
	skillRepo domain.SkillRepository
}

func NewFeedUsecase(jobRepo domain.JobRepository, skillRepo domain.SkillRepository) domain.FeedUsecase {
	return &feedUsecase{jobRepo: jobRepo, skillRepo: skillRepo}
}

func (u *feedUsecase) SearchJobs(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithEmployer, error) {
	filter.Sort = NormalizeSort(filter.Sort)
	jobs, err := u.jobRepo.SearchOpen(ctx, filter)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if jobs == nil {
		jobs = []domain.JobWithEmployer{}
	}
	return jobs, nil
}

func (u *feedUsecase) GetJob(ctx context.Context, jobID int64) (*domain.JobWithEmployer, error) {
	job, err := u.jobRepo.GetByIDWithEmployer(ctx, jobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Job not found")
		}
		return nil, apperror.Internal(err)
	}
	return job, nil
}

func (u *feedUsecase) ListSkillsCatalog(ctx context.Context) ([]domain.Skill, error) {
	skills, err := u.skillRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if skills == nil {
		skills = []domain.Skill{}
	}
	return skills, nil
}

// NormalizeSort maps unknown sort values to the default recent ordering.
func NormalizeSort(sort string) string {
	switch sort {
	case domain.SortPayAsc, domain.SortPayDesc:
		return sort
	default:
		return domain.SortRecent
	}
}
