package usecase

import (
	"context"
	"errors"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
)

type employerProfileUsecase struct {
	profileRepo domain.EmployerProfileRepository
}

func NewEmployerProfileUsecase(profileRepo domain.EmployerProfileRepository) domain.EmployerProfileUsecase {
	return &employerProfileUsecase{profileRepo: profileRepo}
}

func (u *employerProfileUsecase) CreateProfile(ctx context.Context, userID string, profile *domain.EmployerProfile) error {
	profile.UserID = userID
	return u.profileRepo.Create(ctx, profile)
}

func (u *employerProfileUsecase) GetProfile(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *employerProfileUsecase) UpdateProfile(ctx context.Context, userID string, profile *domain.EmployerProfile) error {
	profile.UserID = userID
	if err := u.profileRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Profile not found")
		}
		return err
	}
	return nil
}

func (u *employerProfileUsecase) DeleteProfile(ctx context.Context, userID string) error {
	if err := u.profileRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Profile not found")
		}
		return err
	}
	return nil
}
