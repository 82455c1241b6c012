package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
)

type seekerProfileUsecase struct {
	profileRepo domain.SeekerProfileRepository
	skillRepo   domain.SkillRepository
}

func NewSeekerProfileUsecase(profileRepo domain.SeekerProfileRepository, skillRepo domain.SkillRepository) domain.SeekerProfileUsecase {
	return &seekerProfileUsecase{
		profileRepo: profileRepo,
		skillRepo:   skillRepo,
	}
}

func (u *seekerProfileUsecase) CreateProfile(ctx context.Context, userID string, profile *domain.SeekerProfile) error {
	if err := u.checkCertificates(ctx, profile.Skills); err != nil {
		return err
	}
	profile.UserID = userID
	return u.profileRepo.Create(ctx, profile)
}

func (u *seekerProfileUsecase) GetProfile(ctx context.Context, userID string) (*domain.SeekerProfile, error) {
	profile, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *seekerProfileUsecase) GetProfileByID(ctx context.Context, id int64) (*domain.SeekerProfile, error) {
	profile, err := u.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Applicant not found")
		}
		return nil, apperror.Internal(err)
	}
	return profile, nil
}

func (u *seekerProfileUsecase) UpdateProfile(ctx context.Context, userID string, profile *domain.SeekerProfile) error {
	if err := u.checkCertificates(ctx, profile.Skills); err != nil {
		return err
	}
	profile.UserID = userID
	if err := u.profileRepo.Update(ctx, profile); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Profile not found")
		}
		return err
	}
	return nil
}

func (u *seekerProfileUsecase) DeleteProfile(ctx context.Context, userID string) error {
	if err := u.profileRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Profile not found")
		}
		return err
	}
	return nil
}

// checkCertificates enforces the catalog invariant: a skill flagged
// requires_certificate must carry a non-empty certificateUrl. Unknown
// skill ids are rejected here rather than as FK errors.
func (u *seekerProfileUsecase) checkCertificates(ctx context.Context, skills []domain.ProfileSkill) error {
	if len(skills) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(skills))
	for _, ps := range skills {
		ids = append(ids, ps.SkillID)
	}

	catalog, err := u.skillRepo.GetByIDs(ctx, ids)
	if err != nil {
		return apperror.Internal(err)
	}
	byID := make(map[int64]domain.Skill, len(catalog))
	for _, s := range catalog {
		byID[s.ID] = s
	}

	var fields []string
	for _, ps := range skills {
		skill, ok := byID[ps.SkillID]
		if !ok {
			return apperror.BadRequest(fmt.Sprintf("Unknown skill id %d", ps.SkillID))
		}
		if skill.RequiresCertificate && (ps.CertificateURL == nil || *ps.CertificateURL == "") {
			fields = append(fields, fmt.Sprintf("Certificate required for %s", skill.SkillName))
		}
	}
	if len(fields) > 0 {
		return apperror.Validation("Validation failed", fields)
	}
	return nil
}
