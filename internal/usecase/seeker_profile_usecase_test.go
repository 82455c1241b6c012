package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/internal/usecase"
	"go-jobmarket-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func strPtr(s string) *string { return &s }

func TestSeekerProfileCertificateInvariant(t *testing.T) {
	ctx := context.Background()

	catalog := []domain.Skill{
		{ID: 1, SkillName: "Driving", RequiresCertificate: true},
		{ID: 2, SkillName: "Gardening", RequiresCertificate: false},
	}

	t.Run("Should reject certificate-requiring skill without certificateUrl", func(t *testing.T) {
		profileRepo := new(MockSeekerProfileRepo)
		skillRepo := new(MockSkillRepo)
		uc := usecase.NewSeekerProfileUsecase(profileRepo, skillRepo)

		skillRepo.On("GetByIDs", ctx, []int64{1}).Return(catalog[:1], nil)

		profile := &domain.SeekerProfile{
			Name:   "Budi",
			Skills: []domain.ProfileSkill{{SkillID: 1}},
		}
		err := uc.CreateProfile(ctx, "u1", profile)
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Contains(t, appErr.Fields[0], "Driving")
		profileRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should accept certificate-requiring skill with certificateUrl", func(t *testing.T) {
		profileRepo := new(MockSeekerProfileRepo)
		skillRepo := new(MockSkillRepo)
		uc := usecase.NewSeekerProfileUsecase(profileRepo, skillRepo)

		skillRepo.On("GetByIDs", ctx, []int64{1, 2}).Return(catalog, nil)
		profileRepo.On("Create", ctx, mock.AnythingOfType("*domain.SeekerProfile")).Return(nil)

		profile := &domain.SeekerProfile{
			Name: "Budi",
			Skills: []domain.ProfileSkill{
				{SkillID: 1, CertificateURL: strPtr("https://certs.example.com/sim-a.pdf")},
				{SkillID: 2},
			},
		}
		err := uc.CreateProfile(ctx, "u1", profile)
		assert.NoError(t, err)
		profileRepo.AssertExpectations(t)
	})

	t.Run("Should reject unknown skill id", func(t *testing.T) {
		profileRepo := new(MockSeekerProfileRepo)
		skillRepo := new(MockSkillRepo)
		uc := usecase.NewSeekerProfileUsecase(profileRepo, skillRepo)

		skillRepo.On("GetByIDs", ctx, []int64{99}).Return([]domain.Skill{}, nil)

		profile := &domain.SeekerProfile{
			Name:   "Budi",
			Skills: []domain.ProfileSkill{{SkillID: 99}},
		}
		err := uc.CreateProfile(ctx, "u1", profile)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Unknown skill")
	})

	t.Run("Should enforce invariant on update too", func(t *testing.T) {
		profileRepo := new(MockSeekerProfileRepo)
		skillRepo := new(MockSkillRepo)
		uc := usecase.NewSeekerProfileUsecase(profileRepo, skillRepo)

		skillRepo.On("GetByIDs", ctx, []int64{1}).Return(catalog[:1], nil)

		profile := &domain.SeekerProfile{
			Name:   "Budi",
			Skills: []domain.ProfileSkill{{SkillID: 1, CertificateURL: strPtr("")}},
		}
		err := uc.UpdateProfile(ctx, "u1", profile)
		assert.Error(t, err)
		profileRepo.AssertNotCalled(t, "Update")
	})
}

func TestSeekerProfileOwnership(t *testing.T) {
	ctx := context.Background()

	t.Run("Should force UserID from authenticated caller", func(t *testing.T) {
		profileRepo := new(MockSeekerProfileRepo)
		skillRepo := new(MockSkillRepo)
		uc := usecase.NewSeekerProfileUsecase(profileRepo, skillRepo)

		profileRepo.On("Create", ctx, mock.AnythingOfType("*domain.SeekerProfile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.SeekerProfile)
			assert.Equal(t, "real-user", p.UserID)
		})

		profile := &domain.SeekerProfile{UserID: "someone-else", Name: "Budi"}
		err := uc.CreateProfile(ctx, "real-user", profile)
		assert.NoError(t, err)
		profileRepo.AssertExpectations(t)
	})

	t.Run("Should surface missing profile as 404", func(t *testing.T) {
		profileRepo := new(MockSeekerProfileRepo)
		skillRepo := new(MockSkillRepo)
		uc := usecase.NewSeekerProfileUsecase(profileRepo, skillRepo)

		profileRepo.On("GetByUserID", ctx, "u1").Return(nil, domain.ErrNotFound)

		_, err := uc.GetProfile(ctx, "u1")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})

	t.Run("Should surface delete of absent profile as 404", func(t *testing.T) {
		profileRepo := new(MockSeekerProfileRepo)
		skillRepo := new(MockSkillRepo)
		uc := usecase.NewSeekerProfileUsecase(profileRepo, skillRepo)

		profileRepo.On("Delete", ctx, "u1").Return(domain.ErrNotFound)

		err := uc.DeleteProfile(ctx, "u1")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})
}
