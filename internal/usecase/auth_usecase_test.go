package usecase_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/internal/usecase"
	"go-jobmarket-backend/pkg/apperror"
	"go-jobmarket-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testTokens() *auth.TokenManager {
	return auth.NewTokenManager("test-secret", time.Hour)
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create user and return token", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		mockRepo.On("GetByEmail", ctx, "worker@example.com").Return(nil, domain.ErrNotFound)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.NotEmpty(t, u.ID)
			assert.NotEqual(t, "secret123", u.PasswordHash)
		})

		result, err := uc.Signup(ctx, "worker@example.com", "secret123", domain.RoleJobSeeker)
		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "worker@example.com", result.User.Email)
		assert.Equal(t, domain.RoleJobSeeker, result.User.Role)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should normalize email before storing", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		mockRepo.On("GetByEmail", ctx, "worker@example.com").Return(nil, domain.ErrNotFound)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, "worker@example.com", u.Email)
		})

		_, err := uc.Signup(ctx, "  Worker@Example.COM ", "secret123", domain.RoleJobSeeker)
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should reject duplicate email", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		existing := &domain.User{ID: "u1", Email: "worker@example.com"}
		mockRepo.On("GetByEmail", ctx, "worker@example.com").Return(existing, nil)

		_, err := uc.Signup(ctx, "worker@example.com", "secret123", domain.RoleJobSeeker)
		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Contains(t, appErr.Message, "already exists")
	})

	t.Run("Should reject unknown role", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		_, err := uc.Signup(ctx, "worker@example.com", "secret123", domain.Role("ADMIN"))
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "Create")
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, _ := auth.HashPassword("secret123")
	user := &domain.User{
		ID:           "u1",
		Email:        "worker@example.com",
		PasswordHash: hash,
		Role:         domain.RoleJobSeeker,
	}

	t.Run("Should return token for valid credentials", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		tokens := testTokens()
		uc := usecase.NewAuthUsecase(mockRepo, tokens)

		mockRepo.On("GetByEmail", ctx, "worker@example.com").Return(user, nil)

		result, err := uc.Login(ctx, "worker@example.com", "secret123")
		assert.NoError(t, err)
		assert.Equal(t, "u1", result.User.ID)

		claims, err := tokens.Verify(result.Token)
		assert.NoError(t, err)
		assert.Equal(t, "u1", claims.UserID)
		assert.Equal(t, string(domain.RoleJobSeeker), claims.Role)
	})

	t.Run("Should return same error for unknown email and wrong password", func(t *testing.T) {
		mockRepo := new(MockUserRepo)
		uc := usecase.NewAuthUsecase(mockRepo, testTokens())

		mockRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, domain.ErrNotFound)
		mockRepo.On("GetByEmail", ctx, "worker@example.com").Return(user, nil)

		_, errUnknown := uc.Login(ctx, "nobody@example.com", "secret123")
		_, errWrongPass := uc.Login(ctx, "worker@example.com", "wrongpass")

		assert.Error(t, errUnknown)
		assert.Error(t, errWrongPass)
		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())

		var appErr *apperror.AppError
		assert.ErrorAs(t, errUnknown, &appErr)
		assert.Equal(t, http.StatusUnauthorized, appErr.Code)
	})
}
