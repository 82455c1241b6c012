package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"
	"go-jobmarket-backend/pkg/auth"

	"github.com/google/uuid"
)

type authUsecase struct {
	userRepo domain.UserRepository
	tokens   *auth.TokenManager
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo, tokens: tokens}
}

func (u *authUsecase) Signup(ctx context.Context, email, password string, role domain.Role) (*domain.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if !role.Valid() {
		return nil, apperror.BadRequest("Role must be either JOB_SEEKER or JOB_PROVIDER")
	}

	// Friendly pre-check; the unique index on email is what actually
	// guarantees no duplicates under concurrency.
	if existing, err := u.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, apperror.Conflict("User with this email already exists")
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := u.tokens.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AuthResult{Token: token, User: user.Public()}, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	// Same error for unknown email and wrong password; callers cannot
	// probe which emails are registered.
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid email or password")
		}
		return nil, apperror.Internal(err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, apperror.Unauthorized("Invalid email or password")
	}

	token, err := u.tokens.Generate(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.AuthResult{Token: token, User: user.Public()}, nil
}
