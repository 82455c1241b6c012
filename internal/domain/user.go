package domain

import (
	"context"
	"time"
)

// Role is the closed set of account types in the marketplace.
type Role string

const (
	RoleJobSeeker   Role = "JOB_SEEKER"
	RoleJobProvider Role = "JOB_PROVIDER"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleJobSeeker, RoleJobProvider:
		return true
	}
	return false
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicUser is the client-facing view of a User (no credential material).
type PublicUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Role: u.Role}
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// AuthResult is returned by signup and login.
type AuthResult struct {
	Token string     `json:"token"`
	User  PublicUser `json:"user"`
}

type AuthUsecase interface {
	Signup(ctx context.Context, email, password string, role Role) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
