package domain

import (
	"context"
	"time"
)

// EmployerProfile is the job provider's company profile, one per user.
type EmployerProfile struct {
	ID                 int64     `json:"id"`
	UserID             string    `json:"userId"`
	CompanyName        string    `json:"companyName"`
	CompanyDescription *string   `json:"companyDescription"`
	CompanyWebsite     *string   `json:"companyWebsite"`
	ContactInfo        *string   `json:"contactInfo"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// EmployerSummary is the public slice of an employer profile attached to
// job listings and application views.
type EmployerSummary struct {
	CompanyName        string  `json:"companyName"`
	CompanyDescription *string `json:"companyDescription"`
	CompanyWebsite     *string `json:"companyWebsite"`
	ContactInfo        *string `json:"contactInfo"`
}

type EmployerProfileRepository interface {
	Create(ctx context.Context, profile *EmployerProfile) error
	GetByUserID(ctx context.Context, userID string) (*EmployerProfile, error)
	Update(ctx context.Context, profile *EmployerProfile) error
	Delete(ctx context.Context, userID string) error
}

type EmployerProfileUsecase interface {
	CreateProfile(ctx context.Context, userID string, profile *EmployerProfile) error
	GetProfile(ctx context.Context, userID string) (*EmployerProfile, error)
	UpdateProfile(ctx context.Context, userID string, profile *EmployerProfile) error
	DeleteProfile(ctx context.Context, userID string) error
}
