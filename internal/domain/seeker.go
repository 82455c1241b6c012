package domain

import (
	"context"
	"time"
)

// SeekerProfile is the job seeker's profile, one per user, with owned
// sub-collections. Updates fully replace the nested sets.
type SeekerProfile struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Address   *string   `json:"address"`
	Phone     *string   `json:"phone"`
	Education *string   `json:"education"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Skills            []ProfileSkill    `json:"skills"`
	EmploymentHistory []EmploymentEntry `json:"employmentHistory"`
	References        []Reference       `json:"references"`
}

// ProfileSkill links a seeker profile to a catalog skill. The joined Skill
// is populated on reads for skillName/requiresCertificate.
type ProfileSkill struct {
	ID             int64   `json:"id"`
	SkillID        int64   `json:"skillId"`
	CertificateURL *string `json:"certificateUrl"`
	Skill          *Skill  `json:"skill,omitempty"`
}

type EmploymentEntry struct {
	ID          int64   `json:"id"`
	CompanyName string  `json:"companyName"`
	Duration    string  `json:"duration"`
	Description *string `json:"description"`
}

type Reference struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Contact     string  `json:"contact"`
	Description *string `json:"description"`
}

type SeekerProfileRepository interface {
	// Create inserts the profile row and all nested rows in one transaction.
	Create(ctx context.Context, profile *SeekerProfile) error
	GetByUserID(ctx context.Context, userID string) (*SeekerProfile, error)
	GetByID(ctx context.Context, id int64) (*SeekerProfile, error)
	// GetByIDs fetches the given profiles, collections included, in a
	// fixed number of round trips. Missing ids are silently absent.
	GetByIDs(ctx context.Context, ids []int64) ([]SeekerProfile, error)
	// Update overwrites scalar fields and full-replaces the nested
	// collections (delete-all, insert-new) in one transaction.
	Update(ctx context.Context, profile *SeekerProfile) error
	// Delete removes the profile, its nested rows, and the seeker's
	// applications in one transaction.
	Delete(ctx context.Context, userID string) error
}

type SeekerProfileUsecase interface {
	CreateProfile(ctx context.Context, userID string, profile *SeekerProfile) error
	GetProfile(ctx context.Context, userID string) (*SeekerProfile, error)
	// GetProfileByID is the employer-facing view of a seeker profile.
	GetProfileByID(ctx context.Context, id int64) (*SeekerProfile, error)
	UpdateProfile(ctx context.Context, userID string, profile *SeekerProfile) error
	DeleteProfile(ctx context.Context, userID string) error
}
