package domain

import (
	"context"
	"time"
)

// Skill is a global, seeded catalog entry shared by profiles and jobs.
// The catalog is read-only to users.
type Skill struct {
	ID                  int64     `json:"id"`
	SkillName           string    `json:"skillName"`
	RequiresCertificate bool      `json:"requiresCertificate"`
	CreatedAt           time.Time `json:"createdAt"`
}

type SkillRepository interface {
	GetAll(ctx context.Context) ([]Skill, error)
	GetByIDs(ctx context.Context, ids []int64) ([]Skill, error)
	// Seed inserts the fixed catalog idempotently (insert-if-absent by name).
	Seed(ctx context.Context, skills []Skill) error
}
