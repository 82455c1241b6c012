package postgres

import (
	"context"
	"errors"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type employerProfileRepo struct {
	db *pgxpool.Pool
}

func NewEmployerProfileRepository(db *pgxpool.Pool) domain.EmployerProfileRepository {
	return &employerProfileRepo{db: db}
}

func (r *employerProfileRepo) Create(ctx context.Context, profile *domain.EmployerProfile) error {
	query := `
		INSERT INTO employer_profiles (user_id, company_name, company_description, company_website, contact_info, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		profile.UserID, profile.CompanyName, profile.CompanyDescription,
		profile.CompanyWebsite, profile.ContactInfo,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("Profile already exists")
		}
		return err
	}
	return nil
}

func (r *employerProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.EmployerProfile, error) {
	query := `
		SELECT id, user_id, company_name, company_description, company_website, contact_info, created_at, updated_at
		FROM employer_profiles WHERE user_id = $1`

	var p domain.EmployerProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.CompanyDescription,
		&p.CompanyWebsite, &p.ContactInfo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *employerProfileRepo) Update(ctx context.Context, profile *domain.EmployerProfile) error {
	query := `
		UPDATE employer_profiles SET
			company_name = $1, company_description = $2, company_website = $3,
			contact_info = $4, updated_at = NOW()
		WHERE user_id = $5
		RETURNING id`

	err := r.db.QueryRow(ctx, query,
		profile.CompanyName, profile.CompanyDescription, profile.CompanyWebsite,
		profile.ContactInfo, profile.UserID,
	).Scan(&profile.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *employerProfileRepo) Delete(ctx context.Context, userID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var profileID int64
	err = tx.QueryRow(ctx, `SELECT id FROM employer_profiles WHERE user_id = $1`, userID).Scan(&profileID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	// Cascade: the employer's jobs go with the profile, and everything
	// hanging off those jobs goes with them.
	for _, del := range []string{
		`DELETE FROM applications WHERE job_id IN (SELECT id FROM jobs WHERE provider_profile_id = $1)`,
		`DELETE FROM job_skills WHERE job_id IN (SELECT id FROM jobs WHERE provider_profile_id = $1)`,
		`DELETE FROM jobs WHERE provider_profile_id = $1`,
		`DELETE FROM employer_profiles WHERE id = $1`,
	} {
		if _, err := tx.Exec(ctx, del, profileID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
