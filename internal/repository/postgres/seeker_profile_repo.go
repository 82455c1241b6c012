package postgres

import (
	"context"
	"errors"
	"fmt"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type seekerProfileRepo struct {
	db *pgxpool.Pool
}

func NewSeekerProfileRepository(db *pgxpool.Pool) domain.SeekerProfileRepository {
	return &seekerProfileRepo{db: db}
}

func (r *seekerProfileRepo) Create(ctx context.Context, profile *domain.SeekerProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO job_seeker_profiles (user_id, name, address, phone, education, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err = tx.QueryRow(ctx, query,
		profile.UserID, profile.Name, profile.Address, profile.Phone, profile.Education,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		// unique index on user_id: one profile per user
		if isUniqueViolation(err) {
			return apperror.Conflict("Profile already exists")
		}
		return err
	}

	if err := insertSeekerCollections(ctx, tx, profile); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *seekerProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.SeekerProfile, error) {
	query := `
		SELECT id, user_id, name, address, phone, education, created_at, updated_at
		FROM job_seeker_profiles WHERE user_id = $1`
	return r.getProfile(ctx, query, userID)
}

func (r *seekerProfileRepo) GetByID(ctx context.Context, id int64) (*domain.SeekerProfile, error) {
	query := `
		SELECT id, user_id, name, address, phone, education, created_at, updated_at
		FROM job_seeker_profiles WHERE id = $1`
	return r.getProfile(ctx, query, id)
}

func (r *seekerProfileRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.SeekerProfile, error) {
	if len(ids) == 0 {
		return []domain.SeekerProfile{}, nil
	}

	query := `
		SELECT id, user_id, name, address, phone, education, created_at, updated_at
		FROM job_seeker_profiles WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	profiles := []domain.SeekerProfile{}
	for rows.Next() {
		var p domain.SeekerProfile
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Name, &p.Address, &p.Phone, &p.Education,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*domain.SeekerProfile, len(profiles))
	for i := range profiles {
		refs[i] = &profiles[i]
	}
	if err := r.loadCollections(ctx, refs); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *seekerProfileRepo) getProfile(ctx context.Context, query string, arg interface{}) (*domain.SeekerProfile, error) {
	var p domain.SeekerProfile
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.UserID, &p.Name, &p.Address, &p.Phone, &p.Education,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if err := r.loadCollections(ctx, []*domain.SeekerProfile{&p}); err != nil {
		return nil, err
	}
	return &p, nil
}

// loadCollections populates skills (joined with the catalog), employment
// history and references for the given profiles in three round trips.
func (r *seekerProfileRepo) loadCollections(ctx context.Context, profiles []*domain.SeekerProfile) error {
	if len(profiles) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.SeekerProfile, len(profiles))
	ids := make([]int64, 0, len(profiles))
	for _, p := range profiles {
		p.Skills = []domain.ProfileSkill{}
		p.EmploymentHistory = []domain.EmploymentEntry{}
		p.References = []domain.Reference{}
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	skillsQuery := `
		SELECT ps.id, ps.profile_id, ps.skill_id, ps.certificate_url,
		       s.id, s.skill_name, s.requires_certificate, s.created_at
		FROM profile_skills ps
		JOIN skills s ON ps.skill_id = s.id
		WHERE ps.profile_id = ANY($1)
		ORDER BY s.skill_name ASC`

	rows, err := r.db.Query(ctx, skillsQuery, ids)
	if err != nil {
		return fmt.Errorf("failed to fetch profile skills: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ps domain.ProfileSkill
		var profileID int64
		var s domain.Skill
		if err := rows.Scan(
			&ps.ID, &profileID, &ps.SkillID, &ps.CertificateURL,
			&s.ID, &s.SkillName, &s.RequiresCertificate, &s.CreatedAt,
		); err != nil {
			return err
		}
		ps.Skill = &s
		if p, ok := byID[profileID]; ok {
			p.Skills = append(p.Skills, ps)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	empQuery := `
		SELECT id, profile_id, company_name, duration, description
		FROM employment_entries WHERE profile_id = ANY($1) ORDER BY id ASC`
	empRows, err := r.db.Query(ctx, empQuery, ids)
	if err != nil {
		return fmt.Errorf("failed to fetch employment history: %w", err)
	}
	defer empRows.Close()

	for empRows.Next() {
		var e domain.EmploymentEntry
		var profileID int64
		if err := empRows.Scan(&e.ID, &profileID, &e.CompanyName, &e.Duration, &e.Description); err != nil {
			return err
		}
		if p, ok := byID[profileID]; ok {
			p.EmploymentHistory = append(p.EmploymentHistory, e)
		}
	}
	if err := empRows.Err(); err != nil {
		return err
	}

	refQuery := `
		SELECT id, profile_id, name, contact, description
		FROM profile_references WHERE profile_id = ANY($1) ORDER BY id ASC`
	refRows, err := r.db.Query(ctx, refQuery, ids)
	if err != nil {
		return fmt.Errorf("failed to fetch references: %w", err)
	}
	defer refRows.Close()

	for refRows.Next() {
		var ref domain.Reference
		var profileID int64
		if err := refRows.Scan(&ref.ID, &profileID, &ref.Name, &ref.Contact, &ref.Description); err != nil {
			return err
		}
		if p, ok := byID[profileID]; ok {
			p.References = append(p.References, ref)
		}
	}
	return refRows.Err()
}

func (r *seekerProfileRepo) Update(ctx context.Context, profile *domain.SeekerProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE job_seeker_profiles SET
			name = $1, address = $2, phone = $3, education = $4, updated_at = NOW()
		WHERE user_id = $5
		RETURNING id`

	err = tx.QueryRow(ctx, query,
		profile.Name, profile.Address, profile.Phone, profile.Education, profile.UserID,
	).Scan(&profile.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	// Full-replace semantics: drop the old sets, insert the submitted ones.
	// The whole replacement commits atomically so readers never observe a
	// half-replaced collection.
	for _, del := range []string{
		`DELETE FROM profile_skills WHERE profile_id = $1`,
		`DELETE FROM employment_entries WHERE profile_id = $1`,
		`DELETE FROM profile_references WHERE profile_id = $1`,
	} {
		if _, err := tx.Exec(ctx, del, profile.ID); err != nil {
			return fmt.Errorf("failed to clear nested rows: %w", err)
		}
	}

	if err := insertSeekerCollections(ctx, tx, profile); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *seekerProfileRepo) Delete(ctx context.Context, userID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var profileID int64
	err = tx.QueryRow(ctx, `SELECT id FROM job_seeker_profiles WHERE user_id = $1`, userID).Scan(&profileID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	// Cascade: the seeker's applications go with the profile.
	for _, del := range []string{
		`DELETE FROM applications WHERE seeker_profile_id = $1`,
		`DELETE FROM profile_skills WHERE profile_id = $1`,
		`DELETE FROM employment_entries WHERE profile_id = $1`,
		`DELETE FROM profile_references WHERE profile_id = $1`,
		`DELETE FROM job_seeker_profiles WHERE id = $1`,
	} {
		if _, err := tx.Exec(ctx, del, profileID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// insertSeekerCollections inserts the nested rows for a profile inside the
// caller's transaction.
func insertSeekerCollections(ctx context.Context, tx pgx.Tx, profile *domain.SeekerProfile) error {
	skillInsert := `
		INSERT INTO profile_skills (profile_id, skill_id, certificate_url)
		VALUES ($1, $2, $3)`
	for _, ps := range profile.Skills {
		if _, err := tx.Exec(ctx, skillInsert, profile.ID, ps.SkillID, ps.CertificateURL); err != nil {
			return fmt.Errorf("failed to insert profile skill %d: %w", ps.SkillID, err)
		}
	}

	empInsert := `
		INSERT INTO employment_entries (profile_id, company_name, duration, description)
		VALUES ($1, $2, $3, $4)`
	for _, e := range profile.EmploymentHistory {
		if _, err := tx.Exec(ctx, empInsert, profile.ID, e.CompanyName, e.Duration, e.Description); err != nil {
			return fmt.Errorf("failed to insert employment entry: %w", err)
		}
	}

	refInsert := `
		INSERT INTO profile_references (profile_id, name, contact, description)
		VALUES ($1, $2, $3, $4)`
	for _, ref := range profile.References {
		if _, err := tx.Exec(ctx, refInsert, profile.ID, ref.Name, ref.Contact, ref.Description); err != nil {
			return fmt.Errorf("failed to insert reference: %w", err)
		}
	}

	return nil
}
