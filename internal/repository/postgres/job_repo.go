package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-jobmarket-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.Job) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO jobs (provider_profile_id, title, description, pay, employment_type, location, duration, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at`

	err = tx.QueryRow(ctx, query,
		job.ProviderProfileID, job.Title, job.Description, job.Pay,
		job.EmploymentType, job.Location, job.Duration, job.Status,
	).Scan(&job.ID, &job.CreatedAt)
	if err != nil {
		return err
	}

	if err := insertJobSkills(ctx, tx, job); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := `
		SELECT id, provider_profile_id, title, description, pay, employment_type, location, duration, status, created_at
		FROM jobs WHERE id = $1`

	var job domain.Job
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.ProviderProfileID, &job.Title, &job.Description, &job.Pay,
		&job.EmploymentType, &job.Location, &job.Duration, &job.Status, &job.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if err := r.loadRequiredSkills(ctx, []*domain.Job{&job}); err != nil {
		return nil, err
	}
	return &job, nil
}

// GetByIDWithEmployer retrieves a job with the employer's public profile
// fields, regardless of job status.
func (r *jobRepo) GetByIDWithEmployer(ctx context.Context, id int64) (*domain.JobWithEmployer, error) {
	query := `
		SELECT j.id, j.provider_profile_id, j.title, j.description, j.pay,
		       j.employment_type, j.location, j.duration, j.status, j.created_at,
		       ep.company_name, ep.company_description, ep.company_website, ep.contact_info
		FROM jobs j
		JOIN employer_profiles ep ON j.provider_profile_id = ep.id
		WHERE j.id = $1`

	var job domain.JobWithEmployer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.ProviderProfileID, &job.Title, &job.Description, &job.Pay,
		&job.EmploymentType, &job.Location, &job.Duration, &job.Status, &job.CreatedAt,
		&job.Employer.CompanyName, &job.Employer.CompanyDescription,
		&job.Employer.CompanyWebsite, &job.Employer.ContactInfo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if err := r.loadRequiredSkills(ctx, []*domain.Job{&job.Job}); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepo) FetchByProviderID(ctx context.Context, providerProfileID int64) ([]domain.Job, error) {
	query := `
		SELECT id, provider_profile_id, title, description, pay, employment_type, location, duration, status, created_at
		FROM jobs WHERE provider_profile_id = $1 ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, providerProfileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID, &job.ProviderProfileID, &job.Title, &job.Description, &job.Pay,
			&job.EmploymentType, &job.Location, &job.Duration, &job.Status, &job.CreatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*domain.Job, len(jobs))
	for i := range jobs {
		refs[i] = &jobs[i]
	}
	if err := r.loadRequiredSkills(ctx, refs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// buildJobSearchQuery renders the public feed query for the given filter.
// The OPEN filter is hardcoded server-side; clients cannot widen it.
func buildJobSearchQuery(filter domain.JobFilter) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT j.id, j.provider_profile_id, j.title, j.description, j.pay,
		       j.employment_type, j.location, j.duration, j.status, j.created_at,
		       ep.company_name, ep.company_description, ep.company_website, ep.contact_info
		FROM jobs j
		JOIN employer_profiles ep ON j.provider_profile_id = ep.id
		WHERE j.status = 'OPEN'`)

	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.PayMin != nil {
		sb.WriteString(" AND j.pay >= " + arg(*filter.PayMin))
	}
	if filter.PayMax != nil {
		sb.WriteString(" AND j.pay <= " + arg(*filter.PayMax))
	}
	if filter.Location != "" {
		sb.WriteString(" AND j.location ILIKE " + arg("%"+filter.Location+"%"))
	}
	if filter.EmploymentType != "" {
		sb.WriteString(" AND j.employment_type = " + arg(filter.EmploymentType))
	}
	if len(filter.SkillIDs) > 0 {
		// any-of: a job matches when it requires at least one filtered skill
		sb.WriteString(" AND EXISTS (SELECT 1 FROM job_skills js WHERE js.job_id = j.id AND js.skill_id = ANY(" + arg(filter.SkillIDs) + "))")
	}

	// id is the stable tie-break so identical pay/created_at order
	// deterministically
	switch filter.Sort {
	case domain.SortPayAsc:
		sb.WriteString(" ORDER BY j.pay ASC, j.id ASC")
	case domain.SortPayDesc:
		sb.WriteString(" ORDER BY j.pay DESC, j.id DESC")
	default:
		sb.WriteString(" ORDER BY j.created_at DESC, j.id DESC")
	}

	return sb.String(), args
}

func (r *jobRepo) SearchOpen(ctx context.Context, filter domain.JobFilter) ([]domain.JobWithEmployer, error) {
	query, args := buildJobSearchQuery(filter)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.JobWithEmployer
	for rows.Next() {
		var job domain.JobWithEmployer
		if err := rows.Scan(
			&job.ID, &job.ProviderProfileID, &job.Title, &job.Description, &job.Pay,
			&job.EmploymentType, &job.Location, &job.Duration, &job.Status, &job.CreatedAt,
			&job.Employer.CompanyName, &job.Employer.CompanyDescription,
			&job.Employer.CompanyWebsite, &job.Employer.ContactInfo,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	refs := make([]*domain.Job, len(jobs))
	for i := range jobs {
		refs[i] = &jobs[i].Job
	}
	if err := r.loadRequiredSkills(ctx, refs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobRepo) Update(ctx context.Context, providerProfileID int64, job *domain.Job) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Ownership lives in the WHERE clause: a foreign job looks exactly
	// like a missing one. An empty status keeps the stored value, so an
	// update body without a status cannot reopen a CLOSED job.
	query := `
		UPDATE jobs SET
			title = $1, description = $2, pay = $3, employment_type = $4,
			location = $5, duration = $6,
			status = COALESCE(NULLIF($7, ''), status)
		WHERE id = $8 AND provider_profile_id = $9
		RETURNING status, created_at`

	err = tx.QueryRow(ctx, query,
		job.Title, job.Description, job.Pay, job.EmploymentType,
		job.Location, job.Duration, job.Status,
		job.ID, providerProfileID,
	).Scan(&job.Status, &job.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM job_skills WHERE job_id = $1`, job.ID); err != nil {
		return err
	}
	if err := insertJobSkills(ctx, tx, job); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *jobRepo) Delete(ctx context.Context, providerProfileID, jobID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1 AND provider_profile_id = $2)`,
		jobID, providerProfileID,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	// Cascade: children first, then the job row.
	if _, err := tx.Exec(ctx, `DELETE FROM applications WHERE job_id = $1`, jobID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM job_skills WHERE job_id = $1`, jobID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, jobID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *jobRepo) OwnedBy(ctx context.Context, providerProfileID, jobID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1 AND provider_profile_id = $2)`,
		jobID, providerProfileID,
	).Scan(&exists)
	return exists, err
}

// loadRequiredSkills populates RequiredSkills for the given jobs in one
// round trip.
func (r *jobRepo) loadRequiredSkills(ctx context.Context, jobs []*domain.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	byID := make(map[int64]*domain.Job, len(jobs))
	ids := make([]int64, 0, len(jobs))
	for _, j := range jobs {
		j.RequiredSkills = []domain.JobSkill{}
		byID[j.ID] = j
		ids = append(ids, j.ID)
	}

	query := `
		SELECT js.id, js.job_id, js.skill_id,
		       s.id, s.skill_name, s.requires_certificate, s.created_at
		FROM job_skills js
		JOIN skills s ON js.skill_id = s.id
		WHERE js.job_id = ANY($1)
		ORDER BY s.skill_name ASC`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return fmt.Errorf("failed to fetch job skills: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var js domain.JobSkill
		var jobID int64
		var s domain.Skill
		if err := rows.Scan(
			&js.ID, &jobID, &js.SkillID,
			&s.ID, &s.SkillName, &s.RequiresCertificate, &s.CreatedAt,
		); err != nil {
			return err
		}
		js.Skill = &s
		if job, ok := byID[jobID]; ok {
			job.RequiredSkills = append(job.RequiredSkills, js)
		}
	}
	return rows.Err()
}

func insertJobSkills(ctx context.Context, tx pgx.Tx, job *domain.Job) error {
	insert := `INSERT INTO job_skills (job_id, skill_id) VALUES ($1, $2)`
	for _, js := range job.RequiredSkills {
		if _, err := tx.Exec(ctx, insert, job.ID, js.SkillID); err != nil {
			return fmt.Errorf("failed to insert job skill %d: %w", js.SkillID, err)
		}
	}
	return nil
}
