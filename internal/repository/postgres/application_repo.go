package postgres

import (
	"context"

	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `
		INSERT INTO applications (job_id, seeker_profile_id, applied_at)
		VALUES ($1, $2, NOW())
		RETURNING id, applied_at`

	err := r.db.QueryRow(ctx, query, app.JobID, app.SeekerProfileID).Scan(&app.ID, &app.AppliedAt)
	if err != nil {
		// unique (job_id, seeker_profile_id): concurrent double-applies
		// fail here even when the pre-check raced.
		if isUniqueViolation(err) {
			return apperror.Conflict("You have already applied to this job")
		}
		return err
	}
	return nil
}

func (r *applicationRepo) Exists(ctx context.Context, jobID, seekerProfileID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND seeker_profile_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, jobID, seekerProfileID).Scan(&exists)
	return exists, err
}

// FetchBySeekerProfileID returns the seeker's applications with the job and
// employer summary joined, newest first.
func (r *applicationRepo) FetchBySeekerProfileID(ctx context.Context, seekerProfileID int64) ([]domain.ApplicationWithJob, error) {
	query := `
		SELECT a.id, a.job_id, a.seeker_profile_id, a.applied_at,
		       j.id, j.provider_profile_id, j.title, j.description, j.pay,
		       j.employment_type, j.location, j.duration, j.status, j.created_at,
		       ep.company_name, ep.company_description, ep.company_website, ep.contact_info
		FROM applications a
		JOIN jobs j ON a.job_id = j.id
		JOIN employer_profiles ep ON j.provider_profile_id = ep.id
		WHERE a.seeker_profile_id = $1
		ORDER BY a.applied_at DESC, a.id DESC`

	rows, err := r.db.Query(ctx, query, seekerProfileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.ApplicationWithJob
	for rows.Next() {
		var a domain.ApplicationWithJob
		if err := rows.Scan(
			&a.ID, &a.JobID, &a.SeekerProfileID, &a.AppliedAt,
			&a.Job.ID, &a.Job.ProviderProfileID, &a.Job.Title, &a.Job.Description, &a.Job.Pay,
			&a.Job.EmploymentType, &a.Job.Location, &a.Job.Duration, &a.Job.Status, &a.Job.CreatedAt,
			&a.Job.Employer.CompanyName, &a.Job.Employer.CompanyDescription,
			&a.Job.Employer.CompanyWebsite, &a.Job.Employer.ContactInfo,
		); err != nil {
			return nil, err
		}
		a.Job.RequiredSkills = []domain.JobSkill{}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Resolve required skills per job for the list view.
	for i := range apps {
		if err := r.loadJobSkills(ctx, &apps[i].Job.Job); err != nil {
			return nil, err
		}
	}
	return apps, nil
}

func (r *applicationRepo) FetchByJobID(ctx context.Context, jobID int64) ([]domain.Application, error) {
	query := `
		SELECT id, job_id, seeker_profile_id, applied_at
		FROM applications WHERE job_id = $1
		ORDER BY applied_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var a domain.Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.SeekerProfileID, &a.AppliedAt); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) Delete(ctx context.Context, seekerProfileID, applicationID int64) error {
	// Ownership in the WHERE clause: withdrawing someone else's
	// application reads as not found.
	result, err := r.db.Exec(ctx,
		`DELETE FROM applications WHERE id = $1 AND seeker_profile_id = $2`,
		applicationID, seekerProfileID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) loadJobSkills(ctx context.Context, job *domain.Job) error {
	query := `
		SELECT js.id, js.skill_id, s.id, s.skill_name, s.requires_certificate, s.created_at
		FROM job_skills js
		JOIN skills s ON js.skill_id = s.id
		WHERE js.job_id = $1
		ORDER BY s.skill_name ASC`

	rows, err := r.db.Query(ctx, query, job.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var js domain.JobSkill
		var s domain.Skill
		if err := rows.Scan(&js.ID, &js.SkillID, &s.ID, &s.SkillName, &s.RequiresCertificate, &s.CreatedAt); err != nil {
			return err
		}
		js.Skill = &s
		job.RequiredSkills = append(job.RequiredSkills, js)
	}
	return rows.Err()
}
