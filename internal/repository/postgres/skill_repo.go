package postgres

import (
	"context"
	"fmt"

	"go-jobmarket-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{db: db}
}

func (r *skillRepo) GetAll(ctx context.Context) ([]domain.Skill, error) {
	query := `SELECT id, skill_name, requires_certificate, created_at FROM skills ORDER BY skill_name ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.SkillName, &s.RequiresCertificate, &s.CreatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *skillRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Skill, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT id, skill_name, requires_certificate, created_at FROM skills WHERE id = ANY($1)`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []domain.Skill
	for rows.Next() {
		var s domain.Skill
		if err := rows.Scan(&s.ID, &s.SkillName, &s.RequiresCertificate, &s.CreatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// Seed populates the catalog idempotently: insert-if-absent by unique
// skill_name. Existing rows are never modified.
func (r *skillRepo) Seed(ctx context.Context, skills []domain.Skill) error {
	query := `INSERT INTO skills (skill_name, requires_certificate, created_at)
	          VALUES ($1, $2, NOW())
	          ON CONFLICT (skill_name) DO NOTHING`
	for _, s := range skills {
		if _, err := r.db.Exec(ctx, query, s.SkillName, s.RequiresCertificate); err != nil {
			return fmt.Errorf("failed to seed skill %q: %w", s.SkillName, err)
		}
	}
	return nil
}
