package repository

import (
	"context"
	"fmt"

	"career-compass/internal/domain/career"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CareerRepository supplies the catalog snapshot the engine is fitted on.
type CareerRepository interface {
	ListCareers(ctx context.Context) ([]career.Profile, error)
}

type PostgresCareerRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCareerRepository(pool *pgxpool.Pool) *PostgresCareerRepository {
	return &PostgresCareerRepository{pool: pool}
}

// ListCareers loads every career with its required skills. Both careers and
// skills carry explicit position columns so the declared order survives the
// round trip through the database.
func (r *PostgresCareerRepository) ListCareers(ctx context.Context) ([]career.Profile, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, salary_range, growth, experience_level
		FROM careers
		ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("list careers: %w", err)
	}
	defer rows.Close()

	type row struct {
		id      uuid.UUID
		profile career.Profile
	}

	careers := make([]row, 0)
	for rows.Next() {
		var it row
		var growth string
		if err := rows.Scan(&it.id, &it.profile.Name, &it.profile.Description, &it.profile.SalaryRange, &growth, &it.profile.ExperienceLevel); err != nil {
			return nil, fmt.Errorf("scan career: %w", err)
		}
		it.profile.Growth = career.Growth(growth)
		careers = append(careers, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	skillsByCareer, err := r.listSkills(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]career.Profile, 0, len(careers))
	for _, it := range careers {
		it.profile.Skills = skillsByCareer[it.id]
		out = append(out, it.profile)
	}
	return out, nil
}

func (r *PostgresCareerRepository) listSkills(ctx context.Context) (map[uuid.UUID][]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT career_id, skill
		FROM career_skills
		ORDER BY career_id, position ASC`)
	if err != nil {
		return nil, fmt.Errorf("list career skills: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]string)
	for rows.Next() {
		var careerID uuid.UUID
		var skill string
		if err := rows.Scan(&careerID, &skill); err != nil {
			return nil, fmt.Errorf("scan career skill: %w", err)
		}
		out[careerID] = append(out[careerID], skill)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
