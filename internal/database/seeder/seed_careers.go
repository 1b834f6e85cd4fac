package seeder

import (
	"context"
	"fmt"

	"career-compass/internal/catalog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CareerSeeder struct{}

func (CareerSeeder) Name() string { return "careers" }

// Run inserts the built-in career catalog. Existing careers are left
// untouched; positions preserve the declared catalog order.
func (CareerSeeder) Run(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for pos, profile := range catalog.DefaultProfiles() {
		careerID := uuid.New()
		tag, err := tx.Exec(ctx, `
			INSERT INTO careers (id, name, description, salary_range, growth, experience_level, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (name) DO NOTHING`,
			careerID, profile.Name, profile.Description, profile.SalaryRange, string(profile.Growth), profile.ExperienceLevel, pos,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			continue
		}

		for sp, skill := range profile.Skills {
			if _, err := tx.Exec(ctx, `
				INSERT INTO career_skills (id, career_id, skill, position)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (career_id, skill) DO NOTHING`,
				uuid.New(), careerID, skill, sp,
			); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
