package seeder

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

func (SchemaSeeder) Run(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS careers (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			salary_range TEXT NOT NULL DEFAULT '',
			growth TEXT NOT NULL DEFAULT '',
			experience_level TEXT NOT NULL DEFAULT '',
			position INT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS career_skills (
			id UUID PRIMARY KEY,
			career_id UUID NOT NULL REFERENCES careers(id) ON DELETE CASCADE,
			skill TEXT NOT NULL,
			position INT NOT NULL,
			UNIQUE (career_id, skill)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_career_skills_career_id ON career_skills(career_id)`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
