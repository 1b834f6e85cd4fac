package seeder

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, pool *pgxpool.Pool) error
}

type Runner struct {
	Seeders []Seeder
}

func (r Runner) Run(ctx context.Context, pool *pgxpool.Pool) error {
	if pool == nil {
		return fmt.Errorf("nil pool")
	}
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, pool); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
	}
	return nil
}

func Defaults() []Seeder {
	return []Seeder{
		SchemaSeeder{},
		CareerSeeder{},
	}
}
