package usecase

import (
	"context"

	"career-compass/internal/domain/career"
	"career-compass/internal/domain/recommend"
)

type CatalogUsecase interface {
	ListCareers(ctx context.Context) ([]career.Profile, error)
	ListSkills(ctx context.Context) ([]string, error)
}

type Catalog struct {
	engine *recommend.Engine
}

func NewCatalogUsecase(engine *recommend.Engine) *Catalog {
	return &Catalog{engine: engine}
}

// ListCareers returns the catalog in insertion order, the order rankings
// fall back to on score ties.
func (u *Catalog) ListCareers(ctx context.Context) ([]career.Profile, error) {
	return u.engine.Catalog().Profiles(), nil
}

// ListSkills returns every distinct required skill across the catalog, for
// skill-shortcut pickers in the presentation layer.
func (u *Catalog) ListSkills(ctx context.Context) ([]string, error) {
	return u.engine.Catalog().SkillNames(), nil
}
