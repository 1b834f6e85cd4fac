package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"career-compass/internal/catalog"
	"career-compass/internal/config"
	"career-compass/internal/database/postgres"
	"career-compass/internal/domain/career"
	"career-compass/internal/domain/recommend"
	"career-compass/internal/infrastructure/cache"
	"career-compass/internal/repository"
	"career-compass/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Container wires the engine and its collaborators. The catalog is read once
// here; updating it means restarting the service so the vectorizer is
// re-fitted on the new snapshot.
type Container struct {
	Config config.Config
	Logger *log.Logger

	Engine      *recommend.Engine
	Cache       *cache.Redis
	RecommendUC usecase.RecommendationUsecase
	CatalogUC   usecase.CatalogUsecase

	pool *pgxpool.Pool
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c := &Container{Config: cfg, Logger: logger}

	profiles, err := c.loadProfiles(ctx, cfg)
	if err != nil {
		return nil, err
	}

	cat, err := career.NewCatalog(profiles)
	if err != nil {
		c.closePool()
		return nil, fmt.Errorf("build catalog: %w", err)
	}

	resources, err := catalog.LoadResources(cfg.Catalog.ResourcesPath)
	if err != nil {
		c.closePool()
		return nil, err
	}

	engine, err := recommend.NewEngine(cat, resources)
	if err != nil {
		c.closePool()
		return nil, fmt.Errorf("build engine: %w", err)
	}
	c.Engine = engine

	c.Cache = cache.NewRedis(logger)
	// A fresh engine may reflect a different catalog snapshot than whatever
	// produced the cached responses.
	if err := c.Cache.DeleteByPattern(ctx, "recommend:*"); err != nil {
		logger.Printf("[App] cache invalidation failed: %v", err)
	}

	c.RecommendUC = usecase.NewRecommendationUsecase(engine, c.Cache, logger)
	c.CatalogUC = usecase.NewCatalogUsecase(engine)

	logger.Printf("[App] engine ready: %d careers, %d skill tokens", cat.Len(), engine.VocabularySize())
	return c, nil
}

func (c *Container) loadProfiles(ctx context.Context, cfg config.Config) ([]career.Profile, error) {
	if !cfg.Database.Enabled() {
		return catalog.LoadProfiles(cfg.Catalog.CatalogPath)
	}

	pool, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect catalog db: %w", err)
	}
	c.pool = pool

	profiles, err := repository.NewPostgresCareerRepository(pool).ListCareers(ctx)
	if err != nil {
		c.closePool()
		return nil, err
	}
	return profiles, nil
}

func (c *Container) closePool() {
	if c.pool != nil {
		c.pool.Close()
		c.pool = nil
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	c.closePool()
	return nil
}
