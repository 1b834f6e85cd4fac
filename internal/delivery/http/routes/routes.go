package routes

import (
	"career-compass/internal/delivery/http/handler"
	v1 "career-compass/internal/delivery/http/routes/v1"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler

	recommendUC usecase.RecommendationUsecase
	catalogUC   usecase.CatalogUsecase
}

func NewRegistry(recommendUC usecase.RecommendationUsecase, catalogUC usecase.CatalogUsecase) *Registry {
	return &Registry{
		health:      handler.NewHealthHandler(),
		recommendUC: recommendUC,
		catalogUC:   catalogUC,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.recommendUC, r.catalogUC)
}
