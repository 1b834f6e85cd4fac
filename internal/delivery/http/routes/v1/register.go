package v1

import (
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, recommendUC usecase.RecommendationUsecase, catalogUC usecase.CatalogUsecase) {
	if r == nil {
		return
	}

	handler.NewCareerHandler(catalogUC).RegisterRoutes(r)
	handler.NewRecommendationHandler(recommendUC).RegisterRoutes(r)
	handler.NewGapHandler(recommendUC).RegisterRoutes(r)
	handler.NewLearningPathHandler(recommendUC).RegisterRoutes(r)
}
