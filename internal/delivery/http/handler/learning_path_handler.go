package handler

import (
	"strings"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type LearningPathHandler struct {
	uc usecase.RecommendationUsecase
}

func NewLearningPathHandler(uc usecase.RecommendationUsecase) *LearningPathHandler {
	return &LearningPathHandler{uc: uc}
}

func (h *LearningPathHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/learning-path", h.ComposeLearningPath)
}

func (h *LearningPathHandler) ComposeLearningPath(c fiber.Ctx) error {
	var req dto.LearningPathRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if strings.TrimSpace(req.Career) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "career is required", nil, nil)
	}

	plan, err := h.uc.ComposeLearningPath(c.Context(), req.MissingSkills, req.Career)
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewLearningPlanResponse(plan))
}
