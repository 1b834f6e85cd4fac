package handler

import (
	"strings"

	"career-compass/internal/delivery/http/dto"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/response"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type GapHandler struct {
	uc usecase.RecommendationUsecase
}

func NewGapHandler(uc usecase.RecommendationUsecase) *GapHandler {
	return &GapHandler{uc: uc}
}

func (h *GapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/skill-gap", h.AnalyzeGap)
}

func (h *GapHandler) AnalyzeGap(c fiber.Ctx) error {
	var req dto.GapRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if strings.TrimSpace(req.Career) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "career is required", nil, nil)
	}

	report, err := h.uc.AnalyzeGap(c.Context(), req.SkillSet(), req.Career)
	if err != nil {
		return mapRecommendationUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewGapReportResponse(report))
}
