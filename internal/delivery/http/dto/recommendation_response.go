package dto

import "career-compass/internal/usecase"

type RecommendationResponse struct {
	Career  string            `json:"career"`
	Score   float64           `json:"score"`
	Gap     GapReportResponse `json:"gap"`
	Profile CareerResponse    `json:"profile"`
}

func NewRecommendationResponse(it usecase.RecommendationItem) RecommendationResponse {
	return RecommendationResponse{
		Career:  it.Career,
		Score:   it.Score,
		Gap:     NewGapReportResponse(it.Gap),
		Profile: NewCareerResponse(it.Profile),
	}
}
