package dto

import "career-compass/internal/domain/career"

type CareerResponse struct {
	Name            string   `json:"name"`
	Skills          []string `json:"skills"`
	Description     string   `json:"description"`
	SalaryRange     string   `json:"salary_range"`
	Growth          string   `json:"growth"`
	ExperienceLevel string   `json:"experience_level"`
}

func NewCareerResponse(p career.Profile) CareerResponse {
	return CareerResponse{
		Name:            p.Name,
		Skills:          p.Skills,
		Description:     p.Description,
		SalaryRange:     p.SalaryRange,
		Growth:          string(p.Growth),
		ExperienceLevel: p.ExperienceLevel,
	}
}
