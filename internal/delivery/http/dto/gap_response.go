package dto

import "career-compass/internal/domain/recommend"

type GapReportResponse struct {
	Career          string   `json:"career"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	MatchPercentage float64  `json:"match_percentage"`
	TotalRequired   int      `json:"total_required"`
	TotalMatched    int      `json:"total_matched"`
}

func NewGapReportResponse(r recommend.GapReport) GapReportResponse {
	return GapReportResponse{
		Career:          r.Career,
		MatchedSkills:   r.MatchedSkills,
		MissingSkills:   r.MissingSkills,
		MatchPercentage: r.MatchPercentage,
		TotalRequired:   r.TotalRequired,
		TotalMatched:    r.TotalMatched,
	}
}
