package dto

import "career-compass/internal/domain/recommend"

type LearningStepResponse struct {
	Skill     string   `json:"skill"`
	Level     string   `json:"level"`
	Resources []string `json:"resources"`
	Time      string   `json:"time"`
}

type LearningPlanResponse struct {
	Career        string                 `json:"career"`
	SkillsToLearn []LearningStepResponse `json:"skills_to_learn"`
	EstimatedTime string                 `json:"estimated_time"`
}

func NewLearningPlanResponse(p recommend.LearningPlan) LearningPlanResponse {
	steps := make([]LearningStepResponse, 0, len(p.SkillsToLearn))
	for _, s := range p.SkillsToLearn {
		steps = append(steps, LearningStepResponse{
			Skill:     s.Skill,
			Level:     s.Level,
			Resources: s.Resources,
			Time:      s.Time,
		})
	}
	return LearningPlanResponse{
		Career:        p.Career,
		SkillsToLearn: steps,
		EstimatedTime: p.EstimatedTime,
	}
}
