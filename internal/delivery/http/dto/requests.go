package dto

import "strings"

// RecommendRequest carries the user's skill set. Skills may arrive as a list
// and/or as free text, comma- or newline-separated; SkillSet merges both
// into one deduplicated set before the engine sees them.
type RecommendRequest struct {
	Skills     []string `json:"skills"`
	SkillsText string   `json:"skills_text"`
	TopN       int      `json:"top_n"`
}

func (r RecommendRequest) SkillSet() []string {
	return mergeSkills(r.Skills, r.SkillsText)
}

type GapRequest struct {
	Skills     []string `json:"skills"`
	SkillsText string   `json:"skills_text"`
	Career     string   `json:"career"`
}

func (r GapRequest) SkillSet() []string {
	return mergeSkills(r.Skills, r.SkillsText)
}

type LearningPathRequest struct {
	MissingSkills []string `json:"missing_skills"`
	Career        string   `json:"career"`
}

func mergeSkills(skills []string, text string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, len(skills))

	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		key := strings.ToLower(s)
		if seen[key] {
			return
		}
		seen[key] = true
		out = append(out, s)
	}

	for _, s := range skills {
		add(s)
	}
	for _, s := range strings.Split(strings.ReplaceAll(text, "\n", ","), ",") {
		add(s)
	}
	return out
}
