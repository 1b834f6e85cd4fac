package recommend

import (
	"fmt"

	"career-compass/internal/domain/career"
)

type LearningStep struct {
	Skill     string
	Level     string
	Resources []string
	Time      string
}

type LearningPlan struct {
	Career        string
	SkillsToLearn []LearningStep
	EstimatedTime string
}

// defaultBundle is used for skills absent from the resource table.
var defaultBundle = career.SkillResource{
	Level:     "Intermediate",
	Resources: []string{"Online Courses", "Documentation", "Practice Projects"},
	Time:      "2-3 months",
}

// composeLearningPath maps each missing skill to a learning bundle from the
// resource table (case-sensitive key lookup) with a generic fallback. Output
// order follows the input order of missingSkills.
func composeLearningPath(missingSkills []string, careerName string, table career.ResourceTable) LearningPlan {
	steps := make([]LearningStep, 0, len(missingSkills))
	for _, skill := range missingSkills {
		bundle, ok := table[skill]
		if !ok {
			bundle = defaultBundle
		}
		resources := make([]string, len(bundle.Resources))
		copy(resources, bundle.Resources)
		steps = append(steps, LearningStep{
			Skill:     skill,
			Level:     bundle.Level,
			Resources: resources,
			Time:      bundle.Time,
		})
	}

	n := len(missingSkills)
	return LearningPlan{
		Career:        careerName,
		SkillsToLearn: steps,
		EstimatedTime: fmt.Sprintf("%d-%d months", n*2, n*3),
	}
}
