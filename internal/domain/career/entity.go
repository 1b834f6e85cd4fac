package career

type Growth string

const (
	GrowthMedium   Growth = "Medium"
	GrowthHigh     Growth = "High"
	GrowthVeryHigh Growth = "Very High"
)

type Profile struct {
	Name            string
	Skills          []string
	Description     string
	SalaryRange     string
	Growth          Growth
	ExperienceLevel string
}

type SkillResource struct {
	Level     string
	Resources []string
	Time      string
}

// ResourceTable maps a skill name to its learning bundle. Lookup is
// case-sensitive against the table keys.
type ResourceTable map[string]SkillResource
