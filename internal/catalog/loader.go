package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"career-compass/internal/domain/career"
)

type profileFile struct {
	Careers []struct {
		Name            string   `json:"name"`
		Skills          []string `json:"skills"`
		Description     string   `json:"description"`
		SalaryRange     string   `json:"salary_range"`
		Growth          string   `json:"growth"`
		ExperienceLevel string   `json:"experience_level"`
	} `json:"careers"`
}

type resourceFile struct {
	Skills map[string]struct {
		Level     string   `json:"level"`
		Resources []string `json:"resources"`
		Time      string   `json:"time"`
	} `json:"skills"`
}

// LoadProfiles reads a career catalog from a JSON file. An empty path
// returns the built-in defaults.
func LoadProfiles(path string) ([]career.Profile, error) {
	if path == "" {
		return DefaultProfiles(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var f profileFile
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	out := make([]career.Profile, 0, len(f.Careers))
	for _, c := range f.Careers {
		out = append(out, career.Profile{
			Name:            c.Name,
			Skills:          c.Skills,
			Description:     c.Description,
			SalaryRange:     c.SalaryRange,
			Growth:          career.Growth(c.Growth),
			ExperienceLevel: c.ExperienceLevel,
		})
	}
	return out, nil
}

// LoadResources reads a skill resource table from a JSON file. An empty path
// returns the built-in defaults.
func LoadResources(path string) (career.ResourceTable, error) {
	if path == "" {
		return DefaultResources(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read resources file: %w", err)
	}

	var f resourceFile
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse resources file: %w", err)
	}

	table := make(career.ResourceTable, len(f.Skills))
	for name, r := range f.Skills {
		table[name] = career.SkillResource{Level: r.Level, Resources: r.Resources, Time: r.Time}
	}
	return table, nil
}
