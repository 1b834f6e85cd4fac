package recommend

import "strings"

type GapReport struct {
	Career          string
	MatchedSkills   []string
	MissingSkills   []string
	MatchPercentage float64
	TotalRequired   int
	TotalMatched    int
}

// MatchStrategy decides whether a required skill is covered by the user's
// skill set. Both sides are already normalized (lower-cased, trimmed).
type MatchStrategy interface {
	Matches(required string, userSkills []string) bool
}

// SubstringMatcher is the default strategy: exact equality first, then a
// bidirectional substring fallback where the first hit wins. The substring
// heuristic is deliberately loose and can register false positives when a
// short skill name is embedded in an unrelated longer one; callers wanting
// stricter behavior can swap in another strategy.
type SubstringMatcher struct{}

func (SubstringMatcher) Matches(required string, userSkills []string) bool {
	for _, us := range userSkills {
		if us == required {
			return true
		}
	}
	for _, us := range userSkills {
		if strings.Contains(required, us) || strings.Contains(us, required) {
			return true
		}
	}
	return false
}

// analyzeGap partitions the career's required skills into matched and
// missing, preserving the declared skill order. userSkills must already be
// normalized and deduplicated; its iteration order is fixed so the result
// is deterministic.
func analyzeGap(userSkills []string, careerName string, required []string, strategy MatchStrategy) GapReport {
	matched := make([]string, 0, len(required))
	missing := make([]string, 0)

	for _, r := range required {
		if strategy.Matches(normalizeSkill(r), userSkills) {
			matched = append(matched, r)
		} else {
			missing = append(missing, r)
		}
	}

	pct := 0.0
	if len(required) > 0 {
		pct = float64(len(matched)) / float64(len(required)) * 100
	}

	return GapReport{
		Career:          careerName,
		MatchedSkills:   matched,
		MissingSkills:   missing,
		MatchPercentage: pct,
		TotalRequired:   len(required),
		TotalMatched:    len(matched),
	}
}

func normalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeSkillSet trims, drops empties, and collapses case-insensitive
// duplicates while keeping first-seen order. Callers passing the same set in
// any order or with duplicates get identical engine results.
func normalizeSkillSet(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		n := normalizeSkill(s)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
