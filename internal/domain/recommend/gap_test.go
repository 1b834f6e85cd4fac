package recommend

import (
	"math"
	"reflect"
	"testing"
)

var dataScientistSkills = []string{"Python", "Machine Learning", "Statistics", "SQL", "Data Visualization", "Deep Learning", "NLP"}

func TestAnalyzeGap_ConcreteScenario(t *testing.T) {
	user := normalizeSkillSet([]string{"Python", "SQL", "Statistics"})
	report := analyzeGap(user, "Data Scientist", dataScientistSkills, SubstringMatcher{})

	wantMatched := []string{"Python", "Statistics", "SQL"}
	if !reflect.DeepEqual(report.MatchedSkills, wantMatched) {
		t.Fatalf("matched = %v, want %v", report.MatchedSkills, wantMatched)
	}

	wantMissing := []string{"Machine Learning", "Data Visualization", "Deep Learning", "NLP"}
	if !reflect.DeepEqual(report.MissingSkills, wantMissing) {
		t.Fatalf("missing = %v, want %v", report.MissingSkills, wantMissing)
	}

	if math.Abs(report.MatchPercentage-42.857142857) > 0.01 {
		t.Fatalf("match percentage = %f, want ~42.86", report.MatchPercentage)
	}
	if report.TotalRequired != 7 || report.TotalMatched != 3 {
		t.Fatalf("totals = %d/%d, want 3/7", report.TotalMatched, report.TotalRequired)
	}
}

func TestAnalyzeGap_PartitionsRequiredSkills(t *testing.T) {
	user := normalizeSkillSet([]string{"docker", "linux"})
	required := []string{"Docker", "Kubernetes", "AWS", "Linux"}
	report := analyzeGap(user, "DevOps Engineer", required, SubstringMatcher{})

	if len(report.MatchedSkills)+len(report.MissingSkills) != len(required) {
		t.Fatalf("matched+missing != required: %d+%d != %d",
			len(report.MatchedSkills), len(report.MissingSkills), len(required))
	}

	seen := make(map[string]bool)
	for _, s := range append(report.MatchedSkills, report.MissingSkills...) {
		if seen[s] {
			t.Fatalf("skill %q appears in both lists", s)
		}
		seen[s] = true
	}
	for _, r := range required {
		if !seen[r] {
			t.Fatalf("required skill %q missing from partition", r)
		}
	}
}

func TestAnalyzeGap_CaseInsensitiveAndTrimmed(t *testing.T) {
	user := normalizeSkillSet([]string{"  PYTHON  ", "sql "})
	report := analyzeGap(user, "x", []string{"Python", "SQL"}, SubstringMatcher{})
	if report.MatchPercentage != 100 {
		t.Fatalf("expected 100%%, got %f", report.MatchPercentage)
	}
	if len(report.MissingSkills) != 0 {
		t.Fatalf("expected no missing skills, got %v", report.MissingSkills)
	}
}

func TestAnalyzeGap_EmptyRequiredSkills(t *testing.T) {
	report := analyzeGap(normalizeSkillSet([]string{"python"}), "x", nil, SubstringMatcher{})
	if report.MatchPercentage != 0 {
		t.Fatalf("expected 0%% for empty required set, got %f", report.MatchPercentage)
	}
	if len(report.MatchedSkills) != 0 || len(report.MissingSkills) != 0 {
		t.Fatalf("expected empty lists, got %v / %v", report.MatchedSkills, report.MissingSkills)
	}
}

func TestAnalyzeGap_EmptyUserSkills(t *testing.T) {
	report := analyzeGap(nil, "x", []string{"Python", "SQL"}, SubstringMatcher{})
	if report.MatchPercentage != 0 {
		t.Fatalf("expected 0%%, got %f", report.MatchPercentage)
	}
	if len(report.MissingSkills) != 2 {
		t.Fatalf("expected every skill missing, got %v", report.MissingSkills)
	}
}

func TestSubstringMatcher_FuzzyFallback(t *testing.T) {
	m := SubstringMatcher{}

	// user skill contained in required skill
	if !m.Matches("machine learning", []string{"learning"}) {
		t.Fatalf("expected substring hit: learning -> machine learning")
	}
	// required skill contained in user skill
	if !m.Matches("sql", []string{"postgresql"}) {
		t.Fatalf("expected substring hit: sql in postgresql")
	}
	if m.Matches("docker", []string{"kubernetes"}) {
		t.Fatalf("unexpected match")
	}
}

// The substring fallback is a documented heuristic, not a correctness
// guarantee: a short skill name embedded in an unrelated longer one still
// counts as a hit. "Java" matching "JavaScript" is the canonical false
// positive; the behavior is preserved for compatibility.
func TestSubstringMatcher_KnownFalsePositive(t *testing.T) {
	m := SubstringMatcher{}
	if !m.Matches("javascript", []string{"java"}) {
		t.Fatalf("expected documented false positive java -> javascript")
	}
}

func TestAnalyzeGap_MonotonicUnderAddedSkills(t *testing.T) {
	base := []string{"Python", "SQL"}
	extended := append(append([]string{}, base...), "Statistics", "NLP")

	before := analyzeGap(normalizeSkillSet(base), "Data Scientist", dataScientistSkills, SubstringMatcher{})
	after := analyzeGap(normalizeSkillSet(extended), "Data Scientist", dataScientistSkills, SubstringMatcher{})

	if after.MatchPercentage < before.MatchPercentage {
		t.Fatalf("match percentage decreased: %f -> %f", before.MatchPercentage, after.MatchPercentage)
	}

	matchedAfter := make(map[string]bool, len(after.MatchedSkills))
	for _, s := range after.MatchedSkills {
		matchedAfter[s] = true
	}
	for _, s := range before.MatchedSkills {
		if !matchedAfter[s] {
			t.Fatalf("previously matched skill %q moved to missing", s)
		}
	}
}

func TestNormalizeSkillSet(t *testing.T) {
	got := normalizeSkillSet([]string{" Python ", "python", "", "SQL", "sql", "Docker"})
	want := []string{"python", "sql", "docker"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
