package recommend

import (
	"errors"
	"fmt"
	"strings"

	"career-compass/internal/domain/career"
)

var (
	ErrEmptyCatalog  = errors.New("cannot fit model on an empty catalog")
	ErrInvalidTopN   = errors.New("topN must be a positive integer")
	ErrUnknownCareer = errors.New("career not found in catalog")
)

const DefaultTopN = 5

type Recommendation struct {
	Career  string
	Score   float64
	Gap     GapReport
	Profile career.Profile
}

// Engine ranks careers against a user's skill set and reports skill gaps.
// It is fitted once at construction on an immutable catalog snapshot and is
// safe for concurrent use; a catalog change requires constructing a new
// engine.
type Engine struct {
	catalog   *career.Catalog
	resources career.ResourceTable
	vec       *TFIDFVectorizer
	vectors   []catalogVector
	matcher   MatchStrategy
}

type Option func(*Engine)

// WithMatchStrategy overrides the default exact-then-substring skill
// matching strategy.
func WithMatchStrategy(m MatchStrategy) Option {
	return func(e *Engine) {
		if m != nil {
			e.matcher = m
		}
	}
}

func NewEngine(catalog *career.Catalog, resources career.ResourceTable, opts ...Option) (*Engine, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, ErrEmptyCatalog
	}

	e := &Engine{
		catalog:   catalog,
		resources: resources,
		vec:       NewTFIDFVectorizer(),
		matcher:   SubstringMatcher{},
	}
	for _, opt := range opts {
		opt(e)
	}

	profiles := catalog.Profiles()
	docs := make([]string, 0, len(profiles))
	for _, p := range profiles {
		docs = append(docs, strings.Join(p.Skills, " "))
	}
	if err := e.vec.Fit(docs); err != nil {
		return nil, fmt.Errorf("fit skill model: %w", err)
	}

	e.vectors = make([]catalogVector, 0, len(profiles))
	for i, p := range profiles {
		e.vectors = append(e.vectors, catalogVector{name: p.Name, vec: e.vec.Transform(docs[i])})
	}
	return e, nil
}

// Recommend ranks the catalog against the user's skills by cosine similarity
// and runs a gap analysis for each ranked career. The skill list has set
// semantics: duplicates and ordering differences do not change the result.
func (e *Engine) Recommend(userSkills []string, topN int) ([]Recommendation, error) {
	normalized := normalizeSkillSet(userSkills)
	userVec := e.vec.Transform(strings.Join(normalized, " "))

	ranked, err := rank(userVec, e.vectors, topN)
	if err != nil {
		return nil, err
	}

	out := make([]Recommendation, 0, len(ranked))
	for _, rc := range ranked {
		profile, _ := e.catalog.Get(rc.Name)
		out = append(out, Recommendation{
			Career:  rc.Name,
			Score:   rc.Score,
			Gap:     analyzeGap(normalized, rc.Name, profile.Skills, e.matcher),
			Profile: profile,
		})
	}
	return out, nil
}

// AnalyzeGap reports which of the career's required skills the user already
// has and which are missing.
func (e *Engine) AnalyzeGap(userSkills []string, careerName string) (GapReport, error) {
	profile, ok := e.catalog.Get(careerName)
	if !ok {
		return GapReport{}, fmt.Errorf("%w: %s", ErrUnknownCareer, careerName)
	}
	return analyzeGap(normalizeSkillSet(userSkills), profile.Name, profile.Skills, e.matcher), nil
}

// ComposeLearningPath proposes a learning bundle per missing skill and an
// aggregate time estimate for closing the gap toward the career.
func (e *Engine) ComposeLearningPath(missingSkills []string, careerName string) (LearningPlan, error) {
	profile, ok := e.catalog.Get(careerName)
	if !ok {
		return LearningPlan{}, fmt.Errorf("%w: %s", ErrUnknownCareer, careerName)
	}
	return composeLearningPath(missingSkills, profile.Name, e.resources), nil
}

// Catalog exposes the immutable catalog snapshot the engine was fitted on.
func (e *Engine) Catalog() *career.Catalog {
	return e.catalog
}

// VocabularySize reports the number of distinct skill tokens the model was
// fitted on.
func (e *Engine) VocabularySize() int {
	return e.vec.VocabularySize()
}
