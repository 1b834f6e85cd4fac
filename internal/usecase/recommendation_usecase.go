package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"career-compass/internal/domain/career"
	"career-compass/internal/domain/recommend"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrCareerNotFound = errors.New("career not found")
	ErrInternal       = errors.New("internal error")
)

type RecommendParams struct {
	Skills []string
	TopN   int
}

type RecommendationItem struct {
	Career  string
	Score   float64
	Gap     recommend.GapReport
	Profile career.Profile
}

type RecommendationUsecase interface {
	Recommend(ctx context.Context, params RecommendParams) ([]RecommendationItem, error)
	AnalyzeGap(ctx context.Context, skills []string, careerName string) (recommend.GapReport, error)
	ComposeLearningPath(ctx context.Context, missingSkills []string, careerName string) (recommend.LearningPlan, error)
}

type Recommendation struct {
	engine *recommend.Engine
	cache  RecommendationCache
	logger *log.Logger
}

func NewRecommendationUsecase(engine *recommend.Engine, cache RecommendationCache, logger *log.Logger) *Recommendation {
	return &Recommendation{engine: engine, cache: cache, logger: logger}
}

func (u *Recommendation) Recommend(ctx context.Context, params RecommendParams) ([]RecommendationItem, error) {
	topN := params.TopN
	if topN == 0 {
		topN = recommend.DefaultTopN
	}
	if topN < 0 {
		return nil, ErrInvalidInput
	}

	cacheKey := RecommendCacheKey(params.Skills, topN)
	if u.cache != nil {
		var cached []RecommendationItem
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Recommend] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
	}

	recs, err := u.engine.Recommend(params.Skills, topN)
	if err != nil {
		if errors.Is(err, recommend.ErrInvalidTopN) {
			return nil, ErrInvalidInput
		}
		return nil, ErrInternal
	}

	out := make([]RecommendationItem, 0, len(recs))
	for _, r := range recs {
		out = append(out, RecommendationItem{
			Career:  r.Career,
			Score:   r.Score,
			Gap:     r.Gap,
			Profile: r.Profile,
		})
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, out, 0); err == nil && u.logger != nil {
			u.logger.Printf("[Recommend] Cache SET: %s", cacheKey)
		}
	}

	return out, nil
}

func (u *Recommendation) AnalyzeGap(ctx context.Context, skills []string, careerName string) (recommend.GapReport, error) {
	careerName = strings.TrimSpace(careerName)
	if careerName == "" {
		return recommend.GapReport{}, ErrInvalidInput
	}

	report, err := u.engine.AnalyzeGap(skills, careerName)
	if err != nil {
		if errors.Is(err, recommend.ErrUnknownCareer) {
			return recommend.GapReport{}, ErrCareerNotFound
		}
		return recommend.GapReport{}, ErrInternal
	}
	return report, nil
}

func (u *Recommendation) ComposeLearningPath(ctx context.Context, missingSkills []string, careerName string) (recommend.LearningPlan, error) {
	careerName = strings.TrimSpace(careerName)
	if careerName == "" {
		return recommend.LearningPlan{}, ErrInvalidInput
	}

	plan, err := u.engine.ComposeLearningPath(missingSkills, careerName)
	if err != nil {
		if errors.Is(err, recommend.ErrUnknownCareer) {
			return recommend.LearningPlan{}, ErrCareerNotFound
		}
		return recommend.LearningPlan{}, ErrInternal
	}
	return plan, nil
}
