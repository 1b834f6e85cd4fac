package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"
	"time"
)

// RecommendationCache is the query-result cache owned by this layer, never
// by the engine. The engine stays a pure function over its catalog snapshot.
type RecommendationCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type recommendCacheKeyInput struct {
	Skills []string `json:"skills"`
	TopN   int      `json:"top_n"`
}

// RecommendCacheKey hashes the normalized query. Skills are lower-cased,
// trimmed, deduplicated, and sorted so that any ordering or duplication of
// the same skill set maps to the same key.
func RecommendCacheKey(skills []string, topN int) string {
	seen := make(map[string]bool, len(skills))
	normalized := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		normalized = append(normalized, s)
	}
	sort.Strings(normalized)

	b, _ := json.Marshal(recommendCacheKeyInput{Skills: normalized, TopN: topN})
	sum := sha256.Sum256(b)
	return "recommend:" + hex.EncodeToString(sum[:])
}
