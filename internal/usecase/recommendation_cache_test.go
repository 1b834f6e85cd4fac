package usecase

import (
	"strings"
	"testing"
)

func TestRecommendCacheKey_OrderAndCaseInvariant(t *testing.T) {
	a := RecommendCacheKey([]string{"Python", "SQL", "Statistics"}, 5)
	b := RecommendCacheKey([]string{" statistics", "sql", "PYTHON", "Python"}, 5)
	if a != b {
		t.Fatalf("expected identical keys for the same skill set: %s vs %s", a, b)
	}
}

func TestRecommendCacheKey_DistinguishesQueries(t *testing.T) {
	base := RecommendCacheKey([]string{"Python"}, 5)
	if RecommendCacheKey([]string{"Python"}, 10) == base {
		t.Fatalf("expected topN to change the key")
	}
	if RecommendCacheKey([]string{"Python", "SQL"}, 5) == base {
		t.Fatalf("expected skill set to change the key")
	}
}

func TestRecommendCacheKey_Prefix(t *testing.T) {
	if key := RecommendCacheKey(nil, 5); !strings.HasPrefix(key, "recommend:") {
		t.Fatalf("expected recommend: prefix, got %s", key)
	}
}
