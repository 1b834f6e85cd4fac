package recommend

import (
	"math"
	"sort"
)

type RankedCareer struct {
	Name  string
	Score float64
}

// CosineSimilarity computes the cosine of the angle between two dense
// vectors. A zero vector on either side scores 0 rather than dividing by
// zero; an empty user skill list therefore matches every career at 0.
func CosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
	}
	for _, x := range a {
		normA += x * x
	}
	for _, x := range b {
		normB += x * x
	}
	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}

type catalogVector struct {
	name string
	vec  []float64
}

// rank scores the user vector against every catalog vector and returns the
// top n entries as 0-100 percentages, sorted by descending score. The sort
// is stable: equal scores keep catalog insertion order.
func rank(userVec []float64, vectors []catalogVector, topN int) ([]RankedCareer, error) {
	if topN <= 0 {
		return nil, ErrInvalidTopN
	}

	out := make([]RankedCareer, 0, len(vectors))
	for _, cv := range vectors {
		out = append(out, RankedCareer{
			Name:  cv.name,
			Score: CosineSimilarity(userVec, cv.vec) * 100,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	if topN < len(out) {
		out = out[:topN]
	}
	return out, nil
}
