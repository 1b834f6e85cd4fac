package recommend

import (
	"errors"
	"math"
	"testing"
)

func TestCosineSimilarity(t *testing.T) {
	cases := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"zero user vector", []float64{0, 0}, []float64{1, 2}, 0},
		{"both zero", []float64{0, 0}, []float64{0, 0}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CosineSimilarity(tc.a, tc.b)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("expected %f, got %f", tc.want, got)
			}
		})
	}
}

func TestRank_InvalidTopN(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		if _, err := rank([]float64{1}, nil, n); !errors.Is(err, ErrInvalidTopN) {
			t.Fatalf("topN=%d: expected ErrInvalidTopN, got %v", n, err)
		}
	}
}

func TestRank_TruncatesToTopN(t *testing.T) {
	vectors := []catalogVector{
		{name: "a", vec: []float64{1, 0}},
		{name: "b", vec: []float64{0, 1}},
		{name: "c", vec: []float64{1, 1}},
	}

	out, err := rank([]float64{1, 0}, vectors, 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	if out[0].Name != "a" {
		t.Fatalf("expected best match first, got %s", out[0].Name)
	}
}

func TestRank_TopNLargerThanCatalog(t *testing.T) {
	vectors := []catalogVector{
		{name: "a", vec: []float64{1}},
		{name: "b", vec: []float64{1}},
	}

	out, err := rank([]float64{1}, vectors, 50)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected all entries, got %d", len(out))
	}
}

func TestRank_TiesKeepCatalogOrder(t *testing.T) {
	// Identical vectors score identically; catalog order must survive.
	vec := []float64{1, 1}
	vectors := []catalogVector{
		{name: "first", vec: vec},
		{name: "second", vec: vec},
		{name: "third", vec: vec},
	}

	out, err := rank([]float64{1, 1}, vectors, 3)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for i, want := range []string{"first", "second", "third"} {
		if out[i].Name != want {
			t.Fatalf("tie order broken at %d: got %s, want %s", i, out[i].Name, want)
		}
	}
}

func TestRank_SortedNonIncreasing(t *testing.T) {
	vectors := []catalogVector{
		{name: "a", vec: []float64{0, 1}},
		{name: "b", vec: []float64{1, 0}},
		{name: "c", vec: []float64{1, 1}},
	}

	out, err := rank([]float64{1, 0.2}, vectors, 3)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for i := 1; i < len(out); i++ {
		if out[i].Score > out[i-1].Score {
			t.Fatalf("scores not non-increasing: %f after %f", out[i].Score, out[i-1].Score)
		}
	}
	for _, rc := range out {
		if rc.Score < 0 || rc.Score > 100 {
			t.Fatalf("score out of range: %f", rc.Score)
		}
	}
}
