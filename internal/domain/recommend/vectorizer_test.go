package recommend

import (
	"errors"
	"reflect"
	"testing"
)

func TestTFIDFVectorizer_Fit_EmptyCorpus(t *testing.T) {
	v := NewTFIDFVectorizer()
	if err := v.Fit(nil); !errors.Is(err, ErrEmptyCatalog) {
		t.Fatalf("expected ErrEmptyCatalog, got %v", err)
	}
}

func TestTFIDFVectorizer_UnseenTermsContributeZero(t *testing.T) {
	v := NewTFIDFVectorizer()
	if err := v.Fit([]string{"python sql", "docker kubernetes"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	vec := v.Transform("haskell prolog")
	for i, w := range vec {
		if w != 0 {
			t.Fatalf("expected zero vector for unseen terms, got %f at %d", w, i)
		}
	}
}

func TestTFIDFVectorizer_RareTermWeighsMore(t *testing.T) {
	v := NewTFIDFVectorizer()
	// "python" appears in every document, "statistics" in one.
	docs := []string{"python statistics", "python docker", "python sql"}
	if err := v.Fit(docs); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	common := v.Transform("python")
	rare := v.Transform("statistics")

	var commonW, rareW float64
	for _, w := range common {
		commonW += w
	}
	for _, w := range rare {
		rareW += w
	}
	if rareW <= commonW {
		t.Fatalf("expected rare term weight %f > common term weight %f", rareW, commonW)
	}
}

func TestTFIDFVectorizer_CaseInsensitive(t *testing.T) {
	v := NewTFIDFVectorizer()
	if err := v.Fit([]string{"Python SQL"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if got, want := v.Transform("PYTHON sql"), v.Transform("python SQL"); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected case-insensitive transforms to match: %v vs %v", got, want)
	}
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Machine Learning", []string{"machine", "learning"}},
		{"CI/CD", []string{"ci", "cd"}},
		{"HTML/CSS, SQL", []string{"html", "css", "sql"}},
		{"R", nil},
		{"  ", nil},
	}
	for _, tc := range cases {
		got := tokenize(tc.in)
		if len(got) == 0 && len(tc.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("tokenize(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
