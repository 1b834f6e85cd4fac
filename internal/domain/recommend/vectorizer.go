package recommend

import (
	"math"
	"strings"
	"unicode"
)

// TFIDFVectorizer builds a term frequency / inverse document frequency model
// over a corpus of skill-list documents and projects arbitrary text into
// that vector space. Terms unseen at fit time contribute zero weight.
type TFIDFVectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

func NewTFIDFVectorizer() *TFIDFVectorizer {
	return &TFIDFVectorizer{vocabulary: make(map[string]int)}
}

// Fit builds the vocabulary and IDF weights from the corpus. One document per
// career, each a space-joined skill list.
func (v *TFIDFVectorizer) Fit(docs []string) error {
	if len(docs) == 0 {
		return ErrEmptyCatalog
	}

	docFreq := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, tok := range tokenize(doc) {
			if !seen[tok] {
				seen[tok] = true
				docFreq[tok]++
			}
			if _, ok := v.vocabulary[tok]; !ok {
				v.vocabulary[tok] = len(v.vocabulary)
			}
		}
	}

	n := float64(len(docs))
	v.idf = make([]float64, len(v.vocabulary))
	for tok, idx := range v.vocabulary {
		// smoothed idf: ln((1+N)/(1+df)) + 1
		v.idf[idx] = math.Log((1+n)/(1+float64(docFreq[tok]))) + 1
	}
	return nil
}

// Transform encodes text into the fitted vector space using raw term counts
// weighted by IDF.
func (v *TFIDFVectorizer) Transform(text string) []float64 {
	vec := make([]float64, len(v.vocabulary))
	for _, tok := range tokenize(text) {
		if idx, ok := v.vocabulary[tok]; ok {
			vec[idx] += v.idf[idx]
		}
	}
	return vec
}

// VocabularySize reports the number of distinct skill tokens seen at fit time.
func (v *TFIDFVectorizer) VocabularySize() int {
	return len(v.vocabulary)
}

// tokenize lowercases and splits on non-alphanumeric runes. Single-rune
// tokens are dropped; they carry no signal for skill names.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) >= 2 {
			out = append(out, f)
		}
	}
	return out
}
