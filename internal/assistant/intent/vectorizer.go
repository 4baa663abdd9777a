package intent

import (
	"math"
	"regexp"
	"strings"
)

// tokenRE mirrors the usual bag-of-words tokenizer: lower-cased word
// characters, two or more per token.
var tokenRE = regexp.MustCompile(`\b\w\w+\b`)

func tokenize(text string) []string {
	return tokenRE.FindAllString(strings.ToLower(text), -1)
}

// vectorizer projects text into a fixed TF-IDF feature space. The vocabulary
// and document frequencies are fixed at fit time; transforming never mutates
// state, so a shared vectorizer is safe for concurrent use.
type vectorizer struct {
	vocab map[string]int
	idf   []float64
}

// fitVectorizer builds the vocabulary and smoothed IDF weights from the
// training corpus.
func fitVectorizer(docs []string) *vectorizer {
	v := &vectorizer{vocab: make(map[string]int)}

	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, tok := range tokenize(doc) {
			if _, ok := v.vocab[tok]; !ok {
				v.vocab[tok] = len(v.vocab)
			}
			if !seen[tok] {
				seen[tok] = true
				df[tok]++
			}
		}
	}

	n := float64(len(docs))
	v.idf = make([]float64, len(v.vocab))
	for tok, idx := range v.vocab {
		// smooth IDF: ln((1+n)/(1+df)) + 1
		v.idf[idx] = math.Log((1+n)/(1+float64(df[tok]))) + 1
	}
	return v
}

// transform maps text onto the fitted feature space, L2-normalised.
// Out-of-vocabulary tokens are dropped.
func (v *vectorizer) transform(text string) []float64 {
	vec := make([]float64, len(v.vocab))
	for _, tok := range tokenize(text) {
		if idx, ok := v.vocab[tok]; ok {
			vec[idx] += v.idf[idx]
		}
	}

	var norm float64
	for _, x := range vec {
		norm += x * x
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

func (v *vectorizer) size() int {
	return len(v.vocab)
}
