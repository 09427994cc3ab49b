// Package recommend provides the TF-IDF course vector space and the
// content-based course recommender built on top of it.
package recommend

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// wordRe extracts word tokens of two or more characters, mirroring the
// tokenization the original vector space was trained with. Single-letter
// terms carry no weight.
var wordRe = regexp.MustCompile(`[a-z0-9_]+`)

// Vectorizer is an immutable TF-IDF vocabulary over unigrams and bigrams,
// fitted once over the full course corpus. Transforming never mutates the
// vocabulary: out-of-vocabulary terms contribute zero weight.
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// sparseVector maps vocabulary column -> weight. Vectors produced by
// transform are L2-normalized, so cosine similarity reduces to a dot
// product.
type sparseVector map[int]float64

// fitVectorizer builds the vocabulary and smoothed IDF weights
// (ln((1+n)/(1+df))+1) from the given documents.
func fitVectorizer(documents []string) *Vectorizer {
	termDocs := make(map[string]int)
	for _, doc := range documents {
		seen := make(map[string]bool)
		for _, term := range ngrams(doc) {
			if !seen[term] {
				seen[term] = true
				termDocs[term]++
			}
		}
	}

	terms := make([]string, 0, len(termDocs))
	for term := range termDocs {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v := &Vectorizer{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
	}
	n := float64(len(documents))
	for i, term := range terms {
		v.vocabulary[term] = i
		v.idf[i] = math.Log((1+n)/(1+float64(termDocs[term]))) + 1
	}
	return v
}

// transform maps a document into the fitted vector space and
// L2-normalizes the result. Unknown terms are ignored.
func (v *Vectorizer) transform(document string) sparseVector {
	counts := make(map[int]int)
	for _, term := range ngrams(document) {
		if col, ok := v.vocabulary[term]; ok {
			counts[col]++
		}
	}
	if len(counts) == 0 {
		return sparseVector{}
	}

	vec := make(sparseVector, len(counts))
	var norm float64
	for col, count := range counts {
		w := float64(count) * v.idf[col]
		vec[col] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for col := range vec {
		vec[col] /= norm
	}
	return vec
}

// vocabularySize returns the number of fitted terms.
func (v *Vectorizer) vocabularySize() int {
	return len(v.vocabulary)
}

// ngrams tokenizes a document and returns its unigrams plus bigrams of
// adjacent tokens.
func ngrams(document string) []string {
	tokens := wordRe.FindAllString(strings.ToLower(document), -1)
	filtered := tokens[:0]
	for _, token := range tokens {
		if len(token) >= 2 {
			filtered = append(filtered, token)
		}
	}
	tokens = filtered

	out := make([]string, 0, 2*len(tokens))
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}

// dot computes the dot product of two sparse vectors.
func dot(a, b sparseVector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for col, w := range a {
		sum += w * b[col]
	}
	return sum
}
