package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/parsing"
)

// DefaultTopK is the number of courses returned when the caller does not
// ask for a specific count.
const DefaultTopK = 5

// Index is the course vector space: one L2-normalized TF-IDF row per
// course description, in corpus order. It is built exactly once at
// startup and is read-only afterwards, so concurrent recommendation
// queries are safe. Rebuilding requires reloading the full corpus.
type Index struct {
	vectorizer *Vectorizer
	rows       []sparseVector
}

// BuildIndex normalizes every course description, fits the TF-IDF
// vocabulary over the whole collection, and transforms each description
// into the space. Building is O(corpus size x vocabulary size) and is a
// startup cost, never a per-request one.
func BuildIndex(normalizer *parsing.Normalizer, descriptions []string) (*Index, error) {
	if len(descriptions) == 0 {
		return nil, fmt.Errorf("course corpus is empty")
	}

	corpus := make([]string, len(descriptions))
	for i, description := range descriptions {
		corpus[i] = normalizer.Normalize(description)
	}

	vectorizer := fitVectorizer(corpus)
	if vectorizer.vocabularySize() == 0 {
		return nil, fmt.Errorf("course corpus produced an empty vocabulary")
	}

	rows := make([]sparseVector, len(corpus))
	for i, doc := range corpus {
		rows[i] = vectorizer.transform(doc)
	}

	return &Index{vectorizer: vectorizer, rows: rows}, nil
}

// Size returns the number of indexed courses.
func (idx *Index) Size() int {
	return len(idx.rows)
}

// Recommend joins the missing skills into one comma-separated
// pseudo-document, transforms it into the vector space, and returns the
// indices of the top-k courses by descending cosine similarity. Ties are
// broken by lower index. An empty missing-skill set, or a query with no
// vocabulary overlap at all, yields an empty result rather than an
// arbitrary ranking of zero-similarity courses.
func (idx *Index) Recommend(missingSkills []string, k int) []int {
	if len(missingSkills) == 0 || k <= 0 {
		return nil
	}

	query := idx.vectorizer.transform(strings.Join(missingSkills, ", "))
	if len(query) == 0 {
		return nil
	}

	type scored struct {
		index int
		score float64
	}
	scores := make([]scored, 0, len(idx.rows))
	for i, row := range idx.rows {
		if s := dot(query, row); s > 0 {
			scores = append(scores, scored{index: i, score: s})
		}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score > scores[j].score
		}
		return scores[i].index < scores[j].index
	})

	if len(scores) > k {
		scores = scores[:k]
	}
	out := make([]int, len(scores))
	for i, s := range scores {
		out[i] = s.index
	}
	return out
}
