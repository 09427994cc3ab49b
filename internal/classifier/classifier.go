// Package classifier defines the job-role prediction boundary and a
// keyword-based implementation of it.
package classifier

import (
	"sort"

	"github.com/jonathan/resume-analyzer/internal/skills"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Classifier predicts likely job roles for resume text. Implementations
// must return predictions ordered by descending confidence, confidences
// in [0, 1], and labels drawn from the same label space as the skill
// taxonomy keys. That label-space agreement is a hard compatibility
// contract: a label the taxonomy does not know surfaces downstream as an
// UnknownRoleError.
type Classifier interface {
	Predict(text string) ([]types.RolePrediction, error)
}

// KeywordClassifier ranks taxonomy roles by the share of their required
// skills present in the text. Its label space is the taxonomy's own keys,
// so it satisfies the label-space contract by construction. It is a
// deterministic stand-in for a trained model behind the same interface.
type KeywordClassifier struct {
	tax       *taxonomy.Taxonomy
	extractor *skills.Extractor
}

// NewKeywordClassifier builds a classifier over the given taxonomy.
func NewKeywordClassifier(tax *taxonomy.Taxonomy) *KeywordClassifier {
	return &KeywordClassifier{tax: tax, extractor: skills.NewExtractor(tax)}
}

// Predict scores every role and returns the full ranking, descending by
// confidence with role name as the deterministic tie-break. Callers
// truncate to their top-N.
func (c *KeywordClassifier) Predict(text string) ([]types.RolePrediction, error) {
	found := c.extractor.Extract(text)

	roles := c.tax.Roles()
	predictions := make([]types.RolePrediction, 0, len(roles))
	for _, role := range roles {
		required, _ := c.tax.Required(role)
		matched := 0
		for _, skill := range required {
			if found.Has(skill) {
				matched++
			}
		}
		predictions = append(predictions, types.RolePrediction{
			Role:       role,
			Confidence: float64(matched) / float64(len(required)),
		})
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		if predictions[i].Confidence != predictions[j].Confidence {
			return predictions[i].Confidence > predictions[j].Confidence
		}
		return predictions[i].Role < predictions[j].Role
	})

	return predictions, nil
}
