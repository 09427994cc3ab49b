package skills

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Extractor matches the taxonomy's skill phrases against resume text.
// Matching runs over a lightly lowercased form of the original text, not
// the stripped normalized form: phrases like "rest apis" or "ci/cd" only
// survive in the original text. Construct once; safe for concurrent use.
type Extractor struct {
	phrases []string
}

// NewExtractor builds an Extractor over the taxonomy's skill universe
// (lowercased, deduplicated phrases across all roles).
func NewExtractor(tax *taxonomy.Taxonomy) *Extractor {
	return &Extractor{phrases: tax.Universe()}
}

// Extract returns the set of distinct skill phrases found in the text.
// Matches are case-insensitive, whole-token-sequence occurrences.
// Overlapping phrases are both reported when both are registered (e.g.
// "sql" inside "sql server"). No matches is a valid empty result.
func (e *Extractor) Extract(rawText string) types.SkillSet {
	text := parsing.Lightweight(rawText)
	if text == "" {
		return types.SkillSet{}
	}

	found := make([]string, 0, 16)
	for _, phrase := range e.phrases {
		if containsPhrase(text, phrase) {
			found = append(found, phrase)
		}
	}
	return types.NewSkillSet(found)
}

// containsPhrase reports whether phrase occurs in text as a whole token
// sequence: an occurrence is rejected when the phrase edge and the
// adjacent text character are both alphanumeric, so "rest apis" does not
// match inside "crest apish" but "sql" does match inside "sql server".
func containsPhrase(text, phrase string) bool {
	for start := 0; ; {
		idx := strings.Index(text[start:], phrase)
		if idx < 0 {
			return false
		}
		begin := start + idx
		end := begin + len(phrase)

		if boundaryOK(text, phrase, begin, end) {
			return true
		}
		start = begin + 1
	}
}

func boundaryOK(text, phrase string, begin, end int) bool {
	first, _ := utf8.DecodeRuneInString(phrase)
	last, _ := utf8.DecodeLastRuneInString(phrase)

	if begin > 0 && isAlnum(first) {
		prev, _ := utf8.DecodeLastRuneInString(text[:begin])
		if isAlnum(prev) {
			return false
		}
	}
	if end < len(text) && isAlnum(last) {
		next, _ := utf8.DecodeRuneInString(text[end:])
		if isAlnum(next) {
			return false
		}
	}
	return true
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
