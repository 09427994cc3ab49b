// Package parsing provides text normalization for resume and course text.
package parsing

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

var (
	urlRe     = regexp.MustCompile(`http\S+`)
	markerRe  = regexp.MustCompile(`\b(?:rt|cc)\b`)
	hashtagRe = regexp.MustCompile(`#\S+`)
	mentionRe = regexp.MustCompile(`@\S+`)
	spaceRe   = regexp.MustCompile(`\s+`)
)

// punctuation is the fixed set stripped during cleaning.
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Normalizer converts raw text into a cleaned, lemmatized token string
// suitable for TF-IDF vectorization. It is deterministic and safe for
// concurrent use once constructed.
type Normalizer struct {
	lemmatizer *golem.Lemmatizer
}

// NewNormalizer builds a Normalizer backed by the English lemma dictionary.
func NewNormalizer() (*Normalizer, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("failed to load lemma dictionary: %w", err)
	}
	return &Normalizer{lemmatizer: lemmatizer}, nil
}

// CleanText applies the character-level cleaning steps: lowercase, strip
// URLs, standalone retweet markers, hashtags, mentions, the fixed
// punctuation set, and non-ASCII characters, then collapse whitespace.
func (n *Normalizer) CleanText(text string) string {
	cleaned := strings.ToLower(text)
	cleaned = urlRe.ReplaceAllString(cleaned, " ")
	cleaned = markerRe.ReplaceAllString(cleaned, " ")
	cleaned = hashtagRe.ReplaceAllString(cleaned, " ")
	cleaned = mentionRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return ' '
		}
		if strings.ContainsRune(punctuation, r) {
			return ' '
		}
		return r
	}, cleaned)
	cleaned = spaceRe.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// Normalize runs the full chain: CleanText, tokenize, keep alphabetic
// tokens, drop stopwords, lemmatize, drop tokens that lemmatize to
// nothing, and rejoin with single spaces. Empty input yields "".
func (n *Normalizer) Normalize(text string) string {
	tokens := strings.Fields(n.CleanText(text))
	lemmas := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !isAlphabetic(token) {
			continue
		}
		if stopwords[token] {
			continue
		}
		lemma := n.lemmatizer.Lemma(token)
		if lemma == "" {
			continue
		}
		lemmas = append(lemmas, lemma)
	}
	return strings.Join(lemmas, " ")
}

// Lightweight lowercases text and collapses whitespace runs without any
// other stripping. Skill phrase matching uses this path: phrases like
// "REST APIs" or "CI/CD" must survive intact, which the punctuation
// stripping in Normalize would destroy.
func Lightweight(text string) string {
	lowered := strings.ToLower(text)
	lowered = spaceRe.ReplaceAllString(lowered, " ")
	return strings.TrimSpace(lowered)
}

// isAlphabetic reports whether every rune in the token is a letter.
func isAlphabetic(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
