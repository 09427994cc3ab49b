// Package courses provides the course corpus store, CSV loading, and
// display-value cleaning for course records.
package courses

import (
	"strconv"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// junkLiterals are the case-insensitive values treated as "no data".
var junkLiterals = map[string]bool{
	"":          true,
	"not found": true,
	"n/a":       true,
	"none":      true,
	"nan":       true,
}

// CleanValue trims a raw field value and substitutes the unknown sentinel
// for empty strings and junk literals.
func CleanValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if junkLiterals[strings.ToLower(trimmed)] {
		return types.UnknownValue
	}
	return trimmed
}

// FormatEnrolled parses an enrollment count and renders it compactly
// (1.2M, 3.4K, or the plain integer). Unparseable values resolve to the
// unknown sentinel rather than leaking raw garbage.
func FormatEnrolled(value string) string {
	cleaned := CleanValue(value)
	if cleaned == types.UnknownValue {
		return types.UnknownValue
	}

	num, err := strconv.ParseFloat(strings.ReplaceAll(cleaned, ",", ""), 64)
	if err != nil {
		return types.UnknownValue
	}

	switch {
	case num >= 1_000_000:
		return strconv.FormatFloat(num/1_000_000, 'f', 1, 64) + "M"
	case num >= 1_000:
		return strconv.FormatFloat(num/1_000, 'f', 1, 64) + "K"
	default:
		return strconv.Itoa(int(num))
	}
}

// FormatRating parses a course rating and renders it with one decimal.
// Unparseable values resolve to the unknown sentinel.
func FormatRating(value string) string {
	cleaned := CleanValue(value)
	if cleaned == types.UnknownValue {
		return types.UnknownValue
	}

	rating, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return types.UnknownValue
	}
	return strconv.FormatFloat(rating, 'f', 1, 64)
}

// CleanURL validates a course link. Anything that is not an http(s) URL
// resolves to the disabled-link sentinel so the presentation layer never
// renders raw text as clickable.
func CleanURL(value string) string {
	cleaned := CleanValue(value)
	if cleaned == types.UnknownValue {
		return types.DisabledURL
	}
	if !strings.HasPrefix(cleaned, "http://") && !strings.HasPrefix(cleaned, "https://") {
		return types.DisabledURL
	}
	return cleaned
}
