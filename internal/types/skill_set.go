// Package types provides type definitions for structured data used throughout the resume-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"sort"
	"strings"
)

// SkillSet is a deduplicated, unordered set of lowercase skill labels
// extracted from one resume. Labels are compared case-insensitively, so
// every entry is stored lowercased and trimmed.
type SkillSet map[string]bool

// NewSkillSet builds a SkillSet from raw skill labels, lowercasing,
// trimming, and dropping empty entries.
func NewSkillSet(skills []string) SkillSet {
	set := make(SkillSet, len(skills))
	for _, skill := range skills {
		normalized := strings.ToLower(strings.TrimSpace(skill))
		if normalized == "" {
			continue
		}
		set[normalized] = true
	}
	return set
}

// Has reports whether the set contains the given skill (case-insensitive).
func (s SkillSet) Has(skill string) bool {
	return s[strings.ToLower(strings.TrimSpace(skill))]
}

// Sorted returns the skills as a sorted slice for deterministic output.
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for skill := range s {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON encodes the set as a sorted JSON array so serialized
// sessions and API responses are deterministic.
func (s SkillSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

// UnmarshalJSON decodes a JSON array of skill labels into a set.
func (s *SkillSet) UnmarshalJSON(data []byte) error {
	var skills []string
	if err := json.Unmarshal(data, &skills); err != nil {
		return err
	}
	*s = NewSkillSet(skills)
	return nil
}
