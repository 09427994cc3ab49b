// Package taxonomy provides the fixed mapping from job roles to their
// required skill vocabulary.
package taxonomy

import (
	"fmt"
	"sort"
	"strings"
)

// Taxonomy is an immutable role -> required-skills mapping. Skill labels
// are lowercased at construction so all downstream comparisons are
// case-insensitive. It is loaded once at process start and safe for
// concurrent reads; it is never mutated afterwards.
type Taxonomy struct {
	roles    map[string][]string
	universe []string
}

// New builds a Taxonomy from a role -> skills mapping. Skills are
// lowercased, trimmed, and deduplicated per role, preserving their
// original order. Roles with no usable skills are rejected.
func New(roles map[string][]string) (*Taxonomy, error) {
	if len(roles) == 0 {
		return nil, fmt.Errorf("taxonomy has no roles")
	}

	normalized := make(map[string][]string, len(roles))
	universeSet := make(map[string]bool)

	for role, skills := range roles {
		role = strings.TrimSpace(role)
		if role == "" {
			return nil, fmt.Errorf("taxonomy has a role with an empty name")
		}

		seen := make(map[string]bool, len(skills))
		required := make([]string, 0, len(skills))
		for _, skill := range skills {
			lowered := strings.ToLower(strings.TrimSpace(skill))
			if lowered == "" || seen[lowered] {
				continue
			}
			seen[lowered] = true
			required = append(required, lowered)
			universeSet[lowered] = true
		}

		if len(required) == 0 {
			return nil, fmt.Errorf("role %q has no skills", role)
		}
		normalized[role] = required
	}

	universe := make([]string, 0, len(universeSet))
	for skill := range universeSet {
		universe = append(universe, skill)
	}
	sort.Strings(universe)

	return &Taxonomy{roles: normalized, universe: universe}, nil
}

// Required returns the required skills for a role, or ok=false when the
// role is not part of the taxonomy. The returned slice is a copy.
func (t *Taxonomy) Required(role string) ([]string, bool) {
	skills, ok := t.roles[role]
	if !ok {
		return nil, false
	}
	out := make([]string, len(skills))
	copy(out, skills)
	return out, true
}

// Has reports whether the role exists in the taxonomy.
func (t *Taxonomy) Has(role string) bool {
	_, ok := t.roles[role]
	return ok
}

// Roles returns all role names in sorted order.
func (t *Taxonomy) Roles() []string {
	out := make([]string, 0, len(t.roles))
	for role := range t.roles {
		out = append(out, role)
	}
	sort.Strings(out)
	return out
}

// Universe returns the deduplicated, lowercased set of all skills across
// every role, sorted. This is the phrase vocabulary the skill extractor
// matches against. The returned slice is a copy.
func (t *Taxonomy) Universe() []string {
	out := make([]string, len(t.universe))
	copy(out, t.universe)
	return out
}
