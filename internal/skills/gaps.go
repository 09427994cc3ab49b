package skills

import (
	"sort"

	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// ComputeGaps computes, for each role in input order, the required skills
// not present in the extracted skill set. Callers truncate the role list
// to their top-N beforehand. Roles whose missing set is empty are still
// reported; callers decide whether to skip the congratulatory case. A
// role absent from the taxonomy aborts the whole computation with an
// *UnknownRoleError.
func ComputeGaps(tax *taxonomy.Taxonomy, roles []string, extracted types.SkillSet) (types.MissingSkillReport, error) {
	report := make(types.MissingSkillReport, 0, len(roles))

	for _, role := range roles {
		required, ok := tax.Required(role)
		if !ok {
			return nil, &UnknownRoleError{Role: role}
		}

		missing := make([]string, 0, len(required))
		for _, skill := range required {
			if !extracted.Has(skill) {
				missing = append(missing, skill)
			}
		}
		sort.Strings(missing)

		report = append(report, types.RoleGap{Role: role, MissingSkills: missing})
	}

	return report, nil
}
