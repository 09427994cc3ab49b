package types

// RolePrediction is one (role, confidence) pair produced by the job-role
// classifier. Confidence is in the [0, 1] range.
type RolePrediction struct {
	Role       string  `json:"role"`
	Confidence float64 `json:"confidence"`
}

// RoleGap is the set of required skills for one predicted role that were
// not found in the resume. MissingSkills is sorted for deterministic output.
type RoleGap struct {
	Role          string   `json:"role"`
	MissingSkills []string `json:"missing_skills"`
}

// Satisfied reports whether the resume already covers every required
// skill for the role.
func (g RoleGap) Satisfied() bool {
	return len(g.MissingSkills) == 0
}

// MissingSkillReport holds one RoleGap per candidate role, in the same
// order as the role predictions it was computed from. Roles with empty
// missing sets are reported too; callers decide whether to skip them.
type MissingSkillReport []RoleGap

// CourseRecommendation pairs a role gap with the courses recommended to
// close it. Courses are ordered by descending similarity to the missing
// skills. Dropped counts recommendation indices that fell outside the
// course corpus and were filtered during lookup.
type CourseRecommendation struct {
	Role          string         `json:"role"`
	MissingSkills []string       `json:"missing_skills"`
	Courses       []CourseRecord `json:"courses"`
	Dropped       int            `json:"dropped,omitempty"`
}

// AnalysisResult is the full outcome of one resume analysis session.
type AnalysisResult struct {
	Predictions     []RolePrediction       `json:"predictions"`
	Skills          SkillSet               `json:"skills"`
	Gaps            MissingSkillReport     `json:"gaps"`
	Recommendations []CourseRecommendation `json:"recommendations"`
}

// TopRole returns the highest-confidence prediction, or a zero value if
// the classifier produced nothing.
func (r *AnalysisResult) TopRole() RolePrediction {
	if len(r.Predictions) == 0 {
		return RolePrediction{}
	}
	return r.Predictions[0]
}
