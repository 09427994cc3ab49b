// Package skills provides skill extraction from resume text and
// missing-skill computation against the role taxonomy.
package skills

import "fmt"

// UnknownRoleError indicates the classifier predicted a role that has no
// taxonomy entry. The classifier and taxonomy must share one label space,
// so this is a configuration drift between components, not a user error.
// It is fatal and never silently skipped.
type UnknownRoleError struct {
	Role string
}

func (e *UnknownRoleError) Error() string {
	return fmt.Sprintf("role %q has no taxonomy entry: classifier and taxonomy label spaces are out of sync", e.Role)
}
