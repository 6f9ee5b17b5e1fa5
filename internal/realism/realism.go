// Package realism flags claimed skills that nothing in the profile backs up.
package realism

import (
	"strings"

	"github.com/spigell/careerpath/internal/profile"
)

// Filter returns the skills that do not appear anywhere in the evidence text
// built from projects and experience. Matching is a case-insensitive
// substring test and the input order of skills is kept.
func Filter(skills []string, projects []profile.Project, experience []profile.Experience) []string {
	unsupported := []string{}
	if len(skills) == 0 {
		return unsupported
	}

	text := Evidence(projects, experience)
	for _, skill := range skills {
		if !strings.Contains(text, strings.ToLower(skill)) {
			unsupported = append(unsupported, skill)
		}
	}

	return unsupported
}

// Evidence concatenates project names and descriptions, then experience
// roles, companies and descriptions, in lowercase.
func Evidence(projects []profile.Project, experience []profile.Experience) string {
	parts := make([]string, 0, 2*len(projects)+3*len(experience))
	for _, p := range projects {
		parts = append(parts, p.Name, p.Description)
	}
	for _, e := range experience {
		parts = append(parts, e.Role, e.Company, e.Description)
	}
	return strings.ToLower(strings.Join(parts, " "))
}
