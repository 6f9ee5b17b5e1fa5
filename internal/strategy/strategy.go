// Package strategy picks the CV presentation strategy for a profile.
//
// Rules are evaluated top to bottom and the first matching rule wins, so the
// order of the rules list is the tie-break between overlapping sectors. A
// role such as "Data Analyst at a Bank" satisfies both the technology and the
// finance tests; whichever rule comes first decides.
package strategy

import (
	"github.com/spigell/careerpath/internal/keywords"
	"github.com/spigell/careerpath/internal/profile"
)

const (
	statusStudent = "student"

	// minHybridSkills is exclusive: the technical hybrid needs more skills.
	minHybridSkills = 5
)

// Rule names reported by Explain.
const (
	RuleScholar       = "scholar"
	RuleExecutive     = "executive"
	RuleTechnical     = "technical-hybrid"
	RulePublicService = "public-service"
	RuleFinance       = "corporate-finance"
	RuleClinical      = "clinical"
	RuleEngineering   = "engineering"
	RuleLegal         = "legal"
	RuleService       = "service"
	RuleFallback      = "fallback"
)

type rule struct {
	name    string
	id      string
	matches func(p profile.UserProfile) bool
	theme   func(p profile.UserProfile) profile.Theme
}

var rules = []rule{
	{
		name: RuleScholar,
		id:   IDEducationFirst,
		matches: func(p profile.UserProfile) bool {
			return p.YearsExperience < 1 && p.Status == statusStudent
		},
		theme: scholarTheme,
	},
	{
		// Seniority beats sector: a senior developer gets this layout, not the
		// technical hybrid.
		name: RuleExecutive,
		id:   IDExperienceHeavy,
		matches: func(p profile.UserProfile) bool {
			return p.YearsExperience >= 3
		},
		theme: executiveTheme,
	},
	{
		name: RuleTechnical,
		id:   IDSkillHybrid,
		matches: func(p profile.UserProfile) bool {
			return keywords.Technology.Match(p.TargetRole) && len(p.Skills) > minHybridSkills
		},
	},
	{
		name:    RulePublicService,
		id:      IDNGOAcademic,
		matches: roleIn(keywords.Academic, keywords.NGO),
	},
	{
		name:    RuleFinance,
		id:      IDCorporateSlim,
		matches: roleIn(keywords.Finance),
	},
	{
		name:    RuleClinical,
		id:      IDClinicalProfessional,
		matches: roleIn(keywords.Medical),
	},
	{
		name: RuleEngineering,
		id:   IDEngineeringProfessional,
		matches: func(p profile.UserProfile) bool {
			return keywords.Engineering.Match(p.TargetRole) && !keywords.EngineeringExclusions.Match(p.TargetRole)
		},
	},
	{
		name:    RuleLegal,
		id:      IDLegalProfessional,
		matches: roleIn(keywords.Legal),
	},
	{
		name:    RuleService,
		id:      IDServiceProfessional,
		matches: roleIn(keywords.Hospitality),
	},
	{
		name:    RuleFallback,
		id:      IDGeneralModern,
		matches: func(profile.UserProfile) bool { return true },
	},
}

// Classify returns the presentation strategy for the profile. Every profile
// gets exactly one strategy; the same input always yields the same output.
func Classify(p profile.UserProfile) profile.Strategy {
	s, _ := Explain(p)
	return s
}

// Explain is Classify that also reports the name of the rule that fired.
func Explain(p profile.UserProfile) (profile.Strategy, string) {
	for _, r := range rules {
		if !r.matches(p) {
			continue
		}

		s := lookup(r.id)
		if r.theme != nil {
			s.Theme = r.theme(p)
		}
		return s, r.name
	}

	// Unreachable while the fallback rule is last.
	return lookup(IDGeneralModern), RuleFallback
}

// IDs returns the known strategy ids in rule order.
func IDs() []string {
	ids := make([]string, 0, len(rules))
	for _, r := range rules {
		ids = append(ids, r.id)
	}
	return ids
}

func roleIn(sets ...keywords.Set) func(p profile.UserProfile) bool {
	terms := keywords.Union(sets...)
	return func(p profile.UserProfile) bool {
		return terms.Match(p.TargetRole)
	}
}

func scholarTheme(p profile.UserProfile) profile.Theme {
	switch {
	case keywords.Creative.Match(p.TargetRole):
		return profile.ThemeCreative
	case keywords.Technology.Match(p.TargetRole):
		return profile.ThemeModern
	default:
		return profile.ThemeAcademic
	}
}

func executiveTheme(p profile.UserProfile) profile.Theme {
	switch {
	case keywords.Creative.Match(p.TargetRole):
		return profile.ThemeCreative
	case keywords.Academic.Match(p.TargetRole), keywords.NGO.Match(p.TargetRole):
		return profile.ThemeAcademic
	default:
		return profile.ThemeMinimalist
	}
}
