// Package readiness scores how prepared a profile is for a target role.
package readiness

import (
	"fmt"

	"github.com/spigell/careerpath/internal/keywords"
	"github.com/spigell/careerpath/internal/profile"
)

const (
	completenessPoints = 10
	minSkills          = 3

	experienceMax     = 30
	experiencePartial = 15

	evidenceMax     = 40
	evidencePartial = 20
	minProjects     = 2

	preparingFrom = 40
	readyFrom     = 70
	applyingFrom  = 90
)

var (
	seniorTrack = keywords.Set{"senior", "lead", "manager"}
	midTrack    = keywords.Set{"mid", "officer"}
)

// Messages surfaced in reports.
const (
	MissingSkills      = "Add at least 3 skills"
	MissingSeniority   = "Insufficient experience for a senior-level role"
	MissingProjects    = "No Portfolio Projects found"
	StepLeadership     = "Gain leadership experience in current role"
	StepMidLevel       = "Complete 1 more year to reach Mid-level"
	StepSecondProject  = "Build 1 more complex project to demonstrate consistency"
	StepCapstoneFormat = "Build a capstone project relevant to %s"
	StepNetwork        = "Network with 3 people in this field"
	StepKeywords       = "Optimize CV keywords for this role"
)

// Score rates the profile against targetRole. The result is the sum of a
// completeness part (max 30), an experience part (max 30) and an evidence
// part (max 40).
func Score(p profile.UserProfile, targetRole string) profile.ReadinessReport {
	report := profile.ReadinessReport{
		MissingCriticals: []string{},
		Roadmap:          []string{},
	}

	report.Breakdown.Completeness = completeness(p, &report)
	report.Breakdown.Experience = experience(p, targetRole, &report)
	report.Breakdown.Evidence = evidence(p, targetRole, &report)

	report.Score = report.Breakdown.Total()
	report.State = StateFor(report.Score)

	if report.State == profile.StatePreparing && len(report.Roadmap) == 0 {
		report.Roadmap = append(report.Roadmap, StepNetwork, StepKeywords)
	}

	return report
}

// StateFor maps a score to its readiness bucket.
func StateFor(score int) profile.ReadinessState {
	switch {
	case score < preparingFrom:
		return profile.StateExploring
	case score < readyFrom:
		return profile.StatePreparing
	case score < applyingFrom:
		return profile.StateReady
	default:
		return profile.StateApplying
	}
}

func completeness(p profile.UserProfile, report *profile.ReadinessReport) int {
	points := 0
	if p.Status != "" {
		points += completenessPoints
	}

	// Years of experience is numeric and therefore always present.
	points += completenessPoints

	if len(p.Skills) >= minSkills {
		points += completenessPoints
	} else {
		report.MissingCriticals = append(report.MissingCriticals, MissingSkills)
	}

	return points
}

func experience(p profile.UserProfile, targetRole string, report *profile.ReadinessReport) int {
	years := p.YearsExperience

	switch {
	case seniorTrack.Match(targetRole):
		switch {
		case years >= 5:
			return experienceMax
		case years >= 3:
			return experiencePartial
		}
		report.MissingCriticals = append(report.MissingCriticals, MissingSeniority)
		report.Roadmap = append(report.Roadmap, StepLeadership)
		return 0
	case midTrack.Match(targetRole):
		switch {
		case years >= 2:
			return experienceMax
		case years >= 1:
			return experiencePartial
		}
		report.Roadmap = append(report.Roadmap, StepMidLevel)
		return 0
	default:
		// Entry level roles need no prior experience.
		return experienceMax
	}
}

func evidence(p profile.UserProfile, targetRole string, report *profile.ReadinessReport) int {
	switch {
	case p.ProjectCount >= minProjects:
		return evidenceMax
	case p.ProjectCount == 1:
		report.Roadmap = append(report.Roadmap, StepSecondProject)
		return evidencePartial
	default:
		report.MissingCriticals = append(report.MissingCriticals, MissingProjects)
		report.Roadmap = append(report.Roadmap, fmt.Sprintf(StepCapstoneFormat, targetRole))
		return 0
	}
}
