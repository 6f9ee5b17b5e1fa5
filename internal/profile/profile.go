// Package profile holds the records shared by the engine packages and the
// loader for on-disk profile documents.
package profile

// UserProfile is the input every engine operation works from. Engine code
// treats it as read-only.
type UserProfile struct {
	FullName             string   `json:"full_name,omitempty" mapstructure:"full-name"`
	Status               string   `json:"status" mapstructure:"status"`
	YearsExperience      float64  `json:"years_experience" mapstructure:"years-experience"`
	TargetRole           string   `json:"target_role" mapstructure:"target-role"`
	Skills               []string `json:"skills" mapstructure:"skills"`
	ProjectCount         int      `json:"project_count" mapstructure:"project-count"`
	ImpactMetrics        string   `json:"impact_metrics,omitempty" mapstructure:"impact-metrics"`
	LeadershipExperience string   `json:"leadership_experience,omitempty" mapstructure:"leadership-experience"`
	UniqueHook           string   `json:"unique_hook,omitempty" mapstructure:"unique-hook"`
}

// Project is a portfolio entry used as evidence for claimed skills.
type Project struct {
	Name        string `json:"name" mapstructure:"name"`
	Description string `json:"description" mapstructure:"description"`
}

// Experience is a work history entry used as evidence for claimed skills.
type Experience struct {
	Role        string `json:"role" mapstructure:"role"`
	Company     string `json:"company" mapstructure:"company"`
	Description string `json:"description" mapstructure:"description"`
}

// JobPosting describes the position a cover letter is written for.
type JobPosting struct {
	Company     string `json:"company" mapstructure:"company"`
	Title       string `json:"title" mapstructure:"title"`
	Description string `json:"description,omitempty" mapstructure:"description"`
}

type Emphasis string

const (
	EmphasisEducation  Emphasis = "education"
	EmphasisExperience Emphasis = "experience"
	EmphasisSkills     Emphasis = "skills"
	EmphasisProjects   Emphasis = "projects"
)

type Density string

const (
	DensityCompact  Density = "compact"
	DensityStandard Density = "standard"
	DensityVerbose  Density = "verbose"
)

type Theme string

const (
	ThemeModern     Theme = "modern"
	ThemeMinimalist Theme = "minimalist"
	ThemeCreative   Theme = "creative"
	ThemeAcademic   Theme = "academic"
)

// Strategy tells the CV renderer which sections to draw, in which column and
// with which look. SectionOrder and SidebarSections may share entries.
type Strategy struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Reasoning       string   `json:"reasoning"`
	SectionOrder    []string `json:"section_order"`
	SidebarSections []string `json:"sidebar_sections"`
	Emphasis        Emphasis `json:"emphasis"`
	Density         Density  `json:"density"`
	Theme           Theme    `json:"theme"`
	ShowSidebar     bool     `json:"show_sidebar"`
}

type ReadinessState string

const (
	StateExploring ReadinessState = "exploring"
	StatePreparing ReadinessState = "preparing"
	StateReady     ReadinessState = "ready"
	StateApplying  ReadinessState = "applying"
)

// ScoreBreakdown keeps the three capped contributions that add up to a
// readiness score.
type ScoreBreakdown struct {
	Completeness int `json:"completeness"`
	Experience   int `json:"experience"`
	Evidence     int `json:"evidence"`
}

// Total returns the sum of all contributions.
func (b ScoreBreakdown) Total() int {
	return b.Completeness + b.Experience + b.Evidence
}

// ReadinessReport summarises how prepared a profile is for a target role.
type ReadinessReport struct {
	Score            int            `json:"score"`
	State            ReadinessState `json:"state"`
	Breakdown        ScoreBreakdown `json:"breakdown"`
	MissingCriticals []string       `json:"missing_criticals"`
	Roadmap          []string       `json:"roadmap"`
}

type Tone string

const (
	ToneFormal   Tone = "formal"
	ToneDynamic  Tone = "dynamic"
	ToneAcademic Tone = "academic"
	ToneStandard Tone = "standard"
)

// CoverLetterPrompt is handed verbatim to an external letter-writing model.
type CoverLetterPrompt struct {
	Tone              Tone   `json:"tone"`
	Prompt            string `json:"prompt"`
	SystemInstruction string `json:"system_instruction"`
}
