package strategy

import "github.com/spigell/careerpath/internal/profile"

// Strategy ids.
const (
	IDEducationFirst          = "education-first"
	IDExperienceHeavy         = "experience-heavy"
	IDSkillHybrid             = "skill-hybrid"
	IDNGOAcademic             = "ngo-academic"
	IDCorporateSlim           = "corporate-slim"
	IDClinicalProfessional    = "clinical-professional"
	IDEngineeringProfessional = "engineering-professional"
	IDLegalProfessional       = "legal-professional"
	IDServiceProfessional     = "service-professional"
	IDGeneralModern           = "general-modern"
)

// Section ids understood by the CV renderer.
const (
	SectionSummary        = "summary"
	SectionContact        = "contact"
	SectionEducation      = "education"
	SectionExperience     = "experience"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionLanguages      = "languages"
	SectionInterests      = "interests"
	SectionAchievements   = "achievements"
	SectionPublications   = "publications"
	SectionVolunteering   = "volunteering"
	SectionReferees       = "referees"
	SectionLicenses       = "licenses"
	SectionBarAdmissions  = "bar-admissions"
	SectionTools          = "tools"
)

// table holds the hand-authored layout of every strategy. Themes of the
// scholar and executive entries are defaults that the rules override.
var table = map[string]profile.Strategy{
	IDEducationFirst: {
		ID:        IDEducationFirst,
		Name:      "The Scholar",
		Reasoning: "You are still studying with less than a year of work experience, so your education and academic projects lead the CV while a compact skills summary sits alongside.",
		SectionOrder: []string{
			SectionSummary, SectionEducation, SectionSkills, SectionProjects, SectionExperience, SectionCertifications,
		},
		SidebarSections: []string{SectionContact, SectionSkills, SectionLanguages, SectionInterests},
		Emphasis:        profile.EmphasisEducation,
		Density:         profile.DensityStandard,
		Theme:           profile.ThemeAcademic,
		ShowSidebar:     true,
	},
	IDExperienceHeavy: {
		ID:        IDExperienceHeavy,
		Name:      "The Executive",
		Reasoning: "With three or more years in the workforce, recruiters look for your track record first, so experience and measurable achievements take the top of the page.",
		SectionOrder: []string{
			SectionSummary, SectionExperience, SectionAchievements, SectionEducation, SectionCertifications,
		},
		SidebarSections: []string{SectionContact, SectionSkills, SectionLanguages},
		Emphasis:        profile.EmphasisExperience,
		Density:         profile.DensityCompact,
		Theme:           profile.ThemeMinimalist,
		ShowSidebar:     true,
	},
	IDSkillHybrid: {
		ID:        IDSkillHybrid,
		Name:      "The Technical Hybrid",
		Reasoning: "Your target is a technology role and you list a broad skill set, so a skills-first layout backed by hands-on projects shows what you can build before where you have worked.",
		SectionOrder: []string{
			SectionSummary, SectionSkills, SectionProjects, SectionExperience, SectionEducation,
		},
		SidebarSections: []string{SectionContact, SectionCertifications, SectionLanguages},
		Emphasis:        profile.EmphasisSkills,
		Density:         profile.DensityCompact,
		Theme:           profile.ThemeModern,
		ShowSidebar:     true,
	},
	IDNGOAcademic: {
		ID:        IDNGOAcademic,
		Name:      "Public Service",
		Reasoning: "Academic and development sector panels read CVs in full, so a single-column layout with detailed experience, education, volunteering and referees fits their expectations.",
		SectionOrder: []string{
			SectionSummary, SectionExperience, SectionProjects, SectionEducation, SectionVolunteering, SectionPublications, SectionReferees,
		},
		SidebarSections: []string{},
		Emphasis:        profile.EmphasisExperience,
		Density:         profile.DensityVerbose,
		Theme:           profile.ThemeAcademic,
		ShowSidebar:     false,
	},
	IDCorporateSlim: {
		ID:        IDCorporateSlim,
		Name:      "Corporate Finance",
		Reasoning: "Finance and banking recruiters scan quickly and favour conservative documents, so a slim single-column CV with experience and certifications up front works best.",
		SectionOrder: []string{
			SectionSummary, SectionExperience, SectionEducation, SectionCertifications, SectionSkills,
		},
		SidebarSections: []string{},
		Emphasis:        profile.EmphasisExperience,
		Density:         profile.DensityCompact,
		Theme:           profile.ThemeMinimalist,
		ShowSidebar:     false,
	},
	IDClinicalProfessional: {
		ID:        IDClinicalProfessional,
		Name:      "Clinical Professional",
		Reasoning: "Healthcare employers check registration and licences before anything else, so licences lead the page followed by clinical placements and experience.",
		SectionOrder: []string{
			SectionSummary, SectionLicenses, SectionExperience, SectionEducation, SectionCertifications, SectionSkills,
		},
		SidebarSections: []string{SectionContact, SectionLanguages},
		Emphasis:        profile.EmphasisExperience,
		Density:         profile.DensityStandard,
		Theme:           profile.ThemeMinimalist,
		ShowSidebar:     true,
	},
	IDEngineeringProfessional: {
		ID:        IDEngineeringProfessional,
		Name:      "Engineering Professional",
		Reasoning: "Engineering hiring managers want to see delivered projects and the tools you used on them, so projects come first with tools listed in the sidebar.",
		SectionOrder: []string{
			SectionSummary, SectionProjects, SectionExperience, SectionSkills, SectionEducation, SectionCertifications,
		},
		SidebarSections: []string{SectionContact, SectionTools, SectionLanguages},
		Emphasis:        profile.EmphasisProjects,
		Density:         profile.DensityStandard,
		Theme:           profile.ThemeModern,
		ShowSidebar:     true,
	},
	IDLegalProfessional: {
		ID:        IDLegalProfessional,
		Name:      "Legal Professional",
		Reasoning: "Legal employers expect a formal, text-led CV, so experience and education are followed by bar admissions and publications in a single column.",
		SectionOrder: []string{
			SectionSummary, SectionExperience, SectionEducation, SectionBarAdmissions, SectionPublications,
		},
		SidebarSections: []string{},
		Emphasis:        profile.EmphasisExperience,
		Density:         profile.DensityVerbose,
		Theme:           profile.ThemeMinimalist,
		ShowSidebar:     false,
	},
	IDServiceProfessional: {
		ID:        IDServiceProfessional,
		Name:      "Service Professional",
		Reasoning: "Hospitality and service roles reward customer-facing experience and languages, so a short, friendly layout keeps those visible at a glance.",
		SectionOrder: []string{
			SectionSummary, SectionExperience, SectionSkills, SectionLanguages, SectionEducation,
		},
		SidebarSections: []string{SectionContact, SectionCertifications, SectionInterests},
		Emphasis:        profile.EmphasisExperience,
		Density:         profile.DensityCompact,
		Theme:           profile.ThemeModern,
		ShowSidebar:     true,
	},
	IDGeneralModern: {
		ID:        IDGeneralModern,
		Name:      "General Modern",
		Reasoning: "Your target role does not point to a specific sector layout, so a balanced modern CV with experience first and skills in the sidebar is the safest choice.",
		SectionOrder: []string{
			SectionSummary, SectionExperience, SectionProjects, SectionEducation,
		},
		SidebarSections: []string{SectionContact, SectionSkills, SectionLanguages},
		Emphasis:        profile.EmphasisExperience,
		Density:         profile.DensityStandard,
		Theme:           profile.ThemeModern,
		ShowSidebar:     true,
	},
}

// lookup returns a copy of the table entry, so callers may modify the result.
func lookup(id string) profile.Strategy {
	s := table[id]
	s.SectionOrder = append([]string{}, s.SectionOrder...)
	s.SidebarSections = append([]string{}, s.SidebarSections...)
	return s
}
