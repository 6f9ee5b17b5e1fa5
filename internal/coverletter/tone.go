// Package coverletter classifies the register a cover letter should use and
// builds the prompt for the model that writes it.
package coverletter

import (
	"github.com/spigell/careerpath/internal/keywords"
	"github.com/spigell/careerpath/internal/profile"
)

var (
	formalTerms = keywords.Set{
		"bank", "ministry", "government", "council", "authority", "commission", "embassy", "parliament",
		"united nations", "unicef", "undp", "unhcr", "red cross", "oxfam", "save the children", "world vision", "usaid",
	}
	dynamicTerms = keywords.Set{
		"tech", "startup", "start-up", "studio", "labs", "digital", "software", "design", "developer", "engineer", "product", "creative", "ux",
	}
	academicTerms = keywords.Set{
		"professor", "lecturer", "research", "university", "college", "institute", "academy", "school",
	}
)

var toneRules = []struct {
	tone  profile.Tone
	terms keywords.Set
}{
	{tone: profile.ToneFormal, terms: formalTerms},
	{tone: profile.ToneDynamic, terms: dynamicTerms},
	{tone: profile.ToneAcademic, terms: academicTerms},
}

// DetermineTone picks the register for a letter to company for jobTitle. The
// first matching group wins, so a bank hiring engineers still gets a formal
// letter.
func DetermineTone(company, jobTitle string) profile.Tone {
	text := company + " " + jobTitle
	for _, rule := range toneRules {
		if rule.terms.Match(text) {
			return rule.tone
		}
	}
	return profile.ToneStandard
}
