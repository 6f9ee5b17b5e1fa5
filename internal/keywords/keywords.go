// Package keywords provides ordered term lists and the naive matcher used to
// sort free-text roles and employers into sectors.
package keywords

import "strings"

// Set is an ordered list of lowercase terms. A text matches the set when any
// term is a substring of it, ignoring case. "banker" matches "bank".
type Set []string

// Match reports whether text contains any of the terms.
func (s Set) Match(text string) bool {
	lower := strings.ToLower(text)
	for _, term := range s {
		if term == "" {
			continue
		}
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// Find returns the first term contained in text.
func (s Set) Find(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, term := range s {
		if term != "" && strings.Contains(lower, term) {
			return term, true
		}
	}
	return "", false
}

// Union returns a new set with the terms of all sets in order.
func Union(sets ...Set) Set {
	var out Set
	for _, set := range sets {
		out = append(out, set...)
	}
	return out
}

// Sector term lists shared by the strategy classifier.
var (
	Technology = Set{"developer", "software", "engineer", "data", "it", "programmer", "devops", "cloud", "cyber", "web"}

	Creative = Set{"design", "creative", "artist", "ux", "media", "marketing", "content", "brand", "animator", "photograph", "illustrat"}

	Academic = Set{"lecturer", "professor", "research", "teacher", "tutor", "academic", "university", "scientist"}

	NGO = Set{"ngo", "nonprofit", "non-profit", "program officer", "programme officer", "coordinator", "humanitarian", "community", "advocacy", "policy", "grant"}

	Finance = Set{"finance", "financial", "bank", "accountant", "accounting", "audit", "tax", "investment", "credit", "treasury", "actuar", "insurance"}

	Medical = Set{"nurse", "doctor", "medical", "clinical", "clinic", "pharmac", "health", "physician", "midwife", "dentist", "laboratory", "therapist"}

	Engineering = Set{"engineer", "civil", "mechanical", "electrical", "chemical", "structural", "construction", "technician", "surveyor"}

	// EngineeringExclusions keep software and data roles out of the
	// engineering sector.
	EngineeringExclusions = Set{"software", "data"}

	Legal = Set{"lawyer", "legal", "attorney", "advocate", "paralegal", "counsel", "solicitor", "barrister", "compliance"}

	Hospitality = Set{"hotel", "hospitality", "chef", "cook", "waiter", "waitress", "barista", "receptionist", "front desk", "customer service", "tourism", "travel", "retail", "cashier", "housekeep"}
)
