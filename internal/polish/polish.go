// Package polish swaps weak verbs in free text for stronger ones.
//
// The substitution is shallow: it does not rebuild sentences, so
// "I helped organize" becomes "I collaborated on organize".
package polish

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Phrase pairs a weak phrase with its replacement.
type Phrase struct {
	Weak   string `json:"weak"`
	Strong string `json:"strong"`
}

var phrases = []Phrase{
	{Weak: "helped", Strong: "Collaborated on"},
	{Weak: "assisted", Strong: "Supported the delivery of"},
	{Weak: "led", Strong: "Spearheaded"},
	{Weak: "worked on", Strong: "Executed"},
	{Weak: "responsible for", Strong: "Accountable for"},
	{Weak: "managed", Strong: "Orchestrated"},
	{Weak: "made", Strong: "Engineered"},
	{Weak: "handled", Strong: "Coordinated"},
	{Weak: "improved", Strong: "Optimized"},
	{Weak: "used", Strong: "Leveraged"},
	{Weak: "talked to", Strong: "Liaised with"},
}

type compiled struct {
	re     *regexp.Regexp
	strong string
}

var patterns = compile(phrases)

func compile(list []Phrase) []compiled {
	out := make([]compiled, 0, len(list))
	for _, p := range list {
		out = append(out, compiled{
			re:     regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(p.Weak) + `\b`),
			strong: p.Strong,
		})
	}
	return out
}

// Polish replaces every whole-word occurrence of each weak phrase, in table
// order. A match starting with an uppercase letter gets a capitalised
// replacement, anything else gets it in lowercase.
func Polish(text string) string {
	for _, p := range patterns {
		strong := p.strong
		text = p.re.ReplaceAllStringFunc(text, func(match string) string {
			return matchCase(match, strong)
		})
	}
	return text
}

// Phrases returns a copy of the substitution table.
func Phrases() []Phrase {
	return append([]Phrase(nil), phrases...)
}

func matchCase(match, replacement string) string {
	lower := strings.ToLower(replacement)

	first, _ := utf8.DecodeRuneInString(match)
	if !unicode.IsUpper(first) {
		return lower
	}

	head, size := utf8.DecodeRuneInString(lower)
	return string(unicode.ToUpper(head)) + lower[size:]
}
