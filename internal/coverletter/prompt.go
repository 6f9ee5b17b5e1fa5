package coverletter

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	_ "embed"

	"github.com/spigell/careerpath/internal/profile"
)

//go:embed system.md
var systemTemplate string

//go:embed prompt.md
var promptTemplate string

const notProvided = "Not provided"

var voices = map[profile.Tone]string{
	profile.ToneFormal:   "Formal and respectful. Use complete sentences, avoid contractions and slang, and address the reader as \"Dear Hiring Committee\" unless a name is given. Emphasise integrity, reliability and public service.",
	profile.ToneDynamic:  "Energetic and direct. Short paragraphs, active verbs and a confident opening line. Show curiosity about the product and a bias for shipping. Contractions are fine.",
	profile.ToneAcademic: "Scholarly and precise. Reference research interests, teaching or analytical rigour where the profile supports it, and keep claims measured and evidence based.",
	profile.ToneStandard: "Professional and warm. Clear, plain language that balances achievements with genuine enthusiasm for the role.",
}

var focusDirectives = []string{
	"Lead with the single most quantifiable achievement and tie it to what the employer needs right now.",
	"Open with a short story that shows why this employer's mission matters to the candidate.",
	"Emphasise transferable skills and show how they solve a concrete problem this role faces.",
	"Foreground leadership and collaboration, showing how the candidate lifts the teams around them.",
	"Make the candidate's unique hook the memorable thread that runs through the whole letter.",
}

// Picker returns an index in [0, n).
type Picker func(n int) int

// Clock returns the current time.
type Clock func() time.Time

// Builder assembles cover letter prompts. The zero value is not usable; use
// NewBuilder.
type Builder struct {
	pick Picker
	now  Clock
}

type Option func(*Builder)

// WithPicker replaces the random focus selector.
func WithPicker(p Picker) Option {
	return func(b *Builder) {
		if p != nil {
			b.pick = p
		}
	}
}

// WithClock replaces the clock used for the generation seed.
func WithClock(c Clock) Option {
	return func(b *Builder) {
		if c != nil {
			b.now = c
		}
	}
}

func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		pick: rand.IntN,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

var defaultBuilder = NewBuilder()

// BuildPrompt builds a prompt with a random focus directive and the current
// time as seed. Repeated calls with the same input differ.
func BuildPrompt(p profile.UserProfile, job profile.JobPosting, tone profile.Tone) profile.CoverLetterPrompt {
	return defaultBuilder.Build(p, job, tone)
}

// Build assembles the system instruction and the user prompt. Tones without
// a voice fall back to the standard one.
func (b *Builder) Build(p profile.UserProfile, job profile.JobPosting, tone profile.Tone) profile.CoverLetterPrompt {
	voice, ok := voices[tone]
	if !ok {
		tone = profile.ToneStandard
		voice = voices[tone]
	}

	system := strings.NewReplacer("{{TONE_VOICE}}", voice).Replace(systemTemplate)

	prompt := strings.NewReplacer(
		"{{FULL_NAME}}", orDefault(singleLine(p.FullName)),
		"{{STATUS}}", orDefault(singleLine(p.Status)),
		"{{YEARS}}", strconv.FormatFloat(p.YearsExperience, 'f', -1, 64),
		"{{TARGET_ROLE}}", orDefault(singleLine(p.TargetRole)),
		"{{SKILLS}}", orDefault(joinSkills(p.Skills)),
		"{{IMPACT_METRICS}}", orDefault(singleLine(p.ImpactMetrics)),
		"{{LEADERSHIP}}", orDefault(singleLine(p.LeadershipExperience)),
		"{{UNIQUE_HOOK}}", orDefault(singleLine(p.UniqueHook)),
		"{{COMPANY}}", orDefault(singleLine(job.Company)),
		"{{JOB_TITLE}}", orDefault(singleLine(job.Title)),
		"{{JOB_DESCRIPTION}}", orDefault(strings.TrimSpace(job.Description)),
		"{{TONE}}", string(tone),
		"{{FOCUS}}", b.focus(),
		"{{SEED}}", b.now().UTC().Format(time.RFC3339Nano),
	).Replace(promptTemplate)

	return profile.CoverLetterPrompt{
		Tone:              tone,
		Prompt:            strings.TrimSpace(prompt),
		SystemInstruction: strings.TrimSpace(system),
	}
}

// FocusDirectives returns the directives a prompt may be steered with.
func FocusDirectives() []string {
	return append([]string(nil), focusDirectives...)
}

func (b *Builder) focus() string {
	n := len(focusDirectives)
	idx := b.pick(n) % n
	if idx < 0 {
		idx += n
	}
	return focusDirectives[idx]
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func joinSkills(skills []string) string {
	cleaned := make([]string, 0, len(skills))
	for _, skill := range skills {
		if skill = singleLine(skill); skill != "" {
			cleaned = append(cleaned, skill)
		}
	}
	return strings.Join(cleaned, ", ")
}

func orDefault(s string) string {
	if s == "" {
		return notProvided
	}
	return s
}
