package ai

import (
	"context"

	"github.com/spigell/careerpath/internal/profile"
)

// Letter is a cover letter produced by an external model.
type Letter struct {
	ID    string       `json:"id"`
	Tone  profile.Tone `json:"tone"`
	Model string       `json:"model"`
	Text  string       `json:"text"`
}

// Writer turns a cover letter prompt into a letter.
type Writer interface {
	Write(ctx context.Context, prompt profile.CoverLetterPrompt) (*Letter, error)
}
