package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/careerpath/internal/ai"
	"github.com/spigell/careerpath/internal/logger"
	"github.com/spigell/careerpath/internal/profile"
)

const (
	provider            = "gemini"
	defaultMaxLogLength = 200
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
	Model() string
}

// LetterWriter asks Gemini to write a cover letter from a prepared prompt.
type LetterWriter struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
	newID     func() string
}

var _ ai.Writer = (*LetterWriter)(nil)

func NewLetterWriter(generator contentGenerator, maxLogLength int, log *zap.Logger) *LetterWriter {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	model := ""
	if generator != nil {
		model = generator.Model()
	}

	return &LetterWriter{
		generator: generator,
		logger:    logger.WithCommonFields(log, provider, model),
		maxLogLen: maxLogLength,
		newID:     uuid.NewString,
	}
}

func (w *LetterWriter) Write(ctx context.Context, prompt profile.CoverLetterPrompt) (*ai.Letter, error) {
	if w == nil || w.generator == nil {
		return nil, errors.New("letter writer is not initialized")
	}
	if strings.TrimSpace(prompt.Prompt) == "" {
		return nil, errors.New("cover letter prompt is empty")
	}

	id := w.newID()
	log := w.logger.With(logger.LetterFields(id, string(prompt.Tone))...)

	log.Debug("gemini generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt.Prompt)),
		zap.String("prompt_preview", logger.TruncateForLog(prompt.Prompt, w.maxLogLen)),
	)

	raw, err := w.generator.GenerateContent(ctx, prompt.SystemInstruction, prompt.Prompt)
	if err != nil {
		return nil, fmt.Errorf("generate cover letter: %w", err)
	}

	log.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, w.maxLogLen)),
	)

	text := stripFences(raw)
	if text == "" {
		return nil, errors.New("gemini returned an empty letter")
	}

	return &ai.Letter{
		ID:    id,
		Tone:  prompt.Tone,
		Model: w.generator.Model(),
		Text:  text,
	}, nil
}

// stripFences removes a surrounding markdown code fence, if any.
func stripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	// drop the language tag line
	if idx := strings.Index(text, "\n"); idx >= 0 {
		text = text[idx+1:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")

	return strings.TrimSpace(text)
}
