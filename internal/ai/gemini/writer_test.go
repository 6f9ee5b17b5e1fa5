package gemini

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/careerpath/internal/logger"
	"github.com/spigell/careerpath/internal/profile"
)

type stubGenerator struct {
	output  string
	err     error
	system  string
	message string
	calls   int
}

func (s *stubGenerator) GenerateContent(_ context.Context, system, message string) (string, error) {
	s.calls++
	s.system = system
	s.message = message
	return s.output, s.err
}

func (s *stubGenerator) Model() string { return "gemini-test" }

func TestLetterWriterWrite(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	gen := &stubGenerator{output: "```text\nDear hiring team,\nI am writing to apply.\n```"}

	w := NewLetterWriter(gen, 10, zap.New(core))
	w.newID = func() string { return "letter-1" }

	letter, err := w.Write(context.Background(), profile.CoverLetterPrompt{
		Tone:              profile.ToneFormal,
		Prompt:            "Write the letter",
		SystemInstruction: "You write letters",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if letter.ID != "letter-1" || letter.Tone != profile.ToneFormal || letter.Model != "gemini-test" {
		t.Fatalf("unexpected letter metadata: %+v", letter)
	}
	if letter.Text != "Dear hiring team,\nI am writing to apply." {
		t.Fatalf("unexpected letter text: %q", letter.Text)
	}
	if gen.system != "You write letters" || gen.message != "Write the letter" {
		t.Fatalf("unexpected generator input: %q / %q", gen.system, gen.message)
	}

	entries := observed.All()
	if len(entries) != 2 {
		t.Fatalf("expected request and response entries, got %d", len(entries))
	}
	for _, entry := range entries {
		ctx := entry.ContextMap()
		if ctx[logger.FieldLetterID] != "letter-1" || ctx[logger.FieldTone] != "formal" {
			t.Fatalf("missing letter fields: %v", ctx)
		}
		if ctx[logger.FieldProvider] != "gemini" || ctx[logger.FieldModel] != "gemini-test" {
			t.Fatalf("missing common fields: %v", ctx)
		}
	}
	if got := entries[0].ContextMap()["prompt_preview"]; got != "Write the ..." {
		t.Fatalf("expected truncated preview, got %q", got)
	}
}

func TestLetterWriterErrors(t *testing.T) {
	tests := []struct {
		name   string
		writer *LetterWriter
		prompt profile.CoverLetterPrompt
	}{
		{
			name:   "nil writer",
			writer: nil,
			prompt: profile.CoverLetterPrompt{Prompt: "x"},
		},
		{
			name:   "empty prompt",
			writer: NewLetterWriter(&stubGenerator{output: "ok"}, 0, nil),
			prompt: profile.CoverLetterPrompt{Prompt: "  "},
		},
		{
			name:   "generator failure",
			writer: NewLetterWriter(&stubGenerator{err: errors.New("boom")}, 0, nil),
			prompt: profile.CoverLetterPrompt{Prompt: "x"},
		},
		{
			name:   "empty letter",
			writer: NewLetterWriter(&stubGenerator{output: "```\n```"}, 0, nil),
			prompt: profile.CoverLetterPrompt{Prompt: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.writer.Write(context.Background(), tt.prompt); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  plain letter  ", want: "plain letter"},
		{in: "```\nbody\n```", want: "body"},
		{in: "```markdown\nline one\nline two\n```", want: "line one\nline two"},
		{in: "```inline```", want: "inline"},
	}

	for _, tt := range tests {
		if got := stripFences(tt.in); got != tt.want {
			t.Fatalf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
