package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/careerpath/internal/ai"
	"github.com/spigell/careerpath/internal/ai/gemini"
	"github.com/spigell/careerpath/internal/coverletter"
	"github.com/spigell/careerpath/internal/logger"
	"github.com/spigell/careerpath/internal/profile"
	"github.com/spigell/careerpath/internal/secrets"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"
)

var errDeclined = errors.New("sending declined")

var sendPrompt = promptui.Select{
	Label: "Send the prompt to the letter writer?",
	Items: []string{PromptYes, PromptNo},
}

var (
	confirmSend = func() (string, error) {
		_, answer, err := sendPrompt.Run()
		return answer, err
	}

	buildWriter = newLetterWriter
)

var letterCmd = &cobra.Command{
	Use:   "letter",
	Short: "Pick a cover letter tone and build the writer prompt",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := context.Background()
		l := newLogger()

		doc, err := loadDocument(cmd, l)
		if err != nil {
			l.Fatal("loading profile", zap.Error(err))
		}

		job := jobFromFlags(cmd, doc.Job)

		send, _ := cmd.Flags().GetBool("send")
		if !send {
			if err := printJSON(cmd.OutOrStdout(), prepareLetter(doc.Profile, job)); err != nil {
				l.Fatal("printing prompt", zap.Error(err))
			}
			return
		}

		config, err := getConfig()
		if err != nil {
			l.Fatal("getting a config", zap.Error(err))
		}

		autoApprove, _ := cmd.Flags().GetBool("auto-approve")

		err = sendLetter(ctx, cmd.OutOrStdout(), config.AI, doc.Profile, job, autoApprove, l)
		if errors.Is(err, errDeclined) {
			l.Info("exiting", zap.String("reason", "got no from prompt"))
			return
		}
		if err != nil {
			l.Fatal("writing cover letter", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(letterCmd)

	addProfileFlag(letterCmd)
	letterCmd.Flags().String("company", "", "company name (overrides the profile job)")
	letterCmd.Flags().String("title", "", "job title (overrides the profile job)")
	letterCmd.Flags().String("description", "", "job description (overrides the profile job)")
	letterCmd.Flags().Bool("send", false, "send the prompt to the configured letter writer")
	letterCmd.Flags().BoolP("auto-approve", "y", false, "do not ask for confirmation before sending")
}

// jobFromFlags starts from the job in the profile document and lets every
// flag that was set replace the matching field.
func jobFromFlags(cmd *cobra.Command, base *profile.JobPosting) profile.JobPosting {
	var job profile.JobPosting
	if base != nil {
		job = *base
	}

	for name, field := range map[string]*string{
		"company":     &job.Company,
		"title":       &job.Title,
		"description": &job.Description,
	} {
		if flag := cmd.Flag(name); flag != nil && flag.Changed {
			*field = flag.Value.String()
		}
	}

	return job
}

func prepareLetter(p profile.UserProfile, job profile.JobPosting) profile.CoverLetterPrompt {
	return coverletter.BuildPrompt(p, job, coverletter.DetermineTone(job.Company, job.Title))
}

func sendLetter(ctx context.Context, out io.Writer, cfg *AIConfig, p profile.UserProfile, job profile.JobPosting, autoApprove bool, l *zap.Logger) error {
	if cfg == nil || !cfg.Enabled {
		return errors.New("letter writer is disabled (set ai.enabled in the config)")
	}

	prompt := prepareLetter(p, job)

	l.Info("cover letter prompt ready",
		zap.String(logger.FieldTone, string(prompt.Tone)),
		zap.String("company", job.Company),
		zap.String("title", job.Title),
	)

	if !autoApprove {
		answer, err := confirmSend()
		if err != nil {
			return err
		}
		if answer != PromptYes {
			return errDeclined
		}
	}

	writer, err := buildWriter(ctx, cfg, l)
	if err != nil {
		return fmt.Errorf("building letter writer: %w", err)
	}

	letter, err := writer.Write(ctx, prompt)
	if err != nil {
		return err
	}

	l.Info("cover letter written", logger.LetterFields(letter.ID, string(letter.Tone))...)

	return printJSON(out, letter)
}

func newLetterWriter(ctx context.Context, cfg *AIConfig, l *zap.Logger) (ai.Writer, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, errors.New("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
	}

	genLogger := l.With(zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries))

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, logger.WithCommonFields(genLogger, "gemini", cfg.Gemini.Model))
	if err != nil {
		return nil, err
	}

	return gemini.NewLetterWriter(generator, cfg.Gemini.MaxLogLength, l), nil
}
