package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/careerpath/internal/logger"
	"github.com/spigell/careerpath/internal/profile"
)

// printJSON writes v to out as indented json followed by a newline.
func printJSON(out io.Writer, v any) error {
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}

	_, err = fmt.Fprintln(out, string(pretty))
	return err
}

func newLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}

// loadDocument reads the profile document chosen by flag or config.
func loadDocument(cmd *cobra.Command, l *zap.Logger) (*profile.Document, error) {
	path := profilePath(cmd)

	l.Debug("loading profile", zap.String("path", path))

	doc, err := profile.Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w (set --profile, the 'profile' key or CAREERPATH_PROFILE)", err)
	}

	return doc, nil
}

func addProfileFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("profile", "p", "", "profile document (yaml or json)")
}
