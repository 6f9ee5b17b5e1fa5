package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/careerpath/internal/profile"
	"github.com/spigell/careerpath/internal/realism"
)

var realismCmd = &cobra.Command{
	Use:   "realism",
	Short: "List skills that no project or experience entry backs up",
	Run: func(cmd *cobra.Command, _ []string) {
		l := newLogger()

		doc, err := loadDocument(cmd, l)
		if err != nil {
			l.Fatal("loading profile", zap.Error(err))
		}

		if err := runRealism(cmd.OutOrStdout(), doc); err != nil {
			l.Fatal("printing unsupported skills", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(realismCmd)

	addProfileFlag(realismCmd)
}

func runRealism(out io.Writer, doc *profile.Document) error {
	return printJSON(out, realism.Filter(doc.Profile.Skills, doc.Projects, doc.Experience))
}
