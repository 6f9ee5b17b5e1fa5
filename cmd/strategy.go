package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/careerpath/internal/profile"
	"github.com/spigell/careerpath/internal/strategy"
)

var strategyCmd = &cobra.Command{
	Use:   "strategy",
	Short: "Choose a resume layout strategy for the profile",
	Run: func(cmd *cobra.Command, _ []string) {
		l := newLogger()

		doc, err := loadDocument(cmd, l)
		if err != nil {
			l.Fatal("loading profile", zap.Error(err))
		}

		explain, _ := cmd.Flags().GetBool("explain")
		if err := runStrategy(cmd.OutOrStdout(), doc.Profile, explain); err != nil {
			l.Fatal("printing strategy", zap.Error(err))
		}
	},
}

type explainedStrategy struct {
	Rule     string           `json:"rule"`
	Strategy profile.Strategy `json:"strategy"`
}

func init() {
	rootCmd.AddCommand(strategyCmd)

	addProfileFlag(strategyCmd)
	strategyCmd.Flags().Bool("explain", false, "also print the rule that picked the strategy")
}

func runStrategy(out io.Writer, p profile.UserProfile, explain bool) error {
	if !explain {
		return printJSON(out, strategy.Classify(p))
	}

	s, rule := strategy.Explain(p)
	return printJSON(out, explainedStrategy{Rule: rule, Strategy: s})
}
