package cmd

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/careerpath/internal/profile"
	"github.com/spigell/careerpath/internal/readiness"
)

var readinessCmd = &cobra.Command{
	Use:   "readiness",
	Short: "Score how ready the profile is for a target role",
	Run: func(cmd *cobra.Command, _ []string) {
		l := newLogger()

		doc, err := loadDocument(cmd, l)
		if err != nil {
			l.Fatal("loading profile", zap.Error(err))
		}

		role, _ := cmd.Flags().GetString("role")
		if err := runReadiness(cmd.OutOrStdout(), doc.Profile, role); err != nil {
			l.Fatal("printing readiness report", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(readinessCmd)

	addProfileFlag(readinessCmd)
	readinessCmd.Flags().StringP("role", "r", "", "target role (default is the profile target role)")
}

func runReadiness(out io.Writer, p profile.UserProfile, role string) error {
	if strings.TrimSpace(role) == "" {
		role = p.TargetRole
	}

	return printJSON(out, readiness.Score(p, role))
}
