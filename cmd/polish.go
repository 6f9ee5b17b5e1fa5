package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/careerpath/internal/polish"
)

var polishCmd = &cobra.Command{
	Use:   "polish [TEXT...]",
	Short: "Replace weak verbs with stronger ones (reads stdin without arguments)",
	Run: func(cmd *cobra.Command, args []string) {
		l := newLogger()

		list, _ := cmd.Flags().GetBool("list")
		if err := runPolish(cmd.OutOrStdout(), cmd.InOrStdin(), args, list); err != nil {
			l.Fatal("polishing text", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(polishCmd)

	polishCmd.Flags().Bool("list", false, "print the replacement table")
}

func runPolish(out io.Writer, in io.Reader, args []string, list bool) error {
	if list {
		return printJSON(out, polish.Phrases())
	}

	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = strings.TrimRight(string(data), "\r\n")
	}

	_, err := fmt.Fprintln(out, polish.Polish(text))
	return err
}
