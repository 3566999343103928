package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/chartwise/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:   `ask "<question>"`,
		Short: "Answer a question about chart types",
		Long: `Answer a natural-language question about chart types, for example:

  chartwise ask "Tell me about pie charts"
  chartwise ask "What chart should I use for showing trends over time"

Use --explain to see the intent, keywords and chart the answer was built from.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := app.Engine(cmd.Context())
			if err != nil {
				return err
			}

			tr := engine.Explain(strings.Join(args, " "))
			if explain {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTrace(tr))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAnswer(tr.Response, tr.Fallback))
			return nil
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "Show how the answer was derived")
	return cmd
}
