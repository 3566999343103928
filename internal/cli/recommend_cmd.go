package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/chartwise/internal/cli/formatter"
	"github.com/alexanderramin/chartwise/internal/qa"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newRecommendCmd(app *App) *cobra.Command {
	var dataType, purpose string

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend a chart for a data type and purpose",
		Long: `Recommend a chart for a (data type, purpose) pair, for example:

  chartwise recommend --data-type continuous --purpose trend

Pairs without a rule fall back to a bar chart. When a flag is missing and
stdin is a terminal, a short wizard asks for it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Catalog(cmd.Context())
			if err != nil {
				return err
			}
			engine, err := app.Engine(cmd.Context())
			if err != nil {
				return err
			}

			if dataType == "" || purpose == "" {
				if !app.interactive() {
					return fmt.Errorf("--data-type and --purpose are required when not running in a terminal")
				}
				form := wizardRecommend(c, &dataType, &purpose).WithInput(app.stdin()).WithOutput(cmd.ErrOrStderr())
				if err := form.Run(); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled."))
						return nil
					}
					return fmt.Errorf("recommendation wizard: %w", err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatRecommendation(engine, dataType, purpose, c.Recommend(dataType, purpose)))
			return nil
		},
	}

	cmd.Flags().StringVar(&dataType, "data-type", "", "Kind of data (e.g. categorical, continuous, matrix)")
	cmd.Flags().StringVar(&purpose, "purpose", "", "What the chart should show (e.g. comparison, trend, pattern)")
	return cmd
}

// formatRecommendation renders the recommendation sentence with a pointer
// to the chart's details.
func formatRecommendation(engine *qa.Engine, dataType, purpose, chartID string) string {
	resp := engine.Recommendation(dataType, purpose)
	if resp == qa.TemplateNotFound {
		return formatter.FormatAnswer(resp, true)
	}
	return formatter.FormatAnswer(resp, false) + "\n" +
		formatter.Dim(fmt.Sprintf("Details: chartwise show %s", chartID))
}
