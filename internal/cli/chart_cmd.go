package cli

import (
	"fmt"

	"github.com/alexanderramin/chartwise/internal/cli/formatter"
	"github.com/alexanderramin/chartwise/internal/domain"
	"github.com/spf13/cobra"
)

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List every chart in the catalog",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Catalog(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatChartList(c.All()))
			return nil
		},
	}
}

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <chart-id>",
		Short: "Show every detail of one chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Catalog(cmd.Context())
			if err != nil {
				return err
			}
			ch, ok := c.Get(args[0])
			if !ok {
				return fmt.Errorf("chart %q not found (run 'chartwise list' for ids)", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatChartDetail(ch))
			return nil
		},
	}
}

func newCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List chart categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Catalog(cmd.Context())
			if err != nil {
				return err
			}
			counts := make(map[domain.Category]int)
			for _, ch := range c.All() {
				counts[ch.Category]++
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCategories(c.Categories(), counts))
			return nil
		},
	}
}

func newCategoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "category <name>",
		Short: "List the charts in one category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Catalog(cmd.Context())
			if err != nil {
				return err
			}
			engine, err := app.Engine(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			charts := c.ByCategory(args[0])
			if len(charts) == 0 {
				fmt.Fprintln(out, formatter.FormatAnswer(engine.ChartsByCategory(args[0]), true))
				return nil
			}
			fmt.Fprint(out, formatter.FormatChartList(charts))
			return nil
		},
	}
}
