package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/chartwise/internal/catalog"
	"github.com/alexanderramin/chartwise/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Export, import and validate chart catalogs",
	}

	cmd.AddCommand(
		newCatalogExportCmd(app),
		newCatalogImportCmd(app),
		newCatalogValidateCmd(app),
		newCatalogInfoCmd(app),
	)

	return cmd
}

func newCatalogExportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active catalog as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Catalog(cmd.Context())
			if err != nil {
				return err
			}
			data, err := catalog.Marshal(c)
			if err != nil {
				return err
			}
			if out == "" {
				_, err := cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d charts to %s\n", c.Len(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "File to write (default stdout)")
	return cmd
}

func newCatalogImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the stored catalog with a YAML file",
		Long: `Validate a YAML catalog and replace the contents of the SQLite store with it.
The store is used by later commands run with --db or CHARTWISE_DB.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.LoadFile(args[0])
			if err != nil {
				return err
			}
			store, err := app.Store()
			if err != nil {
				return err
			}

			source := args[0]
			if abs, err := filepath.Abs(source); err == nil {
				source = abs
			}
			if err := store.Save(cmd.Context(), c, source); err != nil {
				return fmt.Errorf("importing catalog: %w", err)
			}
			app.resetCatalog()

			fmt.Fprintf(cmd.OutOrStdout(), "%s Imported %d charts and %d rules from %s\n",
				formatter.StyleGreen.Render("✔"), c.Len(), len(c.Rules()), args[0])
			return nil
		},
	}
}

func newCatalogValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a YAML catalog without importing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			c, err := catalog.LoadFile(args[0])
			if err != nil {
				var verr *catalog.ValidationError
				if !errors.As(err, &verr) {
					return err
				}
				for _, p := range verr.Problems {
					where := p.Field
					if p.ChartID != "" {
						where = p.ChartID + "." + p.Field
					}
					fmt.Fprintf(out, "  %s %s %s\n", formatter.StyleRed.Render("✘"), where, formatter.Dim(p.Message))
				}
				return fmt.Errorf("%s: %d problem(s) found", args[0], len(verr.Problems))
			}
			fmt.Fprintf(out, "%s %s is valid: %d charts, %d rules\n",
				formatter.StyleGreen.Render("✔"), args[0], c.Len(), len(c.Rules()))
			return nil
		},
	}
}

func newCatalogInfoCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show what the SQLite catalog store holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := app.Store()
			if err != nil {
				return err
			}
			info, err := store.Info(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "  Store:     %s\n", app.StorePath())
			if info.Charts == 0 {
				fmt.Fprintf(out, "  %s\n", formatter.Dim("Empty. It is seeded from the built-in catalog on first use."))
				return nil
			}
			fmt.Fprintf(out, "  Source:    %s\n", info.Source)
			fmt.Fprintf(out, "  Charts:    %d\n", info.Charts)
			fmt.Fprintf(out, "  Rules:     %d\n", info.Rules)
			if info.ImportedAt != nil {
				fmt.Fprintf(out, "  Imported:  %s\n", info.ImportedAt.Format("2006-01-02 15:04:05 MST"))
			}
			return nil
		},
	}
}
