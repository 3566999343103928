package cli

import (
	"github.com/alexanderramin/chartwise/internal/config"
	"github.com/alexanderramin/chartwise/internal/qa"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NewRootCmd creates the top-level "chartwise" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "chartwise",
		Short: "Answers questions about chart types",
		Long: `chartwise answers natural-language questions about chart types:
what a chart is for, which chart fits your data, and which libraries
can draw it. Run it without arguments for the interactive shell.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runShell(app)
			}
			return cmd.Help()
		},
	}

	addSourceFlags(root.PersistentFlags(), &app.Config)

	root.AddCommand(
		newAskCmd(app),
		newListCmd(app),
		newShowCmd(app),
		newCategoriesCmd(app),
		newCategoryCmd(app),
		newRecommendCmd(app),
		newCatalogCmd(app),
		newShellCmd(app),
	)

	return root
}

// addSourceFlags binds the catalog source flags. Defaults come from the
// environment, so a flag only overrides when given.
func addSourceFlags(fs *pflag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.CatalogPath, "catalog", cfg.CatalogPath,
		"YAML catalog to use instead of the built-in one (env "+config.EnvCatalog+")")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath,
		"SQLite catalog store to read from (env "+config.EnvDB+")")
}

// observerFor returns the answer observer configured for app.
func observerFor(app *App) qa.Observer {
	if app.Observer != nil {
		return app.Observer
	}
	return qa.NoopObserver{}
}
