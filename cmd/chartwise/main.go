package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/chartwise/internal/cli"
	"github.com/alexanderramin/chartwise/internal/config"
	"github.com/alexanderramin/chartwise/internal/qa"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	app := cli.NewApp(cfg)
	defer app.Close()

	if cfg.LogEvents {
		app.Observer = qa.NewLogObserver(os.Stderr)
	}

	// Detect interactive terminal for the shell entrypoint and wizards.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	rootCmd.SilenceErrors = true
	return rootCmd.Execute()
}
