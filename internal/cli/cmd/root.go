// Package cmd provides Cobra CLI commands for panes.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/panes/internal/cli"
	"github.com/bnema/panes/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "panes",
		Short: "A terminal workbench with resizable split panes",
		Long: `Panes - a terminal problem workbench with draggable dividers.

The workbench shows a problem statement on the left, a code editor on the
top right and a console on the bottom right. Drag either divider with the
mouse, or enter resize mode from the keyboard.

Features:
  - Mouse drag with clamped split ratios per divider
  - Escape cancels a drag and puts the divider back
  - Keyboard resize mode with a configurable step
  - TOML configuration with live theme reload

Use 'panes workbench' to start, or 'panes config' to inspect settings.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
