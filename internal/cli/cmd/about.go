package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/panes/internal/cli/styles"
)

var aboutShort bool

var aboutCmd = &cobra.Command{
	Use:     "about",
	Aliases: []string{"version"},
	Short:   "Print the panes version and build details",
	Long: `Print the version, commit, Go toolchain and repository of this binary.

Use --short for a single plain line suitable for scripts and bug reports.`,
	Args: cobra.NoArgs,
	RunE: runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
	aboutCmd.Flags().BoolVarP(&aboutShort, "short", "s", false, "print a single plain line")
}

func runAbout(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out := cmd.OutOrStdout()
	if aboutShort {
		_, err := fmt.Fprintln(out, app.BuildInfo.Short())
		return err
	}
	_, err := fmt.Fprintln(out, styles.NewAboutRenderer(app.Theme).Render(app.BuildInfo))
	return err
}
