package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/panes/internal/cli/model"
	"github.com/bnema/panes/internal/infrastructure/config"
	"github.com/bnema/panes/internal/logging"
)

var (
	workbenchNoMouse bool
	workbenchCode    string
)

var workbenchCmd = &cobra.Command{
	Use:   "workbench [problem.md]",
	Short: "Open the split-pane workbench",
	Long: `Open the problem workbench.

The problem statement (markdown) is shown on the left. Without a file a
sample problem is shown. Drag a divider with the mouse, press escape during
a drag to cancel it, or press ctrl+n to resize from the keyboard.

Examples:
  panes workbench                     # Sample problem
  panes workbench problem.md          # Your own statement
  panes workbench -c main.go p.md     # Seed the editor
  panes workbench --no-mouse          # Keyboard only`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWorkbench,
}

func init() {
	rootCmd.AddCommand(workbenchCmd)
	workbenchCmd.Flags().BoolVar(&workbenchNoMouse, "no-mouse", false, "disable mouse support (keyboard resize only)")
	workbenchCmd.Flags().StringVarP(&workbenchCode, "code", "c", "", "file to load into the editor")
}

func runWorkbench(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "cli")
	log := logging.FromContext(ctx)
	defer logging.RecoverPanic(ctx)

	var statement, code string
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read problem statement: %w", err)
		}
		statement = string(data)
	}
	if workbenchCode != "" {
		data, err := os.ReadFile(workbenchCode)
		if err != nil {
			return fmt.Errorf("read code file: %w", err)
		}
		code = string(data)
	}

	out := cmd.OutOrStdout()
	wc := model.WorkbenchConfig{
		Config:    app.Config,
		Theme:     app.Theme,
		Statement: statement,
		Code:      code,
		Session:   app.SessionID,
	}
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithOutput(out)}
	if !workbenchNoMouse {
		wc.Pointer = out
		opts = append(opts, tea.WithMouseCellMotion())
	}

	m := model.NewWorkbenchModel(ctx, wc)
	defer m.Close()
	p := tea.NewProgram(model.WithPanicLogging(ctx, m), opts...)

	// Palette edits apply live; bounds are read once at startup.
	app.Manager.OnConfigChange(func(cfg *config.Config) {
		p.Send(model.ThemeChanged(cfg))
	})
	if err := app.Manager.Watch(ctx); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}

	log.Info().Bool("mouse", !workbenchNoMouse).Msg("workbench started")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run workbench: %w", err)
	}
	log.Info().Msg("workbench closed")
	return nil
}
