package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/panes/internal/cli/styles"
	"github.com/bnema/panes/internal/infrastructure/config"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Show the config file location and effective values, or write defaults and the JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long:  `Print the configuration after defaults, the config file and PANES_* environment overrides are merged.`,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	RunE:  runConfigInit,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema [path]",
	Short: "Write the JSON schema for editor completion",
	Long: `Write the JSON schema of the configuration file.

Without a path the schema is written next to the config file. Use "-" to
print it to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSchemaCmd)
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderConfigInfo(app.Manager.ConfigFile()))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := config.EncodeTOML(app.Config)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// runConfigInit overwrites only with --force. Load already creates a
// missing file, so without --force this reports what is there.
func runConfigInit(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	path := app.Manager.ConfigFile()

	if !configForce {
		if _, err := os.Stat(path); err == nil {
			fmt.Fprint(cmd.OutOrStdout(), renderer.RenderExists(path))
			return nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("stat config file: %w", err)
		}
	}

	if err := app.Manager.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderWritten("default config", path))
	return nil
}

// runConfigSchema runs without the app, so the schema can be generated
// even when the current config file is invalid.
func runConfigSchema(cmd *cobra.Command, args []string) error {
	if len(args) == 1 && args[0] == "-" {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	}

	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		var err error
		if path, err = config.GetSchemaFile(); err != nil {
			return fmt.Errorf("failed to get config directory: %w", err)
		}
		if err := config.EnsureDirectories(); err != nil {
			return err
		}
	}

	if err := config.WriteSchemaFile(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Generated JSON schema: %s\n", path)
	return nil
}
