package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/orbit/internal/cli/styles"
	"github.com/bnema/orbit/internal/infrastructure/config"
	"github.com/bnema/orbit/internal/logging"
)

var configForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Long: `Write the default config file and its JSON schema.

An existing file is left alone unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show where orbit keeps its files",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configPathCmd)
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	// No config is loaded yet, so logging comes from ORBIT_LOG_*.
	log := logging.NewFromEnv()
	theme := styles.NewTheme(config.DefaultConfig())

	path, err := config.GetConfigFile()
	if err != nil {
		return err
	}

	_, statErr := os.Stat(path)
	exists := statErr == nil
	if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", path, statErr)
	}

	if exists && !configForce {
		fmt.Printf("%s %s already exists (use --force to overwrite)\n", theme.WarningStyle.Render(styles.IconWarning), path)
		return nil
	}
	if exists {
		log.Debug().Str("path", path).Msg("replacing config file")
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove %s: %w", path, err)
		}
	}

	// Load writes the defaults when the file is missing.
	mgr, err := config.NewManager()
	if err != nil {
		return err
	}
	if err := mgr.Load(); err != nil {
		return err
	}

	fmt.Printf("%s wrote %s\n", theme.SuccessStyle.Render(styles.IconCheck), mgr.GetConfigFile())
	return nil
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	exportPath, err := app.ExportPath()
	if err != nil {
		return err
	}

	t := app.Theme
	rows := []struct {
		icon, label, path string
	}{
		{styles.IconConfig, "config", app.ConfigFile()},
		{styles.IconDatabase, "database", app.DatabasePath()},
		{styles.IconBookmark, "export", exportPath},
		{styles.IconLogs, "logs", app.Config.Logging.LogDir},
	}
	for _, r := range rows {
		fmt.Printf("%s %-9s %s\n", t.Highlight.Render(r.icon), t.Subtle.Render(r.label), r.path)
	}
	return nil
}
