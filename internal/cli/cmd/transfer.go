package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/orbit/internal/cli/styles"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write bookmarks and settings to an export document",
	Long: `Write bookmarks and settings to an export document.

The format follows the file extension: .yaml and .yml write YAML,
anything else writes JSON. Without a file the configured export
path is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace bookmarks and settings from an export document",
	Long: `Replace bookmarks and settings from an export document.

A bookmark list in the document replaces the stored one. Settings in
the document overwrite the matching config keys. Nothing is written if
any bookmark lacks a name or URL.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	path, err := app.ExportPath()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		path = args[0]
	}

	if err := app.EnsureSeeded(ctx); err != nil {
		return err
	}
	if err := app.TransferUC.Export(ctx, path); err != nil {
		return err
	}

	fmt.Printf("%s exported to %s\n", app.Theme.SuccessStyle.Render(styles.IconCheck), path)
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	out, err := app.TransferUC.Import(app.Ctx(), args[0])
	if err != nil {
		return err
	}

	check := app.Theme.SuccessStyle.Render(styles.IconCheck)
	if out.BookmarksLoaded {
		fmt.Printf("%s %d bookmarks imported\n", check, out.Bookmarks)
	}
	if out.SettingsApplied {
		fmt.Printf("%s settings applied\n", check)
	}
	if !out.BookmarksLoaded && !out.SettingsApplied {
		fmt.Printf("%s nothing to import\n", app.Theme.WarningStyle.Render(styles.IconWarning))
	}
	return nil
}
