package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/orbit/internal/cli"
	"github.com/bnema/orbit/internal/cli/model"
)

var purgeForce bool

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove orbit data and configuration",
	Long: `Interactively select and remove orbit directories.

This can remove:
  - Config directory
  - Data directory (includes the bookmark database and export file)
  - State directory (logs)

Use --force to remove everything without prompting.`,
	RunE: runPurge,
}

func init() {
	rootCmd.AddCommand(purgeCmd)
	purgeCmd.Flags().BoolVarP(&purgeForce, "force", "f", false, "remove all items without prompting")
}

func runPurge(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if purgeForce {
		return runPurgeForce(app)
	}

	m := model.NewPurgeModel(app.Ctx(), app.Theme, app.PurgeUC)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func runPurgeForce(app *cli.App) error {
	out, err := app.PurgeUC.PurgeAll(app.Ctx())
	if out != nil {
		for _, r := range out.Results {
			fmt.Println(model.PurgeResultLine(app.Theme, r))
		}
		if len(out.Results) == 0 {
			fmt.Println(app.Theme.Subtle.Render("nothing to purge"))
		}
	}
	return err
}
