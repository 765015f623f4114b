package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/orbit/internal/application/usecase"
	"github.com/bnema/orbit/internal/cli/styles"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default bookmarks and settings",
	Long: `Restore the default bookmarks and settings.

The database location and logging settings are kept. You are asked to
confirm unless --yes is given.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip confirmation prompt")
}

func runReset(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	confirmed := resetYes
	if !confirmed {
		confirm := styles.NewConfirm(app.Theme,
			"Reset all settings and bookmarks?",
			"Bookmarks and settings return to their defaults.",
		)
		result, err := tea.NewProgram(confirmProgram{confirm}).Run()
		if err != nil {
			return err
		}
		confirmed = result.(confirmProgram).model.Result()
	}

	err := app.ResetUC.Execute(app.Ctx(), confirmed)
	if errors.Is(err, usecase.ErrResetNotConfirmed) {
		fmt.Println(app.Theme.Subtle.Render("reset cancelled"))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s settings and bookmarks reset\n", app.Theme.SuccessStyle.Render(styles.IconCheck))
	return nil
}

// confirmProgram runs a ConfirmModel as a standalone program.
type confirmProgram struct {
	model styles.ConfirmModel
}

func (c confirmProgram) Init() tea.Cmd { return nil }

func (c confirmProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	c.model, cmd = c.model.Update(msg)
	if c.model.Done() {
		return c, tea.Quit
	}
	return c, cmd
}

func (c confirmProgram) View() string {
	if c.model.Done() {
		return ""
	}
	return c.model.View() + "\n"
}
