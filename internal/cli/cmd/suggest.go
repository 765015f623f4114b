package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/orbit/internal/application/port"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <query...>",
	Short: "Print search suggestions for a query",
	Long: `Fetch remote search completions the same way the start page does,
including the fallback endpoint when the primary one fails.`,
	Example: `  orbit suggest golang context`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	res := app.Suggest.Suggest(app.Ctx(), port.SuggestionRequest{
		Query: strings.Join(args, " "),
		Epoch: 1,
	})
	if res.Err != nil {
		fmt.Println(app.Theme.Subtle.Render("no suggestions: " + res.Err.Error()))
		return nil
	}
	if len(res.Suggestions) == 0 {
		fmt.Println(app.Theme.Subtle.Render("no suggestions"))
		return nil
	}
	for _, s := range res.Suggestions {
		fmt.Println(s)
	}
	return nil
}
